package postgres

import (
	"context"

	"hr-platform/internal/hr"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Store struct {
	db *gorm.DB
}

// Open connects to the database and migrates the schema.
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, errors.Wrap(err, "connection failed")
	}

	err = db.AutoMigrate(&employeeModel{}, &leaveRequestModel{})
	if err != nil {
		return nil, errors.Wrap(err, "migration failed")
	}

	return &Store{db: db}, nil
}

func (s *Store) ListEmployees(ctx context.Context) ([]hr.Employee, error) {
	var models []employeeModel
	err := s.db.WithContext(ctx).Order("id").Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "list failed")
	}

	employees := make([]hr.Employee, 0, len(models))
	for i := range models {
		employees = append(employees, modelToEmployee(&models[i]))
	}

	return employees, nil
}

func (s *Store) GetEmployee(ctx context.Context, id int) (*hr.Employee, error) {
	var m employeeModel
	err := s.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, hr.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get failed")
	}

	employee := modelToEmployee(&m)

	return &employee, nil
}

func (s *Store) CreateEmployee(ctx context.Context, employee *hr.Employee) error {
	m := employeeToModel(employee)
	m.ID = 0 // let the database assign it

	err := s.db.WithContext(ctx).Create(m).Error
	if err != nil {
		return errors.Wrap(err, "create failed")
	}

	employee.ID = m.ID

	return nil
}

func (s *Store) UpdateEmployee(ctx context.Context, employee *hr.Employee) error {
	err := s.db.WithContext(ctx).Save(employeeToModel(employee)).Error
	if err != nil {
		return errors.Wrap(err, "update failed")
	}

	return nil
}

func (s *Store) DeleteEmployee(ctx context.Context, id int) error {
	result := s.db.WithContext(ctx).Delete(&employeeModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "delete failed")
	}
	if result.RowsAffected == 0 {
		return hr.ErrEmployeeNotFound
	}

	return nil
}

func (s *Store) ListLeaveRequests(ctx context.Context, filter hr.LeaveFilter) ([]hr.LeaveRequest, error) {
	query := s.db.WithContext(ctx).Order("id")
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.EmployeeID != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeID)
	}

	var models []leaveRequestModel
	err := query.Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "list failed")
	}

	requests := make([]hr.LeaveRequest, 0, len(models))
	for i := range models {
		request, err := modelToLeaveRequest(&models[i])
		if err != nil {
			return nil, err
		}

		requests = append(requests, *request)
	}

	return requests, nil
}

func (s *Store) GetLeaveRequest(ctx context.Context, id int) (*hr.LeaveRequest, error) {
	var m leaveRequestModel
	err := s.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, hr.ErrLeaveRequestNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get failed")
	}

	return modelToLeaveRequest(&m)
}

func (s *Store) CreateLeaveRequest(ctx context.Context, request *hr.LeaveRequest) error {
	m := leaveRequestToModel(request)
	m.ID = 0

	err := s.db.WithContext(ctx).Create(m).Error
	if err != nil {
		return errors.Wrap(err, "create failed")
	}

	request.ID = m.ID

	return nil
}

func (s *Store) UpdateLeaveRequest(ctx context.Context, request *hr.LeaveRequest) error {
	err := s.db.WithContext(ctx).Save(leaveRequestToModel(request)).Error
	if err != nil {
		return errors.Wrap(err, "update failed")
	}

	return nil
}
