package hr

import (
	"context"

	"hr-platform/internal/metrics"

	"github.com/rs/zerolog"
)

// LeaveFilter narrows leave request listings. Nil fields match everything.
type LeaveFilter struct {
	Status     *LeaveStatus
	EmployeeID *int
}

// Store is the persistence boundary of the service. Implementations live in
// internal/storage.
type Store interface {
	ListEmployees(ctx context.Context) ([]Employee, error)
	GetEmployee(ctx context.Context, id int) (*Employee, error)
	CreateEmployee(ctx context.Context, employee *Employee) error
	UpdateEmployee(ctx context.Context, employee *Employee) error
	DeleteEmployee(ctx context.Context, id int) error

	ListLeaveRequests(ctx context.Context, filter LeaveFilter) ([]LeaveRequest, error)
	GetLeaveRequest(ctx context.Context, id int) (*LeaveRequest, error)
	CreateLeaveRequest(ctx context.Context, request *LeaveRequest) error
	UpdateLeaveRequest(ctx context.Context, request *LeaveRequest) error
}

type ServiceConfig struct {
	// MaxReasonLength bounds the free-text reason of a leave request.
	MaxReasonLength int
}

const DefaultMaxReasonLength = 300

type Service struct {
	store  Store
	logger zerolog.Logger
	config ServiceConfig
}

func NewService(store Store, logger zerolog.Logger, config ServiceConfig) *Service {
	if config.MaxReasonLength == 0 {
		config.MaxReasonLength = DefaultMaxReasonLength
	}

	return &Service{
		store:  store,
		logger: logger,
		config: config,
	}
}

type EmployeeInput struct {
	Name       string
	Position   string
	Department string
}

func (in EmployeeInput) validate() error {
	if in.Name == "" {
		return NewValidationError("name is required")
	}
	if in.Position == "" {
		return NewValidationError("position is required")
	}
	if in.Department == "" {
		return NewValidationError("department is required")
	}

	return nil
}

func (s *Service) ListEmployees(ctx context.Context) ([]Employee, error) {
	return s.store.ListEmployees(ctx)
}

func (s *Service) GetEmployee(ctx context.Context, id int) (*Employee, error) {
	return s.store.GetEmployee(ctx, id)
}

// CreateEmployee registers a new employee with the default leave allocation.
func (s *Service) CreateEmployee(ctx context.Context, input EmployeeInput) (*Employee, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	employee := &Employee{
		Name:          input.Name,
		Position:      input.Position,
		Department:    input.Department,
		LeaveBalances: DefaultBalances(),
	}

	err := s.store.CreateEmployee(ctx, employee)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("id", employee.ID).Str("department", employee.Department).Msg("created an employee")

	return employee, nil
}

// UpdateEmployee replaces the employee's profile fields. Leave balances are
// preserved.
func (s *Service) UpdateEmployee(ctx context.Context, id int, input EmployeeInput) (*Employee, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	employee, err := s.store.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	employee.Name = input.Name
	employee.Position = input.Position
	employee.Department = input.Department

	err = s.store.UpdateEmployee(ctx, employee)
	if err != nil {
		return nil, err
	}

	return employee, nil
}

func (s *Service) DeleteEmployee(ctx context.Context, id int) error {
	_, err := s.store.GetEmployee(ctx, id)
	if err != nil {
		return err
	}

	return s.store.DeleteEmployee(ctx, id)
}

func (s *Service) LeaveBalances(ctx context.Context, employeeID int) (*Balances, error) {
	employee, err := s.store.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	return &employee.LeaveBalances, nil
}

type SubmitLeaveInput struct {
	Type      LeaveType
	StartDate Date
	EndDate   Date
	Reason    string
}

// SubmitLeave files a new pending leave request. The balance is only checked
// here, never deducted; deduction happens on approval.
func (s *Service) SubmitLeave(ctx context.Context, employeeID int, input SubmitLeaveInput) (*LeaveRequest, error) {
	if _, err := ParseLeaveType(string(input.Type)); err != nil {
		return nil, NewValidationError("%s", err.Error())
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return nil, NewValidationError("start_date and end_date are required")
	}
	if len(input.Reason) > s.config.MaxReasonLength {
		return nil, NewValidationError("reason is longer than %d characters", s.config.MaxReasonLength)
	}

	employee, err := s.store.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	request := NewLeaveRequest(employeeID, input.Type, input.StartDate, input.EndDate, input.Reason)

	duration := request.Duration()
	if duration <= 0 {
		return nil, ErrEmptyLeavePeriod
	}

	balance := employee.LeaveBalances.ByType(input.Type)
	if balance.Remaining() < duration {
		return nil, &InsufficientBalanceError{
			Type:      input.Type,
			Required:  duration,
			Available: balance.Remaining(),
		}
	}

	err = s.store.CreateLeaveRequest(ctx, request)
	if err != nil {
		return nil, err
	}

	metrics.Leave.Submitted(string(input.Type))
	s.logger.Info().
		Int("id", request.ID).
		Str("reference", request.Reference).
		Int("employee_id", employeeID).
		Str("type", string(input.Type)).
		Int("duration", duration).
		Msg("submitted a leave request")

	return request, nil
}

func (s *Service) ListLeave(ctx context.Context, status *LeaveStatus) ([]LeaveRequest, error) {
	return s.store.ListLeaveRequests(ctx, LeaveFilter{Status: status})
}

func (s *Service) EmployeeLeave(ctx context.Context, employeeID int) ([]LeaveRequest, error) {
	_, err := s.store.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	return s.store.ListLeaveRequests(ctx, LeaveFilter{EmployeeID: &employeeID})
}

// SetLeaveStatus moves a request to the given status and keeps the employee's
// balance consistent: a newly approved request consumes its duration, and a
// previously approved request releases it when it leaves the approved state.
func (s *Service) SetLeaveStatus(ctx context.Context, requestID int, status LeaveStatus) (*LeaveRequest, error) {
	request, err := s.store.GetLeaveRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	employee, err := s.store.GetEmployee(ctx, request.EmployeeID)
	if err != nil {
		return nil, err
	}

	duration := request.Duration()
	balance := employee.LeaveBalances.ByType(request.Type)

	newlyApproved := status == LeaveStatusApproved && request.Status != LeaveStatusApproved
	previouslyApproved := request.Status == LeaveStatusApproved && status != LeaveStatusApproved

	if newlyApproved && balance.Remaining() < duration {
		return nil, &InsufficientBalanceError{
			Type:      request.Type,
			Required:  duration,
			Available: balance.Remaining(),
		}
	}

	// The status is written before the balance so that a failed write never
	// leaves days deducted for a request that still looks pending.
	request.Status = status

	err = s.store.UpdateLeaveRequest(ctx, request)
	if err != nil {
		return nil, err
	}

	switch {
	case newlyApproved:
		balance.Used += duration
	case previouslyApproved:
		balance.Used -= duration
	}

	if newlyApproved || previouslyApproved {
		err = s.store.UpdateEmployee(ctx, employee)
		if err != nil {
			return nil, err
		}
	}

	metrics.Leave.Decided(string(status))
	s.logger.Info().
		Int("id", request.ID).
		Str("reference", request.Reference).
		Str("status", string(status)).
		Msg("updated a leave request status")

	return request, nil
}
