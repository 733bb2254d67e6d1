package postgres

import (
	"time"

	"hr-platform/internal/hr"
)

type employeeModel struct {
	ID         int `gorm:"primaryKey;autoIncrement"`
	Name       string
	Position   string
	Department string

	VacationAllocated int
	VacationUsed      int
	SickAllocated     int
	SickUsed          int
	PersonalAllocated int
	PersonalUsed      int

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (employeeModel) TableName() string { return "employees" }

type leaveRequestModel struct {
	ID         int    `gorm:"primaryKey;autoIncrement"`
	Reference  string `gorm:"uniqueIndex"`
	EmployeeID int    `gorm:"index"`
	Type       string
	StartDate  string // YYYY-MM-DD
	EndDate    string // YYYY-MM-DD
	Reason     string `gorm:"type:text"`
	Status     string `gorm:"index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (leaveRequestModel) TableName() string { return "leave_requests" }

func employeeToModel(e *hr.Employee) *employeeModel {
	return &employeeModel{
		ID:                e.ID,
		Name:              e.Name,
		Position:          e.Position,
		Department:        e.Department,
		VacationAllocated: e.LeaveBalances.Vacation.Allocated,
		VacationUsed:      e.LeaveBalances.Vacation.Used,
		SickAllocated:     e.LeaveBalances.Sick.Allocated,
		SickUsed:          e.LeaveBalances.Sick.Used,
		PersonalAllocated: e.LeaveBalances.Personal.Allocated,
		PersonalUsed:      e.LeaveBalances.Personal.Used,
	}
}

func modelToEmployee(m *employeeModel) hr.Employee {
	return hr.Employee{
		ID:         m.ID,
		Name:       m.Name,
		Position:   m.Position,
		Department: m.Department,
		LeaveBalances: hr.Balances{
			Vacation: hr.Balance{Allocated: m.VacationAllocated, Used: m.VacationUsed},
			Sick:     hr.Balance{Allocated: m.SickAllocated, Used: m.SickUsed},
			Personal: hr.Balance{Allocated: m.PersonalAllocated, Used: m.PersonalUsed},
		},
	}
}

func leaveRequestToModel(r *hr.LeaveRequest) *leaveRequestModel {
	return &leaveRequestModel{
		ID:         r.ID,
		Reference:  r.Reference,
		EmployeeID: r.EmployeeID,
		Type:       string(r.Type),
		StartDate:  r.StartDate.String(),
		EndDate:    r.EndDate.String(),
		Reason:     r.Reason,
		Status:     string(r.Status),
	}
}

func modelToLeaveRequest(m *leaveRequestModel) (*hr.LeaveRequest, error) {
	start, err := hr.ParseDate(m.StartDate)
	if err != nil {
		return nil, err
	}

	end, err := hr.ParseDate(m.EndDate)
	if err != nil {
		return nil, err
	}

	return &hr.LeaveRequest{
		ID:         m.ID,
		Reference:  m.Reference,
		EmployeeID: m.EmployeeID,
		Type:       hr.LeaveType(m.Type),
		StartDate:  start,
		EndDate:    end,
		Reason:     m.Reason,
		Status:     hr.LeaveStatus(m.Status),
	}, nil
}
