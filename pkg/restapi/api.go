package restapi

import (
	"context"

	"hr-platform/internal/hr"
)

type EmployeeService interface {
	ListEmployees(ctx context.Context) ([]hr.Employee, error)
	GetEmployee(ctx context.Context, id int) (*hr.Employee, error)
	CreateEmployee(ctx context.Context, input hr.EmployeeInput) (*hr.Employee, error)
	UpdateEmployee(ctx context.Context, id int, input hr.EmployeeInput) (*hr.Employee, error)
	DeleteEmployee(ctx context.Context, id int) error
	LeaveBalances(ctx context.Context, employeeID int) (*hr.Balances, error)
}

type LeaveService interface {
	SubmitLeave(ctx context.Context, employeeID int, input hr.SubmitLeaveInput) (*hr.LeaveRequest, error)
	ListLeave(ctx context.Context, status *hr.LeaveStatus) ([]hr.LeaveRequest, error)
	EmployeeLeave(ctx context.Context, employeeID int) ([]hr.LeaveRequest, error)
	SetLeaveStatus(ctx context.Context, requestID int, status hr.LeaveStatus) (*hr.LeaveRequest, error)
}
