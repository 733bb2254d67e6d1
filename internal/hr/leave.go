package hr

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type LeaveType string

const (
	LeaveTypeVacation LeaveType = "vacation"
	LeaveTypeSick     LeaveType = "sick"
	LeaveTypePersonal LeaveType = "personal"
)

func ParseLeaveType(s string) (LeaveType, error) {
	switch LeaveType(s) {
	case LeaveTypeVacation, LeaveTypeSick, LeaveTypePersonal:
		return LeaveType(s), nil
	default:
		return "", errors.Errorf("unknown leave type %q (supported: %s, %s, %s)",
			s, LeaveTypeVacation, LeaveTypeSick, LeaveTypePersonal)
	}
}

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

func ParseLeaveStatus(s string) (LeaveStatus, error) {
	switch LeaveStatus(s) {
	case LeaveStatusPending, LeaveStatusApproved, LeaveStatusRejected:
		return LeaveStatus(s), nil
	default:
		return "", errors.Errorf("unknown leave status %q (supported: %s, %s, %s)",
			s, LeaveStatusPending, LeaveStatusApproved, LeaveStatusRejected)
	}
}

type LeaveRequest struct {
	ID int `json:"id"`

	// Reference identifies the request across systems (logs, audit trails)
	// independently of the store-assigned numeric ID.
	Reference string `json:"reference"`

	EmployeeID int         `json:"employee_id"`
	Type       LeaveType   `json:"leave_type"`
	StartDate  Date        `json:"start_date"`
	EndDate    Date        `json:"end_date"`
	Reason     string      `json:"reason"`
	Status     LeaveStatus `json:"status"`
}

func NewLeaveRequest(employeeID int, leaveType LeaveType, start, end Date, reason string) *LeaveRequest {
	return &LeaveRequest{
		Reference:  uuid.New().String(),
		EmployeeID: employeeID,
		Type:       leaveType,
		StartDate:  start,
		EndDate:    end,
		Reason:     reason,
		Status:     LeaveStatusPending,
	}
}

// Duration is the number of business days the request spans.
func (r *LeaveRequest) Duration() int {
	return BusinessDays(r.StartDate, r.EndDate)
}
