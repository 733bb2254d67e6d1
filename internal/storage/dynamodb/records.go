package dynamodb

import (
	"sort"

	"hr-platform/internal/hr"
)

type balanceRecord struct {
	Allocated int `dynamodbav:"Allocated"`
	Used      int `dynamodbav:"Used"`
}

type employeeRecord struct {
	ID         int    `dynamodbav:"Id"`
	Name       string `dynamodbav:"Name"`
	Position   string `dynamodbav:"Position"`
	Department string `dynamodbav:"Department"`

	Vacation balanceRecord `dynamodbav:"Vacation"`
	Sick     balanceRecord `dynamodbav:"Sick"`
	Personal balanceRecord `dynamodbav:"Personal"`
}

func newEmployeeRecord(e *hr.Employee) *employeeRecord {
	return &employeeRecord{
		ID:         e.ID,
		Name:       e.Name,
		Position:   e.Position,
		Department: e.Department,
		Vacation:   balanceRecord(e.LeaveBalances.Vacation),
		Sick:       balanceRecord(e.LeaveBalances.Sick),
		Personal:   balanceRecord(e.LeaveBalances.Personal),
	}
}

func (r *employeeRecord) toEmployee() hr.Employee {
	return hr.Employee{
		ID:         r.ID,
		Name:       r.Name,
		Position:   r.Position,
		Department: r.Department,
		LeaveBalances: hr.Balances{
			Vacation: hr.Balance(r.Vacation),
			Sick:     hr.Balance(r.Sick),
			Personal: hr.Balance(r.Personal),
		},
	}
}

type leaveRequestRecord struct {
	ID         int    `dynamodbav:"Id"`
	Reference  string `dynamodbav:"Reference"`
	EmployeeID int    `dynamodbav:"EmployeeId"`
	Type       string `dynamodbav:"Type"`
	StartDate  string `dynamodbav:"StartDate"`
	EndDate    string `dynamodbav:"EndDate"`
	Reason     string `dynamodbav:"Reason"`
	Status     string `dynamodbav:"Status"`
}

func newLeaveRequestRecord(r *hr.LeaveRequest) *leaveRequestRecord {
	return &leaveRequestRecord{
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

func (r *leaveRequestRecord) toLeaveRequest() (*hr.LeaveRequest, error) {
	start, err := hr.ParseDate(r.StartDate)
	if err != nil {
		return nil, err
	}

	end, err := hr.ParseDate(r.EndDate)
	if err != nil {
		return nil, err
	}

	return &hr.LeaveRequest{
		ID:         r.ID,
		Reference:  r.Reference,
		EmployeeID: r.EmployeeID,
		Type:       hr.LeaveType(r.Type),
		StartDate:  start,
		EndDate:    end,
		Reason:     r.Reason,
		Status:     hr.LeaveStatus(r.Status),
	}, nil
}

func sortByID[T any](items []T, id func(T) int) {
	sort.Slice(items, func(i, j int) bool {
		return id(items[i]) < id(items[j])
	})
}
