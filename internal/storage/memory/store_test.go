package memory

import (
	"context"
	"testing"
	"time"

	"hr-platform/internal/hr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeIDAssignment(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	first := &hr.Employee{Name: "A"}
	require.NoError(t, store.CreateEmployee(ctx, first))
	assert.Equal(t, 1, first.ID)

	second := &hr.Employee{Name: "B"}
	require.NoError(t, store.CreateEmployee(ctx, second))
	assert.Equal(t, 2, second.ID)

	// IDs continue after the highest seeded one.
	store.Seed([]hr.Employee{{ID: 10, Name: "C"}}, nil)

	third := &hr.Employee{Name: "D"}
	require.NoError(t, store.CreateEmployee(ctx, third))
	assert.Equal(t, 11, third.ID)
}

func TestEmployeeNotFound(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	_, err := store.GetEmployee(ctx, 1)
	assert.ErrorIs(t, err, hr.ErrEmployeeNotFound)

	err = store.UpdateEmployee(ctx, &hr.Employee{ID: 1})
	assert.ErrorIs(t, err, hr.ErrEmployeeNotFound)

	err = store.DeleteEmployee(ctx, 1)
	assert.ErrorIs(t, err, hr.ErrEmployeeNotFound)
}

func TestListEmployees_SortedByID(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	store.Seed([]hr.Employee{{ID: 3}, {ID: 1}, {ID: 2}}, nil)

	employees, err := store.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 3)

	for i, e := range employees {
		assert.Equal(t, i+1, e.ID)
	}
}

func TestDeleteEmployee(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	store.Seed(hr.DemoEmployees(), nil)
	require.NoError(t, store.DeleteEmployee(ctx, 1))

	_, err := store.GetEmployee(ctx, 1)
	assert.ErrorIs(t, err, hr.ErrEmployeeNotFound)

	employees, err := store.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Len(t, employees, 1)
}

func TestListLeaveRequests_Filters(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	start := hr.NewDate(2025, time.November, 3)
	end := hr.NewDate(2025, time.November, 4)

	store.Seed(nil, []hr.LeaveRequest{
		{ID: 1, EmployeeID: 1, Type: hr.LeaveTypeSick, StartDate: start, EndDate: end, Status: hr.LeaveStatusPending},
		{ID: 2, EmployeeID: 1, Type: hr.LeaveTypeVacation, StartDate: start, EndDate: end, Status: hr.LeaveStatusApproved},
		{ID: 3, EmployeeID: 2, Type: hr.LeaveTypeVacation, StartDate: start, EndDate: end, Status: hr.LeaveStatusApproved},
	})

	all, err := store.ListLeaveRequests(ctx, hr.LeaveFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	approved := hr.LeaveStatusApproved
	byStatus, err := store.ListLeaveRequests(ctx, hr.LeaveFilter{Status: &approved})
	require.NoError(t, err)
	assert.Len(t, byStatus, 2)

	employeeID := 1
	byEmployee, err := store.ListLeaveRequests(ctx, hr.LeaveFilter{EmployeeID: &employeeID})
	require.NoError(t, err)
	assert.Len(t, byEmployee, 2)

	both, err := store.ListLeaveRequests(ctx, hr.LeaveFilter{Status: &approved, EmployeeID: &employeeID})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, 2, both[0].ID)
}

func TestUpdateIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	store.Seed(hr.DemoEmployees(), nil)

	// Mutating a fetched employee must not leak into the store before
	// UpdateEmployee is called.
	employee, err := store.GetEmployee(ctx, 1)
	require.NoError(t, err)
	employee.Name = "Mutated"

	fresh, err := store.GetEmployee(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", fresh.Name)
}
