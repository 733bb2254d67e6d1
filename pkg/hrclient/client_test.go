package hrclient

import (
	"net/http/httptest"
	"testing"
	"time"

	"hr-platform/internal/hr"
	"hr-platform/internal/storage/memory"
	"hr-platform/pkg/restapi"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	store := memory.NewStore()
	store.Seed(hr.DemoEmployees(), hr.DemoLeaveRequests())

	service := hr.NewService(store, zlog.Logger.Level(zerolog.ErrorLevel), hr.ServiceConfig{})

	router := restapi.NewRouter(restapi.RouterOpts{
		Employees: service,
		Leave:     service,
		Timeout:   10 * time.Second,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return New(&Config{BaseURL: srv.URL})
}

func TestListEmployees(t *testing.T) {
	cli := newTestClient(t)

	employees, err := cli.ListEmployees()
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, "Alice Smith", employees[0].Name)
}

func TestGetEmployee(t *testing.T) {
	cli := newTestClient(t)

	employee, err := cli.GetEmployee(2)
	require.NoError(t, err)
	assert.Equal(t, "Bob Johnson", employee.Name)
	assert.Equal(t, 20, employee.LeaveBalances.Vacation.Allocated)

	_, err = cli.GetEmployee(42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "employee not found")
}

func TestCreateEmployee(t *testing.T) {
	cli := newTestClient(t)

	employee, err := cli.CreateEmployee(EmployeeInput{
		Name:       "Carol White",
		Position:   "Accountant",
		Department: "Finance",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, employee.ID)
	assert.Equal(t, 15, employee.LeaveBalances.Vacation.Allocated)
}

func TestSubmitAndApproveLeave(t *testing.T) {
	cli := newTestClient(t)

	request, err := cli.SubmitLeave(1, SubmitLeaveInput{
		LeaveType: "vacation",
		StartDate: "2025-11-03",
		EndDate:   "2025-11-05",
		Reason:    "Trip.",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, request.ID)
	assert.NotEmpty(t, request.Reference)
	assert.Equal(t, "pending", request.Status)

	approved, err := cli.SetLeaveStatus(request.ID, "approved")
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Status)

	balances, err := cli.LeaveBalances(1)
	require.NoError(t, err)
	assert.Equal(t, 3, balances.Vacation.Used)
}

func TestSubmitLeave_Rejected(t *testing.T) {
	cli := newTestClient(t)

	_, err := cli.SubmitLeave(1, SubmitLeaveInput{
		LeaveType: "personal",
		StartDate: "2025-11-03",
		EndDate:   "2025-11-14",
		Reason:    "Long break.",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient personal leave balance")
}
