package restapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hr-platform/internal/hr"
	"hr-platform/internal/storage/memory"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store := memory.NewStore()
	store.Seed(hr.DemoEmployees(), hr.DemoLeaveRequests())

	service := hr.NewService(store, zlog.Logger.Level(zerolog.ErrorLevel), hr.ServiceConfig{})

	router := NewRouter(RouterOpts{
		Employees: service,
		Leave:     service,
		Timeout:   10 * time.Second,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv
}

func doRequest(t *testing.T, method, url string, body interface{}) (*http.Response, Response) {
	t.Helper()

	var reqBody bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&reqBody).Encode(body))
	}

	req, err := http.NewRequest(method, url, &reqBody)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope Response
	if resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	}

	return resp, envelope
}

func decodeResult(t *testing.T, envelope Response, out interface{}) {
	t.Helper()

	raw, err := json.Marshal(envelope.Result)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func TestWelcome(t *testing.T) {
	srv := newTestServer(t)

	resp, envelope := doRequest(t, http.MethodGet, srv.URL+"/", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out WelcomeOutput
	decodeResult(t, envelope, &out)
	assert.Equal(t, "Welcome to the HR API!", out.Message)
}

func TestListEmployees(t *testing.T) {
	srv := newTestServer(t)

	resp, envelope := doRequest(t, http.MethodGet, srv.URL+"/api/employees", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var employees []hr.Employee
	decodeResult(t, envelope, &employees)
	require.Len(t, employees, 2)
	assert.Equal(t, "Alice Smith", employees[0].Name)
	assert.Equal(t, "Bob Johnson", employees[1].Name)
}

func TestGetEmployee_NotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, envelope := doRequest(t, http.MethodGet, srv.URL+"/api/employees/42", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, http.StatusNotFound, envelope.Error.Code)
}

func TestGetEmployee_InvalidID(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doRequest(t, http.MethodGet, srv.URL+"/api/employees/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateEmployee(t *testing.T) {
	srv := newTestServer(t)

	resp, envelope := doRequest(t, http.MethodPost, srv.URL+"/api/employees", EmployeeInput{
		Name:       "Carol White",
		Position:   "Accountant",
		Department: "Finance",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var employee hr.Employee
	decodeResult(t, envelope, &employee)
	assert.Equal(t, 3, employee.ID)
	assert.Equal(t, hr.DefaultBalances(), employee.LeaveBalances)
}

func TestUpdateEmployee_PreservesBalances(t *testing.T) {
	srv := newTestServer(t)

	resp, envelope := doRequest(t, http.MethodPut, srv.URL+"/api/employees/2", EmployeeInput{
		Name:       "Bob Johnson",
		Position:   "Head of People",
		Department: "Human Resources",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var employee hr.Employee
	decodeResult(t, envelope, &employee)
	assert.Equal(t, "Head of People", employee.Position)
	assert.Equal(t, 5, employee.LeaveBalances.Vacation.Used)
}

func TestDeleteEmployee(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doRequest(t, http.MethodDelete, srv.URL+"/api/employees/1", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doRequest(t, http.MethodGet, srv.URL+"/api/employees/1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLeaveBalance(t *testing.T) {
	srv := newTestServer(t)

	resp, envelope := doRequest(t, http.MethodGet, srv.URL+"/api/employees/2/leave-balance", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var balances hr.Balances
	decodeResult(t, envelope, &balances)
	assert.Equal(t, 20, balances.Vacation.Allocated)
	assert.Equal(t, 5, balances.Vacation.Used)
}

func TestSubmitLeave(t *testing.T) {
	srv := newTestServer(t)

	resp, envelope := doRequest(t, http.MethodPost, srv.URL+"/api/employees/1/leave", SubmitLeaveInput{
		LeaveType: "vacation",
		StartDate: hr.NewDate(2025, time.November, 3),
		EndDate:   hr.NewDate(2025, time.November, 5),
		Reason:    "Trip.",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var request hr.LeaveRequest
	decodeResult(t, envelope, &request)
	assert.Equal(t, 2, request.ID)
	assert.NotEmpty(t, request.Reference)
	assert.Equal(t, hr.LeaveStatusPending, request.Status)
}

func TestSubmitLeave_WeekendOnly(t *testing.T) {
	srv := newTestServer(t)

	resp, envelope := doRequest(t, http.MethodPost, srv.URL+"/api/employees/1/leave", SubmitLeaveInput{
		LeaveType: "vacation",
		StartDate: hr.NewDate(2025, time.October, 25),
		EndDate:   hr.NewDate(2025, time.October, 26),
		Reason:    "Weekend.",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotNil(t, envelope.Error)
}

func TestSubmitLeave_InsufficientBalance(t *testing.T) {
	srv := newTestServer(t)

	resp, envelope := doRequest(t, http.MethodPost, srv.URL+"/api/employees/1/leave", SubmitLeaveInput{
		LeaveType: "personal",
		StartDate: hr.NewDate(2025, time.November, 3),
		EndDate:   hr.NewDate(2025, time.November, 14),
		Reason:    "Long break.",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotNil(t, envelope.Error)
	assert.Contains(t, envelope.Error.Message, "insufficient personal leave balance")
}

func TestListLeave(t *testing.T) {
	srv := newTestServer(t)

	resp, envelope := doRequest(t, http.MethodGet, srv.URL+"/api/leave", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var requests []hr.LeaveRequest
	decodeResult(t, envelope, &requests)
	assert.Len(t, requests, 1)

	resp, envelope = doRequest(t, http.MethodGet, srv.URL+"/api/leave?status=rejected", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decodeResult(t, envelope, &requests)
	assert.Empty(t, requests)

	resp, _ = doRequest(t, http.MethodGet, srv.URL+"/api/leave?status=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEmployeeLeave(t *testing.T) {
	srv := newTestServer(t)

	resp, envelope := doRequest(t, http.MethodGet, srv.URL+"/api/employees/2/leave", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var requests []hr.LeaveRequest
	decodeResult(t, envelope, &requests)
	require.Len(t, requests, 1)
	assert.Equal(t, hr.LeaveStatusApproved, requests[0].Status)

	resp, _ = doRequest(t, http.MethodGet, srv.URL+"/api/employees/42/leave", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSetLeaveStatus(t *testing.T) {
	srv := newTestServer(t)

	resp, envelope := doRequest(t, http.MethodPatch, srv.URL+"/api/leave/1", SetLeaveStatusInput{Status: "rejected"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var request hr.LeaveRequest
	decodeResult(t, envelope, &request)
	assert.Equal(t, hr.LeaveStatusRejected, request.Status)

	// Rejecting the approved demo request reclaims its 3 days.
	resp, envelope = doRequest(t, http.MethodGet, srv.URL+"/api/employees/2/leave-balance", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var balances hr.Balances
	decodeResult(t, envelope, &balances)
	assert.Equal(t, 2, balances.Vacation.Used)
}

func TestSetLeaveStatus_Unknown(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doRequest(t, http.MethodPatch, srv.URL+"/api/leave/42", SetLeaveStatusInput{Status: "approved"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doRequest(t, http.MethodPatch, srv.URL+"/api/leave/1", SetLeaveStatusInput{Status: "bogus"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
