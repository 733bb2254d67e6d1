// Package hrclient is a thin client for the HR API. It speaks the wire
// format of pkg/restapi and deliberately avoids the server's domain types.
package hrclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type Config struct {
	BaseURL string
}

type Client struct {
	baseURL string
	client  *http.Client
}

func New(c *Config) *Client {
	return &Client{
		baseURL: c.BaseURL,
		client:  &http.Client{Timeout: 0},
	}
}

type Balance struct {
	Allocated int `json:"allocated"`
	Used      int `json:"used"`
}

type Balances struct {
	Vacation Balance `json:"vacation"`
	Sick     Balance `json:"sick"`
	Personal Balance `json:"personal"`
}

type Employee struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Position      string   `json:"position"`
	Department    string   `json:"department"`
	LeaveBalances Balances `json:"leave_balances"`
}

type EmployeeInput struct {
	Name       string `json:"name"`
	Position   string `json:"position"`
	Department string `json:"department"`
}

type LeaveRequest struct {
	ID         int    `json:"id"`
	Reference  string `json:"reference"`
	EmployeeID int    `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
	Status     string `json:"status"`
}

type SubmitLeaveInput struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (c *Client) ListEmployees() ([]Employee, error) {
	var employees []Employee
	err := c.do(http.MethodGet, "/api/employees", nil, &employees)

	return employees, err
}

func (c *Client) GetEmployee(id int) (*Employee, error) {
	employee := new(Employee)
	err := c.do(http.MethodGet, fmt.Sprintf("/api/employees/%d", id), nil, employee)
	if err != nil {
		return nil, err
	}

	return employee, nil
}

func (c *Client) CreateEmployee(input EmployeeInput) (*Employee, error) {
	employee := new(Employee)
	err := c.do(http.MethodPost, "/api/employees", input, employee)
	if err != nil {
		return nil, err
	}

	return employee, nil
}

func (c *Client) LeaveBalances(employeeID int) (*Balances, error) {
	balances := new(Balances)
	err := c.do(http.MethodGet, fmt.Sprintf("/api/employees/%d/leave-balance", employeeID), nil, balances)
	if err != nil {
		return nil, err
	}

	return balances, nil
}

func (c *Client) SubmitLeave(employeeID int, input SubmitLeaveInput) (*LeaveRequest, error) {
	request := new(LeaveRequest)
	err := c.do(http.MethodPost, fmt.Sprintf("/api/employees/%d/leave", employeeID), input, request)
	if err != nil {
		return nil, err
	}

	return request, nil
}

func (c *Client) SetLeaveStatus(requestID int, status string) (*LeaveRequest, error) {
	request := new(LeaveRequest)
	err := c.do(http.MethodPatch, fmt.Sprintf("/api/leave/%d", requestID), map[string]string{"status": status}, request)
	if err != nil {
		return nil, err
	}

	return request, nil
}

type envelope struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

func (c *Client) do(method, path string, requestBody, result interface{}) error {
	var body io.Reader
	if requestBody != nil {
		jsonData, err := json.Marshal(requestBody)
		if err != nil {
			return fmt.Errorf("failed to marshal request body")
		}

		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}

	response, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("can't read response body: %w", err)
	}

	if response.StatusCode == http.StatusNoContent {
		return nil
	}

	var env envelope
	err = json.Unmarshal(raw, &env)
	if err != nil {
		return fmt.Errorf("invalid body response: %w", err)
	}

	if env.Error != nil {
		return fmt.Errorf("received unsuccessful status from hr api: %s", env.Error.Message)
	}

	if result != nil {
		err = json.Unmarshal(env.Result, result)
		if err != nil {
			return fmt.Errorf("invalid result payload: %w", err)
		}
	}

	return nil
}
