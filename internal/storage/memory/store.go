package memory

import (
	"context"
	"sort"
	"sync"

	"hr-platform/internal/hr"
)

// Store keeps all state in process memory. It is the default backend and the
// one used by tests.
type Store struct {
	mu sync.RWMutex

	employees map[int]hr.Employee
	requests  map[int]hr.LeaveRequest
}

func NewStore() *Store {
	return &Store{
		employees: make(map[int]hr.Employee),
		requests:  make(map[int]hr.LeaveRequest),
	}
}

// Seed loads fixtures with their pre-assigned IDs. Later inserts continue
// after the highest seeded ID.
func (s *Store) Seed(employees []hr.Employee, requests []hr.LeaveRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range employees {
		s.employees[e.ID] = e
	}
	for _, r := range requests {
		s.requests[r.ID] = r
	}
}

func (s *Store) ListEmployees(_ context.Context) ([]hr.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	employees := make([]hr.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		employees = append(employees, e)
	}

	sort.Slice(employees, func(i, j int) bool {
		return employees[i].ID < employees[j].ID
	})

	return employees, nil
}

func (s *Store) GetEmployee(_ context.Context, id int) (*hr.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, found := s.employees[id]
	if !found {
		return nil, hr.ErrEmployeeNotFound
	}

	return &e, nil
}

func (s *Store) CreateEmployee(_ context.Context, employee *hr.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	employee.ID = nextID(s.employees)
	s.employees[employee.ID] = *employee

	return nil
}

func (s *Store) UpdateEmployee(_ context.Context, employee *hr.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, found := s.employees[employee.ID]
	if !found {
		return hr.ErrEmployeeNotFound
	}

	s.employees[employee.ID] = *employee

	return nil
}

func (s *Store) DeleteEmployee(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, found := s.employees[id]
	if !found {
		return hr.ErrEmployeeNotFound
	}

	delete(s.employees, id)

	return nil
}

func (s *Store) ListLeaveRequests(_ context.Context, filter hr.LeaveFilter) ([]hr.LeaveRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	requests := make([]hr.LeaveRequest, 0, len(s.requests))
	for _, r := range s.requests {
		if filter.Status != nil && r.Status != *filter.Status {
			continue
		}
		if filter.EmployeeID != nil && r.EmployeeID != *filter.EmployeeID {
			continue
		}

		requests = append(requests, r)
	}

	sort.Slice(requests, func(i, j int) bool {
		return requests[i].ID < requests[j].ID
	})

	return requests, nil
}

func (s *Store) GetLeaveRequest(_ context.Context, id int) (*hr.LeaveRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, found := s.requests[id]
	if !found {
		return nil, hr.ErrLeaveRequestNotFound
	}

	return &r, nil
}

func (s *Store) CreateLeaveRequest(_ context.Context, request *hr.LeaveRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	request.ID = nextID(s.requests)
	s.requests[request.ID] = *request

	return nil
}

func (s *Store) UpdateLeaveRequest(_ context.Context, request *hr.LeaveRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, found := s.requests[request.ID]
	if !found {
		return hr.ErrLeaveRequestNotFound
	}

	s.requests[request.ID] = *request

	return nil
}

func nextID[V any](m map[int]V) int {
	max := 0
	for id := range m {
		if id > max {
			max = id
		}
	}

	return max + 1
}
