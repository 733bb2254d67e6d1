package restapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hr-platform/internal/hr"

	"github.com/go-chi/chi/v5"
)

type employeeHandler struct {
	svc EmployeeService
}

func newEmployeeHandler(svc EmployeeService) *employeeHandler {
	return &employeeHandler{svc: svc}
}

func (h *employeeHandler) handle(r chi.Router) {
	r.Get("/employees", h.list)
	r.Post("/employees", h.create)
	r.Get("/employees/{id}", h.get)
	r.Put("/employees/{id}", h.update)
	r.Delete("/employees/{id}", h.delete)
	r.Get("/employees/{id}/leave-balance", h.leaveBalance)
}

type EmployeeInput struct {
	Name       string `json:"name"`
	Position   string `json:"position"`
	Department string `json:"department"`
}

func (in EmployeeInput) toDomain() hr.EmployeeInput {
	return hr.EmployeeInput{
		Name:       in.Name,
		Position:   in.Position,
		Department: in.Department,
	}
}

func (h *employeeHandler) list(w http.ResponseWriter, r *http.Request) {
	employees, err := h.svc.ListEmployees(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeResult(w, employees)
}

func (h *employeeHandler) create(w http.ResponseWriter, r *http.Request) {
	var req EmployeeInput
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	employee, err := h.svc.CreateEmployee(r.Context(), req.toDomain())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeCreated(w, employee)
}

func (h *employeeHandler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	employee, err := h.svc.GetEmployee(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeResult(w, employee)
}

func (h *employeeHandler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req EmployeeInput
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	employee, err := h.svc.UpdateEmployee(r.Context(), id, req.toDomain())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeResult(w, employee)
}

func (h *employeeHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	err := h.svc.DeleteEmployee(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeNoContent(w)
}

func (h *employeeHandler) leaveBalance(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	balances, err := h.svc.LeaveBalances(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeResult(w, balances)
}

func idParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}

	return id, true
}
