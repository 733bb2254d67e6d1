package restapi

import (
	"encoding/json"
	"net/http"

	"hr-platform/internal/hr"

	"github.com/go-chi/chi/v5"
)

type leaveHandler struct {
	svc LeaveService
}

func newLeaveHandler(svc LeaveService) *leaveHandler {
	return &leaveHandler{svc: svc}
}

func (h *leaveHandler) handle(r chi.Router) {
	r.Post("/employees/{id}/leave", h.submit)
	r.Get("/employees/{id}/leave", h.listForEmployee)
	r.Get("/leave", h.list)
	r.Patch("/leave/{id}", h.setStatus)
}

type SubmitLeaveInput struct {
	LeaveType string  `json:"leave_type"`
	StartDate hr.Date `json:"start_date"`
	EndDate   hr.Date `json:"end_date"`
	Reason    string  `json:"reason"`
}

type SetLeaveStatusInput struct {
	Status string `json:"status"`
}

func (h *leaveHandler) submit(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req SubmitLeaveInput
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	request, err := h.svc.SubmitLeave(r.Context(), id, hr.SubmitLeaveInput{
		Type:      hr.LeaveType(req.LeaveType),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeCreated(w, request)
}

func (h *leaveHandler) listForEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	requests, err := h.svc.EmployeeLeave(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeResult(w, requests)
}

func (h *leaveHandler) list(w http.ResponseWriter, r *http.Request) {
	var status *hr.LeaveStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		parsed, err := hr.ParseLeaveStatus(raw)
		if err != nil {
			writeError(w, err.Error(), http.StatusBadRequest)
			return
		}

		status = &parsed
	}

	requests, err := h.svc.ListLeave(r.Context(), status)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeResult(w, requests)
}

func (h *leaveHandler) setStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req SetLeaveStatusInput
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	status, err := hr.ParseLeaveStatus(req.Status)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	request, err := h.svc.SetLeaveStatus(r.Context(), id, status)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeResult(w, request)
}
