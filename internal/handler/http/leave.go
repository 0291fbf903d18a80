package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/leavedesk/leavedesk-backend-go/internal/domain/leave"
	"github.com/leavedesk/leavedesk-backend-go/internal/handler/http/response"
	"github.com/leavedesk/leavedesk-backend-go/internal/pkg/validator"
)

type LeaveHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	VerifyBalance(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// requestIDParam pulls the {id} path param, rejecting anything that cannot
// be a row ID before it reaches the database.
func requestIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Invalid leave request id", nil)
		return "", false
	}
	return id, true
}

func employeeIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "employeeId")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Invalid employee id", nil)
		return "", false
	}
	return id, true
}

// Apply implements LeaveHandler.
func (h *LeaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var applyReq leave.ApplyLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&applyReq); err != nil {
		slog.Error("Apply decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	lr, err := h.leaveService.Apply(r.Context(), actor, applyReq)
	if err != nil {
		slog.Error("Apply service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", response.Body{
		"leaveRequest": lr,
	})
}

// List implements LeaveHandler.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	page, limit := parsePagination(r)
	filter := leave.ListFilter{Page: page, Limit: limit}

	if raw := r.URL.Query().Get("status"); raw != "" {
		status, ok := leave.NormalizeStatus(raw)
		if !ok {
			response.BadRequest(w, "Invalid status filter", nil)
			return
		}
		filter.Status = &status
	}
	if employeeID := r.URL.Query().Get("employeeId"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}

	leaves, total, err := h.leaveService.List(r.Context(), actor, filter)
	if err != nil {
		slog.Error("List leaves service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, "Leave requests retrieved", response.Body{
		"leaves":     leaves,
		"pagination": response.NewPagination(page, limit, total),
	})
}

// Approve implements LeaveHandler.
func (h *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id, ok := requestIDParam(w, r)
	if !ok {
		return
	}

	lr, newBalance, err := h.leaveService.Approve(r.Context(), actor, id)
	if err != nil {
		slog.Error("Approve service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, "Leave request approved", response.Body{
		"leaveRequest": lr,
		"newBalance":   newBalance,
	})
}

// Reject implements LeaveHandler.
func (h *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id, ok := requestIDParam(w, r)
	if !ok {
		return
	}

	lr, err := h.leaveService.Reject(r.Context(), actor, id)
	if err != nil {
		slog.Error("Reject service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, "Leave request rejected", response.Body{
		"leaveRequest": lr,
	})
}

// Cancel implements LeaveHandler.
func (h *LeaveHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id, ok := requestIDParam(w, r)
	if !ok {
		return
	}

	lr, newBalance, err := h.leaveService.Cancel(r.Context(), actor, id)
	if err != nil {
		slog.Error("Cancel service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, "Leave request cancelled", response.Body{
		"leaveRequest": lr,
		"newBalance":   newBalance,
	})
}

// GetBalance implements LeaveHandler.
func (h *LeaveHandlerImpl) GetBalance(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employeeID, ok := employeeIDParam(w, r)
	if !ok {
		return
	}

	employee, report, err := h.leaveService.GetBalance(r.Context(), actor, employeeID)
	if err != nil {
		slog.Error("GetBalance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, "Leave balance retrieved", response.Body{
		"employee":     employee,
		"leaveBalance": report,
	})
}

// VerifyBalance implements LeaveHandler.
func (h *LeaveHandlerImpl) VerifyBalance(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDParam(w, r)
	if !ok {
		return
	}

	report, err := h.leaveService.VerifyBalance(r.Context(), employeeID)
	if err != nil {
		slog.Error("VerifyBalance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	message := "Leave balance is consistent"
	if report.Employee.Corrected {
		message = "Leave balance corrected"
	}
	response.OK(w, message, response.Body{
		"employee": report.Employee,
		"leaves":   report.Leaves,
	})
}
