package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/leavedesk/leavedesk-backend-go/internal/domain/account"
	"github.com/leavedesk/leavedesk-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	Add(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService account.EmployeeService
}

func NewEmployeeHandler(employeeService account.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// Add implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Add(w http.ResponseWriter, r *http.Request) {
	var addReq account.AddEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&addReq); err != nil {
		slog.Error("Add employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := addReq.Validate(); err != nil {
		slog.Error("Add employee validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	employee, err := h.employeeService.AddEmployee(r.Context(), addReq)
	if err != nil {
		slog.Error("Add employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee added successfully", response.Body{
		"employee": employee,
	})
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	employees, total, err := h.employeeService.ListEmployees(r.Context(), account.EmployeeFilter{
		Page:   page,
		Limit:  limit,
		Search: r.URL.Query().Get("search"),
	})
	if err != nil {
		slog.Error("List employees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, "Employees retrieved", response.Body{
		"employees":  employees,
		"pagination": response.NewEmployeePagination(page, limit, total),
	})
}
