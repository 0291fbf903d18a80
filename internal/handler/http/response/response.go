package response

import (
	"encoding/json"
	"net/http"
)

// Body is the flat JSON payload every endpoint writes: a message plus
// operation-specific fields at the top level.
type Body map[string]interface{}

type errorBody struct {
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// Pagination is the shared page descriptor for list endpoints.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	Total       int64 `json:"total"`
	Limit       int   `json:"limit"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// EmployeePagination mirrors Pagination with the employee directory's
// historical total field name.
type EmployeePagination struct {
	CurrentPage    int   `json:"currentPage"`
	TotalPages     int   `json:"totalPages"`
	TotalEmployees int64 `json:"totalEmployees"`
	Limit          int   `json:"limit"`
	HasNextPage    bool  `json:"hasNextPage"`
	HasPrevPage    bool  `json:"hasPrevPage"`
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}

func NewPagination(page, limit int, total int64) Pagination {
	pages := totalPages(total, limit)
	return Pagination{
		CurrentPage: page,
		TotalPages:  pages,
		Total:       total,
		Limit:       limit,
		HasNextPage: page < pages,
		HasPrevPage: page > 1 && total > 0,
	}
}

func NewEmployeePagination(page, limit int, total int64) EmployeePagination {
	p := NewPagination(page, limit, total)
	return EmployeePagination{
		CurrentPage:    p.CurrentPage,
		TotalPages:     p.TotalPages,
		TotalEmployees: p.Total,
		Limit:          p.Limit,
		HasNextPage:    p.HasNextPage,
		HasPrevPage:    p.HasPrevPage,
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		_ = json.NewEncoder(w).Encode(errorBody{Message: "failed to encode response"})
	}
}

// Success responses

func OK(w http.ResponseWriter, message string, fields Body) {
	writeJSON(w, http.StatusOK, withMessage(message, fields))
}

func Created(w http.ResponseWriter, message string, fields Body) {
	writeJSON(w, http.StatusCreated, withMessage(message, fields))
}

func withMessage(message string, fields Body) Body {
	body := Body{"message": message}
	for k, v := range fields {
		body[k] = v
	}
	return body
}

// Error responses

func BadRequest(w http.ResponseWriter, message string, details map[string]string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Message: message, Details: details})
}

func Unauthorized(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnauthorized, errorBody{Message: message})
}

func Forbidden(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusForbidden, errorBody{Message: message})
}

func NotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, errorBody{Message: message})
}

func Conflict(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusConflict, errorBody{Message: message})
}

func InternalServerError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusInternalServerError, errorBody{Message: message})
}
