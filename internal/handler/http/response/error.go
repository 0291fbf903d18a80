package response

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/leavedesk/leavedesk-backend-go/internal/domain/account"
	"github.com/leavedesk/leavedesk-backend-go/internal/domain/auth"
	"github.com/leavedesk/leavedesk-backend-go/internal/domain/leave"
	"github.com/leavedesk/leavedesk-backend-go/internal/pkg/dateutil"
	"github.com/leavedesk/leavedesk-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, "Validation failed", validationErrs.ToMap())
		return
	}

	var insufficient *leave.InsufficientBalanceError
	if errors.As(err, &insufficient) {
		BadRequest(w, insufficient.Error(), map[string]string{
			"available": strconv.Itoa(insufficient.Available),
			"requested": strconv.Itoa(insufficient.Requested),
		})
		return
	}

	var conflict *leave.StateConflictError
	if errors.As(err, &conflict) {
		BadRequest(w, conflict.Error(), nil)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, err.Error())

	// Account domain errors
	case errors.Is(err, account.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, account.ErrAccountNotFound):
		NotFound(w, "Account not found")
	case errors.Is(err, account.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, account.ErrNotAnEmployee):
		BadRequest(w, "Account is not an employee", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAccessDenied):
		Forbidden(w, err.Error())
	case errors.Is(err, leave.ErrReasonRequired),
		errors.Is(err, leave.ErrStartBeforeJoining),
		errors.Is(err, leave.ErrNoLeaveBalance),
		errors.Is(err, leave.ErrAllBalancePending),
		errors.Is(err, leave.ErrOverlappingLeave),
		errors.Is(err, leave.ErrLeaveInProgress),
		errors.Is(err, dateutil.ErrInvalidFormat),
		errors.Is(err, dateutil.ErrInvalidRange):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
