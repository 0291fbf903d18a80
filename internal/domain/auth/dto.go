package auth

import (
	"github.com/leavedesk/leavedesk-backend-go/internal/domain/account"
	"github.com/leavedesk/leavedesk-backend-go/internal/pkg/validator"
)

type RegisterRequest struct {
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Password    string       `json:"password"`
	Role        account.Role `json:"role"`
	JoiningDate string       `json:"joiningDate,omitempty"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		})
	}

	switch r.Role {
	case account.RoleAdmin:
		// admins carry no leave semantics, joiningDate is ignored
	case account.RoleEmployee:
		if validator.IsEmpty(r.JoiningDate) {
			errs = append(errs, validator.ValidationError{
				Field:   "joiningDate",
				Message: "joiningDate is required for employees",
			})
		} else if _, ok := validator.IsValidDate(r.JoiningDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "joiningDate",
				Message: "joiningDate must be a valid YYYY-MM-DD date",
			})
		}
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be Admin or Employee",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AuthResponse struct {
	Token string              `json:"token"`
	User  account.AccountView `json:"user"`
}
