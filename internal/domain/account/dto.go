package account

import (
	"time"

	"github.com/leavedesk/leavedesk-backend-go/internal/pkg/dateutil"
	"github.com/leavedesk/leavedesk-backend-go/internal/pkg/validator"
)

type EmployeeFilter struct {
	Page   int
	Limit  int
	Search string // case-insensitive match on name or email
}

type AddEmployeeRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	JoiningDate string `json:"joiningDate"`
	// leaveBalance is deliberately absent: clients never control it.
}

func (r *AddEmployeeRequest) Validate() error {
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
	if validator.IsEmpty(r.JoiningDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "joiningDate",
			Message: "joiningDate is required",
		})
	} else if _, ok := validator.IsValidDate(r.JoiningDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "joiningDate",
			Message: "joiningDate must be a valid YYYY-MM-DD date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AccountView is the serializable projection of either account variant.
// Employee-only fields stay nil for admins.
type AccountView struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	Status       Status    `json:"status"`
	JoiningDate  *string   `json:"joiningDate,omitempty"`
	LeaveBalance *int      `json:"leaveBalance,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func NewAccountView(a Account) AccountView {
	ident := a.Ident()
	view := AccountView{
		ID:        ident.ID,
		Name:      ident.Name,
		Email:     ident.Email,
		Role:      a.Role(),
		Status:    ident.Status,
		CreatedAt: ident.CreatedAt,
		UpdatedAt: ident.UpdatedAt,
	}
	if emp, ok := a.(Employee); ok {
		joined := dateutil.FormatCalendarDate(emp.JoiningDate)
		balance := emp.LeaveBalance
		view.JoiningDate = &joined
		view.LeaveBalance = &balance
	}
	return view
}
