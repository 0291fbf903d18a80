package account

import "time"

type Role string

const (
	RoleAdmin    Role = "Admin"    // Reviews and provisions; no leave semantics
	RoleEmployee Role = "Employee" // Owns a leave balance and leave requests
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Identity is the part of an account shared by every role: who they are and
// how they authenticate. The password hash is never serialized.
type Identity struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (i Identity) IsActive() bool {
	return i.Status == StatusActive
}

// Account is implemented by the two account variants. Fields that only make
// sense for one role (joining date, leave balance) live on that variant
// instead of being conditionally-required on a shared record.
type Account interface {
	Ident() Identity
	Role() Role
}

type Admin struct {
	Identity
}

func (a Admin) Ident() Identity { return a.Identity }
func (Admin) Role() Role        { return RoleAdmin }

type Employee struct {
	Identity
	JoiningDate  time.Time // leave may not start before this date
	LeaveBalance int       // always within [0, annual limit]
}

func (e Employee) Ident() Identity { return e.Identity }
func (Employee) Role() Role        { return RoleEmployee }

// ClampBalance forces b into the valid [0, limit] range. Applied on every
// balance persist so a bad write can never push an account out of range.
func ClampBalance(b, limit int) int {
	if b < 0 {
		return 0
	}
	if b > limit {
		return limit
	}
	return b
}
