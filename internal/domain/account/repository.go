package account

import "context"

// AccountRepository persists both account variants in one store.
//
// DebitLeaveBalance must re-check the freshest balance as part of the update
// (compare-and-set), not read-then-write: the balance is the single point of
// contention between concurrent approvals for the same employee.
type AccountRepository interface {
	CreateAdmin(ctx context.Context, admin Admin) (Admin, error)
	CreateEmployee(ctx context.Context, emp Employee) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Account, error)
	GetByID(ctx context.Context, id string) (Account, error)
	GetEmployeeByID(ctx context.Context, id string) (Employee, error)
	ListEmployees(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)

	// DebitLeaveBalance subtracts days only when the stored balance still
	// covers them, returning the new balance or ErrInsufficientBalance.
	DebitLeaveBalance(ctx context.Context, id string, days int) (int, error)
	// CreditLeaveBalance adds days back, capped at limit.
	CreditLeaveBalance(ctx context.Context, id string, days, limit int) (int, error)
	// SetLeaveBalance overwrites the stored balance, clamped to [0, limit].
	SetLeaveBalance(ctx context.Context, id string, balance, limit int) error
}
