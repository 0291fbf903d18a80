package account

import "context"

// EmployeeService covers the admin-facing provisioning surface. New
// employees always start with the full annual allowance.
type EmployeeService interface {
	AddEmployee(ctx context.Context, req AddEmployeeRequest) (AccountView, error)
	ListEmployees(ctx context.Context, filter EmployeeFilter) ([]AccountView, int64, error)
}
