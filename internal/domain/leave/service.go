package leave

import "context"

type LeaveService interface {
	Apply(ctx context.Context, actor Actor, req ApplyLeaveRequest) (LeaveRequestResponse, error)
	Approve(ctx context.Context, actor Actor, requestID string) (LeaveRequestResponse, int, error)
	Reject(ctx context.Context, actor Actor, requestID string) (LeaveRequestResponse, error)
	Cancel(ctx context.Context, actor Actor, requestID string) (LeaveRequestResponse, int, error)
	List(ctx context.Context, actor Actor, filter ListFilter) ([]LeaveRequestResponse, int64, error)
	GetBalance(ctx context.Context, actor Actor, employeeID string) (EmployeeRef, BalanceReport, error)
	VerifyBalance(ctx context.Context, employeeID string) (VerifyReport, error)
}
