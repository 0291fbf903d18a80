package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository - interface for the leave_requests store.
//
// MarkDecided and MarkCancelled are guarded transitions: they only apply
// when the row is still in the expected source status and report
// ErrLeaveRequestNotFound otherwise, so a concurrent reviewer cannot decide
// the same request twice.
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter ListFilter) ([]LeaveRequest, int64, error)
	ListByEmployeeAndStatus(ctx context.Context, employeeID string, status Status) ([]LeaveRequest, error)
	HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
	MarkDecided(ctx context.Context, id string, status Status, reviewerID string, at time.Time) error
	MarkCancelled(ctx context.Context, id string, cancelledBy string, at time.Time) error
}
