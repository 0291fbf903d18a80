package leave

import (
	"strings"
	"time"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusRejected  Status = "Rejected"
	StatusCancelled Status = "Cancelled"
)

// NormalizeStatus maps a case-insensitive client value onto a known status.
func NormalizeStatus(s string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return StatusPending, true
	case "approved":
		return StatusApproved, true
	case "rejected":
		return StatusRejected, true
	case "cancelled":
		return StatusCancelled, true
	default:
		return "", false
	}
}

// LeaveRequest entity. DaysRequested is computed once at creation from the
// inclusive date range and intentionally never recomputed afterwards: stored
// counts are a snapshot of the rules in force when the request was made.
type LeaveRequest struct {
	ID         string
	EmployeeID string

	StartDate time.Time // UTC midnight, inclusive
	EndDate   time.Time // UTC midnight, inclusive

	DaysRequested int
	Reason        string
	Status        Status

	AppliedAt   time.Time
	DecisionAt  *time.Time
	ReviewerID  *string
	CancelledAt *time.Time
	CancelledBy *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Join fields (for responses)
	EmployeeName  *string
	EmployeeEmail *string
}

// Overlaps reports whether the request's inclusive range shares at least one
// calendar day with [start, end].
func (lr LeaveRequest) Overlaps(start, end time.Time) bool {
	return !lr.StartDate.After(end) && !lr.EndDate.Before(start)
}

// Open reports whether the request still blocks its date range: only Pending
// and Approved requests count against overlap and balance checks.
func (lr LeaveRequest) Open() bool {
	return lr.Status == StatusPending || lr.Status == StatusApproved
}
