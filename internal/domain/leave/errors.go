package leave

import (
	"errors"
	"fmt"
)

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrAccessDenied         = errors.New("access denied")
	ErrReasonRequired       = errors.New("reason for leave is required")
	ErrStartBeforeJoining   = errors.New("leave start date cannot be before joining date")
	ErrNoLeaveBalance       = errors.New("no available leave balance")
	ErrAllBalancePending    = errors.New("all leave balance is in pending requests")
	ErrOverlappingLeave     = errors.New("overlapping leave exists")
	ErrLeaveInProgress      = errors.New("cannot cancel leave that has started or is in progress")
)

// InsufficientBalanceError reports the balance arithmetic that failed so the
// client can act on it.
type InsufficientBalanceError struct {
	Available int
	Requested int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient leave balance: available %d, requested %d", e.Available, e.Requested)
}

// StateConflictError is returned when a lifecycle transition is attempted
// from the wrong status.
type StateConflictError struct {
	Action  string // "approve", "reject" or "cancel"
	Current Status
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("cannot %s leave request in status %s", e.Action, e.Current)
}
