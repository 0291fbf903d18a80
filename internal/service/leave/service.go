package leave

import (
	"context"
	"strings"
	"time"

	"github.com/leavedesk/leavedesk-backend-go/internal/domain/account"
	"github.com/leavedesk/leavedesk-backend-go/internal/domain/leave"
	"github.com/leavedesk/leavedesk-backend-go/internal/pkg/database"
	"github.com/leavedesk/leavedesk-backend-go/internal/pkg/dateutil"
)

type leaveServiceImpl struct {
	requests    leave.LeaveRequestRepository
	accounts    account.AccountRepository
	tx          database.TxManager
	annualLimit int
	now         func() time.Time
}

func NewLeaveService(
	requests leave.LeaveRequestRepository,
	accounts account.AccountRepository,
	tx database.TxManager,
	annualLimit int,
) leave.LeaveService {
	return &leaveServiceImpl{
		requests:    requests,
		accounts:    accounts,
		tx:          tx,
		annualLimit: annualLimit,
		now:         time.Now,
	}
}

// Apply validates and records a new Pending request. The balance is not
// touched here: days are only debited when an admin approves.
func (s *leaveServiceImpl) Apply(ctx context.Context, actor leave.Actor, req leave.ApplyLeaveRequest) (leave.LeaveRequestResponse, error) {
	targetID := actor.ID
	if req.EmployeeID != "" && req.EmployeeID != actor.ID {
		if !actor.IsAdmin() {
			return leave.LeaveRequestResponse{}, leave.ErrAccessDenied
		}
		targetID = req.EmployeeID
	}

	emp, err := s.accounts.GetEmployeeByID(ctx, targetID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return leave.LeaveRequestResponse{}, leave.ErrReasonRequired
	}

	start, err := dateutil.ParseCalendarDate(req.StartDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	end, err := dateutil.ParseCalendarDate(req.EndDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	days, err := dateutil.InclusiveDayCount(start, end)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if start.Before(dateutil.UTCMidnight(emp.JoiningDate)) {
		return leave.LeaveRequestResponse{}, leave.ErrStartBeforeJoining
	}

	if emp.LeaveBalance <= 0 {
		return leave.LeaveRequestResponse{}, leave.ErrNoLeaveBalance
	}

	pending, err := s.requests.ListByEmployeeAndStatus(ctx, targetID, leave.StatusPending)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	pendingDays := 0
	for _, p := range pending {
		pendingDays += p.DaysRequested
	}

	available := emp.LeaveBalance - pendingDays
	if available <= 0 {
		return leave.LeaveRequestResponse{}, leave.ErrAllBalancePending
	}
	if available < days {
		return leave.LeaveRequestResponse{}, &leave.InsufficientBalanceError{Available: available, Requested: days}
	}

	overlapping, err := s.requests.HasOverlapping(ctx, targetID, start, end)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if overlapping {
		return leave.LeaveRequestResponse{}, leave.ErrOverlappingLeave
	}

	created, err := s.requests.Create(ctx, leave.LeaveRequest{
		EmployeeID:    targetID,
		StartDate:     start,
		EndDate:       end,
		DaysRequested: days,
		Reason:        reason,
		Status:        leave.StatusPending,
		AppliedAt:     s.now(),
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	created.EmployeeName = &emp.Name
	created.EmployeeEmail = &emp.Email
	return leave.NewLeaveRequestResponse(created), nil
}

// Approve debits the balance and flips the request to Approved in one
// transaction. Both writes are guarded so concurrent approvals cannot double
// spend a day or decide the same request twice.
func (s *leaveServiceImpl) Approve(ctx context.Context, actor leave.Actor, requestID string) (leave.LeaveRequestResponse, int, error) {
	lr, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, 0, err
	}
	if lr.Status != leave.StatusPending {
		return leave.LeaveRequestResponse{}, 0, &leave.StateConflictError{Action: "approve", Current: lr.Status}
	}

	var newBalance int
	decidedAt := s.now()
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		nb, err := s.accounts.DebitLeaveBalance(txCtx, lr.EmployeeID, lr.DaysRequested)
		if err != nil {
			if err == account.ErrInsufficientBalance {
				emp, lookupErr := s.accounts.GetEmployeeByID(txCtx, lr.EmployeeID)
				if lookupErr == nil {
					return &leave.InsufficientBalanceError{Available: emp.LeaveBalance, Requested: lr.DaysRequested}
				}
			}
			return err
		}
		newBalance = nb

		if err := s.requests.MarkDecided(txCtx, requestID, leave.StatusApproved, actor.ID, decidedAt); err != nil {
			if err == leave.ErrLeaveRequestNotFound {
				return &leave.StateConflictError{Action: "approve", Current: lr.Status}
			}
			return err
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, 0, err
	}

	lr.Status = leave.StatusApproved
	lr.ReviewerID = &actor.ID
	lr.DecisionAt = &decidedAt
	return leave.NewLeaveRequestResponse(lr), newBalance, nil
}

// Reject is a pure status transition: the balance was never debited for a
// Pending request, so there is nothing to restore.
func (s *leaveServiceImpl) Reject(ctx context.Context, actor leave.Actor, requestID string) (leave.LeaveRequestResponse, error) {
	lr, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if lr.Status != leave.StatusPending {
		return leave.LeaveRequestResponse{}, &leave.StateConflictError{Action: "reject", Current: lr.Status}
	}

	decidedAt := s.now()
	if err := s.requests.MarkDecided(ctx, requestID, leave.StatusRejected, actor.ID, decidedAt); err != nil {
		if err == leave.ErrLeaveRequestNotFound {
			return leave.LeaveRequestResponse{}, &leave.StateConflictError{Action: "reject", Current: lr.Status}
		}
		return leave.LeaveRequestResponse{}, err
	}

	lr.Status = leave.StatusRejected
	lr.ReviewerID = &actor.ID
	lr.DecisionAt = &decidedAt
	return leave.NewLeaveRequestResponse(lr), nil
}

// Cancel undoes an Approved request that has not started yet and credits the
// days back, capped at the annual limit.
func (s *leaveServiceImpl) Cancel(ctx context.Context, actor leave.Actor, requestID string) (leave.LeaveRequestResponse, int, error) {
	lr, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, 0, err
	}

	if !actor.IsAdmin() && lr.EmployeeID != actor.ID {
		return leave.LeaveRequestResponse{}, 0, leave.ErrAccessDenied
	}
	if lr.Status != leave.StatusApproved {
		return leave.LeaveRequestResponse{}, 0, &leave.StateConflictError{Action: "cancel", Current: lr.Status}
	}

	today := dateutil.UTCMidnight(s.now())
	if !lr.StartDate.After(today) {
		return leave.LeaveRequestResponse{}, 0, leave.ErrLeaveInProgress
	}

	var newBalance int
	cancelledAt := s.now()
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.requests.MarkCancelled(txCtx, requestID, actor.ID, cancelledAt); err != nil {
			if err == leave.ErrLeaveRequestNotFound {
				return &leave.StateConflictError{Action: "cancel", Current: lr.Status}
			}
			return err
		}

		nb, err := s.accounts.CreditLeaveBalance(txCtx, lr.EmployeeID, lr.DaysRequested, s.annualLimit)
		if err != nil {
			return err
		}
		newBalance = nb
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, 0, err
	}

	lr.Status = leave.StatusCancelled
	lr.CancelledBy = &actor.ID
	lr.CancelledAt = &cancelledAt
	return leave.NewLeaveRequestResponse(lr), newBalance, nil
}

// List returns requests visible to the actor. Non-admins only ever see their
// own requests regardless of the filter they send.
func (s *leaveServiceImpl) List(ctx context.Context, actor leave.Actor, filter leave.ListFilter) ([]leave.LeaveRequestResponse, int64, error) {
	if !actor.IsAdmin() {
		filter.EmployeeID = &actor.ID
	}

	requests, total, err := s.requests.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, lr := range requests {
		responses = append(responses, leave.NewLeaveRequestResponse(lr))
	}
	return responses, total, nil
}

// GetBalance reports the stored balance as-is, next to what the approved
// history and pending requests say. The numbers are intentionally not
// cross-derived: a drifted balance must stay visible here so VerifyBalance
// has something to catch.
func (s *leaveServiceImpl) GetBalance(ctx context.Context, actor leave.Actor, employeeID string) (leave.EmployeeRef, leave.BalanceReport, error) {
	if !actor.IsAdmin() && actor.ID != employeeID {
		return leave.EmployeeRef{}, leave.BalanceReport{}, leave.ErrAccessDenied
	}

	emp, err := s.accounts.GetEmployeeByID(ctx, employeeID)
	if err != nil {
		return leave.EmployeeRef{}, leave.BalanceReport{}, err
	}

	approved, err := s.requests.ListByEmployeeAndStatus(ctx, employeeID, leave.StatusApproved)
	if err != nil {
		return leave.EmployeeRef{}, leave.BalanceReport{}, err
	}
	takenDays := 0
	for _, a := range approved {
		takenDays += a.DaysRequested
	}

	pending, err := s.requests.ListByEmployeeAndStatus(ctx, employeeID, leave.StatusPending)
	if err != nil {
		return leave.EmployeeRef{}, leave.BalanceReport{}, err
	}

	pendingDays := 0
	pendingResponses := make([]leave.LeaveRequestResponse, 0, len(pending))
	for _, p := range pending {
		pendingDays += p.DaysRequested
		pendingResponses = append(pendingResponses, leave.NewLeaveRequestResponse(p))
	}

	ref := leave.EmployeeRef{ID: emp.ID, Name: emp.Name, Email: emp.Email}
	report := leave.BalanceReport{
		Available:       emp.LeaveBalance,
		TotalTaken:      takenDays,
		TotalPending:    pendingDays,
		PendingRequests: pendingResponses,
	}
	return ref, report, nil
}

// VerifyBalance recomputes the balance from the approved history and
// overwrites the stored value when they diverge. Running it twice in a row
// is a no-op.
func (s *leaveServiceImpl) VerifyBalance(ctx context.Context, employeeID string) (leave.VerifyReport, error) {
	emp, err := s.accounts.GetEmployeeByID(ctx, employeeID)
	if err != nil {
		return leave.VerifyReport{}, err
	}

	approved, err := s.requests.ListByEmployeeAndStatus(ctx, employeeID, leave.StatusApproved)
	if err != nil {
		return leave.VerifyReport{}, err
	}

	daysTaken := 0
	for _, a := range approved {
		daysTaken += a.DaysRequested
	}

	// Clamp the recomputed value into the valid range before comparing, so
	// an over-committed history still converges on the first run.
	expected := account.ClampBalance(s.annualLimit-daysTaken, s.annualLimit)
	corrected := expected != emp.LeaveBalance
	if corrected {
		if err := s.accounts.SetLeaveBalance(ctx, employeeID, expected, s.annualLimit); err != nil {
			return leave.VerifyReport{}, err
		}
	}

	return leave.VerifyReport{
		Employee: leave.VerifyEmployee{
			Name:       emp.Name,
			Email:      emp.Email,
			OldBalance: emp.LeaveBalance,
			NewBalance: expected,
			Corrected:  corrected,
		},
		Leaves: leave.VerifyLeaves{
			TotalApproved:   len(approved),
			TotalDaysTaken:  daysTaken,
			ExpectedBalance: expected,
		},
	}, nil
}
