package leave

import (
	"time"

	"github.com/leavedesk/leavedesk-backend-go/internal/domain/account"
	"github.com/leavedesk/leavedesk-backend-go/internal/pkg/dateutil"
)

// Actor is the authenticated principal an operation runs as, extracted from
// the access token at the boundary.
type Actor struct {
	ID   string
	Role account.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == account.RoleAdmin
}

type ApplyLeaveRequest struct {
	// EmployeeID targets another employee; admins only. Empty means self.
	EmployeeID string `json:"employeeId,omitempty"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Reason     string `json:"reason"`
}

type ListFilter struct {
	Page       int
	Limit      int
	Status     *Status
	EmployeeID *string
}

// EmployeeRef is the read-side join of the owning employee, embedded in
// responses instead of the raw foreign key.
type EmployeeRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LeaveRequestResponse is the composed wire view of a request. Dates go out
// in the same YYYY-MM-DD form they came in.
type LeaveRequestResponse struct {
	ID            string       `json:"id"`
	Employee      *EmployeeRef `json:"employee,omitempty"`
	StartDate     string       `json:"startDate"`
	EndDate       string       `json:"endDate"`
	DaysRequested int          `json:"daysRequested"`
	Reason        string       `json:"reason"`
	Status        Status       `json:"status"`
	AppliedAt     time.Time    `json:"appliedAt"`
	DecisionAt    *time.Time   `json:"decisionAt,omitempty"`
	ReviewerID    *string      `json:"reviewerId,omitempty"`
	CancelledAt   *time.Time   `json:"cancelledAt,omitempty"`
	CancelledBy   *string      `json:"cancelledBy,omitempty"`
}

func NewLeaveRequestResponse(lr LeaveRequest) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:            lr.ID,
		StartDate:     dateutil.FormatCalendarDate(lr.StartDate),
		EndDate:       dateutil.FormatCalendarDate(lr.EndDate),
		DaysRequested: lr.DaysRequested,
		Reason:        lr.Reason,
		Status:        lr.Status,
		AppliedAt:     lr.AppliedAt,
		DecisionAt:    lr.DecisionAt,
		ReviewerID:    lr.ReviewerID,
		CancelledAt:   lr.CancelledAt,
		CancelledBy:   lr.CancelledBy,
	}
	if lr.EmployeeName != nil && lr.EmployeeEmail != nil {
		resp.Employee = &EmployeeRef{
			ID:    lr.EmployeeID,
			Name:  *lr.EmployeeName,
			Email: *lr.EmployeeEmail,
		}
	}
	return resp
}

// BalanceReport summarizes one employee's accounting state.
type BalanceReport struct {
	Available       int                    `json:"available"`
	TotalTaken      int                    `json:"totalTaken"`
	TotalPending    int                    `json:"totalPending"`
	PendingRequests []LeaveRequestResponse `json:"pendingRequests"`
}

// VerifyReport is the outcome of a balance reconciliation run.
type VerifyReport struct {
	Employee VerifyEmployee `json:"employee"`
	Leaves   VerifyLeaves   `json:"leaves"`
}

type VerifyEmployee struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	OldBalance int    `json:"oldBalance"`
	NewBalance int    `json:"newBalance"`
	Corrected  bool   `json:"corrected"`
}

type VerifyLeaves struct {
	TotalApproved   int `json:"totalApproved"`
	TotalDaysTaken  int `json:"totalDaysTaken"`
	ExpectedBalance int `json:"expectedBalance"`
}
