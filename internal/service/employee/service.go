package employee

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/leavedesk/leavedesk-backend-go/internal/domain/account"
	"github.com/leavedesk/leavedesk-backend-go/internal/pkg/dateutil"
)

type EmployeeServiceImpl struct {
	accounts    account.AccountRepository
	annualLimit int
}

func NewEmployeeService(accounts account.AccountRepository, annualLimit int) account.EmployeeService {
	return &EmployeeServiceImpl{
		accounts:    accounts,
		annualLimit: annualLimit,
	}
}

// AddEmployee implements account.EmployeeService. The opening balance is
// always the annual limit; clients never control it.
func (s *EmployeeServiceImpl) AddEmployee(ctx context.Context, req account.AddEmployeeRequest) (account.AccountView, error) {
	joining, err := dateutil.ParseCalendarDate(req.JoiningDate)
	if err != nil {
		return account.AccountView{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return account.AccountView{}, fmt.Errorf("failed to hash password: %w", err)
	}

	emp, err := s.accounts.CreateEmployee(ctx, account.Employee{
		Identity: account.Identity{
			Name:         strings.TrimSpace(req.Name),
			Email:        strings.ToLower(strings.TrimSpace(req.Email)),
			PasswordHash: string(hash),
		},
		JoiningDate:  joining,
		LeaveBalance: s.annualLimit,
	})
	if err != nil {
		return account.AccountView{}, err
	}

	return account.NewAccountView(emp), nil
}

// ListEmployees implements account.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter account.EmployeeFilter) ([]account.AccountView, int64, error) {
	employees, total, err := s.accounts.ListEmployees(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	views := make([]account.AccountView, 0, len(employees))
	for _, emp := range employees {
		views = append(views, account.NewAccountView(emp))
	}
	return views, total, nil
}
