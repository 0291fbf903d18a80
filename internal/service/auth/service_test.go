package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/leavedesk/leavedesk-backend-go/internal/domain/account"
	"github.com/leavedesk/leavedesk-backend-go/internal/domain/auth"
	"github.com/leavedesk/leavedesk-backend-go/internal/pkg/jwt"
)

type fakeAccountRepo struct {
	byEmail map[string]account.Account
	nextID  int
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byEmail: map[string]account.Account{}}
}

func (r *fakeAccountRepo) CreateAdmin(_ context.Context, admin account.Admin) (account.Admin, error) {
	if _, exists := r.byEmail[admin.Email]; exists {
		return account.Admin{}, account.ErrEmailExists
	}
	r.nextID++
	admin.ID = "acc-" + time.Now().Format("150405") + "-" + admin.Email
	admin.Status = account.StatusActive
	r.byEmail[admin.Email] = admin
	return admin, nil
}

func (r *fakeAccountRepo) CreateEmployee(_ context.Context, emp account.Employee) (account.Employee, error) {
	if _, exists := r.byEmail[emp.Email]; exists {
		return account.Employee{}, account.ErrEmailExists
	}
	r.nextID++
	emp.ID = "acc-" + emp.Email
	emp.Status = account.StatusActive
	r.byEmail[emp.Email] = emp
	return emp, nil
}

func (r *fakeAccountRepo) GetByEmail(_ context.Context, email string) (account.Account, error) {
	a, ok := r.byEmail[email]
	if !ok {
		return nil, account.ErrAccountNotFound
	}
	return a, nil
}

func (r *fakeAccountRepo) GetByID(_ context.Context, id string) (account.Account, error) {
	for _, a := range r.byEmail {
		if a.Ident().ID == id {
			return a, nil
		}
	}
	return nil, account.ErrAccountNotFound
}

func (r *fakeAccountRepo) GetEmployeeByID(ctx context.Context, id string) (account.Employee, error) {
	a, err := r.GetByID(ctx, id)
	if err != nil {
		return account.Employee{}, account.ErrEmployeeNotFound
	}
	emp, ok := a.(account.Employee)
	if !ok {
		return account.Employee{}, account.ErrNotAnEmployee
	}
	return emp, nil
}

func (r *fakeAccountRepo) ListEmployees(_ context.Context, _ account.EmployeeFilter) ([]account.Employee, int64, error) {
	return nil, 0, nil
}

func (r *fakeAccountRepo) DebitLeaveBalance(_ context.Context, _ string, _ int) (int, error) {
	return 0, account.ErrInsufficientBalance
}

func (r *fakeAccountRepo) CreditLeaveBalance(_ context.Context, _ string, _, _ int) (int, error) {
	return 0, account.ErrEmployeeNotFound
}

func (r *fakeAccountRepo) SetLeaveBalance(_ context.Context, _ string, _, _ int) error {
	return account.ErrEmployeeNotFound
}

func newTestService(repo *fakeAccountRepo) auth.AuthService {
	return NewAuthService(repo, jwt.NewJWTService("test-secret", "15m"), 20)
}

func TestRegister_Employee(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newTestService(repo)

	resp, err := svc.Register(context.Background(), auth.RegisterRequest{
		Name:        "Jordan Lee",
		Email:       "Jordan@Example.com",
		Password:    "secret123",
		Role:        account.RoleEmployee,
		JoiningDate: "2024-01-15",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, account.RoleEmployee, resp.User.Role)
	assert.Equal(t, "jordan@example.com", resp.User.Email)
	require.NotNil(t, resp.User.LeaveBalance)
	assert.Equal(t, 20, *resp.User.LeaveBalance)
	require.NotNil(t, resp.User.JoiningDate)
	assert.Equal(t, "2024-01-15", *resp.User.JoiningDate)
}

func TestRegister_Admin(t *testing.T) {
	svc := newTestService(newFakeAccountRepo())

	resp, err := svc.Register(context.Background(), auth.RegisterRequest{
		Name:     "Sam Admin",
		Email:    "sam@example.com",
		Password: "secret123",
		Role:     account.RoleAdmin,
	})
	require.NoError(t, err)

	assert.Equal(t, account.RoleAdmin, resp.User.Role)
	assert.Nil(t, resp.User.LeaveBalance)
	assert.Nil(t, resp.User.JoiningDate)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newTestService(newFakeAccountRepo())

	req := auth.RegisterRequest{
		Name:     "Sam Admin",
		Email:    "sam@example.com",
		Password: "secret123",
		Role:     account.RoleAdmin,
	}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, account.ErrEmailExists)
}

func TestLogin(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		Name:        "Jordan Lee",
		Email:       "jordan@example.com",
		Password:    "secret123",
		Role:        account.RoleEmployee,
		JoiningDate: "2024-01-15",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "JORDAN@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "jordan@example.com", resp.User.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestService(newFakeAccountRepo())

	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		Name:     "Sam Admin",
		Email:    "sam@example.com",
		Password: "secret123",
		Role:     account.RoleAdmin,
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), auth.LoginRequest{
		Email:    "sam@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestService(newFakeAccountRepo())

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_InactiveAccount(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newTestService(repo)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	repo.byEmail["gone@example.com"] = account.Admin{Identity: account.Identity{
		ID:           "acc-gone",
		Email:        "gone@example.com",
		PasswordHash: string(hash),
		Status:       account.StatusInactive,
	}}

	_, err = svc.Login(context.Background(), auth.LoginRequest{
		Email:    "gone@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, auth.ErrAccountInactive)
}
