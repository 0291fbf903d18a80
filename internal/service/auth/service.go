package auth

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/leavedesk/leavedesk-backend-go/internal/domain/account"
	"github.com/leavedesk/leavedesk-backend-go/internal/domain/auth"
	"github.com/leavedesk/leavedesk-backend-go/internal/pkg/dateutil"
	"github.com/leavedesk/leavedesk-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	accounts    account.AccountRepository
	jwt         jwt.Service
	annualLimit int
}

func NewAuthService(accounts account.AccountRepository, jwtService jwt.Service, annualLimit int) auth.AuthService {
	return &AuthServiceImpl{
		accounts:    accounts,
		jwt:         jwtService,
		annualLimit: annualLimit,
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error) {
	hashed, err := hashPassword(req.Password)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	ident := account.Identity{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hashed,
	}

	var created account.Account
	switch req.Role {
	case account.RoleEmployee:
		joining, err := dateutil.ParseCalendarDate(req.JoiningDate)
		if err != nil {
			return auth.AuthResponse{}, err
		}
		emp, err := a.accounts.CreateEmployee(ctx, account.Employee{
			Identity:     ident,
			JoiningDate:  joining,
			LeaveBalance: a.annualLimit,
		})
		if err != nil {
			return auth.AuthResponse{}, err
		}
		created = emp
	default:
		adm, err := a.accounts.CreateAdmin(ctx, account.Admin{Identity: ident})
		if err != nil {
			return auth.AuthResponse{}, err
		}
		created = adm
	}

	token, _, err := a.jwt.GenerateAccessToken(created.Ident().ID, created.Ident().Email, created.Role())
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.AuthResponse{
		Token: token,
		User:  account.NewAccountView(created),
	}, nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, error) {
	acc, err := a.accounts.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if err == account.ErrAccountNotFound {
			return auth.AuthResponse{}, auth.ErrInvalidCredentials
		}
		return auth.AuthResponse{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.Ident().PasswordHash), []byte(req.Password)); err != nil {
		return auth.AuthResponse{}, auth.ErrInvalidCredentials
	}

	if !acc.Ident().IsActive() {
		return auth.AuthResponse{}, auth.ErrAccountInactive
	}

	token, _, err := a.jwt.GenerateAccessToken(acc.Ident().ID, acc.Ident().Email, acc.Role())
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.AuthResponse{
		Token: token,
		User:  account.NewAccountView(acc),
	}, nil
}
