package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/leavedesk/leavedesk-backend-go/internal/domain/account"
	"github.com/leavedesk/leavedesk-backend-go/internal/pkg/database"
)

type accountRepositoryImpl struct {
	db *database.DB
}

func NewAccountRepository(db *database.DB) account.AccountRepository {
	return &accountRepositoryImpl{db: db}
}

const accountColumns = `id, name, email, password_hash, role, joining_date, leave_balance, status, created_at, updated_at`

// accountRow carries the raw scan of one accounts row before it is shaped
// into the Admin or Employee variant.
type accountRow struct {
	ident        account.Identity
	role         account.Role
	joiningDate  *time.Time
	leaveBalance *int
}

func scanAccount(row pgx.Row) (accountRow, error) {
	var r accountRow
	err := row.Scan(
		&r.ident.ID,
		&r.ident.Name,
		&r.ident.Email,
		&r.ident.PasswordHash,
		&r.role,
		&r.joiningDate,
		&r.leaveBalance,
		&r.ident.Status,
		&r.ident.CreatedAt,
		&r.ident.UpdatedAt,
	)
	return r, err
}

func (r accountRow) toAccount() account.Account {
	if r.role == account.RoleEmployee {
		emp := account.Employee{Identity: r.ident}
		if r.joiningDate != nil {
			emp.JoiningDate = *r.joiningDate
		}
		if r.leaveBalance != nil {
			emp.LeaveBalance = *r.leaveBalance
		}
		return emp
	}
	return account.Admin{Identity: r.ident}
}

func (r *accountRepositoryImpl) CreateAdmin(ctx context.Context, admin account.Admin) (account.Admin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO accounts (id, name, email, password_hash, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	admin.Status = account.StatusActive
	err := q.QueryRow(ctx, query,
		uuid.NewString(), admin.Name, strings.ToLower(admin.Email), admin.PasswordHash,
		account.RoleAdmin, admin.Status,
	).Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return account.Admin{}, account.ErrEmailExists
		}
		return account.Admin{}, err
	}

	return admin, nil
}

func (r *accountRepositoryImpl) CreateEmployee(ctx context.Context, emp account.Employee) (account.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO accounts (id, name, email, password_hash, role, joining_date, leave_balance, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	emp.Status = account.StatusActive
	err := q.QueryRow(ctx, query,
		uuid.NewString(), emp.Name, strings.ToLower(emp.Email), emp.PasswordHash,
		account.RoleEmployee, emp.JoiningDate, emp.LeaveBalance, emp.Status,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return account.Employee{}, account.ErrEmailExists
		}
		return account.Employee{}, err
	}

	return emp, nil
}

func (r *accountRepositoryImpl) GetByEmail(ctx context.Context, email string) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM accounts WHERE email = $1`, accountColumns)

	row, err := scanAccount(q.QueryRow(ctx, query, strings.ToLower(email)))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, account.ErrAccountNotFound
		}
		return nil, err
	}

	return row.toAccount(), nil
}

func (r *accountRepositoryImpl) GetByID(ctx context.Context, id string) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM accounts WHERE id = $1`, accountColumns)

	row, err := scanAccount(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, account.ErrAccountNotFound
		}
		return nil, err
	}

	return row.toAccount(), nil
}

func (r *accountRepositoryImpl) GetEmployeeByID(ctx context.Context, id string) (account.Employee, error) {
	acc, err := r.GetByID(ctx, id)
	if err != nil {
		if err == account.ErrAccountNotFound {
			return account.Employee{}, account.ErrEmployeeNotFound
		}
		return account.Employee{}, err
	}

	emp, ok := acc.(account.Employee)
	if !ok {
		return account.Employee{}, account.ErrNotAnEmployee
	}
	return emp, nil
}

func (r *accountRepositoryImpl) ListEmployees(ctx context.Context, filter account.EmployeeFilter) ([]account.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := "WHERE role = $1"
	args := []interface{}{account.RoleEmployee}
	argIdx := 2

	if filter.Search != "" {
		whereClause += fmt.Sprintf(" AND (name ILIKE $%d OR email ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM accounts " + whereClause
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 10
	}
	offset := (filter.Page - 1) * filter.Limit

	query := fmt.Sprintf(`
		SELECT %s FROM accounts
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, accountColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []account.Employee
	for rows.Next() {
		row, err := scanAccount(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		if emp, ok := row.toAccount().(account.Employee); ok {
			employees = append(employees, emp)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return employees, total, nil
}

func (r *accountRepositoryImpl) DebitLeaveBalance(ctx context.Context, id string, days int) (int, error) {
	q := GetQuerier(ctx, r.db)

	// Compare-and-set: the balance guard runs inside the UPDATE so a stale
	// read can never over-debit under concurrent approvals.
	query := `
		UPDATE accounts
		SET leave_balance = leave_balance - $2, updated_at = NOW()
		WHERE id = $1 AND role = $3 AND leave_balance >= $2
		RETURNING leave_balance
	`

	var newBalance int
	err := q.QueryRow(ctx, query, id, days, account.RoleEmployee).Scan(&newBalance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, account.ErrInsufficientBalance
		}
		return 0, err
	}

	return newBalance, nil
}

func (r *accountRepositoryImpl) CreditLeaveBalance(ctx context.Context, id string, days, limit int) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE accounts
		SET leave_balance = LEAST(leave_balance + $2, $3), updated_at = NOW()
		WHERE id = $1 AND role = $4
		RETURNING leave_balance
	`

	var newBalance int
	err := q.QueryRow(ctx, query, id, days, limit, account.RoleEmployee).Scan(&newBalance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, account.ErrEmployeeNotFound
		}
		return 0, err
	}

	return newBalance, nil
}

func (r *accountRepositoryImpl) SetLeaveBalance(ctx context.Context, id string, balance, limit int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE accounts
		SET leave_balance = $2, updated_at = NOW()
		WHERE id = $1 AND role = $3
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, account.ClampBalance(balance, limit), account.RoleEmployee).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return account.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to set leave balance for account %s: %w", id, err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
