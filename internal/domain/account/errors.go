package account

import "errors"

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrNotAnEmployee       = errors.New("account is not an employee")
	ErrEmailExists         = errors.New("account with this email already exists")
	ErrInsufficientBalance = errors.New("insufficient leave balance")
)
