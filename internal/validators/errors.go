package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID         = errors.New("invalid record id")
	ErrInvalidUserID     = errors.New("invalid user ID")
	ErrEmptyName         = errors.New("name is required")
	ErrInvalidGoal       = errors.New("goal must be positive")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrAmountExceedsGoal = errors.New("amount spent cannot exceed goal")
	ErrEmptyBudgetName   = errors.New("budget name is required")
	ErrEmptyMessage      = errors.New("message is required")
	ErrEmptyLogin        = errors.New("login is required")
	ErrEmptyPassword     = errors.New("password is required")
)
