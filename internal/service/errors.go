package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenIsExpired          = errors.New("token is expired")
	ErrNotAuthenticated        = errors.New("not authenticated")

	ErrUnknownCollection = errors.New("unknown collection")

	ErrBudgetNotFound = errors.New("budget not found")
	ErrGoalExceeded   = errors.New("amount exceeds budget goal")
)
