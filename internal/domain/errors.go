package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for common business logic failures.
var (
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrPlanLimitReached  = errors.New("dashboard limit reached for the current plan")
	ErrNotFound          = errors.New("requested resource not found")
	ErrInvalidVisibility = errors.New("invalid dashboard visibility")
)
