package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrNoEligibleData        = errors.New("no eligible data")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
