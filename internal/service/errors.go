package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserInactive        = errors.New("user account is inactive")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrTypeNotRegistered = errors.New("type is not registered")
	ErrEmptyPath         = errors.New("empty path")
	ErrNoRouteMatched    = errors.New("no route matched")
	ErrNoURLForNode      = errors.New("node type has no URL scheme")
)

// ValidationError carries the itemized field violations of a rejected write.
// It is a distinct type so transport code can surface the individual messages
// instead of one opaque string.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Violations, "; "))
}

// NewValidationError wraps a non-empty violation list.
func NewValidationError(violations []string) *ValidationError {
	return &ValidationError{Violations: violations}
}
