package service

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthenticationRequired is returned by RequireAuth when no session resolves to an account.
	ErrAuthenticationRequired = errors.New("Authentication required")

	// ErrBusinessRequired is returned by RequireBusiness when the account has no active business.
	ErrBusinessRequired = errors.New("Business registration required")

	// ErrNotFound is returned by stores when a lookup matched no record.
	ErrNotFound = errors.New("not found")

	// ErrSessionNotFound is returned by stores when a session token is missing, unknown or expired.
	ErrSessionNotFound = errors.New("session not found")
)

// Store error codes.
const (
	CodeInvalidCredentials = "invalid_credentials"
	CodeUserAlreadyExists  = "user_already_exists"
	CodeBusinessNotFound   = "business_not_found"
	CodeWeakPassword       = "weak_password"
)

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StoreError is the error object a store hands back for a rejected request.
type StoreError struct {
	Code    string
	Message string
}

func (e *StoreError) Error() string {
	return e.Message
}

// PersistenceError wraps a rejected write. Its message is the store's message, unchanged.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// BusinessLookupError means the active business could not be resolved because the lookup itself
// failed, as opposed to the account having no business.
type BusinessLookupError struct {
	AccountID string
	Err       error
}

func (e *BusinessLookupError) Error() string {
	return fmt.Sprintf("active business lookup failed for account %s: %v", e.AccountID, e.Err)
}

func (e *BusinessLookupError) Unwrap() error {
	return e.Err
}

// StoreErrorCode returns the code of a StoreError in err's chain, or "".
func StoreErrorCode(err error) string {
	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return storeErr.Code
	}
	return ""
}
