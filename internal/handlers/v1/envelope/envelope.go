// Package envelope shapes every API response as { success, data } or { error }.
package envelope

import (
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/hustler-ledger/ledger-server/internal/service"
)

// Envelope wraps a successful response.
type Envelope[T any] struct {
	Success bool `json:"success" doc:"Always true"`
	Data    T    `json:"data"`
}

// OK wraps data in a success envelope.
func OK[T any](data T) Envelope[T] {
	return Envelope[T]{Success: true, Data: data}
}

// ErrorBody is the body of every failed response.
type ErrorBody struct {
	Status  int    `json:"-"`
	Message string `json:"error" doc:"Human readable failure message"`
}

func (e *ErrorBody) Error() string {
	return e.Message
}

func (e *ErrorBody) GetStatus() int {
	return e.Status
}

// Config is huma's default config without the $schema links, so bodies are exactly the envelope.
func Config(title, version string) huma.Config {
	cfg := huma.DefaultConfig(title, version)
	cfg.CreateHooks = nil
	return cfg
}

func init() {
	huma.NewError = newError
}

// newError replaces huma's problem+json errors. Schema validation failures are bad input here, so
// 422 is reported as 400.
func newError(status int, message string, errs ...error) huma.StatusError {
	if status == http.StatusUnprocessableEntity {
		status = http.StatusBadRequest
	}

	details := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			details = append(details, err.Error())
		}
	}
	if len(details) > 0 {
		message = message + ": " + strings.Join(details, "; ")
	}

	return &ErrorBody{Status: status, Message: message}
}

// FromServiceError maps a gateway error onto its HTTP status. Errors outside the taxonomy get
// fallbackStatus with their own message.
func FromServiceError(err error, fallbackStatus int) error {
	var (
		validationErr  *service.ValidationError
		lookupErr      *service.BusinessLookupError
		persistenceErr *service.PersistenceError
	)

	switch {
	case errors.As(err, &validationErr):
		return &ErrorBody{Status: http.StatusBadRequest, Message: validationErr.Message}
	case errors.Is(err, service.ErrAuthenticationRequired):
		return &ErrorBody{Status: http.StatusUnauthorized, Message: err.Error()}
	case errors.Is(err, service.ErrBusinessRequired):
		return &ErrorBody{Status: http.StatusForbidden, Message: err.Error()}
	case errors.As(err, &lookupErr):
		return &ErrorBody{Status: http.StatusServiceUnavailable, Message: "Business lookup failed, try again"}
	case errors.As(err, &persistenceErr):
		return &ErrorBody{Status: http.StatusBadRequest, Message: persistenceErr.Error()}
	default:
		return &ErrorBody{Status: fallbackStatus, Message: err.Error()}
	}
}
