package envelope

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hustler-ledger/ledger-server/internal/service"
)

func TestNewError_Overridden(t *testing.T) {
	err := huma.NewError(http.StatusUnprocessableEntity, "validation failed", &huma.ErrorDetail{
		Message:  "expected required property email to be present",
		Location: "body.email",
	})

	var body *ErrorBody
	require.ErrorAs(t, err, &body)
	assert.Equal(t, http.StatusBadRequest, body.GetStatus())
	assert.Contains(t, body.Message, "validation failed: expected required property email")
}

func TestNewError_KeepsOtherStatuses(t *testing.T) {
	err := huma.NewError(http.StatusNotFound, "no such route")

	assert.Equal(t, http.StatusNotFound, err.GetStatus())
	assert.Equal(t, "no such route", err.Error())
}

func TestFromServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", &service.ValidationError{Field: "name", Message: "Business name is required"}, 400, "Business name is required"},
		{"auth", service.ErrAuthenticationRequired, 401, "Authentication required"},
		{"business required", service.ErrBusinessRequired, 403, "Business registration required"},
		{"business lookup", &service.BusinessLookupError{AccountID: "a", Err: errors.New("timeout")}, 503, "Business lookup failed, try again"},
		{"persistence", &service.PersistenceError{Op: "createTransaction", Err: errors.New("business not found")}, 400, "business not found"},
		{"wrapped auth", fmt.Errorf("me: %w", service.ErrAuthenticationRequired), 401, "me: Authentication required"},
		{"other", errors.New("Invalid login credentials"), 401, "Invalid login credentials"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body *ErrorBody
			require.ErrorAs(t, FromServiceError(tt.err, http.StatusUnauthorized), &body)
			assert.Equal(t, tt.status, body.Status)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}

func TestOK(t *testing.T) {
	env := OK([]string{"a"})
	assert.True(t, env.Success)
	assert.Equal(t, []string{"a"}, env.Data)
}
