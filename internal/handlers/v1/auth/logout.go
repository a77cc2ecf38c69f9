package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/hustler-ledger/ledger-server/internal/handlers/v1/envelope"
)

// LogoutData confirms the session was ended.
type LogoutData struct {
	SignedOut bool `json:"signed_out"`
}

// LogoutOutput is the Huma output for signing out.
type LogoutOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      envelope.Envelope[LogoutData]
}

// LogoutHandler handles POST /auth/logout.
type LogoutHandler struct {
	Gateway       gateway
	SecureCookies bool
}

func NewLogoutHandler(gw gateway, secureCookies bool) *LogoutHandler {
	return &LogoutHandler{Gateway: gw, SecureCookies: secureCookies}
}

func (h *LogoutHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "auth-logout",
		Method:      http.MethodPost,
		Path:        "/auth/logout",
		Summary:     "Sign out",
		Description: "Ends the current session and clears the session cookie.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *LogoutHandler) handle(ctx context.Context, _ *struct{}) (*LogoutOutput, error) {
	if err := h.Gateway.SignOut(ctx); err != nil {
		return nil, envelope.FromServiceError(err, http.StatusInternalServerError)
	}

	return &LogoutOutput{
		SetCookie: clearedCookie(h.SecureCookies),
		Body:      envelope.OK(LogoutData{SignedOut: true}),
	}, nil
}
