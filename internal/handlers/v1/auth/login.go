package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/hustler-ledger/ledger-server/internal/handlers/v1/envelope"
	"github.com/hustler-ledger/ledger-server/internal/logging"
	"github.com/hustler-ledger/ledger-server/internal/service"
)

// LoginBody is the request body for signing in.
type LoginBody struct {
	Email    string `json:"email,omitempty" doc:"Login email"`
	Password string `json:"password,omitempty" doc:"Password"`
}

// LoginInput is the Huma input for signing in.
type LoginInput struct {
	Body LoginBody
}

// AuthOutput is the Huma output for sign-in and sign-up.
type AuthOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      envelope.Envelope[AuthData]
}

// LoginHandler handles POST /auth/login.
type LoginHandler struct {
	Gateway       gateway
	SecureCookies bool
}

func NewLoginHandler(gw gateway, secureCookies bool) *LoginHandler {
	return &LoginHandler{Gateway: gw, SecureCookies: secureCookies}
}

func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "auth-login",
		Method:      http.MethodPost,
		Path:        "/auth/login",
		Summary:     "Sign in",
		Description: "Opens a session for an existing account and sets the session cookie.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*AuthOutput, error) {
	if err := service.ValidateSignIn(input.Body.Email, input.Body.Password); err != nil {
		return nil, envelope.FromServiceError(err, http.StatusBadRequest)
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("signInMs")
	}
	result, err := h.Gateway.SignIn(ctx, input.Body.Email, input.Body.Password)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if logData != nil {
			logData.AddData("storeErrorCode", service.StoreErrorCode(err))
		}
		return nil, envelope.FromServiceError(err, http.StatusUnauthorized)
	}

	return &AuthOutput{
		SetCookie: sessionCookie(result.Session, h.SecureCookies),
		Body:      envelope.OK(toAuthData(result)),
	}, nil
}
