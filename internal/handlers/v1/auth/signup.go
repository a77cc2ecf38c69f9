package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/hustler-ledger/ledger-server/internal/handlers/v1/envelope"
	"github.com/hustler-ledger/ledger-server/internal/logging"
	"github.com/hustler-ledger/ledger-server/internal/service"
)

// SignUpBody is the request body for creating an account.
type SignUpBody struct {
	Email    string `json:"email,omitempty" doc:"Login email"`
	Password string `json:"password,omitempty" doc:"Password"`
	FullName string `json:"fullName,omitempty" doc:"Display name"`
	Phone    string `json:"phone,omitempty" doc:"Optional contact phone"`
}

// SignUpInput is the Huma input for creating an account.
type SignUpInput struct {
	Body SignUpBody
}

// SignUpHandler handles POST /auth/signup.
type SignUpHandler struct {
	Gateway       gateway
	SecureCookies bool
}

func NewSignUpHandler(gw gateway, secureCookies bool) *SignUpHandler {
	return &SignUpHandler{Gateway: gw, SecureCookies: secureCookies}
}

func (h *SignUpHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "auth-signup",
		Method:        http.MethodPost,
		Path:          "/auth/signup",
		Summary:       "Sign up",
		Description:   "Creates an account, opens a session for it and sets the session cookie.",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *SignUpHandler) handle(ctx context.Context, input *SignUpInput) (*AuthOutput, error) {
	req := service.SignUpRequest{
		Email:    input.Body.Email,
		Password: input.Body.Password,
		FullName: input.Body.FullName,
		Phone:    input.Body.Phone,
	}
	if err := service.ValidateSignUp(req); err != nil {
		return nil, envelope.FromServiceError(err, http.StatusBadRequest)
	}

	result, err := h.Gateway.SignUp(ctx, req)
	if err != nil {
		if logData := logging.GetLogData(ctx); logData != nil {
			logData.AddData("storeErrorCode", service.StoreErrorCode(err))
		}
		return nil, envelope.FromServiceError(err, http.StatusBadRequest)
	}

	return &AuthOutput{
		SetCookie: sessionCookie(result.Session, h.SecureCookies),
		Body:      envelope.OK(toAuthData(result)),
	}, nil
}
