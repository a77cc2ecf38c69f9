// Package auth serves sign-up, sign-in, sign-out and the current user, and carries the session
// token from each request into the gateway.
package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/hustler-ledger/ledger-server/internal/handlers/v1/business"
	"github.com/hustler-ledger/ledger-server/internal/service"
)

// CookieName is the cookie the session token is stored in.
const CookieName = "hl_session"

// gateway is the part of service.Gateway the auth endpoints use.
type gateway interface {
	SignUp(ctx context.Context, req service.SignUpRequest) (*service.AuthResult, error)
	SignIn(ctx context.Context, email, password string) (*service.AuthResult, error)
	SignOut(ctx context.Context) error
	RequireAuth(ctx context.Context) (*service.Account, error)
	ActiveBusiness(ctx context.Context, accountID string) *service.Business
}

// User is the API response model for an account.
type User struct {
	ID       string `json:"id" doc:"Account ID"`
	Email    string `json:"email" doc:"Login email"`
	FullName string `json:"full_name" doc:"Display name"`
	Phone    string `json:"phone,omitempty" doc:"Contact phone"`
}

// Session is the API response model for an issued session.
type Session struct {
	AccessToken string `json:"access_token" doc:"Bearer token, also set as the hl_session cookie"`
	ExpiresAt   string `json:"expires_at" doc:"RFC3339 expiry"`
}

// AuthData is returned by sign-up and sign-in.
type AuthData struct {
	User    User    `json:"user"`
	Session Session `json:"session"`
}

func toUser(account service.Account) User {
	return User{
		ID:       account.ID,
		Email:    account.Email,
		FullName: account.FullName,
		Phone:    account.Phone,
	}
}

func toAuthData(result *service.AuthResult) AuthData {
	return AuthData{
		User: toUser(result.User),
		Session: Session{
			AccessToken: result.Session.AccessToken,
			ExpiresAt:   result.Session.ExpiresAt.UTC().Format(time.RFC3339),
		},
	}
}

func sessionCookie(session service.Session, secure bool) http.Cookie {
	return http.Cookie{
		Name:     CookieName,
		Value:    session.AccessToken,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func clearedCookie(secure bool) http.Cookie {
	return http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// SessionMiddleware places the request's session token in the context. A bearer token wins over
// the cookie.
func SessionMiddleware(ctx huma.Context, next func(huma.Context)) {
	token := bearerToken(ctx.Header("Authorization"))
	if token == "" {
		if cookie, err := huma.ReadCookie(ctx, CookieName); err == nil {
			token = cookie.Value
		}
	}

	if token != "" {
		ctx = huma.WithContext(ctx, service.WithSessionToken(ctx.Context(), token))
	}
	next(ctx)
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// Register adds every auth endpoint to api.
func Register(api huma.API, gw gateway, secureCookies bool) {
	NewLoginHandler(gw, secureCookies).Register(api)
	NewSignUpHandler(gw, secureCookies).Register(api)
	NewLogoutHandler(gw, secureCookies).Register(api)
	NewMeHandler(gw).Register(api)
}

// MeData is the signed-in account with its active business, if any.
type MeData struct {
	User     User               `json:"user"`
	Business *business.Business `json:"business"`
}
