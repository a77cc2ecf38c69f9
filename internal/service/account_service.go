package service

import (
	"context"
	"errors"

	"github.com/hustler-ledger/ledger-server/internal/events"
)

// SignUp creates an account and opens a session for it. Store failures are returned unchanged.
func (g *Gateway) SignUp(ctx context.Context, req SignUpRequest) (*AuthResult, error) {
	result, err := g.store.SignUp(ctx, req)
	if err != nil {
		g.logger.WithError(err).Error("Gateway.SignUp")
		return nil, err
	}

	g.publish(ctx, events.TypeAccountSignedUp, result.User.ID, map[string]any{
		"accountID": result.User.ID,
		"email":     result.User.Email,
	})
	return result, nil
}

// SignIn opens a session for an existing account. Store failures are returned unchanged.
func (g *Gateway) SignIn(ctx context.Context, email, password string) (*AuthResult, error) {
	result, err := g.store.SignIn(ctx, email, password)
	if err != nil {
		g.logger.WithError(err).Error("Gateway.SignIn")
		return nil, err
	}
	return result, nil
}

// SignOut ends the session carried by ctx.
func (g *Gateway) SignOut(ctx context.Context) error {
	if err := g.store.SignOut(ctx, SessionToken(ctx)); err != nil {
		g.logger.WithError(err).Error("Gateway.SignOut")
		return err
	}
	return nil
}

// CurrentUser returns the account for the session carried by ctx, or nil. It never fails.
func (g *Gateway) CurrentUser(ctx context.Context) *Account {
	token := SessionToken(ctx)
	if token == "" {
		return nil
	}

	account, err := g.store.AccountForSession(ctx, token)
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) {
			g.logger.WithError(err).Error("Gateway.CurrentUser")
		}
		return nil
	}
	return account
}

// RequireAuth returns the current account or ErrAuthenticationRequired.
func (g *Gateway) RequireAuth(ctx context.Context) (*Account, error) {
	account := g.CurrentUser(ctx)
	if account == nil {
		return nil, ErrAuthenticationRequired
	}
	return account, nil
}
