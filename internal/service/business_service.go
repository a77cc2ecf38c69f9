package service

import (
	"context"
	"errors"

	"github.com/hustler-ledger/ledger-server/internal/events"
)

// ActiveBusiness returns the newest active business owned by accountID, or nil when there is none
// or the lookup failed.
func (g *Gateway) ActiveBusiness(ctx context.Context, accountID string) *Business {
	business, err := g.store.ActiveBusiness(ctx, accountID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			g.logger.WithError(err).WithField("accountID", accountID).Error("Gateway.ActiveBusiness")
		}
		return nil
	}
	return business
}

// UserBusinesses returns the active businesses owned by accountID, newest first.
func (g *Gateway) UserBusinesses(ctx context.Context, accountID string) []Business {
	businesses, err := g.store.UserBusinesses(ctx, accountID)
	if err != nil {
		g.logger.WithError(err).WithField("accountID", accountID).Error("Gateway.UserBusinesses")
		return []Business{}
	}
	if businesses == nil {
		return []Business{}
	}
	return businesses
}

// CreateBusiness registers a business. A store failure is returned as a *PersistenceError.
func (g *Gateway) CreateBusiness(ctx context.Context, create BusinessCreate) (*Business, error) {
	business, err := g.store.CreateBusiness(ctx, create)
	if err != nil {
		g.logger.WithError(err).Error("Gateway.CreateBusiness")
		return nil, &PersistenceError{Op: "createBusiness", Err: err}
	}

	g.publish(ctx, events.TypeBusinessCreated, business.ID, map[string]any{
		"businessID": business.ID,
		"userID":     business.UserID,
		"name":       business.Name,
		"type":       business.Type,
	})
	return business, nil
}

// RequireBusiness resolves the current account and its active business. Authentication is checked
// first. An account without a business gets ErrBusinessRequired; a failed lookup gets a
// *BusinessLookupError.
func (g *Gateway) RequireBusiness(ctx context.Context) (*Account, *Business, error) {
	account, err := g.RequireAuth(ctx)
	if err != nil {
		return nil, nil, err
	}

	business, err := g.store.ActiveBusiness(ctx, account.ID)
	switch {
	case errors.Is(err, ErrNotFound):
		return account, nil, ErrBusinessRequired
	case err != nil:
		g.logger.WithError(err).WithField("accountID", account.ID).Error("Gateway.RequireBusiness")
		return account, nil, &BusinessLookupError{AccountID: account.ID, Err: err}
	case business == nil:
		return account, nil, ErrBusinessRequired
	}
	return account, business, nil
}
