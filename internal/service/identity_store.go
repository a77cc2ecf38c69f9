package service

import (
	"context"
)

// Mode names the backend serving the gateway.
type Mode string

const (
	ModeFixture Mode = "fixture"
	ModeRemote  Mode = "remote"
)

// IdentityStore is the capability the Gateway delegates to. One implementation serves static
// fixture data, the other a persistent remote store; the choice is made once at startup.
//
// Lookups that match nothing return ErrNotFound (single records) or an empty slice (lists).
// Rejected requests return a *StoreError.
type IdentityStore interface {
	Mode() Mode

	SignUp(ctx context.Context, req SignUpRequest) (*AuthResult, error)
	SignIn(ctx context.Context, email, password string) (*AuthResult, error)
	SignOut(ctx context.Context, token string) error
	AccountForSession(ctx context.Context, token string) (*Account, error)

	ActiveBusiness(ctx context.Context, accountID string) (*Business, error)
	UserBusinesses(ctx context.Context, accountID string) ([]Business, error)
	CreateBusiness(ctx context.Context, create BusinessCreate) (*Business, error)

	Transactions(ctx context.Context, businessID string, limit int) ([]Transaction, error)
	FindTransactions(ctx context.Context, query TransactionQuery) ([]Transaction, error)
	CreateTransaction(ctx context.Context, create TransactionCreate) (*Transaction, error)

	Debts(ctx context.Context, businessID string) ([]Debt, error)
	Budgets(ctx context.Context, businessID string) ([]Budget, error)
	Notifications(ctx context.Context, accountID string) ([]Notification, error)
}
