package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid/v5"
)

// Account represents an accounts row.
type Account struct {
	ID           uuid.UUID        `db:"id"`
	Email        string           `db:"email"`
	PasswordHash string           `db:"password_hash"`
	FullName     string           `db:"full_name"`
	Phone        null.Val[string] `db:"phone"`
	CreatedAt    time.Time        `db:"created_at"`
}

// AccountCreate is the input for creating a new account.
type AccountCreate struct {
	Email        string
	PasswordHash string
	FullName     string
	Phone        string
}

// IAccountTable defines the interface for account storage operations.
//
//go:generate mockery --name IAccountTable --output mock_IAccountTable.go
type IAccountTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)
	FindByEmail(ctx context.Context, email string) (*Account, error)
	Insert(ctx context.Context, create *AccountCreate) (*Account, error)
}

// Session represents a sessions row.
type Session struct {
	Token     string    `db:"token"`
	AccountID uuid.UUID `db:"account_id"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

// SessionCreate is the input for opening a session.
type SessionCreate struct {
	Token     string
	AccountID uuid.UUID
	ExpiresAt time.Time
}

type ISessionTable interface {
	FindActive(ctx context.Context, token string, now time.Time) (*Session, error)
	Insert(ctx context.Context, create *SessionCreate) (*Session, error)
	Delete(ctx context.Context, token string) error
}
