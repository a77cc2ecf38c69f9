package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var accountColumns = []any{"id", "email", "password_hash", "full_name", "phone", "created_at"}

// AccountsTable provides access to the accounts table.
type AccountsTable struct {
	exec bob.Executor
}

// Ensure AccountsTable implements IAccountTable at compile time.
var _ IAccountTable = (*AccountsTable)(nil)

// NewAccountsTable creates an AccountsTable over the given executor, either the pool or a transaction.
func NewAccountsTable(exec bob.Executor) *AccountsTable {
	return &AccountsTable{exec: exec}
}

// FindByID retrieves an account by primary key.
func (t *AccountsTable) FindByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	q := psql.Select(
		sm.Columns(accountColumns...),
		sm.From("accounts"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Account]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// FindByEmail retrieves an account by its login email. Emails are stored lower-cased.
func (t *AccountsTable) FindByEmail(ctx context.Context, email string) (*Account, error) {
	q := psql.Select(
		sm.Columns(accountColumns...),
		sm.From("accounts"),
		sm.Where(psql.Quote("email").EQ(psql.Arg(email))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Account]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert creates a new account and returns the stored row.
func (t *AccountsTable) Insert(ctx context.Context, create *AccountCreate) (*Account, error) {
	q := psql.Insert(
		im.Into("accounts", "email", "password_hash", "full_name", "phone"),
		im.Values(
			psql.Arg(create.Email),
			psql.Arg(create.PasswordHash),
			psql.Arg(create.FullName),
			psql.Arg(optional(create.Phone)),
		),
		im.Returning(accountColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Account]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

var sessionColumns = []any{"token", "account_id", "expires_at", "created_at"}

// SessionsTable provides access to the sessions table.
type SessionsTable struct {
	exec bob.Executor
}

var _ ISessionTable = (*SessionsTable)(nil)

func NewSessionsTable(exec bob.Executor) *SessionsTable {
	return &SessionsTable{exec: exec}
}

// FindActive retrieves a session by token, provided it has not expired at now.
func (t *SessionsTable) FindActive(ctx context.Context, token string, now time.Time) (*Session, error) {
	q := psql.Select(
		sm.Columns(sessionColumns...),
		sm.From("sessions"),
		sm.Where(psql.Quote("token").EQ(psql.Arg(token))),
		sm.Where(psql.Quote("expires_at").GT(psql.Arg(now))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Session]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert opens a session and returns the stored row.
func (t *SessionsTable) Insert(ctx context.Context, create *SessionCreate) (*Session, error) {
	q := psql.Insert(
		im.Into("sessions", "token", "account_id", "expires_at"),
		im.Values(psql.Arg(create.Token), psql.Arg(create.AccountID), psql.Arg(create.ExpiresAt)),
		im.Returning(sessionColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Session]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Delete removes a session. Deleting an unknown token is not an error.
func (t *SessionsTable) Delete(ctx context.Context, token string) error {
	q := psql.Delete(
		dm.From("sessions"),
		dm.Where(psql.Quote("token").EQ(psql.Arg(token))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}
