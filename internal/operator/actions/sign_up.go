package actions

import (
	"context"
	"time"

	"github.com/hustler-ledger/ledger-server/internal/storage"
	"github.com/hustler-ledger/ledger-server/internal/storage/sqlconfig"
)

// SignUp creates an account and its first session together.
type SignUp struct {
	Account          sqlconfig.AccountCreate
	SessionToken     string
	SessionExpiresAt time.Time

	CreatedAccount *sqlconfig.Account
	CreatedSession *sqlconfig.Session
	IAction
}

func (s *SignUp) Perform(ctx context.Context, writer *storage.Writer) error {
	account, err := writer.Accounts.Insert(ctx, &s.Account)
	if err != nil {
		return err
	}

	session, err := writer.Sessions.Insert(ctx, &sqlconfig.SessionCreate{
		Token:     s.SessionToken,
		AccountID: account.ID,
		ExpiresAt: s.SessionExpiresAt,
	})
	if err != nil {
		return err
	}

	s.CreatedAccount = account
	s.CreatedSession = session
	return nil
}
