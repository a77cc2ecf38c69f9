package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/hustler-ledger/ledger-server/internal/storage"
	"github.com/hustler-ledger/ledger-server/internal/storage/sqlconfig"
)

type CreateSession struct {
	AccountID uuid.UUID
	Token     string
	ExpiresAt time.Time

	Created *sqlconfig.Session
	IAction
}

func (c *CreateSession) Perform(ctx context.Context, writer *storage.Writer) error {
	session, err := writer.Sessions.Insert(ctx, &sqlconfig.SessionCreate{
		Token:     c.Token,
		AccountID: c.AccountID,
		ExpiresAt: c.ExpiresAt,
	})
	if err != nil {
		return err
	}

	c.Created = session
	return nil
}

type DeleteSession struct {
	Token string
	IAction
}

func (d *DeleteSession) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Sessions.Delete(ctx, d.Token)
}
