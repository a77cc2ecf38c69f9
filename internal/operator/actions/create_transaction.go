package actions

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hustler-ledger/ledger-server/internal/storage"
	"github.com/hustler-ledger/ledger-server/internal/storage/sqlconfig"
)

type CreateTransaction struct {
	Transaction sqlconfig.TransactionCreate

	Created *sqlconfig.Transaction
	IAction
}

// Perform locks the owning business row, so entries for one business are written one at a time,
// then inserts the entry.
func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	business, err := writer.Businesses.FindByIDForUpdate(ctx, t.Transaction.BusinessID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrBusinessNotFound
	}
	if err != nil {
		return err
	}
	if business == nil {
		return ErrBusinessNotFound
	}

	created, err := writer.Transactions.Insert(ctx, &t.Transaction)
	if err != nil {
		return err
	}

	t.Created = created
	return nil
}
