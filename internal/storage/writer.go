package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/hustler-ledger/ledger-server/internal/storage/sqlconfig"
)

// Writer is table access bound to one database transaction.
type Writer struct {
	tx           bob.Tx
	Accounts     *sqlconfig.AccountsTable
	Sessions     *sqlconfig.SessionsTable
	Businesses   *sqlconfig.BusinessesTable
	Transactions *sqlconfig.TransactionsTable
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:           tx,
		Accounts:     sqlconfig.NewAccountsTable(tx),
		Sessions:     sqlconfig.NewSessionsTable(tx),
		Businesses:   sqlconfig.NewBusinessesTable(tx),
		Transactions: sqlconfig.NewTransactionsTable(tx),
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
