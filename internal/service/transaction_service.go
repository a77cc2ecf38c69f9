package service

import (
	"context"
	"sort"
	"strings"

	"github.com/hustler-ledger/ledger-server/internal/events"
)

// Transactions returns up to limit entries for the business, newest first. A non-positive limit
// uses the default of 50. Lookup failures yield an empty slice.
func (g *Gateway) Transactions(ctx context.Context, businessID string, limit int) []Transaction {
	if limit <= 0 {
		limit = defaultTransactionLimit
	}

	rows, err := g.store.Transactions(ctx, businessID, limit)
	if err != nil {
		g.logger.WithError(err).WithField("businessID", businessID).Error("Gateway.Transactions")
		return []Transaction{}
	}

	return newestFirst(rows, limit)
}

// SearchTransactions returns up to query.Limit entries matching query, newest first. A non-positive
// limit uses the default of 50. Lookup failures yield an empty slice.
func (g *Gateway) SearchTransactions(ctx context.Context, query TransactionQuery) []Transaction {
	if query.Limit <= 0 {
		query.Limit = defaultTransactionLimit
	}
	query.Search = strings.TrimSpace(query.Search)

	rows, err := g.store.FindTransactions(ctx, query)
	if err != nil {
		g.logger.WithError(err).WithField("businessID", query.BusinessID).Error("Gateway.SearchTransactions")
		return []Transaction{}
	}

	matched := make([]Transaction, 0, len(rows))
	for _, tx := range rows {
		if query.Matches(tx) {
			matched = append(matched, tx)
		}
	}
	return newestFirst(matched, query.Limit)
}

func newestFirst(rows []Transaction, limit int) []Transaction {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	if len(rows) == 0 {
		return []Transaction{}
	}
	return rows
}

// CreateTransaction records a ledger entry. A store failure is returned as a *PersistenceError.
func (g *Gateway) CreateTransaction(ctx context.Context, create TransactionCreate) (*Transaction, error) {
	if create.Status == "" {
		create.Status = DefaultStatus(create.Type)
	}

	tx, err := g.store.CreateTransaction(ctx, create)
	if err != nil {
		g.logger.WithError(err).WithField("businessID", create.BusinessID).Error("Gateway.CreateTransaction")
		return nil, &PersistenceError{Op: "createTransaction", Err: err}
	}

	g.publish(ctx, events.TypeTransactionCreated, tx.BusinessID, map[string]any{
		"transactionID": tx.ID,
		"businessID":    tx.BusinessID,
		"type":          string(tx.Type),
		"amount":        tx.Amount.String(),
	})
	return tx, nil
}
