package sqlconfig

import (
	"context"
	"strings"

	"github.com/aarondl/opt/null"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ ITransactionTable = (*TransactionsTable)(nil)

var transactionColumns = []any{
	"id", "business_id", "type", "amount", "category", "description", "customer_name",
	"customer_phone", "reference_number", "payment_method", "due_date", "status",
	"created_at", "updated_at",
}

// likeEscaper quotes the LIKE wildcards so a search term matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

type TransactionsTable struct {
	exec bob.Executor
}

func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// Insert records a transaction and returns the stored row.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	q := psql.Insert(
		im.Into("transactions",
			"business_id", "type", "amount", "category", "description", "customer_name",
			"customer_phone", "reference_number", "payment_method", "due_date", "status",
		),
		im.Values(
			psql.Arg(create.BusinessID),
			psql.Arg(create.Type),
			psql.Arg(create.Amount),
			psql.Arg(create.Category),
			psql.Arg(optional(create.Description)),
			psql.Arg(optional(create.CustomerName)),
			psql.Arg(optional(create.CustomerPhone)),
			psql.Arg(optional(create.ReferenceNumber)),
			psql.Arg(optional(create.PaymentMethod)),
			psql.Arg(null.FromPtr(create.DueDate)),
			psql.Arg(create.Status),
		),
		im.Returning(transactionColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns the business's transactions matching the filter, newest first.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	rows, err := bob.All(ctx, t.exec, listTransactionsQuery(filter), scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func listTransactionsQuery(filter *TransactionFilter) bob.BaseQuery[*dialect.SelectQuery] {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("business_id").EQ(psql.Arg(filter.BusinessID))),
	}
	if filter.Type != "" {
		queryMods = append(queryMods, sm.Where(psql.Quote("type").EQ(psql.Arg(filter.Type))))
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]bob.Expression, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = psql.Arg(s)
		}
		queryMods = append(queryMods, sm.Where(psql.Quote("status").In(statuses...)))
	}
	if filter.HasDueDate {
		queryMods = append(queryMods, sm.Where(psql.Quote("due_date").IsNotNull()))
	}
	if !filter.Since.IsZero() {
		queryMods = append(queryMods, sm.Where(psql.Quote("created_at").GTE(psql.Arg(filter.Since))))
	}
	if filter.Search != "" {
		pattern := "%" + likeEscaper.Replace(filter.Search) + "%"
		queryMods = append(queryMods, sm.Where(psql.Or(
			psql.Quote("description").ILike(psql.Arg(pattern)),
			psql.Quote("customer_name").ILike(psql.Arg(pattern)),
		)))
	}
	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit))
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("created_at")).Desc(),
		sm.OrderBy(psql.Quote("id")).Desc(),
	)
	return psql.Select(queryMods...)
}
