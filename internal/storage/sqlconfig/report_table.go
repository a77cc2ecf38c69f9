package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

// Budget represents a budgets row.
type Budget struct {
	ID          uuid.UUID       `db:"id"`
	BusinessID  uuid.UUID       `db:"business_id"`
	Category    string          `db:"category"`
	LimitAmount decimal.Decimal `db:"limit_amount"`
	Spent       decimal.Decimal `db:"spent"`
	IsActive    bool            `db:"is_active"`
}

// Notification represents a notifications row.
type Notification struct {
	ID        uuid.UUID `db:"id"`
	AccountID uuid.UUID `db:"account_id"`
	Type      string    `db:"type"`
	Message   string    `db:"message"`
	Read      bool      `db:"read"`
	CreatedAt time.Time `db:"created_at"`
}

type IBudgetTable interface {
	ListActive(ctx context.Context, businessID uuid.UUID) ([]*Budget, error)
}

type INotificationTable interface {
	ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]*Notification, error)
}

type BudgetsTable struct {
	exec bob.Executor
}

var _ IBudgetTable = (*BudgetsTable)(nil)

func NewBudgetsTable(exec bob.Executor) *BudgetsTable {
	return &BudgetsTable{exec: exec}
}

// ListActive returns the active budgets of a business ordered by category.
func (t *BudgetsTable) ListActive(ctx context.Context, businessID uuid.UUID) ([]*Budget, error) {
	q := psql.Select(
		sm.Columns("id", "business_id", "category", "limit_amount", "spent", "is_active"),
		sm.From("budgets"),
		sm.Where(psql.Quote("business_id").EQ(psql.Arg(businessID))),
		sm.Where(psql.Quote("is_active").EQ(psql.Arg(true))),
		sm.OrderBy(psql.Quote("category")).Asc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*Budget]())
}

type NotificationsTable struct {
	exec bob.Executor
}

var _ INotificationTable = (*NotificationsTable)(nil)

func NewNotificationsTable(exec bob.Executor) *NotificationsTable {
	return &NotificationsTable{exec: exec}
}

// ListByAccount returns up to limit notifications for the account, newest first.
func (t *NotificationsTable) ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]*Notification, error) {
	q := psql.Select(
		sm.Columns("id", "account_id", "type", "message", "read", "created_at"),
		sm.From("notifications"),
		sm.Where(psql.Quote("account_id").EQ(psql.Arg(accountID))),
		sm.OrderBy(psql.Quote("created_at")).Desc(),
		sm.Limit(limit),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*Notification]())
}
