package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a transactions row.
type Transaction struct {
	ID              uuid.UUID           `db:"id"`
	BusinessID      uuid.UUID           `db:"business_id"`
	Type            string              `db:"type"`
	Amount          decimal.Decimal     `db:"amount"`
	Category        string              `db:"category"`
	Description     null.Val[string]    `db:"description"`
	CustomerName    null.Val[string]    `db:"customer_name"`
	CustomerPhone   null.Val[string]    `db:"customer_phone"`
	ReferenceNumber null.Val[string]    `db:"reference_number"`
	PaymentMethod   null.Val[string]    `db:"payment_method"`
	DueDate         null.Val[time.Time] `db:"due_date"`
	Status          string              `db:"status"`
	CreatedAt       time.Time           `db:"created_at"`
	UpdatedAt       time.Time           `db:"updated_at"`
}

// TransactionCreate is the input for recording a transaction. Empty optional fields are stored as NULL.
type TransactionCreate struct {
	BusinessID      uuid.UUID
	Type            string
	Amount          decimal.Decimal
	Category        string
	Description     string
	CustomerName    string
	CustomerPhone   string
	ReferenceNumber string
	PaymentMethod   string
	DueDate         *time.Time
	Status          string
}

// TransactionFilter specifies filters for listing transactions.
type TransactionFilter struct {
	BusinessID uuid.UUID
	Type       string
	Statuses   []string
	HasDueDate bool
	// Since keeps rows created at or after it.
	Since time.Time
	// Search keeps rows whose description or customer name contains it, ignoring case.
	Search string
	Limit  int
}

// ITransactionTable defines the interface for transaction storage operations.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
}
