package service

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind is the closed set of ledger entry kinds.
type TransactionKind string

const (
	TransactionKindSale      TransactionKind = "sale"
	TransactionKindExpense   TransactionKind = "expense"
	TransactionKindCredit    TransactionKind = "credit"
	TransactionKindRepayment TransactionKind = "repayment"
)

// Valid reports whether k is one of the known kinds.
func (k TransactionKind) Valid() bool {
	switch k {
	case TransactionKindSale, TransactionKindExpense, TransactionKindCredit, TransactionKindRepayment:
		return true
	}
	return false
}

// TransactionStatus is the closed set of ledger entry states.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusOverdue   TransactionStatus = "overdue"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusCompleted, TransactionStatusOverdue, TransactionStatusCancelled:
		return true
	}
	return false
}

// DefaultStatus is the status a new entry of kind k gets when none is given.
// Credit is owed money and starts pending.
func DefaultStatus(k TransactionKind) TransactionStatus {
	if k == TransactionKindCredit {
		return TransactionStatusPending
	}
	return TransactionStatusCompleted
}

// Transaction represents a ledger entry in the service layer.
type Transaction struct {
	ID              string
	BusinessID      string
	Type            TransactionKind
	Amount          decimal.Decimal
	Category        string
	Description     string
	CustomerName    string
	CustomerPhone   string
	ReferenceNumber string
	PaymentMethod   string
	DueDate         *time.Time
	Status          TransactionStatus
	Timestamp       time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TransactionCreate is the input for recording a ledger entry.
type TransactionCreate struct {
	BusinessID      string
	Type            TransactionKind
	Amount          decimal.Decimal
	Category        string
	Description     string
	CustomerName    string
	CustomerPhone   string
	ReferenceNumber string
	PaymentMethod   string
	DueDate         *time.Time
	Status          TransactionStatus
}

// TransactionQuery narrows the entries of one business. Zero fields do not filter, and a
// non-positive Limit returns every match.
type TransactionQuery struct {
	BusinessID string
	Type       TransactionKind
	// Search matches case-insensitively anywhere in the description or customer name.
	Search string
	Since  time.Time
	Limit  int
}

// EntryTime is when the entry happened, falling back to when it was recorded.
func (t Transaction) EntryTime() time.Time {
	if t.Timestamp.IsZero() {
		return t.CreatedAt
	}
	return t.Timestamp
}

// Matches reports whether tx passes the Type, Since and Search filters of q. Scoping to BusinessID
// is left to the store.
func (q TransactionQuery) Matches(tx Transaction) bool {
	if q.Type != "" && tx.Type != q.Type {
		return false
	}
	if !q.Since.IsZero() && tx.EntryTime().Before(q.Since) {
		return false
	}
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		return strings.Contains(strings.ToLower(tx.Description), needle) ||
			strings.Contains(strings.ToLower(tx.CustomerName), needle)
	}
	return true
}
