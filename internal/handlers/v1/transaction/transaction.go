package transaction

import (
	"context"
	"time"

	"github.com/hustler-ledger/ledger-server/internal/service"
)

// gateway is the part of service.Gateway the transaction endpoints use.
type gateway interface {
	RequireBusiness(ctx context.Context) (*service.Account, *service.Business, error)
	Transactions(ctx context.Context, businessID string, limit int) []service.Transaction
	SearchTransactions(ctx context.Context, query service.TransactionQuery) []service.Transaction
	CreateTransaction(ctx context.Context, create service.TransactionCreate) (*service.Transaction, error)
}

// Transaction is the API response model for a ledger entry.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID              string  `json:"id" doc:"Transaction ID"`
	BusinessID      string  `json:"business_id" doc:"Owning business ID"`
	Type            string  `json:"type" enum:"sale,expense,credit,repayment"`
	Amount          string  `json:"amount" doc:"Decimal amount"`
	Category        string  `json:"category"`
	Description     string  `json:"description,omitempty"`
	CustomerName    string  `json:"customer_name,omitempty"`
	CustomerPhone   string  `json:"customer_phone,omitempty"`
	ReferenceNumber string  `json:"reference_number,omitempty"`
	PaymentMethod   string  `json:"payment_method,omitempty"`
	DueDate         *string `json:"due_date,omitempty" doc:"RFC3339 due date for credit"`
	Status          string  `json:"status" enum:"pending,completed,overdue,cancelled"`
	Timestamp       string  `json:"timestamp" doc:"RFC3339 time of the entry"`
	CreatedAt       string  `json:"created_at" doc:"RFC3339 creation time"`
}

// Transactions is a list response. Named so its schema does not collide with a single Transaction.
type Transactions []Transaction

// FromService converts the service model to the response model.
func FromService(tx service.Transaction) Transaction {
	resp := Transaction{
		ID:              tx.ID,
		BusinessID:      tx.BusinessID,
		Type:            string(tx.Type),
		Amount:          tx.Amount.String(),
		Category:        tx.Category,
		Description:     tx.Description,
		CustomerName:    tx.CustomerName,
		CustomerPhone:   tx.CustomerPhone,
		ReferenceNumber: tx.ReferenceNumber,
		PaymentMethod:   tx.PaymentMethod,
		Status:          string(tx.Status),
		Timestamp:       tx.Timestamp.Format(time.RFC3339),
		CreatedAt:       tx.CreatedAt.Format(time.RFC3339),
	}
	if tx.DueDate != nil {
		due := tx.DueDate.Format(time.RFC3339)
		resp.DueDate = &due
	}
	return resp
}
