package fixture

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hustler-ledger/ledger-server/internal/service"
)

const (
	AccountID    = "mock-user-id"
	BusinessID   = "mock-business-id"
	SessionToken = "fixture-session"
)

const day = 24 * time.Hour

// Account is the sample account every fixture session resolves to.
func Account() service.Account {
	return service.Account{
		ID:       AccountID,
		Email:    "test@hustler-ledger.com",
		FullName: "Test User",
		Phone:    "+254700000000",
	}
}

// Business is the sample business, stamped with now.
func Business(now time.Time) service.Business {
	return service.Business{
		ID:                 BusinessID,
		UserID:             AccountID,
		Name:               "Mama Mboga Kiosk",
		Type:               "Retail Shop",
		Description:        "Fresh vegetables and fruits",
		Location:           "Nairobi, Kenya",
		Phone:              "+254700000000",
		Email:              "mamboga@hustler-ledger.com",
		RegistrationNumber: "BN-2024-12345",
		TaxID:              "TX-2024-67890",
		IsActive:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// Transactions are the three sample entries in their documented order: a sale today, an expense
// yesterday and a pending credit sale two days ago.
func Transactions(now time.Time) []service.Transaction {
	creditDue := now.Add(7 * day)

	txs := []service.Transaction{
		{
			ID:              "1",
			BusinessID:      BusinessID,
			Type:            service.TransactionKindSale,
			Amount:          decimal.NewFromInt(2500),
			Category:        "Vegetables",
			Description:     "Tomatoes and onions",
			CustomerName:    "John Doe",
			CustomerPhone:   "+254711111111",
			ReferenceNumber: "TXN-001",
			PaymentMethod:   "Cash",
			Status:          service.TransactionStatusCompleted,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:              "2",
			BusinessID:      BusinessID,
			Type:            service.TransactionKindExpense,
			Amount:          decimal.NewFromInt(800),
			Category:        "Transport",
			Description:     "Market transport",
			ReferenceNumber: "TXN-002",
			PaymentMethod:   "Cash",
			Status:          service.TransactionStatusCompleted,
			CreatedAt:       now.Add(-day),
			UpdatedAt:       now.Add(-day),
		},
		{
			ID:              "3",
			BusinessID:      BusinessID,
			Type:            service.TransactionKindCredit,
			Amount:          decimal.NewFromInt(1500),
			Category:        "Vegetables",
			Description:     "Credit sale",
			CustomerName:    "Jane Smith",
			CustomerPhone:   "+254722222222",
			ReferenceNumber: "TXN-003",
			PaymentMethod:   "Credit",
			DueDate:         &creditDue,
			Status:          service.TransactionStatusPending,
			CreatedAt:       now.Add(-2 * day),
			UpdatedAt:       now.Add(-2 * day),
		},
	}

	for i := range txs {
		if txs[i].Timestamp.IsZero() {
			txs[i].Timestamp = txs[i].CreatedAt
		}
	}
	return txs
}

// Debts are the sample outstanding debts. Days overdue are derived from the due dates.
func Debts(now time.Time) []service.Debt {
	debt := func(id, customer string, amount int64, due time.Time) service.Debt {
		return service.Debt{
			ID:          id,
			Customer:    customer,
			Amount:      decimal.NewFromInt(amount),
			DueDate:     due,
			DaysOverdue: service.DaysOverdue(due, now),
		}
	}

	return []service.Debt{
		debt("1", "Jane Smith", 1500, now.Add(5*day)),
		debt("2", "Mike Wilson", 800, now.Add(-10*day)),
		debt("3", "Sarah Davis", 2200, now.Add(-2*day)),
	}
}

func Budgets() []service.Budget {
	return []service.Budget{
		{Category: "Transport", Limit: decimal.NewFromInt(5000), Spent: decimal.NewFromInt(3200)},
		{Category: "Supplies", Limit: decimal.NewFromInt(8000), Spent: decimal.NewFromInt(6500)},
		{Category: "Marketing", Limit: decimal.NewFromInt(2000), Spent: decimal.NewFromInt(800)},
	}
}

func Notifications(now time.Time) []service.Notification {
	return []service.Notification{
		{
			ID:        "1",
			Type:      service.NotificationKindWarning,
			Message:   "Low balance warning: Only KES 2,500 remaining",
			Timestamp: now,
		},
		{
			ID:        "2",
			Type:      service.NotificationKindError,
			Message:   "Jane Smith payment is 5 days overdue",
			Timestamp: now.Add(-day),
		},
		{
			ID:        "3",
			Type:      service.NotificationKindSuccess,
			Message:   "Daily sales target achieved!",
			Timestamp: now.Add(-2 * day),
			Read:      true,
		},
	}
}
