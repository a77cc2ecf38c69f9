package remote

import (
	"github.com/hustler-ledger/ledger-server/internal/service"
	"github.com/hustler-ledger/ledger-server/internal/storage/sqlconfig"
)

func toAccount(row *sqlconfig.Account) service.Account {
	return service.Account{
		ID:       row.ID.String(),
		Email:    row.Email,
		FullName: row.FullName,
		Phone:    row.Phone.GetOrZero(),
	}
}

func toSession(row *sqlconfig.Session) service.Session {
	return service.Session{
		AccessToken: row.Token,
		ExpiresAt:   row.ExpiresAt,
	}
}

func toBusiness(row *sqlconfig.Business) service.Business {
	return service.Business{
		ID:                 row.ID.String(),
		UserID:             row.UserID.String(),
		Name:               row.Name,
		Type:               row.Type,
		Description:        row.Description.GetOrZero(),
		Location:           row.Location.GetOrZero(),
		Phone:              row.Phone.GetOrZero(),
		Email:              row.Email.GetOrZero(),
		RegistrationNumber: row.RegistrationNumber.GetOrZero(),
		TaxID:              row.TaxID.GetOrZero(),
		IsActive:           row.IsActive,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
}

// toTransaction maps a row to the service model. Rows carry no separate timestamp, so it is the
// creation time.
func toTransaction(row *sqlconfig.Transaction) service.Transaction {
	return service.Transaction{
		ID:              row.ID.String(),
		BusinessID:      row.BusinessID.String(),
		Type:            service.TransactionKind(row.Type),
		Amount:          row.Amount,
		Category:        row.Category,
		Description:     row.Description.GetOrZero(),
		CustomerName:    row.CustomerName.GetOrZero(),
		CustomerPhone:   row.CustomerPhone.GetOrZero(),
		ReferenceNumber: row.ReferenceNumber.GetOrZero(),
		PaymentMethod:   row.PaymentMethod.GetOrZero(),
		DueDate:         row.DueDate.Ptr(),
		Status:          service.TransactionStatus(row.Status),
		Timestamp:       row.CreatedAt,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

func toBudget(row *sqlconfig.Budget) service.Budget {
	return service.Budget{
		Category: row.Category,
		Limit:    row.LimitAmount,
		Spent:    row.Spent,
	}
}

func toNotification(row *sqlconfig.Notification) service.Notification {
	return service.Notification{
		ID:        row.ID.String(),
		Type:      service.NotificationKind(row.Type),
		Message:   row.Message,
		Timestamp: row.CreatedAt,
		Read:      row.Read,
	}
}
