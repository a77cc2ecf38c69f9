package business

import (
	"context"
	"time"

	"github.com/hustler-ledger/ledger-server/internal/service"
)

// gateway is the part of service.Gateway the business endpoints use.
type gateway interface {
	RequireAuth(ctx context.Context) (*service.Account, error)
	UserBusinesses(ctx context.Context, accountID string) []service.Business
	CreateBusiness(ctx context.Context, create service.BusinessCreate) (*service.Business, error)
}

// Business is the API response model for a business.
type Business struct {
	ID                 string `json:"id" doc:"Business ID"`
	UserID             string `json:"user_id" doc:"Owning account ID"`
	Name               string `json:"name"`
	Type               string `json:"type" doc:"Business type, e.g. Retail Shop"`
	Description        string `json:"description,omitempty"`
	Location           string `json:"location,omitempty"`
	Phone              string `json:"phone,omitempty"`
	Email              string `json:"email,omitempty"`
	RegistrationNumber string `json:"registration_number,omitempty"`
	TaxID              string `json:"tax_id,omitempty"`
	IsActive           bool   `json:"is_active"`
	CreatedAt          string `json:"created_at" doc:"RFC3339 creation time"`
	UpdatedAt          string `json:"updated_at" doc:"RFC3339 update time"`
}

// Businesses is a list response. Named so its schema does not collide with a single Business.
type Businesses []Business

// FromService converts the service model to the response model.
func FromService(b service.Business) Business {
	return Business{
		ID:                 b.ID,
		UserID:             b.UserID,
		Name:               b.Name,
		Type:               b.Type,
		Description:        b.Description,
		Location:           b.Location,
		Phone:              b.Phone,
		Email:              b.Email,
		RegistrationNumber: b.RegistrationNumber,
		TaxID:              b.TaxID,
		IsActive:           b.IsActive,
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          b.UpdatedAt.Format(time.RFC3339),
	}
}
