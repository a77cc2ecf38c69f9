package business

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/hustler-ledger/ledger-server/internal/handlers/v1/envelope"
	"github.com/hustler-ledger/ledger-server/internal/service"
)

// CreateBusinessBody is the request body for registering a business.
type CreateBusinessBody struct {
	Name               string `json:"name,omitempty" doc:"Business name"`
	Type               string `json:"type,omitempty" doc:"Business type"`
	Description        string `json:"description,omitempty"`
	Location           string `json:"location,omitempty"`
	Phone              string `json:"phone,omitempty"`
	Email              string `json:"email,omitempty"`
	RegistrationNumber string `json:"registration_number,omitempty"`
	TaxID              string `json:"tax_id,omitempty"`
}

// CreateBusinessInput is the Huma input for registering a business.
type CreateBusinessInput struct {
	Body CreateBusinessBody
}

// CreateBusinessOutput is the Huma output for registering a business.
type CreateBusinessOutput struct {
	Body envelope.Envelope[Business]
}

// CreateBusinessHandler handles POST /business.
type CreateBusinessHandler struct {
	Gateway gateway
}

func NewCreateBusinessHandler(gw gateway) *CreateBusinessHandler {
	return &CreateBusinessHandler{Gateway: gw}
}

func (h *CreateBusinessHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-business",
		Method:        http.MethodPost,
		Path:          "/business",
		Summary:       "Register business",
		Description:   "Registers a business owned by the signed-in account.",
		Tags:          []string{"Business"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateBusinessHandler) handle(ctx context.Context, input *CreateBusinessInput) (*CreateBusinessOutput, error) {
	account, err := h.Gateway.RequireAuth(ctx)
	if err != nil {
		return nil, envelope.FromServiceError(err, http.StatusUnauthorized)
	}

	create := service.BusinessCreate{
		UserID:             account.ID,
		Name:               input.Body.Name,
		Type:               input.Body.Type,
		Description:        input.Body.Description,
		Location:           input.Body.Location,
		Phone:              input.Body.Phone,
		Email:              input.Body.Email,
		RegistrationNumber: input.Body.RegistrationNumber,
		TaxID:              input.Body.TaxID,
	}
	if err := service.ValidateBusinessCreate(create); err != nil {
		return nil, envelope.FromServiceError(err, http.StatusBadRequest)
	}

	created, err := h.Gateway.CreateBusiness(ctx, create)
	if err != nil {
		return nil, envelope.FromServiceError(err, http.StatusBadRequest)
	}

	return &CreateBusinessOutput{Body: envelope.OK(FromService(*created))}, nil
}
