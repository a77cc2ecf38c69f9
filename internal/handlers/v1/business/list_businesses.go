package business

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/hustler-ledger/ledger-server/internal/handlers/v1/envelope"
	"github.com/hustler-ledger/ledger-server/internal/logging"
)

// ListBusinessesOutput is the Huma output for listing businesses.
type ListBusinessesOutput struct {
	Body envelope.Envelope[Businesses]
}

// ListBusinessesHandler handles GET /business.
type ListBusinessesHandler struct {
	Gateway gateway
}

func NewListBusinessesHandler(gw gateway) *ListBusinessesHandler {
	return &ListBusinessesHandler{Gateway: gw}
}

func (h *ListBusinessesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-businesses",
		Method:      http.MethodGet,
		Path:        "/business",
		Summary:     "List businesses",
		Description: "Returns the signed-in account's active businesses, newest first.",
		Tags:        []string{"Business"},
	}, h.handle)
}

func (h *ListBusinessesHandler) handle(ctx context.Context, _ *struct{}) (*ListBusinessesOutput, error) {
	account, err := h.Gateway.RequireAuth(ctx)
	if err != nil {
		return nil, envelope.FromServiceError(err, http.StatusUnauthorized)
	}

	businesses := h.Gateway.UserBusinesses(ctx, account.ID)
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("businessCount", len(businesses))
	}

	resp := make(Businesses, len(businesses))
	for i, b := range businesses {
		resp[i] = FromService(b)
	}
	return &ListBusinessesOutput{Body: envelope.OK(resp)}, nil
}
