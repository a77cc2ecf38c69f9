package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/hustler-ledger/ledger-server/internal/handlers/v1/business"
	"github.com/hustler-ledger/ledger-server/internal/handlers/v1/envelope"
)

// MeOutput is the Huma output for the current user.
type MeOutput struct {
	Body envelope.Envelope[MeData]
}

// MeHandler handles GET /auth/me.
type MeHandler struct {
	Gateway gateway
}

func NewMeHandler(gw gateway) *MeHandler {
	return &MeHandler{Gateway: gw}
}

func (h *MeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "auth-me",
		Method:      http.MethodGet,
		Path:        "/auth/me",
		Summary:     "Current user",
		Description: "Returns the signed-in account and its active business, if any.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *MeHandler) handle(ctx context.Context, _ *struct{}) (*MeOutput, error) {
	account, err := h.Gateway.RequireAuth(ctx)
	if err != nil {
		return nil, envelope.FromServiceError(err, http.StatusUnauthorized)
	}

	data := MeData{User: toUser(*account)}
	if active := h.Gateway.ActiveBusiness(ctx, account.ID); active != nil {
		b := business.FromService(*active)
		data.Business = &b
	}
	return &MeOutput{Body: envelope.OK(data)}, nil
}
