package transaction

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/hustler-ledger/ledger-server/internal/handlers/v1/envelope"
	"github.com/hustler-ledger/ledger-server/internal/logging"
	"github.com/hustler-ledger/ledger-server/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	Limit int    `query:"limit" minimum:"1" maximum:"500" default:"50" doc:"Maximum number of entries"`
	Type  string `query:"type" enum:"sale,expense,credit,repayment" doc:"Only entries of this kind"`
	Q     string `query:"q" maxLength:"100" doc:"Case-insensitive text matched against description and customer name"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body envelope.Envelope[Transactions]
}

// ListTransactionsHandler handles GET /transactions.
type ListTransactionsHandler struct {
	Gateway gateway
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(gw gateway) *ListTransactionsHandler {
	return &ListTransactionsHandler{Gateway: gw}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/transactions",
		Summary:     "List transactions",
		Description: "Returns the active business's most recent ledger entries, newest first, optionally filtered by kind and text.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	_, business, err := h.Gateway.RequireBusiness(ctx)
	if err != nil {
		return nil, envelope.FromServiceError(err, http.StatusUnauthorized)
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	var transactions []service.Transaction
	search := strings.TrimSpace(input.Q)
	if input.Type != "" || search != "" {
		transactions = h.Gateway.SearchTransactions(ctx, service.TransactionQuery{
			BusinessID: business.ID,
			Type:       service.TransactionKind(input.Type),
			Search:     search,
			Limit:      input.Limit,
		})
	} else {
		transactions = h.Gateway.Transactions(ctx, business.ID, input.Limit)
	}
	if stopTimer != nil {
		stopTimer()
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := make(Transactions, len(transactions))
	for i, tx := range transactions {
		resp[i] = FromService(tx)
	}

	return &ListTransactionsOutput{Body: envelope.OK(resp)}, nil
}
