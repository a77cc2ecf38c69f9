package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/hustler-ledger/ledger-server/internal/handlers/v1/envelope"
	"github.com/hustler-ledger/ledger-server/internal/logging"
	"github.com/hustler-ledger/ledger-server/internal/service"
)

// CreateTransactionBody is the request body for recording a ledger entry.
type CreateTransactionBody struct {
	Type            string `json:"type" enum:"sale,expense,credit,repayment" doc:"Entry kind"`
	Amount          string `json:"amount" required:"true" doc:"Non-negative decimal amount"`
	Category        string `json:"category,omitempty" doc:"Category"`
	Description     string `json:"description,omitempty"`
	CustomerName    string `json:"customer_name,omitempty"`
	CustomerPhone   string `json:"customer_phone,omitempty"`
	ReferenceNumber string `json:"reference_number,omitempty"`
	PaymentMethod   string `json:"payment_method,omitempty"`
	DueDate         string `json:"due_date,omitempty" doc:"RFC3339 due date, for credit"`
	Status          string `json:"status,omitempty" enum:"pending,completed,overdue,cancelled" doc:"Defaults to pending for credit, completed otherwise"`
}

// CreateTransactionInput is the Huma input for recording a ledger entry.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for recording a ledger entry.
type CreateTransactionOutput struct {
	Body envelope.Envelope[Transaction]
}

// CreateTransactionHandler handles POST /transactions.
type CreateTransactionHandler struct {
	Gateway gateway
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(gw gateway) *CreateTransactionHandler {
	return &CreateTransactionHandler{Gateway: gw}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/transactions",
		Summary:       "Record transaction",
		Description:   "Records a ledger entry for the signed-in account's active business.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateTransactionInput turns the body into a TransactionCreate for businessID.
func parseCreateTransactionInput(input *CreateTransactionInput, businessID string) (service.TransactionCreate, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return service.TransactionCreate{}, huma.NewError(http.StatusBadRequest, "invalid amount")
	}

	create := service.TransactionCreate{
		BusinessID:      businessID,
		Type:            service.TransactionKind(input.Body.Type),
		Amount:          amount,
		Category:        input.Body.Category,
		Description:     input.Body.Description,
		CustomerName:    input.Body.CustomerName,
		CustomerPhone:   input.Body.CustomerPhone,
		ReferenceNumber: input.Body.ReferenceNumber,
		PaymentMethod:   input.Body.PaymentMethod,
		Status:          service.TransactionStatus(input.Body.Status),
	}

	if input.Body.DueDate != "" {
		due, err := time.Parse(time.RFC3339, input.Body.DueDate)
		if err != nil {
			return service.TransactionCreate{}, huma.NewError(http.StatusBadRequest, "invalid due_date")
		}
		create.DueDate = &due
	}

	if err := service.ValidateTransactionCreate(create); err != nil {
		return service.TransactionCreate{}, envelope.FromServiceError(err, http.StatusBadRequest)
	}
	return create, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	_, business, err := h.Gateway.RequireBusiness(ctx)
	if err != nil {
		return nil, envelope.FromServiceError(err, http.StatusUnauthorized)
	}

	create, err := parseCreateTransactionInput(input, business.ID)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		logData.AddData("businessID", business.ID)
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	created, err := h.Gateway.CreateTransaction(ctx, create)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, envelope.FromServiceError(err, http.StatusBadRequest)
	}

	return &CreateTransactionOutput{Body: envelope.OK(FromService(*created))}, nil
}
