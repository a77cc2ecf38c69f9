package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hustler-ledger/ledger-server/internal/handlers/v1/envelope"
	"github.com/hustler-ledger/ledger-server/internal/service"
)

// mockGateway is a mock for gateway.
type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) RequireBusiness(ctx context.Context) (*service.Account, *service.Business, error) {
	args := m.Called(ctx)
	account, _ := args.Get(0).(*service.Account)
	business, _ := args.Get(1).(*service.Business)
	return account, business, args.Error(2)
}

func (m *mockGateway) Transactions(ctx context.Context, businessID string, limit int) []service.Transaction {
	args := m.Called(ctx, businessID, limit)
	return args.Get(0).([]service.Transaction)
}

func (m *mockGateway) SearchTransactions(ctx context.Context, query service.TransactionQuery) []service.Transaction {
	args := m.Called(ctx, query)
	return args.Get(0).([]service.Transaction)
}

func (m *mockGateway) CreateTransaction(ctx context.Context, create service.TransactionCreate) (*service.Transaction, error) {
	args := m.Called(ctx, create)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

// newTestAPI registers both handlers against a humatest API and returns it.
func newTestAPI(t *testing.T, gw gateway) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t, envelope.Config("Test API", "1.0.0"))
	NewCreateTransactionHandler(gw).Register(api)
	NewListTransactionsHandler(gw).Register(api)
	return api
}

var (
	testAccount  = &service.Account{ID: "acc-1"}
	testBusiness = &service.Business{ID: "biz-1", UserID: "acc-1"}
)

func signedIn(gw *mockGateway) {
	gw.On("RequireBusiness", mock.Anything).Return(testAccount, testBusiness, nil)
}

// -- parseCreateTransactionInput unit tests --

func TestParseCreateTransactionInput_ValidInput(t *testing.T) {
	input := &CreateTransactionInput{
		Body: CreateTransactionBody{
			Type:         "credit",
			Amount:       "1500.50",
			Category:     "Vegetables",
			CustomerName: "Jane Smith",
			DueDate:      "2025-07-08T00:00:00Z",
		},
	}

	create, err := parseCreateTransactionInput(input, "biz-1")
	require.NoError(t, err)
	assert.Equal(t, "biz-1", create.BusinessID)
	assert.Equal(t, service.TransactionKindCredit, create.Type)
	assert.True(t, create.Amount.Equal(decimal.RequireFromString("1500.50")))
	assert.Equal(t, "Jane Smith", create.CustomerName)
	require.NotNil(t, create.DueDate)
	assert.True(t, create.DueDate.Equal(time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, service.TransactionStatus(""), create.Status)
}

func TestParseCreateTransactionInput_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body CreateTransactionBody
		msg  string
	}{
		{"bad amount", CreateTransactionBody{Type: "sale", Amount: "lots", Category: "Food"}, "invalid amount"},
		{"negative amount", CreateTransactionBody{Type: "sale", Amount: "-1", Category: "Food"}, "amount must not be negative"},
		{"sub-cent amount", CreateTransactionBody{Type: "sale", Amount: "10.555", Category: "Food"}, "amount must have at most two decimal places"},
		{"amount too large", CreateTransactionBody{Type: "sale", Amount: "1000000000000", Category: "Food"}, "amount must not exceed 999999999999.99"},
		{"bad due date", CreateTransactionBody{Type: "credit", Amount: "1", Category: "Food", DueDate: "next week"}, "invalid due_date"},
		{"no category", CreateTransactionBody{Type: "sale", Amount: "1"}, "category is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseCreateTransactionInput(&CreateTransactionInput{Body: tt.body}, "biz-1")
			var body *envelope.ErrorBody
			require.ErrorAs(t, err, &body)
			assert.Equal(t, http.StatusBadRequest, body.Status)
			assert.Equal(t, tt.msg, body.Message)
		})
	}
}

// -- HTTP tests (full Huma stack via humatest) --

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	gw := new(mockGateway)
	signedIn(gw)
	gw.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(c service.TransactionCreate) bool {
		return c.BusinessID == "biz-1" &&
			c.Type == service.TransactionKindSale &&
			c.Amount.Equal(decimal.RequireFromString("2500")) &&
			c.Category == "Vegetables"
	})).Return(&service.Transaction{
		ID: "tx-1", BusinessID: "biz-1", Type: service.TransactionKindSale,
		Amount: decimal.RequireFromString("2500"), Category: "Vegetables",
		Status: service.TransactionStatusCompleted, Timestamp: now, CreatedAt: now,
	}, nil)

	resp := newTestAPI(t, gw).Post("/transactions", CreateTransactionBody{
		Type: "sale", Amount: "2500", Category: "Vegetables",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body envelope.Envelope[Transaction]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "tx-1", body.Data.ID)
	assert.Equal(t, "2500", body.Data.Amount)
	assert.Equal(t, "completed", body.Data.Status)
	assert.Nil(t, body.Data.DueDate)
	gw.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_UnknownType(t *testing.T) {
	gw := new(mockGateway)
	signedIn(gw)

	// the enum tag rejects this before the handler body runs
	resp := newTestAPI(t, gw).Post("/transactions", map[string]any{
		"type": "gift", "amount": "10", "category": "Food",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	gw.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
}

func TestHTTP_CreateTransaction_NoBusiness(t *testing.T) {
	gw := new(mockGateway)
	gw.On("RequireBusiness", mock.Anything).Return(testAccount, nil, service.ErrBusinessRequired)

	resp := newTestAPI(t, gw).Post("/transactions", CreateTransactionBody{Type: "sale", Amount: "1", Category: "Food"})

	assert.Equal(t, http.StatusForbidden, resp.Code)
	assert.JSONEq(t, `{"error":"Business registration required"}`, resp.Body.String())
}

func TestHTTP_CreateTransaction_StoreError(t *testing.T) {
	gw := new(mockGateway)
	signedIn(gw)
	gw.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(nil, &service.PersistenceError{Op: "createTransaction", Err: errors.New("business not found")})

	resp := newTestAPI(t, gw).Post("/transactions", CreateTransactionBody{Type: "sale", Amount: "1", Category: "Food"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"error":"business not found"}`, resp.Body.String())
}
