package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"

	"github.com/hustler-ledger/ledger-server/internal/events"
)

type mockIdentityStore struct {
	mock.Mock
}

func (m *mockIdentityStore) Mode() Mode {
	return ModeRemote
}

func (m *mockIdentityStore) SignUp(ctx context.Context, req SignUpRequest) (*AuthResult, error) {
	args := m.Called(ctx, req)
	result, _ := args.Get(0).(*AuthResult)
	return result, args.Error(1)
}

func (m *mockIdentityStore) SignIn(ctx context.Context, email, password string) (*AuthResult, error) {
	args := m.Called(ctx, email, password)
	result, _ := args.Get(0).(*AuthResult)
	return result, args.Error(1)
}

func (m *mockIdentityStore) SignOut(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *mockIdentityStore) AccountForSession(ctx context.Context, token string) (*Account, error) {
	args := m.Called(ctx, token)
	account, _ := args.Get(0).(*Account)
	return account, args.Error(1)
}

func (m *mockIdentityStore) ActiveBusiness(ctx context.Context, accountID string) (*Business, error) {
	args := m.Called(ctx, accountID)
	business, _ := args.Get(0).(*Business)
	return business, args.Error(1)
}

func (m *mockIdentityStore) UserBusinesses(ctx context.Context, accountID string) ([]Business, error) {
	args := m.Called(ctx, accountID)
	businesses, _ := args.Get(0).([]Business)
	return businesses, args.Error(1)
}

func (m *mockIdentityStore) CreateBusiness(ctx context.Context, create BusinessCreate) (*Business, error) {
	args := m.Called(ctx, create)
	business, _ := args.Get(0).(*Business)
	return business, args.Error(1)
}

func (m *mockIdentityStore) Transactions(ctx context.Context, businessID string, limit int) ([]Transaction, error) {
	args := m.Called(ctx, businessID, limit)
	txs, _ := args.Get(0).([]Transaction)
	return txs, args.Error(1)
}

func (m *mockIdentityStore) FindTransactions(ctx context.Context, query TransactionQuery) ([]Transaction, error) {
	args := m.Called(ctx, query)
	txs, _ := args.Get(0).([]Transaction)
	return txs, args.Error(1)
}

func (m *mockIdentityStore) CreateTransaction(ctx context.Context, create TransactionCreate) (*Transaction, error) {
	args := m.Called(ctx, create)
	tx, _ := args.Get(0).(*Transaction)
	return tx, args.Error(1)
}

func (m *mockIdentityStore) Debts(ctx context.Context, businessID string) ([]Debt, error) {
	args := m.Called(ctx, businessID)
	debts, _ := args.Get(0).([]Debt)
	return debts, args.Error(1)
}

func (m *mockIdentityStore) Budgets(ctx context.Context, businessID string) ([]Budget, error) {
	args := m.Called(ctx, businessID)
	budgets, _ := args.Get(0).([]Budget)
	return budgets, args.Error(1)
}

func (m *mockIdentityStore) Notifications(ctx context.Context, accountID string) ([]Notification, error) {
	args := m.Called(ctx, accountID)
	notifications, _ := args.Get(0).([]Notification)
	return notifications, args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, event events.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *mockPublisher) Close() error {
	return nil
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

var testNow = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

func newTestGateway(t *testing.T) (*Gateway, *mockIdentityStore, *mockPublisher) {
	t.Helper()
	store := new(mockIdentityStore)
	publisher := new(mockPublisher)
	gw := NewGateway(store, publisher, quietLogger())
	gw.now = func() time.Time { return testNow }
	t.Cleanup(func() {
		store.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})
	return gw, store, publisher
}

func authedContext(token string) context.Context {
	return WithSessionToken(context.Background(), token)
}
