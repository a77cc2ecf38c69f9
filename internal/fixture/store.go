package fixture

import (
	"context"
	"crypto/subtle"
	"strconv"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/hustler-ledger/ledger-server/internal/service"
)

// Store serves the sample data set. Every sign-in succeeds and every write echoes its input, so it
// must only ever be reachable from a trusted local environment.
type Store struct {
	logger *logrus.Logger
	now    func() time.Time
}

var _ service.IdentityStore = (*Store)(nil)

func NewStore(logger *logrus.Logger) *Store {
	return &Store{
		logger: logger,
		now:    time.Now,
	}
}

func (s *Store) Mode() service.Mode {
	return service.ModeFixture
}

func (s *Store) logCall(op string, input any) {
	s.logger.WithField("op", op).Info("fixture mode: " + op)
	if input != nil && s.logger.IsLevelEnabled(logrus.DebugLevel) {
		s.logger.WithField("op", op).Debug(spew.Sdump(input))
	}
}

func (s *Store) session() service.AuthResult {
	return service.AuthResult{
		User: Account(),
		Session: service.Session{
			AccessToken: SessionToken,
			ExpiresAt:   s.now().Add(day),
		},
	}
}

func (s *Store) SignUp(_ context.Context, req service.SignUpRequest) (*service.AuthResult, error) {
	req.Password = "[redacted]"
	s.logCall("signUp", req)

	result := s.session()
	return &result, nil
}

func (s *Store) SignIn(_ context.Context, email, _ string) (*service.AuthResult, error) {
	s.logCall("signIn", map[string]string{"email": email})

	result := s.session()
	return &result, nil
}

func (s *Store) SignOut(_ context.Context, _ string) error {
	s.logCall("signOut", nil)
	return nil
}

func (s *Store) AccountForSession(_ context.Context, token string) (*service.Account, error) {
	if subtle.ConstantTimeCompare([]byte(token), []byte(SessionToken)) != 1 {
		return nil, service.ErrSessionNotFound
	}

	account := Account()
	return &account, nil
}

func (s *Store) ActiveBusiness(_ context.Context, accountID string) (*service.Business, error) {
	s.logCall("getActiveBusiness", map[string]string{"accountID": accountID})

	business := Business(s.now())
	return &business, nil
}

func (s *Store) UserBusinesses(_ context.Context, accountID string) ([]service.Business, error) {
	s.logCall("getUserBusinesses", map[string]string{"accountID": accountID})

	return []service.Business{Business(s.now())}, nil
}

// CreateBusiness ignores its input and returns the sample business.
func (s *Store) CreateBusiness(_ context.Context, create service.BusinessCreate) (*service.Business, error) {
	s.logCall("createBusiness", create)

	business := Business(s.now())
	return &business, nil
}

// Transactions returns the first limit sample entries. The business id is not consulted.
func (s *Store) Transactions(_ context.Context, businessID string, limit int) ([]service.Transaction, error) {
	s.logCall("getTransactions", map[string]any{"businessID": businessID, "limit": limit})

	txs := Transactions(s.now())
	if limit > 0 && len(txs) > limit {
		txs = txs[:limit]
	}
	return txs, nil
}

// FindTransactions filters the sample entries by type, time and text. The business id is not
// consulted.
func (s *Store) FindTransactions(_ context.Context, query service.TransactionQuery) ([]service.Transaction, error) {
	s.logCall("findTransactions", query)

	txs := []service.Transaction{}
	for _, tx := range Transactions(s.now()) {
		if query.Matches(tx) {
			txs = append(txs, tx)
		}
	}
	if query.Limit > 0 && len(txs) > query.Limit {
		txs = txs[:query.Limit]
	}
	return txs, nil
}

// CreateTransaction echoes the input back with an id taken from the clock's millisecond tick.
func (s *Store) CreateTransaction(_ context.Context, create service.TransactionCreate) (*service.Transaction, error) {
	s.logCall("createTransaction", create)

	now := s.now()
	status := create.Status
	if status == "" {
		status = service.DefaultStatus(create.Type)
	}

	return &service.Transaction{
		ID:              strconv.FormatInt(now.UnixMilli(), 10),
		BusinessID:      create.BusinessID,
		Type:            create.Type,
		Amount:          create.Amount,
		Category:        create.Category,
		Description:     create.Description,
		CustomerName:    create.CustomerName,
		CustomerPhone:   create.CustomerPhone,
		ReferenceNumber: create.ReferenceNumber,
		PaymentMethod:   create.PaymentMethod,
		DueDate:         create.DueDate,
		Status:          status,
		Timestamp:       now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

func (s *Store) Debts(_ context.Context, _ string) ([]service.Debt, error) {
	return Debts(s.now()), nil
}

func (s *Store) Budgets(_ context.Context, _ string) ([]service.Budget, error) {
	return Budgets(), nil
}

func (s *Store) Notifications(_ context.Context, _ string) ([]service.Notification, error) {
	return Notifications(s.now()), nil
}
