package remote

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/hustler-ledger/ledger-server/internal/operator/actions"
	"github.com/hustler-ledger/ledger-server/internal/service"
	"github.com/hustler-ledger/ledger-server/internal/storage"
	"github.com/hustler-ledger/ledger-server/internal/storage/sqlconfig"
)

const notificationLimit = 20

var errInvalidCredentials = &service.StoreError{
	Code:    service.CodeInvalidCredentials,
	Message: "Invalid login credentials",
}

// processor runs a write action inside one database transaction.
type processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Store is the persistent IdentityStore. Reads go straight to the pool; every write is queued on the
// operator and runs in its own transaction.
type Store struct {
	reader     *storage.Reader
	operator   processor
	sessionTTL time.Duration
	logger     *logrus.Logger
	now        func() time.Time
}

var _ service.IdentityStore = (*Store)(nil)

func NewStore(reader *storage.Reader, op processor, sessionTTL time.Duration, logger *logrus.Logger) *Store {
	return &Store{
		reader:     reader,
		operator:   op,
		sessionTTL: sessionTTL,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *Store) Mode() service.Mode {
	return service.ModeRemote
}

func (s *Store) SignUp(ctx context.Context, req service.SignUpRequest) (*service.AuthResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, &service.StoreError{Code: service.CodeWeakPassword, Message: "Password is too long"}
	}
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	token, err := newSessionToken()
	if err != nil {
		return nil, err
	}

	action := &actions.SignUp{
		Account: sqlconfig.AccountCreate{
			Email:        normalizeEmail(req.Email),
			PasswordHash: string(hash),
			FullName:     strings.TrimSpace(req.FullName),
			Phone:        strings.TrimSpace(req.Phone),
		},
		SessionToken:     token,
		SessionExpiresAt: s.now().Add(s.sessionTTL),
	}
	if err := s.operator.Process(ctx, action); err != nil {
		if isUniqueViolation(err) {
			return nil, &service.StoreError{Code: service.CodeUserAlreadyExists, Message: "User already registered"}
		}
		return nil, err
	}

	return &service.AuthResult{
		User:    toAccount(action.CreatedAccount),
		Session: toSession(action.CreatedSession),
	}, nil
}

func (s *Store) SignIn(ctx context.Context, email, password string) (*service.AuthResult, error) {
	account, err := s.reader.Accounts.FindByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		s.logger.WithField("accountID", account.ID.String()).Info("RemoteStore.SignIn.passwordMismatch")
		return nil, errInvalidCredentials
	}

	token, err := newSessionToken()
	if err != nil {
		return nil, err
	}

	action := &actions.CreateSession{
		AccountID: account.ID,
		Token:     token,
		ExpiresAt: s.now().Add(s.sessionTTL),
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	return &service.AuthResult{
		User:    toAccount(account),
		Session: toSession(action.Created),
	}, nil
}

// SignOut deletes the session. Signing out without a session is not an error.
func (s *Store) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.operator.Process(ctx, &actions.DeleteSession{Token: token})
}

func (s *Store) AccountForSession(ctx context.Context, token string) (*service.Account, error) {
	session, err := s.reader.Sessions.FindActive(ctx, token, s.now())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, service.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	account, err := s.reader.Accounts.FindByID(ctx, session.AccountID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, service.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	result := toAccount(account)
	return &result, nil
}

func (s *Store) ActiveBusiness(ctx context.Context, accountID string) (*service.Business, error) {
	userID, err := uuid.FromString(accountID)
	if err != nil {
		return nil, service.ErrNotFound
	}

	row, err := s.reader.Businesses.FindActiveByUser(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, service.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	business := toBusiness(row)
	return &business, nil
}

func (s *Store) UserBusinesses(ctx context.Context, accountID string) ([]service.Business, error) {
	userID, err := uuid.FromString(accountID)
	if err != nil {
		return []service.Business{}, nil
	}

	rows, err := s.reader.Businesses.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	businesses := make([]service.Business, len(rows))
	for i, row := range rows {
		businesses[i] = toBusiness(row)
	}
	return businesses, nil
}

func (s *Store) CreateBusiness(ctx context.Context, create service.BusinessCreate) (*service.Business, error) {
	userID, err := uuid.FromString(create.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", create.UserID, err)
	}

	action := &actions.CreateBusiness{
		Business: sqlconfig.BusinessCreate{
			UserID:             userID,
			Name:               strings.TrimSpace(create.Name),
			Type:               strings.TrimSpace(create.Type),
			Description:        create.Description,
			Location:           create.Location,
			Phone:              create.Phone,
			Email:              create.Email,
			RegistrationNumber: create.RegistrationNumber,
			TaxID:              create.TaxID,
		},
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	business := toBusiness(action.Created)
	return &business, nil
}

func (s *Store) Transactions(ctx context.Context, businessID string, limit int) ([]service.Transaction, error) {
	id, err := uuid.FromString(businessID)
	if err != nil {
		return []service.Transaction{}, nil
	}

	rows, err := s.reader.Transactions.List(ctx, &sqlconfig.TransactionFilter{BusinessID: id, Limit: limit})
	if err != nil {
		return nil, err
	}

	txs := make([]service.Transaction, len(rows))
	for i, row := range rows {
		txs[i] = toTransaction(row)
	}
	return txs, nil
}

func (s *Store) FindTransactions(ctx context.Context, query service.TransactionQuery) ([]service.Transaction, error) {
	id, err := uuid.FromString(query.BusinessID)
	if err != nil {
		return []service.Transaction{}, nil
	}

	rows, err := s.reader.Transactions.List(ctx, &sqlconfig.TransactionFilter{
		BusinessID: id,
		Type:       string(query.Type),
		Since:      query.Since,
		Search:     query.Search,
		Limit:      query.Limit,
	})
	if err != nil {
		return nil, err
	}

	txs := make([]service.Transaction, len(rows))
	for i, row := range rows {
		txs[i] = toTransaction(row)
	}
	return txs, nil
}

func (s *Store) CreateTransaction(ctx context.Context, create service.TransactionCreate) (*service.Transaction, error) {
	businessID, err := uuid.FromString(create.BusinessID)
	if err != nil {
		return nil, &service.StoreError{Code: service.CodeBusinessNotFound, Message: "business not found"}
	}

	action := &actions.CreateTransaction{
		Transaction: sqlconfig.TransactionCreate{
			BusinessID:      businessID,
			Type:            string(create.Type),
			Amount:          create.Amount,
			Category:        strings.TrimSpace(create.Category),
			Description:     create.Description,
			CustomerName:    create.CustomerName,
			CustomerPhone:   create.CustomerPhone,
			ReferenceNumber: create.ReferenceNumber,
			PaymentMethod:   create.PaymentMethod,
			DueDate:         create.DueDate,
			Status:          string(create.Status),
		},
	}
	if err := s.operator.Process(ctx, action); err != nil {
		if errors.Is(err, actions.ErrBusinessNotFound) {
			return nil, &service.StoreError{Code: service.CodeBusinessNotFound, Message: "business not found"}
		}
		return nil, err
	}

	tx := toTransaction(action.Created)
	return &tx, nil
}

// Debts derives the outstanding debts from unsettled credit entries that carry a due date.
func (s *Store) Debts(ctx context.Context, businessID string) ([]service.Debt, error) {
	id, err := uuid.FromString(businessID)
	if err != nil {
		return []service.Debt{}, nil
	}

	rows, err := s.reader.Transactions.List(ctx, &sqlconfig.TransactionFilter{
		BusinessID: id,
		Type:       string(service.TransactionKindCredit),
		Statuses:   []string{string(service.TransactionStatusPending), string(service.TransactionStatusOverdue)},
		HasDueDate: true,
	})
	if err != nil {
		return nil, err
	}

	now := s.now()
	debts := make([]service.Debt, 0, len(rows))
	for _, row := range rows {
		if debt, ok := service.DebtFromTransaction(toTransaction(row), now); ok {
			debts = append(debts, debt)
		}
	}
	return debts, nil
}

func (s *Store) Budgets(ctx context.Context, businessID string) ([]service.Budget, error) {
	id, err := uuid.FromString(businessID)
	if err != nil {
		return []service.Budget{}, nil
	}

	rows, err := s.reader.Budgets.ListActive(ctx, id)
	if err != nil {
		return nil, err
	}

	budgets := make([]service.Budget, len(rows))
	for i, row := range rows {
		budgets[i] = toBudget(row)
	}
	return budgets, nil
}

func (s *Store) Notifications(ctx context.Context, accountID string) ([]service.Notification, error) {
	id, err := uuid.FromString(accountID)
	if err != nil {
		return []service.Notification{}, nil
	}

	rows, err := s.reader.Notifications.ListByAccount(ctx, id, notificationLimit)
	if err != nil {
		return nil, err
	}

	notifications := make([]service.Notification, len(rows))
	for i, row := range rows {
		notifications[i] = toNotification(row)
	}
	return notifications, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// newSessionToken returns 32 random bytes, hex encoded.
func newSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation"
}
