package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/hustler-ledger/ledger-server/internal/events"
)

func testAccount() *Account {
	return &Account{ID: "acc-1", Email: "wanjiku@example.com", FullName: "Wanjiku", Phone: "+254711000000"}
}

// -- SignUp tests --

func TestSignUp_Success(t *testing.T) {
	gw, store, publisher := newTestGateway(t)

	req := SignUpRequest{Email: "wanjiku@example.com", Password: "secret", FullName: "Wanjiku"}
	result := &AuthResult{
		User:    *testAccount(),
		Session: Session{AccessToken: "tok", ExpiresAt: testNow.Add(time.Hour)},
	}
	store.On("SignUp", mock.Anything, req).Return(result, nil)
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e events.Event) bool {
		return e.Type == events.TypeAccountSignedUp && e.Key == "acc-1"
	})).Return(nil)

	got, err := gw.SignUp(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, result, got)
}

func TestSignUp_StoreErrorPropagatedUnchanged(t *testing.T) {
	gw, store, publisher := newTestGateway(t)

	storeErr := &StoreError{Code: CodeUserAlreadyExists, Message: "User already registered"}
	store.On("SignUp", mock.Anything, mock.Anything).Return(nil, storeErr)

	got, err := gw.SignUp(context.Background(), SignUpRequest{Email: "a@b.c", Password: "p", FullName: "A"})

	assert.Nil(t, got)
	assert.Same(t, storeErr, err)
	publisher.AssertNotCalled(t, "Publish")
}

func TestSignUp_PublishFailureIgnored(t *testing.T) {
	gw, store, publisher := newTestGateway(t)

	store.On("SignUp", mock.Anything, mock.Anything).Return(&AuthResult{User: *testAccount()}, nil)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	got, err := gw.SignUp(context.Background(), SignUpRequest{Email: "a@b.c", Password: "p", FullName: "A"})

	assert.NoError(t, err)
	assert.Equal(t, "acc-1", got.User.ID)
}

// -- SignIn / SignOut tests --

func TestSignIn_StoreErrorPropagatedUnchanged(t *testing.T) {
	gw, store, _ := newTestGateway(t)

	storeErr := &StoreError{Code: CodeInvalidCredentials, Message: "Invalid login credentials"}
	store.On("SignIn", mock.Anything, "a@b.c", "wrong").Return(nil, storeErr)

	got, err := gw.SignIn(context.Background(), "a@b.c", "wrong")

	assert.Nil(t, got)
	assert.Same(t, storeErr, err)
	assert.Equal(t, CodeInvalidCredentials, StoreErrorCode(err))
}

func TestSignOut_UsesContextToken(t *testing.T) {
	gw, store, _ := newTestGateway(t)

	store.On("SignOut", mock.Anything, "tok").Return(nil)

	assert.NoError(t, gw.SignOut(authedContext("tok")))
}

func TestSignOut_StoreError(t *testing.T) {
	gw, store, _ := newTestGateway(t)

	store.On("SignOut", mock.Anything, "tok").Return(errors.New("connection reset"))

	err := gw.SignOut(authedContext("tok"))
	assert.EqualError(t, err, "connection reset")
}

// -- CurrentUser / RequireAuth tests --

func TestCurrentUser_NoToken(t *testing.T) {
	gw, store, _ := newTestGateway(t)

	assert.Nil(t, gw.CurrentUser(context.Background()))
	store.AssertNotCalled(t, "AccountForSession")
}

func TestCurrentUser_LookupFailureIsNoUser(t *testing.T) {
	gw, store, _ := newTestGateway(t)

	store.On("AccountForSession", mock.Anything, "tok").Return(nil, errors.New("database unavailable"))

	assert.Nil(t, gw.CurrentUser(authedContext("tok")))
}

func TestCurrentUser_Found(t *testing.T) {
	gw, store, _ := newTestGateway(t)

	store.On("AccountForSession", mock.Anything, "tok").Return(testAccount(), nil)

	assert.Equal(t, testAccount(), gw.CurrentUser(authedContext("tok")))
}

func TestRequireAuth_NoSession(t *testing.T) {
	gw, store, _ := newTestGateway(t)

	store.On("AccountForSession", mock.Anything, "expired").Return(nil, ErrSessionNotFound)

	account, err := gw.RequireAuth(authedContext("expired"))

	assert.Nil(t, account)
	assert.ErrorIs(t, err, ErrAuthenticationRequired)
}
