package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hustler-ledger/ledger-server/internal/events"
)

func testBusiness() *Business {
	return &Business{ID: "biz-1", UserID: "acc-1", Name: "X", Type: "Retail Shop", IsActive: true, CreatedAt: testNow}
}

func TestActiveBusiness_NotFoundIsNil(t *testing.T) {
	gw, store, _ := newTestGateway(t)

	store.On("ActiveBusiness", mock.Anything, "acc-1").Return(nil, ErrNotFound)

	assert.Nil(t, gw.ActiveBusiness(context.Background(), "acc-1"))
}

func TestActiveBusiness_FailureSwallowed(t *testing.T) {
	gw, store, _ := newTestGateway(t)

	store.On("ActiveBusiness", mock.Anything, "acc-1").Return(nil, errors.New("timeout"))

	assert.Nil(t, gw.ActiveBusiness(context.Background(), "acc-1"))
}

func TestUserBusinesses_FailureIsEmpty(t *testing.T) {
	gw, store, _ := newTestGateway(t)

	store.On("UserBusinesses", mock.Anything, "acc-1").Return(nil, errors.New("timeout"))

	got := gw.UserBusinesses(context.Background(), "acc-1")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCreateBusiness_Success(t *testing.T) {
	gw, store, publisher := newTestGateway(t)

	create := BusinessCreate{UserID: "acc-1", Name: "X", Type: "Retail Shop"}
	store.On("CreateBusiness", mock.Anything, create).Return(testBusiness(), nil)
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e events.Event) bool {
		return e.Type == events.TypeBusinessCreated && e.Key == "biz-1" && e.Payload["name"] == "X"
	})).Return(nil)

	got, err := gw.CreateBusiness(context.Background(), create)

	assert.NoError(t, err)
	assert.Equal(t, "X", got.Name)
}

func TestCreateBusiness_PersistenceError(t *testing.T) {
	gw, store, _ := newTestGateway(t)

	cause := errors.New(`insert or update on table "businesses" violates foreign key constraint`)
	store.On("CreateBusiness", mock.Anything, mock.Anything).Return(nil, cause)

	got, err := gw.CreateBusiness(context.Background(), BusinessCreate{UserID: "acc-1", Name: "X", Type: "Retail Shop"})

	assert.Nil(t, got)
	var persistErr *PersistenceError
	require.ErrorAs(t, err, &persistErr)
	assert.Equal(t, cause.Error(), err.Error(), "message passed through verbatim")
	assert.ErrorIs(t, err, cause)
}

// Round trip against a store that remembers what was written, as the remote store does.
func TestCreateBusiness_ThenActiveBusinessRoundTrip(t *testing.T) {
	gw, store, publisher := newTestGateway(t)

	created := testBusiness()
	store.On("CreateBusiness", mock.Anything, mock.Anything).Return(created, nil)
	store.On("ActiveBusiness", mock.Anything, "acc-1").Return(created, nil)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	_, err := gw.CreateBusiness(context.Background(), BusinessCreate{UserID: "acc-1", Name: "X", Type: "Retail Shop"})
	require.NoError(t, err)

	active := gw.ActiveBusiness(context.Background(), "acc-1")
	require.NotNil(t, active)
	assert.Equal(t, "X", active.Name)
}

// -- RequireBusiness tests --

func TestRequireBusiness_NoSessionFailsAuthFirst(t *testing.T) {
	gw, store, _ := newTestGateway(t)

	account, business, err := gw.RequireBusiness(context.Background())

	assert.Nil(t, account)
	assert.Nil(t, business)
	assert.ErrorIs(t, err, ErrAuthenticationRequired)
	assert.NotErrorIs(t, err, ErrBusinessRequired)
	store.AssertNotCalled(t, "ActiveBusiness")
}

func TestRequireBusiness_NoBusiness(t *testing.T) {
	gw, store, _ := newTestGateway(t)

	store.On("AccountForSession", mock.Anything, "tok").Return(testAccount(), nil)
	store.On("ActiveBusiness", mock.Anything, "acc-1").Return(nil, ErrNotFound)

	account, business, err := gw.RequireBusiness(authedContext("tok"))

	assert.NotNil(t, account)
	assert.Nil(t, business)
	assert.ErrorIs(t, err, ErrBusinessRequired)
}

func TestRequireBusiness_LookupFailureIsDistinct(t *testing.T) {
	gw, store, _ := newTestGateway(t)

	store.On("AccountForSession", mock.Anything, "tok").Return(testAccount(), nil)
	store.On("ActiveBusiness", mock.Anything, "acc-1").Return(nil, errors.New("connection refused"))

	_, _, err := gw.RequireBusiness(authedContext("tok"))

	var lookupErr *BusinessLookupError
	assert.ErrorAs(t, err, &lookupErr)
	assert.NotErrorIs(t, err, ErrBusinessRequired)
}

func TestRequireBusiness_Success(t *testing.T) {
	gw, store, _ := newTestGateway(t)

	store.On("AccountForSession", mock.Anything, "tok").Return(testAccount(), nil)
	store.On("ActiveBusiness", mock.Anything, "acc-1").Return(testBusiness(), nil)

	account, business, err := gw.RequireBusiness(authedContext("tok"))

	assert.NoError(t, err)
	assert.Equal(t, "acc-1", account.ID)
	assert.Equal(t, "biz-1", business.ID)
}
