package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hustler-ledger/ledger-server/internal/events"
)

const defaultTransactionLimit = 50

// Gateway is the single entry point for identity and ledger operations. Writes return an error
// the caller must handle; reads degrade to an empty or nil result and log the failure.
type Gateway struct {
	store     IdentityStore
	publisher events.Publisher
	logger    *logrus.Logger
	now       func() time.Time
}

// NewGateway creates a Gateway over the given store. A nil publisher drops events.
func NewGateway(store IdentityStore, publisher events.Publisher, logger *logrus.Logger) *Gateway {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &Gateway{
		store:     store,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Mode reports which backend serves this gateway.
func (g *Gateway) Mode() Mode {
	return g.store.Mode()
}

func (g *Gateway) publish(ctx context.Context, eventType, key string, payload map[string]any) {
	err := g.publisher.Publish(ctx, events.Event{
		Type:       eventType,
		Key:        key,
		OccurredAt: g.now().UTC(),
		Payload:    payload,
	})
	if err != nil {
		g.logger.WithError(err).WithField("eventType", eventType).Warn("Gateway.publish")
	}
}
