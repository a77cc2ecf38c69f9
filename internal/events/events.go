// Package events publishes ledger domain events to downstream consumers.
package events

import (
	"context"
	"time"
)

const (
	TypeAccountSignedUp    = "account.signed_up"
	TypeBusinessCreated    = "business.created"
	TypeTransactionCreated = "transaction.created"
)

// Event is a single domain event. Key groups related events onto one partition.
type Event struct {
	Type       string         `json:"type"`
	Key        string         `json:"key"`
	OccurredAt time.Time      `json:"occurredAt"`
	Payload    map[string]any `json:"payload"`
}

// Publisher delivers events.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

func (NopPublisher) Close() error { return nil }

var _ Publisher = NopPublisher{}
