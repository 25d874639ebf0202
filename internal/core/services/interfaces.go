package services

import (
	"context"
	"time"

	"cmms-backend/internal/core/domain"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// EventPublisher delivers lifecycle events to downstream consumers
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

// Publish implements EventPublisher
func (NopPublisher) Publish(context.Context, domain.Event) error { return nil }

// newEvent stamps an event with a fresh id and the current time
func newEvent(eventType string, payload map[string]any) domain.Event {
	return domain.Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
		Payload:    payload,
	}
}

// publish sends an event after a committed write. Delivery is best effort.
func publish(ctx context.Context, p EventPublisher, eventType string, payload map[string]any) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, newEvent(eventType, payload)); err != nil {
		log.Warnf("⚠️ Failed to publish %s: %v", eventType, err)
	}
}
