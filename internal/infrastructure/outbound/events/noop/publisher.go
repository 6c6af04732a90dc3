package noop_events

import (
	"context"

	model "pinstack-blog-service/internal/domain/models"
	"pinstack-blog-service/internal/domain/ports/output/events"
)

var _ events.PostEventPublisher = Publisher{}

// Publisher drops every event. Used when no broker is configured.
type Publisher struct{}

func (Publisher) Publish(context.Context, model.PostEvent) error {
	return nil
}
