package events

import (
	"context"

	model "pinstack-blog-service/internal/domain/models"
)

//go:generate mockery --name PostEventPublisher --dir . --output ../../../../../mocks/events --outpkg mocks --filename PostEventPublisher.go
type PostEventPublisher interface {
	Publish(ctx context.Context, event model.PostEvent) error
}
