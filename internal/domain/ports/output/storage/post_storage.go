package storage

import (
	"context"

	model "pinstack-blog-service/internal/domain/models"
)

// PostStorage persists the whole post collection as one document.
//
// LoadAll reports a missing document with custom_errors.ErrStorageNotFound and
// an undecodable one with custom_errors.ErrStorageCorrupt.
//
//go:generate mockery --name PostStorage --dir . --output ../../../../../mocks/storage --outpkg mocks --filename PostStorage.go
type PostStorage interface {
	LoadAll(ctx context.Context) (model.PostCollection, error)
	SaveAll(ctx context.Context, posts model.PostCollection) error
}
