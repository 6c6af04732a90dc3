package memory_storage

import (
	"context"
	"log/slog"
	"sync"

	"pinstack-blog-service/internal/custom_errors"
	model "pinstack-blog-service/internal/domain/models"
	ports "pinstack-blog-service/internal/domain/ports/output"
	"pinstack-blog-service/internal/domain/ports/output/storage"
)

var _ storage.PostStorage = (*PostStorage)(nil)

// PostStorage keeps the document in process memory. It reports
// ErrStorageNotFound until the first SaveAll, like a file that was never
// written.
type PostStorage struct {
	log   ports.Logger
	mu    sync.RWMutex
	posts model.PostCollection
	saved bool
}

func NewPostStorage(log ports.Logger) *PostStorage {
	return &PostStorage{log: log}
}

func (p *PostStorage) LoadAll(ctx context.Context) (model.PostCollection, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.saved {
		return nil, custom_errors.ErrStorageNotFound
	}

	return p.posts.Clone(), nil
}

func (p *PostStorage) SaveAll(ctx context.Context, posts model.PostCollection) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.posts = posts.Clone()
	p.saved = true

	p.log.Debug("Stored posts in memory", slog.Int("count", len(p.posts)))
	return nil
}
