package redis_storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"pinstack-blog-service/internal/custom_errors"
	model "pinstack-blog-service/internal/domain/models"
	ports "pinstack-blog-service/internal/domain/ports/output"
	"pinstack-blog-service/internal/domain/ports/output/storage"
)

var _ storage.PostStorage = (*PostStorage)(nil)

type commander interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// PostStorage keeps the whole collection as one JSON string under a single key.
type PostStorage struct {
	client commander
	key    string
	log    ports.Logger
}

func NewPostStorage(client commander, key string, log ports.Logger) *PostStorage {
	return &PostStorage{
		client: client,
		key:    key,
		log:    log,
	}
}

func (s *PostStorage) LoadAll(ctx context.Context) (model.PostCollection, error) {
	val, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			s.log.Debug("Post document key is missing", slog.String("key", s.key))
			return nil, fmt.Errorf("%w: redis key %s", custom_errors.ErrStorageNotFound, s.key)
		}
		return nil, fmt.Errorf("%w: %w", custom_errors.ErrStorageRead, err)
	}

	var posts model.PostCollection
	if err := json.Unmarshal(val, &posts); err != nil {
		return nil, fmt.Errorf("%w: redis key %s: %w", custom_errors.ErrStorageCorrupt, s.key, err)
	}

	s.log.Debug("Read post document from Redis", slog.String("key", s.key), slog.Int("count", len(posts)))
	return posts, nil
}

func (s *PostStorage) SaveAll(ctx context.Context, posts model.PostCollection) error {
	if posts == nil {
		posts = model.PostCollection{}
	}

	data, err := json.MarshalIndent(posts, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: encode: %w", custom_errors.ErrStorageWrite, err)
	}

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: %w", custom_errors.ErrStorageWrite, err)
	}

	s.log.Debug("Wrote post document to Redis", slog.String("key", s.key), slog.Int("count", len(posts)))
	return nil
}
