package post_service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	post_store "pinstack-blog-service/internal/application/store/post"
	"pinstack-blog-service/internal/custom_errors"
	model "pinstack-blog-service/internal/domain/models"
	input "pinstack-blog-service/internal/domain/ports/input/post"
	ports "pinstack-blog-service/internal/domain/ports/output"
	"pinstack-blog-service/internal/domain/ports/output/events"
)

var _ input.Service = (*PostService)(nil)

// PostService loads the collection fresh on every call and saves it in full
// after every mutation. Two concurrent mutations may interleave their
// load/save cycles; the last save wins.
type PostService struct {
	store     *post_store.Store
	publisher events.PostEventPublisher
	log       ports.Logger
	metrics   ports.MetricsProvider
	now       func() time.Time
}

func NewPostService(
	store *post_store.Store,
	publisher events.PostEventPublisher,
	log ports.Logger,
	metrics ports.MetricsProvider,
) *PostService {
	return &PostService{
		store:     store,
		publisher: publisher,
		log:       log,
		metrics:   metrics,
		now:       time.Now,
	}
}

func (s *PostService) ListPosts(ctx context.Context) (model.PostCollection, error) {
	posts, err := s.store.LoadAll(ctx)
	if err != nil {
		s.metrics.IncrementPostOperations("list", false)
		return nil, err
	}
	s.metrics.IncrementPostOperations("list", true)
	return posts, nil
}

func (s *PostService) GetPost(ctx context.Context, id int64) (*model.Post, error) {
	posts, err := s.store.LoadAll(ctx)
	if err != nil {
		s.metrics.IncrementPostOperations("get", false)
		return nil, err
	}

	post, ok := post_store.FindByID(posts, id)
	if !ok {
		s.log.Debug("Post not found", slog.Int64("id", id))
		s.metrics.IncrementPostOperations("get", false)
		return nil, custom_errors.ErrPostNotFound
	}

	s.metrics.IncrementPostOperations("get", true)
	return &post, nil
}

func (s *PostService) CreatePost(ctx context.Context, dto *model.CreatePostDTO) (*model.Post, error) {
	current, err := s.store.LoadAll(ctx)
	if err != nil {
		s.metrics.IncrementPostOperations("create", false)
		return nil, err
	}

	posts, created := post_store.Create(current, dto)

	if err := s.store.SaveAll(ctx, posts); err != nil {
		s.log.Error("Failed to persist created post", slog.Int64("id", created.ID), slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("create", false)
		return nil, err
	}

	s.log.Info("Post created", slog.Int64("id", created.ID), slog.String("author", created.Author))
	s.metrics.IncrementPostOperations("create", true)
	s.publish(ctx, model.PostEventCreated, created.ID, &created)
	return &created, nil
}

func (s *PostService) UpdatePost(ctx context.Context, id int64, dto *model.UpdatePostDTO) (*model.Post, error) {
	current, err := s.store.LoadAll(ctx)
	if err != nil {
		s.metrics.IncrementPostOperations("update", false)
		return nil, err
	}

	posts, err := post_store.Update(current, id, dto)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found for update", slog.Int64("id", id))
		}
		s.metrics.IncrementPostOperations("update", false)
		return nil, err
	}

	if err := s.store.SaveAll(ctx, posts); err != nil {
		s.log.Error("Failed to persist updated post", slog.Int64("id", id), slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("update", false)
		return nil, err
	}

	updated, _ := post_store.FindByID(posts, id)
	s.log.Info("Post updated", slog.Int64("id", id))
	s.metrics.IncrementPostOperations("update", true)
	s.publish(ctx, model.PostEventUpdated, id, &updated)
	return &updated, nil
}

// DeletePost is idempotent: deleting an absent id succeeds without touching
// storage.
func (s *PostService) DeletePost(ctx context.Context, id int64) error {
	posts, err := s.store.LoadAll(ctx)
	if err != nil {
		s.metrics.IncrementPostOperations("delete", false)
		return err
	}

	remaining := post_store.Delete(posts, id)
	if len(remaining) == len(posts) {
		s.log.Debug("Post already absent, nothing to delete", slog.Int64("id", id))
		s.metrics.IncrementPostOperations("delete", true)
		return nil
	}

	if err := s.store.SaveAll(ctx, remaining); err != nil {
		s.log.Error("Failed to persist post deletion", slog.Int64("id", id), slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("delete", false)
		return err
	}

	s.log.Info("Post deleted", slog.Int64("id", id))
	s.metrics.IncrementPostOperations("delete", true)
	s.publish(ctx, model.PostEventDeleted, id, nil)
	return nil
}

func (s *PostService) publish(ctx context.Context, eventType model.PostEventType, id int64, post *model.Post) {
	event := model.PostEvent{
		Type:       eventType,
		PostID:     id,
		Post:       post,
		OccurredAt: s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("Failed to publish post event",
			slog.String("type", string(eventType)),
			slog.Int64("id", id),
			slog.String("error", err.Error()))
		s.metrics.IncrementEventPublishes(string(eventType), false)
		return
	}
	s.metrics.IncrementEventPublishes(string(eventType), true)
}
