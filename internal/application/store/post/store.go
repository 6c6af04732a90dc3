// Package post_store owns the post collection: loading and saving it through
// a PostStorage backend, looking posts up and assigning identifiers.
//
// Every operation works on a full snapshot of the collection. The pure
// operations (FindByID, NextID, Create, Update, Delete) never modify the
// collection they are given; mutations return a new collection that the
// caller persists with SaveAll.
package post_store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pinstack-blog-service/internal/custom_errors"
	model "pinstack-blog-service/internal/domain/models"
	ports "pinstack-blog-service/internal/domain/ports/output"
	"pinstack-blog-service/internal/domain/ports/output/storage"
)

type Store struct {
	storage storage.PostStorage
	log     ports.Logger
	metrics ports.MetricsProvider
}

func NewStore(storage storage.PostStorage, log ports.Logger, metrics ports.MetricsProvider) *Store {
	return &Store{
		storage: storage,
		log:     log,
		metrics: metrics,
	}
}

// LoadAll treats a missing or corrupt document as an empty collection, so the
// first run initialises itself. Any other read failure is returned wrapped in
// custom_errors.ErrStorageRead; callers must not save over a document they
// could not read.
func (s *Store) LoadAll(ctx context.Context) (model.PostCollection, error) {
	start := time.Now()
	posts, err := s.storage.LoadAll(ctx)
	s.metrics.RecordStorageOperationDuration("load", time.Since(start))
	if err != nil {
		s.metrics.IncrementStorageOperations("load", false)
		switch {
		case errors.Is(err, custom_errors.ErrStorageNotFound):
			s.log.Info("Post storage does not exist yet, starting empty", slog.String("error", err.Error()))
			s.metrics.IncrementStorageLoadFallbacks("absent")
			return model.PostCollection{}, nil
		case errors.Is(err, custom_errors.ErrStorageCorrupt):
			s.log.Warn("Post storage is corrupt, treating as empty", slog.String("error", err.Error()))
			s.metrics.IncrementStorageLoadFallbacks("corrupt")
			return model.PostCollection{}, nil
		}

		s.log.Error("Failed to read post storage", slog.String("error", err.Error()))
		if errors.Is(err, custom_errors.ErrStorageRead) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", custom_errors.ErrStorageRead, err)
	}

	s.metrics.IncrementStorageOperations("load", true)
	if posts == nil {
		return model.PostCollection{}, nil
	}
	s.log.Debug("Loaded posts", slog.Int("count", len(posts)))
	return posts, nil
}

func (s *Store) SaveAll(ctx context.Context, posts model.PostCollection) error {
	start := time.Now()
	err := s.storage.SaveAll(ctx, posts)
	s.metrics.RecordStorageOperationDuration("save", time.Since(start))
	if err != nil {
		s.metrics.IncrementStorageOperations("save", false)
		s.log.Error("Failed to save posts", slog.Int("count", len(posts)), slog.String("error", err.Error()))
		if errors.Is(err, custom_errors.ErrStorageWrite) {
			return err
		}
		return fmt.Errorf("%w: %w", custom_errors.ErrStorageWrite, err)
	}

	s.metrics.IncrementStorageOperations("save", true)
	s.log.Debug("Saved posts", slog.Int("count", len(posts)))
	return nil
}

// FindByID returns the first post with the given id.
func FindByID(posts model.PostCollection, id int64) (model.Post, bool) {
	if i := indexOf(posts, id); i >= 0 {
		return posts[i], true
	}
	return model.Post{}, false
}

// NextID is max(id)+1 over the snapshot, or 1 for an empty collection. Deleting
// the highest post therefore frees its id for the next create.
func NextID(posts model.PostCollection) int64 {
	var maxID int64
	for _, post := range posts {
		if post.ID > maxID {
			maxID = post.ID
		}
	}
	return maxID + 1
}

func Create(posts model.PostCollection, input *model.CreatePostDTO) (model.PostCollection, model.Post) {
	post := model.Post{
		ID:      NextID(posts),
		Author:  input.Author,
		Title:   input.Title,
		Content: input.Content,
	}

	updated := make(model.PostCollection, len(posts), len(posts)+1)
	copy(updated, posts)
	updated = append(updated, post)
	return updated, post
}

// Update replaces author, title and content of the post with the given id,
// keeping its id and position. It returns custom_errors.ErrPostNotFound and
// the original collection when no such post exists.
func Update(posts model.PostCollection, id int64, input *model.UpdatePostDTO) (model.PostCollection, error) {
	i := indexOf(posts, id)
	if i < 0 {
		return posts, custom_errors.ErrPostNotFound
	}

	updated := posts.Clone()
	updated[i].Author = input.Author
	updated[i].Title = input.Title
	updated[i].Content = input.Content
	return updated, nil
}

// Delete removes the first post with the given id. Deleting an absent id
// returns the collection unchanged.
func Delete(posts model.PostCollection, id int64) model.PostCollection {
	i := indexOf(posts, id)
	if i < 0 {
		return posts
	}

	updated := make(model.PostCollection, 0, len(posts)-1)
	updated = append(updated, posts[:i]...)
	updated = append(updated, posts[i+1:]...)
	return updated
}

func indexOf(posts model.PostCollection, id int64) int {
	for i := range posts {
		if posts[i].ID == id {
			return i
		}
	}
	return -1
}
