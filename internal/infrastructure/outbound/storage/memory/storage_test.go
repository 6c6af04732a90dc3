package memory_storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinstack-blog-service/internal/custom_errors"
	model "pinstack-blog-service/internal/domain/models"
	"pinstack-blog-service/internal/infrastructure/logger"
	memory_storage "pinstack-blog-service/internal/infrastructure/outbound/storage/memory"
)

func TestPostStorage(t *testing.T) {
	s := memory_storage.NewPostStorage(logger.New("test"))
	ctx := context.Background()

	t.Run("NotFoundBeforeFirstSave", func(t *testing.T) {
		_, err := s.LoadAll(ctx)
		assert.ErrorIs(t, err, custom_errors.ErrStorageNotFound)
	})

	t.Run("SaveThenLoad", func(t *testing.T) {
		posts := model.PostCollection{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}}
		require.NoError(t, s.SaveAll(ctx, posts))

		posts[0].Title = "mutated after save"

		got, err := s.LoadAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, model.PostCollection{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}}, got)
	})

	t.Run("LoadedCopyIsIsolated", func(t *testing.T) {
		got, err := s.LoadAll(ctx)
		require.NoError(t, err)
		got[0].Title = "changed"

		again, err := s.LoadAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, "A", again[0].Title)
	})

	t.Run("SaveEmpty", func(t *testing.T) {
		require.NoError(t, s.SaveAll(ctx, nil))

		got, err := s.LoadAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.NotNil(t, got)
	})
}
