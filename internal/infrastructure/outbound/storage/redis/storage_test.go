package redis_storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinstack-blog-service/internal/custom_errors"
	model "pinstack-blog-service/internal/domain/models"
	"pinstack-blog-service/internal/infrastructure/logger"
)

type fakeRedis struct {
	values map[string]string
	getErr error
	setErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: make(map[string]string)}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	val, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(val, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	switch v := value.(type) {
	case []byte:
		f.values[key] = string(v)
	case string:
		f.values[key] = v
	}
	return redis.NewStatusResult("OK", nil)
}

func TestPostStorage_LoadAll(t *testing.T) {
	log := logger.New("test")

	tests := []struct {
		name    string
		setup   func(f *fakeRedis)
		want    model.PostCollection
		wantErr error
	}{
		{
			name:    "missing key",
			setup:   func(f *fakeRedis) {},
			wantErr: custom_errors.ErrStorageNotFound,
		},
		{
			name:    "corrupt value",
			setup:   func(f *fakeRedis) { f.values["blog:posts"] = "not json" },
			wantErr: custom_errors.ErrStorageCorrupt,
		},
		{
			name:    "connection error",
			setup:   func(f *fakeRedis) { f.getErr = errors.New("connection refused") },
			wantErr: custom_errors.ErrStorageRead,
		},
		{
			name:  "stored document",
			setup: func(f *fakeRedis) { f.values["blog:posts"] = `[{"id":1,"author":"A","title":"T","content":"C"}]` },
			want:  model.PostCollection{{ID: 1, Author: "A", Title: "T", Content: "C"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeRedis()
			tt.setup(f)
			s := NewPostStorage(f, "blog:posts", log)

			got, err := s.LoadAll(context.Background())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPostStorage_SaveAll(t *testing.T) {
	log := logger.New("test")
	posts := model.PostCollection{{ID: 2, Author: "B", Title: "T2", Content: "C2"}, {ID: 1}}

	t.Run("RoundTrip", func(t *testing.T) {
		s := NewPostStorage(newFakeRedis(), "blog:posts", log)

		require.NoError(t, s.SaveAll(context.Background(), posts))
		got, err := s.LoadAll(context.Background())

		require.NoError(t, err)
		assert.Equal(t, posts, got)
	})

	t.Run("WriteError", func(t *testing.T) {
		f := newFakeRedis()
		f.setErr = errors.New("READONLY You can't write against a read only replica")
		s := NewPostStorage(f, "blog:posts", log)

		err := s.SaveAll(context.Background(), posts)

		assert.ErrorIs(t, err, custom_errors.ErrStorageWrite)
	})
}
