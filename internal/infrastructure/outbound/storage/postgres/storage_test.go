package postgres_storage_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinstack-blog-service/internal/custom_errors"
	model "pinstack-blog-service/internal/domain/models"
	"pinstack-blog-service/internal/infrastructure/logger"
	prometheus_metrics "pinstack-blog-service/internal/infrastructure/outbound/metrics/prometheus"
	postgres_storage "pinstack-blog-service/internal/infrastructure/outbound/storage/postgres"
)

type fakeRow struct {
	body []byte
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*[]byte)) = r.body
	return nil
}

// fakeDB stores documents by name and records the last statement arguments.
type fakeDB struct {
	documents map[string][]byte
	queryErr  error
	execErr   error
	lastArgs  pgx.NamedArgs
}

func newFakeDB() *fakeDB {
	return &fakeDB{documents: make(map[string][]byte)}
}

func (f *fakeDB) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	if f.execErr != nil {
		return pgconn.CommandTag{}, f.execErr
	}
	args := arguments[0].(pgx.NamedArgs)
	f.lastArgs = args
	f.documents[args["name"].(string)] = args["body"].([]byte)
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (f *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if f.queryErr != nil {
		return fakeRow{err: f.queryErr}
	}
	name := args[0].(pgx.NamedArgs)["name"].(string)
	body, ok := f.documents[name]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{body: body}
}

func TestPostStorage_LoadAll(t *testing.T) {
	log := logger.New("test")
	metrics := prometheus_metrics.NewPrometheusMetricsProvider()

	tests := []struct {
		name    string
		setup   func(db *fakeDB)
		want    model.PostCollection
		wantErr error
	}{
		{
			name:    "no row",
			setup:   func(db *fakeDB) {},
			wantErr: custom_errors.ErrStorageNotFound,
		},
		{
			name:    "query error",
			setup:   func(db *fakeDB) { db.queryErr = errors.New("connection reset") },
			wantErr: custom_errors.ErrStorageRead,
		},
		{
			name:    "corrupt body",
			setup:   func(db *fakeDB) { db.documents["posts"] = []byte(`{"id":1}`) },
			wantErr: custom_errors.ErrStorageCorrupt,
		},
		{
			name:  "stored document",
			setup: func(db *fakeDB) { db.documents["posts"] = []byte(`[{"id":4,"author":"A","title":"T","content":"C"}]`) },
			want:  model.PostCollection{{ID: 4, Author: "A", Title: "T", Content: "C"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newFakeDB()
			tt.setup(db)
			s := postgres_storage.NewPostStorage(db, "posts", log, metrics)

			got, err := s.LoadAll(context.Background())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPostStorage_SaveAll(t *testing.T) {
	log := logger.New("test")
	metrics := prometheus_metrics.NewPrometheusMetricsProvider()
	posts := model.PostCollection{{ID: 1, Author: "A", Title: "T1", Content: "C1"}, {ID: 3}}

	t.Run("RoundTrip", func(t *testing.T) {
		db := newFakeDB()
		s := postgres_storage.NewPostStorage(db, "posts", log, metrics)

		require.NoError(t, s.SaveAll(context.Background(), posts))
		got, err := s.LoadAll(context.Background())

		require.NoError(t, err)
		assert.Equal(t, posts, got)
		assert.Contains(t, db.lastArgs, "updated_at")
	})

	t.Run("StoresIndentedDocumentInFieldOrder", func(t *testing.T) {
		db := newFakeDB()
		s := postgres_storage.NewPostStorage(db, "posts", log, metrics)

		require.NoError(t, s.SaveAll(context.Background(), model.PostCollection{{ID: 1, Author: "A", Title: "T1", Content: "C1"}}))

		want := "[\n    {\n        \"id\": 1,\n        \"author\": \"A\",\n        \"title\": \"T1\",\n        \"content\": \"C1\"\n    }\n]"
		assert.Equal(t, want, string(db.documents["posts"]))
	})

	t.Run("NilCollectionStoredAsEmptyArray", func(t *testing.T) {
		db := newFakeDB()
		s := postgres_storage.NewPostStorage(db, "posts", log, metrics)

		require.NoError(t, s.SaveAll(context.Background(), nil))

		var stored []any
		require.NoError(t, json.Unmarshal(db.documents["posts"], &stored))
		assert.NotNil(t, stored)
		assert.Empty(t, stored)
	})

	t.Run("ExecError", func(t *testing.T) {
		db := newFakeDB()
		db.execErr = errors.New("relation \"post_documents\" does not exist")
		s := postgres_storage.NewPostStorage(db, "posts", log, metrics)

		err := s.SaveAll(context.Background(), posts)

		assert.ErrorIs(t, err, custom_errors.ErrStorageWrite)
	})
}
