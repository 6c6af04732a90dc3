package postgres_storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"pinstack-blog-service/internal/custom_errors"
	model "pinstack-blog-service/internal/domain/models"
	ports "pinstack-blog-service/internal/domain/ports/output"
	"pinstack-blog-service/internal/domain/ports/output/storage"
)

var _ storage.PostStorage = (*PostStorage)(nil)

const documentIndent = "    "

// PostStorage keeps the whole collection as one json row of post_documents,
// keyed by document name. SaveAll overwrites the row with the same indented
// layout the file backend writes.
type PostStorage struct {
	db       PgDB
	document string
	log      ports.Logger
	metrics  ports.MetricsProvider
}

func NewPostStorage(db PgDB, document string, log ports.Logger, metrics ports.MetricsProvider) *PostStorage {
	return &PostStorage{
		db:       db,
		document: document,
		log:      log,
		metrics:  metrics,
	}
}

func (s *PostStorage) LoadAll(ctx context.Context) (model.PostCollection, error) {
	start := time.Now()
	s.log.Debug("Loading post document", slog.String("document", s.document))

	args := pgx.NamedArgs{"name": s.document}
	query := `SELECT body FROM post_documents WHERE name = @name`

	var body []byte
	err := s.db.QueryRow(ctx, query, args).Scan(&body)
	if err != nil {
		s.metrics.IncrementDatabaseQueries("post_document_load", false)
		s.metrics.RecordDatabaseQueryDuration("post_document_load", time.Since(start))
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: document %s", custom_errors.ErrStorageNotFound, s.document)
		}
		s.log.Error("Error loading post document", slog.String("document", s.document), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", custom_errors.ErrStorageRead, err)
	}
	s.metrics.IncrementDatabaseQueries("post_document_load", true)
	s.metrics.RecordDatabaseQueryDuration("post_document_load", time.Since(start))

	var posts model.PostCollection
	if err := json.Unmarshal(body, &posts); err != nil {
		return nil, fmt.Errorf("%w: document %s: %w", custom_errors.ErrStorageCorrupt, s.document, err)
	}

	s.log.Debug("Successfully loaded post document", slog.String("document", s.document), slog.Int("count", len(posts)))
	return posts, nil
}

func (s *PostStorage) SaveAll(ctx context.Context, posts model.PostCollection) error {
	start := time.Now()
	if posts == nil {
		posts = model.PostCollection{}
	}

	body, err := json.MarshalIndent(posts, "", documentIndent)
	if err != nil {
		return fmt.Errorf("%w: encode: %w", custom_errors.ErrStorageWrite, err)
	}

	args := pgx.NamedArgs{
		"name":       s.document,
		"body":       body,
		"updated_at": pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
	query := `
		INSERT INTO post_documents (name, body, updated_at)
		VALUES (@name, @body, @updated_at)
		ON CONFLICT (name) DO UPDATE
		SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at`

	if _, err := s.db.Exec(ctx, query, args); err != nil {
		s.metrics.IncrementDatabaseQueries("post_document_save", false)
		s.metrics.RecordDatabaseQueryDuration("post_document_save", time.Since(start))
		s.log.Error("Error saving post document", slog.String("document", s.document), slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", custom_errors.ErrStorageWrite, err)
	}

	s.metrics.IncrementDatabaseQueries("post_document_save", true)
	s.metrics.RecordDatabaseQueryDuration("post_document_save", time.Since(start))
	s.log.Debug("Successfully saved post document", slog.String("document", s.document), slog.Int("count", len(posts)))
	return nil
}
