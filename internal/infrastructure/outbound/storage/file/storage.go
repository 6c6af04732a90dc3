// Package file_storage keeps the post collection in a single document on
// local disk, encoded as indented JSON or as YAML depending on the file
// extension.
package file_storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"pinstack-blog-service/internal/custom_errors"
	model "pinstack-blog-service/internal/domain/models"
	ports "pinstack-blog-service/internal/domain/ports/output"
	"pinstack-blog-service/internal/domain/ports/output/storage"
)

var _ storage.PostStorage = (*PostStorage)(nil)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"

	jsonIndent = "    "
	filePerm   = 0o644
)

type PostStorage struct {
	path   string
	format Format
	log    ports.Logger
}

func NewPostStorage(path string, log ports.Logger) *PostStorage {
	return &PostStorage{
		path:   path,
		format: FormatFromPath(path),
		log:    log,
	}
}

// FormatFromPath picks YAML for .yaml/.yml files and JSON for anything else.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

func (s *PostStorage) LoadAll(ctx context.Context) (model.PostCollection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", custom_errors.ErrStorageNotFound, s.path)
		}
		return nil, fmt.Errorf("%w: %w", custom_errors.ErrStorageRead, err)
	}

	posts, err := s.decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", custom_errors.ErrStorageCorrupt, s.path, err)
	}

	s.log.Debug("Read post document", slog.String("path", s.path), slog.Int("count", len(posts)))
	return posts, nil
}

// SaveAll replaces the document. The new content is written to a temporary
// file in the same directory and renamed over the old one.
func (s *PostStorage) SaveAll(ctx context.Context, posts model.PostCollection) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if posts == nil {
		posts = model.PostCollection{}
	}

	data, err := s.encode(posts)
	if err != nil {
		return fmt.Errorf("%w: encode: %w", custom_errors.ErrStorageWrite, err)
	}

	if err := writeFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("%w: %w", custom_errors.ErrStorageWrite, err)
	}

	s.log.Debug("Wrote post document", slog.String("path", s.path), slog.Int("count", len(posts)))
	return nil
}

func (s *PostStorage) decode(data []byte) (model.PostCollection, error) {
	var posts model.PostCollection
	switch s.format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &posts); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &posts); err != nil {
			return nil, err
		}
	}
	return posts, nil
}

func (s *PostStorage) encode(posts model.PostCollection) ([]byte, error) {
	switch s.format {
	case FormatYAML:
		return yaml.Marshal(posts)
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", jsonIndent)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(posts); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
}

func writeFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpName, filePerm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
