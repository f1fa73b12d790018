package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/geoinsight-service/internal/pkg/errors"
	"github.com/geoinsight-service/internal/pkg/utils"
)

// FileStore keeps scene files on disk under
// <root>/<location-slug>/<sublocation-slug|general>/<name>-<uuid8><ext>.
// Its top-level directories double as the registry's location source.
type FileStore struct {
	root   string
	logger *zap.Logger
}

func NewFileStore(root string, logger *zap.Logger) (*FileStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media root: %w", err)
	}
	return &FileStore{root: root, logger: logger}, nil
}

// Save writes one scene file and returns its path relative to the media
// root. An empty sublocation goes into the "general" directory.
func (s *FileStore) Save(ctx context.Context, location, sublocation, filename string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.TrimSpace(location) == "" {
		return "", errors.ErrInvalidRequest.WithDetails("location is required")
	}

	subDir := "general"
	if strings.TrimSpace(sublocation) != "" {
		subDir = utils.Slugify(sublocation)
	}

	dir := filepath.Join(s.root, utils.Slugify(location), subDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.logger.Error("failed to create scene directory",
			zap.String("dir", dir), zap.Error(err))
		return "", errors.ErrStorageError.WithDetails(err.Error())
	}

	ext := filepath.Ext(filename)
	base := utils.Slugify(strings.TrimSuffix(filepath.Base(filename), ext))
	if base == "" {
		base = "scene"
	}
	name := fmt.Sprintf("%s-%s%s", base, uuid.NewString()[:8], ext)

	fullPath := filepath.Join(dir, name)
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		s.logger.Error("failed to write scene file",
			zap.String("path", fullPath), zap.Error(err))
		return "", errors.ErrStorageError.WithDetails(err.Error())
	}

	rel, err := filepath.Rel(s.root, fullPath)
	if err != nil {
		return "", errors.ErrStorageError.WithDetails(err.Error())
	}

	s.logger.Debug("Scene stored", zap.String("path", rel))
	return filepath.ToSlash(rel), nil
}

// ListLocationSlugs returns the top-level directory names of the store.
func (s *FileStore) ListLocationSlugs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		s.logger.Error("failed to read media root", zap.Error(err))
		return nil, errors.ErrStorageError.WithDetails(err.Error())
	}

	slugs := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			slugs = append(slugs, e.Name())
		}
	}

	return slugs, nil
}
