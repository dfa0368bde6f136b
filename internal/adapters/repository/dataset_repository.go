package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/coordkeeper/core/internal/domain/entities"
	"github.com/coordkeeper/core/internal/infrastructure/logger"
	"github.com/coordkeeper/core/internal/ports"
)

// DatasetRepositoryImpl persists the dataset as a single human-readable
// JSON file: 2-space indentation, non-ASCII characters left unescaped.
type DatasetRepositoryImpl struct {
	logger *logger.Logger
}

// NewDatasetRepository creates a new file-backed dataset repository
func NewDatasetRepository(log *logger.Logger) ports.DatasetRepository {
	return &DatasetRepositoryImpl{logger: log.WithComponent("repository")}
}

func (r *DatasetRepositoryImpl) Load(ctx context.Context, path string) (entities.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrLoadFailed, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r.logger.Debugw("Data file does not exist, starting empty", "path", path)
			return entities.NewDataset(), nil
		}
		r.logger.LogFileOperation("load", path, err)
		return nil, fmt.Errorf("%w: %w", entities.ErrLoadFailed, err)
	}

	dataset, err := decodeDataset(data)
	if err != nil {
		r.logger.LogFileOperation("load", path, err)
		return nil, fmt.Errorf("%w: %w", entities.ErrLoadFailed, err)
	}

	r.logger.LogFileOperation("load", path, nil)
	return dataset, nil
}

func (r *DatasetRepositoryImpl) Save(ctx context.Context, dataset entities.Dataset, path string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", entities.ErrSaveFailed, err)
	}

	data, err := encodeDataset(dataset)
	if err != nil {
		return fmt.Errorf("%w: %w", entities.ErrSaveFailed, err)
	}

	// Write to a uniquely named temp file in the target directory and
	// rename it into place, so a failed write never clobbers the
	// previous file.
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		r.logger.LogFileOperation("save", path, err)
		return fmt.Errorf("%w: %w", entities.ErrSaveFailed, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		r.logger.LogFileOperation("save", path, err)
		return fmt.Errorf("%w: %w", entities.ErrSaveFailed, err)
	}

	r.logger.LogFileOperation("save", path, nil)
	return nil
}

func (r *DatasetRepositoryImpl) ReadDocument(ctx context.Context, path string) (entities.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrInvalidDocument, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		r.logger.LogFileOperation("read document", path, err)
		return nil, fmt.Errorf("%w: %w", entities.ErrInvalidDocument, err)
	}

	dataset, err := decodeDataset(data)
	if err != nil {
		r.logger.LogFileOperation("read document", path, err)
		return nil, fmt.Errorf("%w: %w", entities.ErrInvalidDocument, err)
	}

	r.logger.LogFileOperation("read document", path, nil)
	return dataset, nil
}

// decodeDataset parses a full dataset document. The top level must be a
// JSON object mapping profile names to profiles; an empty file counts as
// an empty dataset.
func decodeDataset(data []byte) (entities.Dataset, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return entities.NewDataset(), nil
	}

	var dataset entities.Dataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	if dataset == nil {
		return nil, fmt.Errorf("parse dataset: top-level value is not an object")
	}

	dataset.Normalize()
	return dataset, nil
}

// encodeDataset renders the dataset in the on-disk form.
func encodeDataset(dataset entities.Dataset) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dataset); err != nil {
		return nil, fmt.Errorf("encode dataset: %w", err)
	}
	return buf.Bytes(), nil
}
