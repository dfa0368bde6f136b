package ports

import (
	"context"

	"github.com/coordkeeper/core/internal/domain/entities"
)

// DatasetRepository defines the interface for dataset persistence.
type DatasetRepository interface {
	// Load reads the full dataset from path. A missing file is not an
	// error and yields an empty dataset; unreadable or malformed content
	// wraps entities.ErrLoadFailed.
	Load(ctx context.Context, path string) (entities.Dataset, error)

	// Save writes the full dataset to path as an indented JSON document.
	// A failed save wraps entities.ErrSaveFailed and leaves any existing
	// file at path intact.
	Save(ctx context.Context, dataset entities.Dataset, path string) error

	// ReadDocument reads an externally supplied document from path. The
	// file must exist and its top level must be a profile mapping;
	// anything else wraps entities.ErrInvalidDocument.
	ReadDocument(ctx context.Context, path string) (entities.Dataset, error)
}
