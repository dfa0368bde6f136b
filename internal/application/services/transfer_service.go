package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/coordkeeper/core/internal/domain/entities"
	"github.com/coordkeeper/core/internal/infrastructure/logger"
	"github.com/coordkeeper/core/internal/ports"
)

// TransferService moves whole datasets in and out of the store: importing
// an external document (merge or replace) and exporting the current
// dataset to an arbitrary destination.
type TransferService struct {
	profiles *ProfileService
	repo     ports.DatasetRepository
	validate *validator.Validate
	logger   *logger.Logger
}

// NewTransferService creates a new transfer service
func NewTransferService(profiles *ProfileService, repo ports.DatasetRepository, log *logger.Logger) *TransferService {
	return &TransferService{
		profiles: profiles,
		repo:     repo,
		validate: validator.New(),
		logger:   log.WithComponent("transfer"),
	}
}

// Import reads a profile mapping from path and combines it with the
// dataset. Merge overlays the imported entries onto the existing ones,
// imported entries winning on name collision; Replace discards the
// existing dataset entirely. The result is written through to storage.
func (s *TransferService) Import(ctx context.Context, path string, mode entities.ImportMode) error {
	if !mode.IsValid() {
		return fmt.Errorf("unsupported import mode %q", mode)
	}

	imported, err := s.repo.ReadDocument(ctx, path)
	if err != nil {
		return err
	}

	dataset := s.profiles.Dataset()
	if mode == entities.ImportModeReplace {
		for name := range dataset {
			delete(dataset, name)
		}
	}
	dataset.Merge(imported)

	if err := s.profiles.Save(ctx); err != nil {
		return err
	}

	s.logger.Infow("Import finished",
		"source", path,
		"mode", string(mode),
		"imported_profiles", len(imported),
	)
	return nil
}

// ExportTo writes the current dataset to an arbitrary destination path.
// The dataset itself is not touched.
func (s *TransferService) ExportTo(ctx context.Context, path string) error {
	if err := s.repo.Save(ctx, s.profiles.Dataset(), path); err != nil {
		return err
	}

	s.logger.Infow("Export finished", "destination", path)
	return nil
}

// ExportDocument returns a deep copy of the current dataset, leaving the
// stored one untouched.
func (s *TransferService) ExportDocument() entities.Dataset {
	return s.profiles.Dataset().Clone()
}

// ValidateDocument structurally checks an external document without
// importing it: the top level must be a profile mapping and every
// coordinate must carry a name. Purely advisory; Import performs only the
// top-level check.
func (s *TransferService) ValidateDocument(ctx context.Context, path string) error {
	doc, err := s.repo.ReadDocument(ctx, path)
	if err != nil {
		return err
	}

	for _, name := range doc.Names() {
		if err := s.validate.Struct(doc[name]); err != nil {
			return fmt.Errorf("profile %q: %w", name, err)
		}
	}
	return nil
}
