package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/coordkeeper/core/internal/domain/entities"
	"github.com/coordkeeper/core/internal/infrastructure/logger"
	"github.com/coordkeeper/core/internal/ports"
)

// ProfileService owns the in-memory dataset and handles profile and
// coordinate operations. Every successful mutation is immediately written
// through to the configured storage path; a failed save keeps the edit in
// memory and surfaces the save error so the caller can warn the user.
type ProfileService struct {
	dataset  entities.Dataset
	repo     ports.DatasetRepository
	path     string
	validate *validator.Validate
	logger   *logger.Logger
}

// NewProfileService creates a new profile service around a loaded dataset
func NewProfileService(dataset entities.Dataset, repo ports.DatasetRepository, path string, log *logger.Logger) *ProfileService {
	if dataset == nil {
		dataset = entities.NewDataset()
	}
	return &ProfileService{
		dataset:  dataset,
		repo:     repo,
		path:     path,
		validate: validator.New(),
		logger:   log.WithComponent("profiles"),
	}
}

// ListProfiles returns all profile names sorted case-insensitively.
func (s *ProfileService) ListProfiles() []string {
	return s.dataset.Names()
}

// CreateProfile inserts a new empty profile under the trimmed name.
func (s *ProfileService) CreateProfile(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is empty", entities.ErrDuplicateName)
	}
	if _, exists := s.dataset[name]; exists {
		return fmt.Errorf("%w: %q", entities.ErrDuplicateName, name)
	}

	s.dataset[name] = entities.NewProfile()

	if err := s.persist(ctx); err != nil {
		return err
	}

	s.logger.LogMutation("create_profile", name, nil)
	return nil
}

// DeleteProfile removes a profile and all its coordinates.
func (s *ProfileService) DeleteProfile(ctx context.Context, name string) error {
	if _, exists := s.dataset[name]; !exists {
		return fmt.Errorf("%w: %q", entities.ErrProfileNotFound, name)
	}

	delete(s.dataset, name)

	if err := s.persist(ctx); err != nil {
		return err
	}

	s.logger.LogMutation("delete_profile", name, nil)
	return nil
}

// SetSeed replaces a profile's seed with the trimmed input. An empty
// string is a valid seed and means "unset".
func (s *ProfileService) SetSeed(ctx context.Context, profileName, seed string) error {
	profile, err := s.GetProfile(profileName)
	if err != nil {
		return err
	}

	profile.Seed = strings.TrimSpace(seed)

	if err := s.persist(ctx); err != nil {
		return err
	}

	s.logger.LogMutation("set_seed", profileName, nil)
	return nil
}

// GetProfile returns the profile stored under profileName.
func (s *ProfileService) GetProfile(profileName string) (*entities.Profile, error) {
	profile, exists := s.dataset[profileName]
	if !exists {
		return nil, fmt.Errorf("%w: %q", entities.ErrProfileNotFound, profileName)
	}
	return profile, nil
}

// AddCoordinate validates and appends a new coordinate to the end of the
// profile's list and returns it.
func (s *ProfileService) AddCoordinate(ctx context.Context, req ports.AddCoordinateRequest) (entities.Coordinate, error) {
	profile, err := s.GetProfile(req.ProfileName)
	if err != nil {
		return entities.Coordinate{}, err
	}

	coord, err := s.buildCoordinate(req)
	if err != nil {
		return entities.Coordinate{}, err
	}

	profile.AddCoordinate(coord)

	if err := s.persist(ctx); err != nil {
		return coord, err
	}

	s.logger.LogMutation("add_coordinate", req.ProfileName, map[string]interface{}{
		"coordinate": coord.Name,
	})
	return coord, nil
}

// UpdateCoordinate overwrites the coordinate at index with new values.
// Delete followed by add remains a supported edit path; this is the
// in-place shortcut.
func (s *ProfileService) UpdateCoordinate(ctx context.Context, index int, req ports.AddCoordinateRequest) (entities.Coordinate, error) {
	profile, err := s.GetProfile(req.ProfileName)
	if err != nil {
		return entities.Coordinate{}, err
	}

	coord, err := s.buildCoordinate(req)
	if err != nil {
		return entities.Coordinate{}, err
	}

	if err := profile.ReplaceCoordinate(index, coord); err != nil {
		return entities.Coordinate{}, err
	}

	if err := s.persist(ctx); err != nil {
		return coord, err
	}

	s.logger.LogMutation("update_coordinate", req.ProfileName, map[string]interface{}{
		"coordinate": coord.Name,
		"index":      index,
	})
	return coord, nil
}

// DeleteCoordinate removes the coordinate at index, shifting later
// indices down by one.
func (s *ProfileService) DeleteCoordinate(ctx context.Context, profileName string, index int) error {
	profile, err := s.GetProfile(profileName)
	if err != nil {
		return err
	}

	if err := profile.RemoveCoordinate(index); err != nil {
		return err
	}

	if err := s.persist(ctx); err != nil {
		return err
	}

	s.logger.LogMutation("delete_coordinate", profileName, map[string]interface{}{
		"index": index,
	})
	return nil
}

// GetCoordinate returns the coordinate at index without modifying it.
func (s *ProfileService) GetCoordinate(profileName string, index int) (entities.Coordinate, error) {
	profile, err := s.GetProfile(profileName)
	if err != nil {
		return entities.Coordinate{}, err
	}
	return profile.CoordinateAt(index)
}

// Save writes the current dataset to the configured path. Exposed as the
// manual "save now" safety net on top of the write-through policy.
func (s *ProfileService) Save(ctx context.Context) error {
	return s.persist(ctx)
}

// Dataset returns the live in-memory dataset.
func (s *ProfileService) Dataset() entities.Dataset {
	return s.dataset
}

// Path returns the configured storage path.
func (s *ProfileService) Path() string {
	return s.path
}

func (s *ProfileService) buildCoordinate(req ports.AddCoordinateRequest) (entities.Coordinate, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return entities.Coordinate{}, entities.ErrEmptyName
	}

	// Axis values must be present before they are worth parsing.
	if err := s.validate.Struct(req); err != nil {
		return entities.Coordinate{}, fmt.Errorf("%w: %v", entities.ErrInvalidNumber, err)
	}

	x, err := entities.ParseNumber(req.X)
	if err != nil {
		return entities.Coordinate{}, err
	}
	y, err := entities.ParseNumber(req.Y)
	if err != nil {
		return entities.Coordinate{}, err
	}
	z, err := entities.ParseNumber(req.Z)
	if err != nil {
		return entities.Coordinate{}, err
	}

	return entities.Coordinate{Name: name, X: x, Y: y, Z: z}, nil
}

func (s *ProfileService) persist(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.dataset, s.path); err != nil {
		s.logger.Warnw("Edits are not yet durable", "path", s.path, "error", err.Error())
		return err
	}
	return nil
}
