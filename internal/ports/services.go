package ports

import (
	"context"

	"github.com/coordkeeper/core/internal/domain/entities"
)

// ProfileService interface for profile and coordinate operations. Every
// successful mutation is written through to the configured storage path
// before the call returns.
type ProfileService interface {
	ListProfiles() []string
	CreateProfile(ctx context.Context, name string) error
	DeleteProfile(ctx context.Context, name string) error
	SetSeed(ctx context.Context, profileName, seed string) error
	GetProfile(profileName string) (*entities.Profile, error)
	AddCoordinate(ctx context.Context, req AddCoordinateRequest) (entities.Coordinate, error)
	UpdateCoordinate(ctx context.Context, index int, req AddCoordinateRequest) (entities.Coordinate, error)
	DeleteCoordinate(ctx context.Context, profileName string, index int) error
	GetCoordinate(profileName string, index int) (entities.Coordinate, error)
	Save(ctx context.Context) error
	Dataset() entities.Dataset
}

// TransferService interface for moving datasets in and out of the store.
type TransferService interface {
	Import(ctx context.Context, path string, mode entities.ImportMode) error
	ExportTo(ctx context.Context, path string) error
	ExportDocument() entities.Dataset
	ValidateDocument(ctx context.Context, path string) error
}

// AddCoordinateRequest carries the raw form input for a new coordinate.
// The axis values stay text until the service parses them, so garbage is
// rejected instead of silently coerced to zero.
type AddCoordinateRequest struct {
	ProfileName string `json:"profile_name" validate:"required"`
	Name        string `json:"name"`
	X           string `json:"x" validate:"required"`
	Y           string `json:"y" validate:"required"`
	Z           string `json:"z" validate:"required"`
}
