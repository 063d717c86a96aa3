package repository

import (
	"context"
	"errors"

	"atlas/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ErrRegionNotFound is a domain-specific error returned when a region is not found.
var ErrRegionNotFound = errors.New("region not found")

// RegionRepository defines the standard operations for region persistence.
//
// Geometry predicates are evaluated in the application layer; the repository
// only narrows candidates with a bounding-box prefilter so that exact
// containment and distance tests run over a small candidate set.
type RegionRepository interface {
	// Create persists a new region entity to the storage.
	Create(ctx context.Context, region *entity.Region) error

	// FindByID retrieves a single region by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Region, error)

	// Update modifies an existing region entity in the storage.
	Update(ctx context.Context, region *entity.Region) error

	// Delete removes a region by its ID. Returns ErrRegionNotFound when no
	// row was removed.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns a page of regions in a stable order (creation time, then
	// id) together with the total region count at the time of the query.
	List(ctx context.Context, offset, limit int) ([]*entity.Region, int64, error)

	// FindByBound returns all regions whose boundary bounding box intersects
	// the given bound, optionally restricted to one owner. Results are in
	// the same stable order as List.
	FindByBound(ctx context.Context, bound orb.Bound, ownerID *uuid.UUID) ([]*entity.Region, error)
}
