package usecase

import (
	"context"

	"atlas/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// CreateRegionInput carries the fields for creating a new region. OwnerID
// must reference an existing account.
type CreateRegionInput struct {
	Name     string    `json:"name"`
	Boundary orb.Ring  `json:"boundary"`
	OwnerID  uuid.UUID `json:"ownerId"`
}

// UpdateRegionInput carries the fields for updating a region. OwnerID is the
// caller's claimed owner and must equal the stored owner; ownership is never
// transferred by an update.
type UpdateRegionInput struct {
	Name     string    `json:"name"`
	Boundary orb.Ring  `json:"boundary"`
	OwnerID  uuid.UUID `json:"ownerId"`
}

// RegionPage is one page of regions plus the total collection size at the
// time of the query.
type RegionPage struct {
	Rows  []*entity.Region
	Total int64
}

// RegionUsecase defines the region management and spatial query use cases.
type RegionUsecase interface {
	Create(ctx context.Context, input *CreateRegionInput) (*entity.Region, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Region, error)
	List(ctx context.Context, offset, limit int) (*RegionPage, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateRegionInput) (*entity.Region, error)
	Delete(ctx context.Context, id uuid.UUID, expectedOwnerID uuid.UUID) error

	// FindContaining returns all regions whose boundary contains the point,
	// boundary-inclusive, optionally restricted to one owner. The order is
	// stable for a given store state.
	FindContaining(ctx context.Context, point orb.Point, ownerID *uuid.UUID) ([]*entity.Region, error)

	// FindNear returns all regions whose boundary lies within maxDistance
	// meters of the point, nearest first, optionally restricted to one owner.
	FindNear(ctx context.Context, point orb.Point, maxDistance float64, ownerID *uuid.UUID) ([]*entity.Region, error)
}
