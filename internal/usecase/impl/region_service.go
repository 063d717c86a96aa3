package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	deliverycontext "atlas/internal/delivery/context"
	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	"atlas/internal/errors"
	"atlas/internal/geo"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// regionService implements the RegionUsecase interface.
type regionService struct {
	regionRepo repository.RegionRepository
	txManager  repository.TransactionManager
	sync       *RelationshipSync
	logger     *slog.Logger
}

// NewRegionService is the constructor for regionService.
func NewRegionService(
	regionRepo repository.RegionRepository,
	txManager repository.TransactionManager,
	relationshipSync *RelationshipSync,
	logger *slog.Logger,
) usecase.RegionUsecase {
	return &regionService{
		regionRepo: regionRepo,
		txManager:  txManager,
		sync:       relationshipSync,
		logger:     logger,
	}
}

func (srv *regionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create validates the boundary, persists the region and attaches it to the
// owner's region list in one transaction. The per-owner critical section is
// held across the whole sequence, so a region never becomes visible without
// its owner-side list entry.
func (srv *regionService) Create(ctx context.Context, input *usecase.CreateRegionInput) (*entity.Region, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("request body is required")
	}
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name is required")
	}
	if err := geo.ValidateRing(input.Boundary); err != nil {
		return nil, domainerrors.ErrBoundaryInvalid.WithDetails(err.Error())
	}

	now := time.Now()
	region := &entity.Region{
		ID:        uuid.New(),
		Name:      input.Name,
		Boundary:  input.Boundary,
		OwnerID:   input.OwnerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	unlock := srv.sync.LockOwner(input.OwnerID)
	defer unlock()

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.AccountRepo().FindByID(ctx, input.OwnerID); err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage("region owner does not exist")
			}

			return errors.Wrap(err, "failed to find region owner")
		}

		if err := repoFactory.RegionRepo().Create(ctx, region); err != nil {
			return errors.Wrap(err, "failed to create region")
		}

		return srv.sync.Attach(ctx, repoFactory.AccountRepo(), input.OwnerID, region.ID)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Region created", slog.Any("regionID", region.ID), slog.Any("ownerID", input.OwnerID))

	return region, nil
}

// Get retrieves a single region by id.
func (srv *regionService) Get(ctx context.Context, id uuid.UUID) (*entity.Region, error) {
	region, err := srv.regionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRegionNotFound) {
			return nil, domainerrors.ErrRegionNotFound
		}

		return nil, errors.Wrap(err, "failed to find region")
	}

	return region, nil
}

// List returns one page of regions plus the total collection size.
func (srv *regionService) List(ctx context.Context, offset, limit int) (*usecase.RegionPage, error) {
	if offset < 0 {
		offset = 0
	}

	rows, total, err := srv.regionRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list regions")
	}

	return &usecase.RegionPage{Rows: rows, Total: total}, nil
}

// Update modifies a region's name and boundary. The caller-supplied owner id
// must equal the stored owner; ownership is never transferred.
func (srv *regionService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateRegionInput) (*entity.Region, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("request body is required")
	}
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name is required")
	}
	if err := geo.ValidateRing(input.Boundary); err != nil {
		return nil, domainerrors.ErrBoundaryInvalid.WithDetails(err.Error())
	}

	var updated *entity.Region

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		regionRepo := repoFactory.RegionRepo()

		region, err := regionRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrRegionNotFound) {
				return domainerrors.ErrRegionNotFound
			}

			return errors.Wrap(err, "failed to find region")
		}

		if region.OwnerID != input.OwnerID {
			return domainerrors.ErrOwnershipMismatch
		}

		region.Name = input.Name
		region.Boundary = input.Boundary
		region.UpdatedAt = time.Now()

		if err := regionRepo.Update(ctx, region); err != nil {
			return errors.Wrap(err, "failed to update region")
		}
		updated = region

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes a region and detaches it from the owner's region list in
// one transaction, under the owner's critical section.
func (srv *regionService) Delete(ctx context.Context, id uuid.UUID, expectedOwnerID uuid.UUID) error {
	// Resolve the stored owner first so the critical section is taken
	// before the transaction opens.
	region, err := srv.regionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRegionNotFound) {
			return domainerrors.ErrRegionNotFound
		}

		return errors.Wrap(err, "failed to find region")
	}
	if region.OwnerID != expectedOwnerID {
		return domainerrors.ErrOwnershipMismatch
	}

	unlock := srv.sync.LockOwner(region.OwnerID)
	defer unlock()

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		regionRepo := repoFactory.RegionRepo()

		// Re-read under the lock; the region may have been deleted while
		// we waited for the critical section.
		current, err := regionRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrRegionNotFound) {
				return domainerrors.ErrRegionNotFound
			}

			return errors.Wrap(err, "failed to find region")
		}
		if current.OwnerID != expectedOwnerID {
			return domainerrors.ErrOwnershipMismatch
		}

		if err := regionRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete region")
		}

		if err := srv.sync.Detach(ctx, repoFactory.AccountRepo(), current.OwnerID, id); err != nil {
			return err
		}

		srv.log(ctx).Debug("Region deleted", slog.Any("regionID", id))

		return nil
	})
}

// FindContaining returns all regions whose boundary contains the point,
// boundary-inclusive. Candidates come from a bounding-box prefilter; the
// exact test is the ray cast in the geo package.
func (srv *regionService) FindContaining(ctx context.Context, point orb.Point, ownerID *uuid.UUID) ([]*entity.Region, error) {
	if err := checkPoint(point); err != nil {
		return nil, err
	}

	candidates, err := srv.regionRepo.FindByBound(ctx, orb.Bound{Min: point, Max: point}, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query candidate regions")
	}

	matches := make([]*entity.Region, 0, len(candidates))
	for _, region := range candidates {
		if geo.RingContains(region.Boundary, point) {
			matches = append(matches, region)
		}
	}

	return matches, nil
}

// FindNear returns all regions whose boundary lies within maxDistance meters
// of the point, ordered by increasing distance. Ties are broken by region id
// so the order is deterministic for a given store state.
func (srv *regionService) FindNear(ctx context.Context, point orb.Point, maxDistance float64, ownerID *uuid.UUID) ([]*entity.Region, error) {
	if err := checkPoint(point); err != nil {
		return nil, err
	}
	if maxDistance < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("distance must not be negative")
	}

	candidates, err := srv.regionRepo.FindByBound(ctx, geo.PadBound(point, maxDistance), ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query candidate regions")
	}

	type scored struct {
		region   *entity.Region
		distance float64
	}

	matches := make([]scored, 0, len(candidates))
	for _, region := range candidates {
		if d := geo.DistanceToRing(region.Boundary, point); d <= maxDistance {
			matches = append(matches, scored{region: region, distance: d})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].distance != matches[j].distance {
			return matches[i].distance < matches[j].distance
		}

		return matches[i].region.ID.String() < matches[j].region.ID.String()
	})

	result := make([]*entity.Region, 0, len(matches))
	for _, m := range matches {
		result = append(result, m.region)
	}

	return result, nil
}

// checkPoint rejects query points outside the geographic coordinate range.
func checkPoint(point orb.Point) error {
	coord := entity.Coordinate{Latitude: point[1], Longitude: point[0]}
	if !coord.Valid() {
		return domainerrors.ErrValidationFailed.WrapMessage("point outside valid range")
	}

	return nil
}
