package postgres

import (
	"context"
	"encoding/json"

	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	"atlas/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// regionRepository implements the domain's RegionRepository interface using GORM.
type regionRepository struct {
	db *gorm.DB
}

// NewRegionRepository is the constructor for regionRepository.
func NewRegionRepository(db *gorm.DB) repository.RegionRepository {
	return &regionRepository{db: db}
}

// Create persists a new region entity.
func (repo *regionRepository) Create(ctx context.Context, region *entity.Region) error {
	regionM, err := fromRegionDomain(region)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(regionM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required region information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create region")
	}

	region.CreatedAt = regionM.CreatedAt
	region.UpdatedAt = regionM.UpdatedAt

	return nil
}

// FindByID retrieves a single region by its unique ID.
func (repo *regionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Region, error) {
	var regionM model.RegionModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&regionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRegionNotFound
		}

		return nil, errors.Wrap(err, "failed to find region by id")
	}

	return toRegionDomain(&regionM)
}

// Update modifies an existing region row, refreshing the denormalized
// bounding-box columns from the new boundary.
func (repo *regionRepository) Update(ctx context.Context, region *entity.Region) error {
	regionM, err := fromRegionDomain(region)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).Model(&model.RegionModel{}).
		Where("id = ?", region.ID).
		Updates(map[string]any{
			"name":       regionM.Name,
			"boundary":   regionM.Boundary,
			"min_lng":    regionM.MinLng,
			"min_lat":    regionM.MinLat,
			"max_lng":    regionM.MaxLng,
			"max_lat":    regionM.MaxLat,
			"updated_at": regionM.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update region")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRegionNotFound
	}

	return nil
}

// Delete removes a region by its ID.
func (repo *regionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.RegionModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete region")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRegionNotFound
	}

	return nil
}

// List returns a page of regions in creation order plus the total count.
func (repo *regionRepository) List(ctx context.Context, offset, limit int) ([]*entity.Region, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.RegionModel{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count regions")
	}

	var models []model.RegionModel
	if err := repo.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list regions")
	}

	return toRegionDomains(models, total)
}

// FindByBound returns all regions whose bounding box intersects the bound,
// optionally restricted to one owner.
func (repo *regionRepository) FindByBound(ctx context.Context, bound orb.Bound, ownerID *uuid.UUID) ([]*entity.Region, error) {
	query := repo.db.WithContext(ctx).
		Where("min_lng <= ? AND max_lng >= ? AND min_lat <= ? AND max_lat >= ?",
			bound.Max[0], bound.Min[0], bound.Max[1], bound.Min[1])
	if ownerID != nil {
		query = query.Where("owner_id = ?", *ownerID)
	}

	var models []model.RegionModel
	if err := query.Order("created_at ASC, id ASC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query regions by bound")
	}

	regions, _, err := toRegionDomains(models, 0)

	return regions, err
}

// --- Mapper Functions ---

func toRegionDomains(models []model.RegionModel, total int64) ([]*entity.Region, int64, error) {
	regions := make([]*entity.Region, 0, len(models))
	for i := range models {
		region, err := toRegionDomain(&models[i])
		if err != nil {
			return nil, 0, err
		}
		regions = append(regions, region)
	}

	return regions, total, nil
}

func toRegionDomain(data *model.RegionModel) (*entity.Region, error) {
	boundary, err := decodeBoundary(data.Boundary)
	if err != nil {
		return nil, err
	}

	return &entity.Region{
		ID:        data.ID,
		Name:      data.Name,
		Boundary:  boundary,
		OwnerID:   data.OwnerID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}

func fromRegionDomain(data *entity.Region) (*model.RegionModel, error) {
	encoded, err := encodeBoundary(data.Boundary)
	if err != nil {
		return nil, err
	}

	bound := data.Boundary.Bound()

	return &model.RegionModel{
		ID:        data.ID,
		Name:      data.Name,
		Boundary:  encoded,
		OwnerID:   data.OwnerID,
		MinLng:    bound.Min[0],
		MinLat:    bound.Min[1],
		MaxLng:    bound.Max[0],
		MaxLat:    bound.Max[1],
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}

// encodeBoundary serializes the ring as a GeoJSON Polygon with a single
// outer ring.
func encodeBoundary(ring orb.Ring) (datatypes.JSON, error) {
	encoded, err := json.Marshal(geojson.NewGeometry(orb.Polygon{ring}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode region boundary")
	}

	return datatypes.JSON(encoded), nil
}

func decodeBoundary(raw datatypes.JSON) (orb.Ring, error) {
	geom, err := geojson.UnmarshalGeometry(raw)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode region boundary")
	}

	polygon, ok := geom.Geometry().(orb.Polygon)
	if !ok || len(polygon) == 0 {
		return nil, errors.New("region boundary is not a polygon")
	}

	return polygon[0], nil
}
