package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RegionModel mirrors the 'regions' table. The boundary is stored as a
// GeoJSON Polygon in JSONB; the bounding-box columns are denormalized from
// it on every write so spatial candidate queries stay indexable.
type RegionModel struct {
	ID       uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name     string         `gorm:"type:varchar(100);not null"`
	Boundary datatypes.JSON `gorm:"type:jsonb;not null"`
	OwnerID  uuid.UUID      `gorm:"type:uuid;not null;index"`

	MinLng float64 `gorm:"not null;index:idx_regions_bbox,priority:1"`
	MinLat float64 `gorm:"not null;index:idx_regions_bbox,priority:2"`
	MaxLng float64 `gorm:"not null;index:idx_regions_bbox,priority:3"`
	MaxLat float64 `gorm:"not null;index:idx_regions_bbox,priority:4"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RegionModel) TableName() string {
	return "regions"
}
