// Package model defines the GORM persistence models.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AccountModel mirrors the 'accounts' table. The owned-region id list is a
// JSONB array kept in sync with regions.owner_id by the use case layer.
type AccountModel struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name           string         `gorm:"type:varchar(100);not null"`
	Email          string         `gorm:"type:varchar(255);not null"`
	Address        string         `gorm:"type:text;not null"`
	Latitude       float64        `gorm:"not null"`
	Longitude      float64        `gorm:"not null"`
	OwnedRegionIDs datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
