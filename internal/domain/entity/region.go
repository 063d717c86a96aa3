package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Region is a named geographic area bounded by a closed polygon ring.
// The ring is stored in GeoJSON vertex order, [longitude, latitude] pairs
// with the first vertex repeated as the last.
type Region struct {
	ID        uuid.UUID // The unique identifier for the region.
	Name      string    // The region's display name.
	Boundary  orb.Ring  // The exterior ring delimiting the region.
	OwnerID   uuid.UUID // The account that owns this region. Never nil after creation.
	CreatedAt time.Time // Timestamp of when this region was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}
