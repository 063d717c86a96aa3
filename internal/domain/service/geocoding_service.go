// Package service defines interfaces for domain services whose concrete
// implementations live in the infrastructure layer.
package service

import (
	"context"
	"errors"

	"atlas/internal/domain/entity"
)

// ErrNoMatch is returned when the external geocoding provider cannot resolve
// the given address or coordinate.
var ErrNoMatch = errors.New("no geocoding match")

// GeocodingService resolves between free-text addresses and coordinates via
// an external lookup. Implementations perform exactly one external call per
// invocation, with no caching and no retry; any failure surfaces immediately.
type GeocodingService interface {
	// CoordinateFromAddress performs a forward lookup, address to coordinate.
	CoordinateFromAddress(ctx context.Context, address string) (entity.Coordinate, error)

	// AddressFromCoordinate performs a reverse lookup, coordinate to
	// formatted address.
	AddressFromCoordinate(ctx context.Context, coord entity.Coordinate) (string, error)
}
