// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"

	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/service"
)

// LocationReconciler derives the missing half of an address/coordinate pair
// through a single external geocoding call. There is no caching and no retry;
// a lookup that finds no match, or fails outright, aborts the surrounding
// account operation.
type LocationReconciler struct {
	geocoder service.GeocodingService
}

// NewLocationReconciler is the constructor for LocationReconciler.
func NewLocationReconciler(geocoder service.GeocodingService) *LocationReconciler {
	return &LocationReconciler{geocoder: geocoder}
}

// Reconcile resolves the populated field into the full address/coordinate
// pair. Exactly one of address/coord must be non-nil; the caller enforces the
// exactly-one rule before invoking.
func (r *LocationReconciler) Reconcile(ctx context.Context, address *string, coord *entity.Coordinate) (string, entity.Coordinate, error) {
	switch {
	case coord != nil:
		resolved, err := r.geocoder.AddressFromCoordinate(ctx, *coord)
		if err != nil {
			return "", entity.Coordinate{}, locationLookupError(err)
		}

		return resolved, *coord, nil

	case address != nil:
		resolved, err := r.geocoder.CoordinateFromAddress(ctx, *address)
		if err != nil {
			return "", entity.Coordinate{}, locationLookupError(err)
		}

		return *address, resolved, nil
	}

	return "", entity.Coordinate{}, domainerrors.ErrLocationConflict
}

// locationLookupError folds both "no match" and collaborator failure into
// the single user-visible location-not-found condition.
func locationLookupError(err error) error {
	return domainerrors.ErrLocationNotFound.WrapMessage(err.Error())
}
