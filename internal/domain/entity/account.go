package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the owning entity in the system. Every region belongs to exactly
// one account, and the account carries the reverse list of region identifiers.
//
// Exactly one of Address/Coordinate is supplied at creation time; the missing
// half is derived through geocoding before the account is persisted, so both
// fields are always populated on a stored account.
type Account struct {
	ID           uuid.UUID   // The unique identifier for the account, generated at creation.
	Name         string      // The account holder's display name.
	Email        string      // The account holder's contact email.
	Address      string      // The full, human-readable street address.
	Coordinate   Coordinate  // The geographic position matching the address.
	OwnedRegions []uuid.UUID // Identifiers of the regions owned by this account, in attach order.
	CreatedAt    time.Time   // Timestamp of when this account was created.
	UpdatedAt    time.Time   // Timestamp of the last modification.
}

// OwnsRegion reports whether the given region id is present in the
// owned-region list.
func (a *Account) OwnsRegion(regionID uuid.UUID) bool {
	for _, id := range a.OwnedRegions {
		if id == regionID {
			return true
		}
	}

	return false
}
