// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"atlas/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
type AccountRepository interface {
	// Create persists a new account entity to the storage.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// Update modifies an existing account entity in the storage.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes an account by its ID. Returns ErrAccountNotFound when
	// no row was removed.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns a page of accounts in a stable order (creation time, then
	// id) together with the total account count at the time of the query.
	List(ctx context.Context, offset, limit int) ([]*entity.Account, int64, error)

	// AppendOwnedRegion adds regionID to the account's owned-region list.
	// Adding an id that is already present is a no-op. The caller is
	// responsible for serializing concurrent list mutations per account.
	AppendOwnedRegion(ctx context.Context, accountID, regionID uuid.UUID) error

	// RemoveOwnedRegion removes regionID from the account's owned-region
	// list. Removing an absent id is a no-op.
	RemoveOwnedRegion(ctx context.Context, accountID, regionID uuid.UUID) error
}
