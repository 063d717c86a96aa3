package impl

import (
	"context"
	"sync"

	"atlas/internal/domain/repository"
	"atlas/internal/errors"

	"github.com/google/uuid"
)

// RelationshipSync keeps the Account.OwnedRegions list consistent with
// Region.OwnerID. Every owned-region list mutation runs under a per-account
// critical section, so concurrent region creations under the same owner
// cannot race and drop an id.
type RelationshipSync struct {
	mu     sync.Mutex
	owners map[uuid.UUID]*sync.Mutex
}

// NewRelationshipSync is the constructor for RelationshipSync.
func NewRelationshipSync() *RelationshipSync {
	return &RelationshipSync{
		owners: make(map[uuid.UUID]*sync.Mutex),
	}
}

// LockOwner acquires the critical section for one account and returns the
// release function. Lock entries are never evicted; they are two words each
// and bounded by the number of accounts seen by this process.
func (s *RelationshipSync) LockOwner(accountID uuid.UUID) func() {
	s.mu.Lock()
	m, ok := s.owners[accountID]
	if !ok {
		m = &sync.Mutex{}
		s.owners[accountID] = m
	}
	s.mu.Unlock()

	m.Lock()

	return m.Unlock
}

// Attach appends regionID to the account's owned-region list. Appending an
// id that is already present is a no-op. Must run inside the same database
// transaction as the region insert, under LockOwner for the account.
func (s *RelationshipSync) Attach(ctx context.Context, accounts repository.AccountRepository, accountID, regionID uuid.UUID) error {
	if err := accounts.AppendOwnedRegion(ctx, accountID, regionID); err != nil {
		return errors.Wrap(err, "failed to attach region to owner")
	}

	return nil
}

// Detach removes regionID from the account's owned-region list. Removing an
// absent id is a no-op, not an error.
func (s *RelationshipSync) Detach(ctx context.Context, accounts repository.AccountRepository, accountID, regionID uuid.UUID) error {
	if err := accounts.RemoveOwnedRegion(ctx, accountID, regionID); err != nil {
		return errors.Wrap(err, "failed to detach region from owner")
	}

	return nil
}
