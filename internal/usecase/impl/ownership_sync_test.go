package impl

import (
	"context"
	"sync"
	"testing"

	"atlas/internal/domain/entity"
	"atlas/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryAccountRepo is a deliberately race-prone in-memory account store:
// the owned-region list mutation is a read-modify-write with no locking of
// its own, so lost updates surface unless the caller serializes.
type memoryAccountRepo struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]*entity.Account
}

func newMemoryAccountRepo() *memoryAccountRepo {
	return &memoryAccountRepo{accounts: make(map[uuid.UUID]*entity.Account)}
}

func (r *memoryAccountRepo) Create(_ context.Context, account *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[account.ID] = account

	return nil
}

func (r *memoryAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	copied := *account
	copied.OwnedRegions = append([]uuid.UUID{}, account.OwnedRegions...)

	return &copied, nil
}

func (r *memoryAccountRepo) Update(_ context.Context, account *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[account.ID] = account

	return nil
}

func (r *memoryAccountRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.accounts, id)

	return nil
}

func (r *memoryAccountRepo) List(_ context.Context, _, _ int) ([]*entity.Account, int64, error) {
	return nil, 0, nil
}

func (r *memoryAccountRepo) AppendOwnedRegion(ctx context.Context, accountID, regionID uuid.UUID) error {
	account, err := r.FindByID(ctx, accountID)
	if err != nil {
		return err
	}

	for _, id := range account.OwnedRegions {
		if id == regionID {
			return nil
		}
	}
	account.OwnedRegions = append(account.OwnedRegions, regionID)

	return r.Update(ctx, account)
}

func (r *memoryAccountRepo) RemoveOwnedRegion(ctx context.Context, accountID, regionID uuid.UUID) error {
	account, err := r.FindByID(ctx, accountID)
	if err != nil {
		return err
	}

	kept := account.OwnedRegions[:0]
	for _, id := range account.OwnedRegions {
		if id != regionID {
			kept = append(kept, id)
		}
	}
	account.OwnedRegions = kept

	return r.Update(ctx, account)
}

func TestRelationshipSync_ConcurrentAttachesLoseNothing(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryAccountRepo()
	ownerID := uuid.New()
	require.NoError(t, repo.Create(ctx, &entity.Account{ID: ownerID, OwnedRegions: []uuid.UUID{}}))

	relSync := NewRelationshipSync()

	const attachers = 50
	var wg sync.WaitGroup
	wg.Add(attachers)
	for i := 0; i < attachers; i++ {
		go func() {
			defer wg.Done()

			unlock := relSync.LockOwner(ownerID)
			defer unlock()

			assert.NoError(t, relSync.Attach(ctx, repo, ownerID, uuid.New()))
		}()
	}
	wg.Wait()

	account, err := repo.FindByID(ctx, ownerID)
	require.NoError(t, err)
	assert.Len(t, account.OwnedRegions, attachers)
}

func TestRelationshipSync_AttachIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryAccountRepo()
	ownerID := uuid.New()
	regionID := uuid.New()
	require.NoError(t, repo.Create(ctx, &entity.Account{ID: ownerID, OwnedRegions: []uuid.UUID{}}))

	relSync := NewRelationshipSync()

	require.NoError(t, relSync.Attach(ctx, repo, ownerID, regionID))
	require.NoError(t, relSync.Attach(ctx, repo, ownerID, regionID))

	account, err := repo.FindByID(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{regionID}, account.OwnedRegions)
}

func TestRelationshipSync_DetachAbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryAccountRepo()
	ownerID := uuid.New()
	kept := uuid.New()
	require.NoError(t, repo.Create(ctx, &entity.Account{ID: ownerID, OwnedRegions: []uuid.UUID{kept}}))

	relSync := NewRelationshipSync()

	require.NoError(t, relSync.Detach(ctx, repo, ownerID, uuid.New()))

	account, err := repo.FindByID(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{kept}, account.OwnedRegions)
}

func TestRelationshipSync_LockOwnerSerializesPerAccount(t *testing.T) {
	relSync := NewRelationshipSync()
	ownerID := uuid.New()

	var inSection int32
	var wg sync.WaitGroup
	wg.Add(10)
	for i := 0; i < 10; i++ {
		go func() {
			defer wg.Done()

			unlock := relSync.LockOwner(ownerID)
			defer unlock()

			inSection++
			assert.Equal(t, int32(1), inSection)
			inSection--
		}()
	}
	wg.Wait()
}
