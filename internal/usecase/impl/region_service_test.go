package impl

import (
	"context"
	"testing"

	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	mockRepo "atlas/internal/mocks/repository"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRegionService(t *testing.T) (*mockRepo.MockAccountRepository, *mockRepo.MockRegionRepository, usecase.RegionUsecase) {
	t.Helper()

	accountRepo := mockRepo.NewMockAccountRepository(t)
	regionRepo := mockRepo.NewMockRegionRepository(t)
	txManager := &fakeTxManager{accounts: accountRepo, regions: regionRepo}
	svc := NewRegionService(regionRepo, txManager, NewRelationshipSync(), newDiscardLogger())

	return accountRepo, regionRepo, svc
}

func TestRegionService_Create_AttachesToOwner(t *testing.T) {
	accountRepo, regionRepo, svc := newRegionService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	accountRepo.EXPECT().
		FindByID(ctx, ownerID).
		Return(&entity.Account{ID: ownerID}, nil)

	var createdID uuid.UUID
	regionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Region")).
		Run(func(_ context.Context, region *entity.Region) {
			createdID = region.ID
		}).
		Return(nil)

	accountRepo.EXPECT().
		AppendOwnedRegion(ctx, ownerID, mock.AnythingOfType("uuid.UUID")).
		Return(nil)

	region, err := svc.Create(ctx, &usecase.CreateRegionInput{
		Name:     "Centro",
		Boundary: validRing(),
		OwnerID:  ownerID,
	})
	require.NoError(t, err)
	assert.Equal(t, createdID, region.ID)
	assert.Equal(t, ownerID, region.OwnerID)
}

func TestRegionService_Create_InvalidBoundary(t *testing.T) {
	_, _, svc := newRegionService(t)

	// Bowtie: edges cross, not a simple polygon.
	bowtie := orb.Ring{{0, 0}, {2, 2}, {2, 0}, {0, 2}, {0, 0}}

	region, err := svc.Create(context.Background(), &usecase.CreateRegionInput{
		Name:     "Broken",
		Boundary: bowtie,
		OwnerID:  uuid.New(),
	})
	assert.Nil(t, region)
	assert.ErrorIs(t, err, domainerrors.ErrBoundaryInvalid)
}

func TestRegionService_NilInput(t *testing.T) {
	_, _, svc := newRegionService(t)

	region, err := svc.Create(context.Background(), nil)
	assert.Nil(t, region)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	region, err = svc.Update(context.Background(), uuid.New(), nil)
	assert.Nil(t, region)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRegionService_Create_OwnerNotFound(t *testing.T) {
	accountRepo, _, svc := newRegionService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	accountRepo.EXPECT().
		FindByID(ctx, ownerID).
		Return(nil, repository.ErrAccountNotFound)

	region, err := svc.Create(ctx, &usecase.CreateRegionInput{
		Name:     "Orphan",
		Boundary: validRing(),
		OwnerID:  ownerID,
	})
	assert.Nil(t, region)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestRegionService_Update_OwnershipMismatch(t *testing.T) {
	_, regionRepo, svc := newRegionService(t)

	ctx := context.Background()
	regionID := uuid.New()
	stored := &entity.Region{
		ID:       regionID,
		Name:     "Centro",
		Boundary: validRing(),
		OwnerID:  uuid.New(),
	}

	regionRepo.EXPECT().FindByID(ctx, regionID).Return(stored, nil)

	region, err := svc.Update(ctx, regionID, &usecase.UpdateRegionInput{
		Name:     "Renamed",
		Boundary: validRing(),
		OwnerID:  uuid.New(), // not the stored owner
	})
	assert.Nil(t, region)
	assert.ErrorIs(t, err, domainerrors.ErrOwnershipMismatch)
}

func TestRegionService_Update_Success(t *testing.T) {
	_, regionRepo, svc := newRegionService(t)

	ctx := context.Background()
	regionID := uuid.New()
	ownerID := uuid.New()
	stored := &entity.Region{
		ID:       regionID,
		Name:     "Centro",
		Boundary: validRing(),
		OwnerID:  ownerID,
	}

	regionRepo.EXPECT().FindByID(ctx, regionID).Return(stored, nil)
	regionRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Region")).Return(nil)

	region, err := svc.Update(ctx, regionID, &usecase.UpdateRegionInput{
		Name:     "Renamed",
		Boundary: validRing(),
		OwnerID:  ownerID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", region.Name)
	assert.Equal(t, ownerID, region.OwnerID)
}

func TestRegionService_Delete_DetachesFromOwner(t *testing.T) {
	accountRepo, regionRepo, svc := newRegionService(t)

	ctx := context.Background()
	regionID := uuid.New()
	ownerID := uuid.New()
	stored := &entity.Region{ID: regionID, Boundary: validRing(), OwnerID: ownerID}

	// Read once outside the critical section, once inside the transaction.
	regionRepo.EXPECT().FindByID(ctx, regionID).Return(stored, nil).Times(2)
	regionRepo.EXPECT().Delete(ctx, regionID).Return(nil)
	accountRepo.EXPECT().RemoveOwnedRegion(ctx, ownerID, regionID).Return(nil)

	require.NoError(t, svc.Delete(ctx, regionID, ownerID))
}

func TestRegionService_Delete_OwnershipMismatch(t *testing.T) {
	_, regionRepo, svc := newRegionService(t)

	ctx := context.Background()
	regionID := uuid.New()
	stored := &entity.Region{ID: regionID, Boundary: validRing(), OwnerID: uuid.New()}

	regionRepo.EXPECT().FindByID(ctx, regionID).Return(stored, nil)

	err := svc.Delete(ctx, regionID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrOwnershipMismatch)
}

func TestRegionService_FindContaining_FiltersByGeometry(t *testing.T) {
	_, regionRepo, svc := newRegionService(t)

	ctx := context.Background()
	inside := &entity.Region{ID: uuid.New(), Boundary: validRing()}
	// Same bounding box class but the point falls outside this ring.
	elsewhere := &entity.Region{ID: uuid.New(), Boundary: orb.Ring{
		{-48.49, -27.58}, {-48.48, -27.58}, {-48.48, -27.57}, {-48.49, -27.57}, {-48.49, -27.58},
	}}
	point := orb.Point{-48.51, -27.57}

	regionRepo.EXPECT().
		FindByBound(ctx, orb.Bound{Min: point, Max: point}, (*uuid.UUID)(nil)).
		Return([]*entity.Region{inside, elsewhere}, nil)

	regions, err := svc.FindContaining(ctx, point, nil)
	require.NoError(t, err)
	require.Len(t, regions, 1)
	assert.Equal(t, inside.ID, regions[0].ID)
}

func TestRegionService_FindContaining_OwnerFilterNoMatch(t *testing.T) {
	_, regionRepo, svc := newRegionService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	point := orb.Point{-48.51, -27.57}

	// The store already restricts candidates to the owner; an owner with no
	// containing region yields no candidates at all.
	regionRepo.EXPECT().
		FindByBound(ctx, orb.Bound{Min: point, Max: point}, &ownerID).
		Return([]*entity.Region{}, nil)

	regions, err := svc.FindContaining(ctx, point, &ownerID)
	require.NoError(t, err)
	assert.Empty(t, regions)
}

func TestRegionService_FindContaining_InvalidPoint(t *testing.T) {
	_, _, svc := newRegionService(t)

	regions, err := svc.FindContaining(context.Background(), orb.Point{200, 10}, nil)
	assert.Nil(t, regions)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRegionService_FindNear_OrdersByDistance(t *testing.T) {
	_, regionRepo, svc := newRegionService(t)

	ctx := context.Background()
	near := &entity.Region{ID: uuid.New(), Boundary: validRing()}
	far := &entity.Region{ID: uuid.New(), Boundary: orb.Ring{
		{-48.45, -27.58}, {-48.44, -27.58}, {-48.44, -27.57}, {-48.45, -27.57}, {-48.45, -27.58},
	}}
	// Just east of the first ring, several kilometers west of the second.
	point := orb.Point{-48.495, -27.57}

	regionRepo.EXPECT().
		FindByBound(ctx, mock.AnythingOfType("orb.Bound"), (*uuid.UUID)(nil)).
		Return([]*entity.Region{far, near}, nil)

	regions, err := svc.FindNear(ctx, point, 10_000, nil)
	require.NoError(t, err)
	require.Len(t, regions, 2)
	assert.Equal(t, near.ID, regions[0].ID)
	assert.Equal(t, far.ID, regions[1].ID)
}

func TestRegionService_FindNear_ExcludesBeyondDistance(t *testing.T) {
	_, regionRepo, svc := newRegionService(t)

	ctx := context.Background()
	near := &entity.Region{ID: uuid.New(), Boundary: validRing()}
	far := &entity.Region{ID: uuid.New(), Boundary: orb.Ring{
		{-48.45, -27.58}, {-48.44, -27.58}, {-48.44, -27.57}, {-48.45, -27.57}, {-48.45, -27.58},
	}}
	point := orb.Point{-48.495, -27.57}

	regionRepo.EXPECT().
		FindByBound(ctx, mock.AnythingOfType("orb.Bound"), (*uuid.UUID)(nil)).
		Return([]*entity.Region{far, near}, nil)

	// 1km reaches the first ring (about 500m away) but not the second.
	regions, err := svc.FindNear(ctx, point, 1_000, nil)
	require.NoError(t, err)
	require.Len(t, regions, 1)
	assert.Equal(t, near.ID, regions[0].ID)
}

func TestRegionService_FindNear_OwnerFilterNoMatch(t *testing.T) {
	_, regionRepo, svc := newRegionService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	point := orb.Point{-48.495, -27.57}

	// The owner's only region sits several kilometers away, outside the
	// requested radius.
	far := &entity.Region{ID: uuid.New(), OwnerID: ownerID, Boundary: orb.Ring{
		{-48.45, -27.58}, {-48.44, -27.58}, {-48.44, -27.57}, {-48.45, -27.57}, {-48.45, -27.58},
	}}

	regionRepo.EXPECT().
		FindByBound(ctx, mock.AnythingOfType("orb.Bound"), &ownerID).
		Return([]*entity.Region{far}, nil)

	regions, err := svc.FindNear(ctx, point, 1_000, &ownerID)
	require.NoError(t, err)
	assert.Empty(t, regions)
}

func TestRegionService_FindNear_NegativeDistance(t *testing.T) {
	_, _, svc := newRegionService(t)

	regions, err := svc.FindNear(context.Background(), orb.Point{0, 0}, -1, nil)
	assert.Nil(t, regions)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRegionService_FindNear_InsideRingIsDistanceZero(t *testing.T) {
	_, regionRepo, svc := newRegionService(t)

	ctx := context.Background()
	containing := &entity.Region{ID: uuid.New(), Boundary: validRing()}
	point := orb.Point{-48.51, -27.57}

	regionRepo.EXPECT().
		FindByBound(ctx, mock.AnythingOfType("orb.Bound"), (*uuid.UUID)(nil)).
		Return([]*entity.Region{containing}, nil)

	regions, err := svc.FindNear(ctx, point, 1, nil)
	require.NoError(t, err)
	require.Len(t, regions, 1)
}
