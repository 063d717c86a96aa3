package impl

import (
	"context"
	"testing"

	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	"atlas/internal/domain/service"
	mockRepo "atlas/internal/mocks/repository"
	mockService "atlas/internal/mocks/service"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAccountService(t *testing.T) (*mockRepo.MockAccountRepository, *mockService.MockGeocodingService, usecase.AccountUsecase) {
	t.Helper()

	accountRepo := mockRepo.NewMockAccountRepository(t)
	geocoder := mockService.NewMockGeocodingService(t)
	txManager := &fakeTxManager{accounts: accountRepo}
	svc := NewAccountService(
		accountRepo,
		txManager,
		NewLocationReconciler(geocoder),
		NewRelationshipSync(),
		newDiscardLogger(),
	)

	return accountRepo, geocoder, svc
}

func TestAccountService_Create_FromCoordinate(t *testing.T) {
	accountRepo, geocoder, svc := newAccountService(t)

	ctx := context.Background()
	coord := entity.Coordinate{Latitude: -27.59, Longitude: -48.55}

	geocoder.EXPECT().
		AddressFromCoordinate(ctx, coord).
		Return("Rua Felipe Schmidt 1, Florianopolis", nil)

	accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Return(nil)

	account, err := svc.Create(ctx, &usecase.CreateAccountInput{
		Name:       "Alice",
		Email:      "alice@example.com",
		Coordinate: &coord,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, account.ID)
	assert.Equal(t, "Rua Felipe Schmidt 1, Florianopolis", account.Address)
	assert.Equal(t, coord, account.Coordinate)
	assert.NotNil(t, account.OwnedRegions)
	assert.Empty(t, account.OwnedRegions)
}

func TestAccountService_Create_FromAddress(t *testing.T) {
	accountRepo, geocoder, svc := newAccountService(t)

	ctx := context.Background()
	address := "Rua Felipe Schmidt 1, Florianopolis"
	resolved := entity.Coordinate{Latitude: -27.59, Longitude: -48.55}

	geocoder.EXPECT().
		CoordinateFromAddress(ctx, address).
		Return(resolved, nil)

	accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Return(nil)

	account, err := svc.Create(ctx, &usecase.CreateAccountInput{
		Name:    "Alice",
		Email:   "alice@example.com",
		Address: &address,
	})
	require.NoError(t, err)
	assert.Equal(t, address, account.Address)
	assert.Equal(t, resolved, account.Coordinate)
}

func TestAccountService_Create_LocationPairRule(t *testing.T) {
	_, _, svc := newAccountService(t)

	ctx := context.Background()
	address := "somewhere"
	coord := entity.Coordinate{Latitude: 1, Longitude: 1}

	tests := []struct {
		name  string
		input *usecase.CreateAccountInput
	}{
		{
			name:  "neither supplied",
			input: &usecase.CreateAccountInput{Name: "a", Email: "a@b.c"},
		},
		{
			name:  "both supplied",
			input: &usecase.CreateAccountInput{Name: "a", Email: "a@b.c", Address: &address, Coordinate: &coord},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account, err := svc.Create(ctx, tt.input)
			assert.Nil(t, account)
			assert.ErrorIs(t, err, domainerrors.ErrLocationConflict)
		})
	}
}

func TestAccountService_NilInput(t *testing.T) {
	_, _, svc := newAccountService(t)

	account, err := svc.Create(context.Background(), nil)
	assert.Nil(t, account)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	account, err = svc.Update(context.Background(), uuid.New(), nil)
	assert.Nil(t, account)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAccountService_Create_MissingName(t *testing.T) {
	_, _, svc := newAccountService(t)

	coord := entity.Coordinate{Latitude: 1, Longitude: 1}
	account, err := svc.Create(context.Background(), &usecase.CreateAccountInput{
		Email:      "a@b.c",
		Coordinate: &coord,
	})
	assert.Nil(t, account)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAccountService_Create_CoordinateOutOfRange(t *testing.T) {
	_, _, svc := newAccountService(t)

	coord := entity.Coordinate{Latitude: 95, Longitude: 10}
	account, err := svc.Create(context.Background(), &usecase.CreateAccountInput{
		Name:       "a",
		Email:      "a@b.c",
		Coordinate: &coord,
	})
	assert.Nil(t, account)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAccountService_Create_GeocoderNoMatch(t *testing.T) {
	_, geocoder, svc := newAccountService(t)

	ctx := context.Background()
	address := "nowhere at all"

	geocoder.EXPECT().
		CoordinateFromAddress(ctx, address).
		Return(entity.Coordinate{}, service.ErrNoMatch)

	account, err := svc.Create(ctx, &usecase.CreateAccountInput{
		Name:    "a",
		Email:   "a@b.c",
		Address: &address,
	})
	assert.Nil(t, account)
	assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
}

func TestAccountService_Get_NotFound(t *testing.T) {
	accountRepo, _, svc := newAccountService(t)

	ctx := context.Background()
	id := uuid.New()

	accountRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrAccountNotFound)

	account, err := svc.Get(ctx, id)
	assert.Nil(t, account)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAccountService_Update_LocationReconciled(t *testing.T) {
	accountRepo, geocoder, svc := newAccountService(t)

	ctx := context.Background()
	id := uuid.New()
	existing := &entity.Account{
		ID:      id,
		Name:    "Alice",
		Email:   "alice@example.com",
		Address: "old address",
		Coordinate: entity.Coordinate{
			Latitude:  -27.59,
			Longitude: -48.55,
		},
		OwnedRegions: []uuid.UUID{},
	}
	newAddress := "new address"
	resolved := entity.Coordinate{Latitude: -27.60, Longitude: -48.54}

	accountRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)
	geocoder.EXPECT().CoordinateFromAddress(ctx, newAddress).Return(resolved, nil)
	accountRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)

	updated, err := svc.Update(ctx, id, &usecase.UpdateAccountInput{Address: &newAddress})
	require.NoError(t, err)
	assert.Equal(t, newAddress, updated.Address)
	assert.Equal(t, resolved, updated.Coordinate)
	assert.Equal(t, "Alice", updated.Name)
}

func TestAccountService_Update_NameOnlyKeepsLocation(t *testing.T) {
	accountRepo, _, svc := newAccountService(t)

	ctx := context.Background()
	id := uuid.New()
	existing := &entity.Account{
		ID:         id,
		Name:       "Alice",
		Email:      "alice@example.com",
		Address:    "old address",
		Coordinate: entity.Coordinate{Latitude: -27.59, Longitude: -48.55},
	}
	newName := "Alicia"

	accountRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)
	accountRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)

	updated, err := svc.Update(ctx, id, &usecase.UpdateAccountInput{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.Name)
	assert.Equal(t, "old address", updated.Address)
}

func TestAccountService_Delete_StillOwnsRegions(t *testing.T) {
	accountRepo, _, svc := newAccountService(t)

	ctx := context.Background()
	id := uuid.New()
	existing := &entity.Account{
		ID:           id,
		OwnedRegions: []uuid.UUID{uuid.New()},
	}

	accountRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)

	err := svc.Delete(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrAccountHasRegions)
}

func TestAccountService_Delete_Success(t *testing.T) {
	accountRepo, _, svc := newAccountService(t)

	ctx := context.Background()
	id := uuid.New()
	existing := &entity.Account{ID: id, OwnedRegions: []uuid.UUID{}}

	accountRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)
	accountRepo.EXPECT().Delete(ctx, id).Return(nil)

	require.NoError(t, svc.Delete(ctx, id))
}
