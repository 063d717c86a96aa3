package postgres

import (
	"context"
	"encoding/json"
	"slices"

	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	"atlas/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// accountRepository implements the domain's AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// Create persists a new account entity.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM, err := fromAccountDomain(account)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("account already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// FindByID retrieves a single account by its unique ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return toAccountDomain(&accountM)
}

// Update modifies an existing account row.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountM, err := fromAccountDomain(account)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).Model(&model.AccountModel{}).
		Where("id = ?", account.ID).
		Updates(map[string]any{
			"name":             accountM.Name,
			"email":            accountM.Email,
			"address":          accountM.Address,
			"latitude":         accountM.Latitude,
			"longitude":        accountM.Longitude,
			"owned_region_ids": accountM.OwnedRegionIDs,
			"updated_at":       accountM.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// Delete removes an account by its ID.
func (repo *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AccountModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// List returns a page of accounts in creation order plus the total count.
func (repo *accountRepository) List(ctx context.Context, offset, limit int) ([]*entity.Account, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.AccountModel{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count accounts")
	}

	var models []model.AccountModel
	if err := repo.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list accounts")
	}

	accounts := make([]*entity.Account, 0, len(models))
	for i := range models {
		account, err := toAccountDomain(&models[i])
		if err != nil {
			return nil, 0, err
		}
		accounts = append(accounts, account)
	}

	return accounts, total, nil
}

// AppendOwnedRegion adds regionID to the account's owned-region list.
// The caller serializes concurrent mutations per account, so a plain
// read-modify-write is sufficient here.
func (repo *accountRepository) AppendOwnedRegion(ctx context.Context, accountID, regionID uuid.UUID) error {
	return repo.mutateOwnedRegions(ctx, accountID, func(ids []uuid.UUID) []uuid.UUID {
		if slices.Contains(ids, regionID) {
			return ids
		}

		return append(ids, regionID)
	})
}

// RemoveOwnedRegion removes regionID from the account's owned-region list.
func (repo *accountRepository) RemoveOwnedRegion(ctx context.Context, accountID, regionID uuid.UUID) error {
	return repo.mutateOwnedRegions(ctx, accountID, func(ids []uuid.UUID) []uuid.UUID {
		return slices.DeleteFunc(ids, func(id uuid.UUID) bool {
			return id == regionID
		})
	})
}

func (repo *accountRepository) mutateOwnedRegions(ctx context.Context, accountID uuid.UUID, mutate func([]uuid.UUID) []uuid.UUID) error {
	var accountM model.AccountModel
	if err := repo.db.WithContext(ctx).Where("id = ?", accountID).First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrAccountNotFound
		}

		return errors.Wrap(err, "failed to find account by id")
	}

	ids, err := decodeRegionIDs(accountM.OwnedRegionIDs)
	if err != nil {
		return err
	}

	encoded, err := encodeRegionIDs(mutate(ids))
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Model(&model.AccountModel{}).
		Where("id = ?", accountID).
		Update("owned_region_ids", datatypes.JSON(encoded)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update owned regions")
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toAccountDomain(data *model.AccountModel) (*entity.Account, error) {
	ownedRegions, err := decodeRegionIDs(data.OwnedRegionIDs)
	if err != nil {
		return nil, err
	}

	return &entity.Account{
		ID:      data.ID,
		Name:    data.Name,
		Email:   data.Email,
		Address: data.Address,
		Coordinate: entity.Coordinate{
			Latitude:  data.Latitude,
			Longitude: data.Longitude,
		},
		OwnedRegions: ownedRegions,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}, nil
}

func fromAccountDomain(data *entity.Account) (*model.AccountModel, error) {
	encoded, err := encodeRegionIDs(data.OwnedRegions)
	if err != nil {
		return nil, err
	}

	return &model.AccountModel{
		ID:             data.ID,
		Name:           data.Name,
		Email:          data.Email,
		Address:        data.Address,
		Latitude:       data.Coordinate.Latitude,
		Longitude:      data.Coordinate.Longitude,
		OwnedRegionIDs: encoded,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}, nil
}

func decodeRegionIDs(raw []byte) ([]uuid.UUID, error) {
	if len(raw) == 0 {
		return []uuid.UUID{}, nil
	}

	ids := []uuid.UUID{}
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, errors.Wrap(err, "failed to decode owned region ids")
	}

	return ids, nil
}

func encodeRegionIDs(ids []uuid.UUID) ([]byte, error) {
	if ids == nil {
		ids = []uuid.UUID{}
	}

	encoded, err := json.Marshal(ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode owned region ids")
	}

	return encoded, nil
}
