package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "atlas/internal/delivery/context"
	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	"atlas/internal/errors"
	"atlas/internal/usecase"

	"github.com/google/uuid"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo repository.AccountRepository
	txManager   repository.TransactionManager
	reconciler  *LocationReconciler
	sync        *RelationshipSync
	logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(
	accountRepo repository.AccountRepository,
	txManager repository.TransactionManager,
	reconciler *LocationReconciler,
	relationshipSync *RelationshipSync,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		accountRepo: accountRepo,
		txManager:   txManager,
		reconciler:  reconciler,
		sync:        relationshipSync,
		logger:      logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create registers a new account. Exactly one of address/coordinate must be
// supplied; the missing half is derived through the reconciler so a stored
// account always carries both.
func (srv *accountService) Create(ctx context.Context, input *usecase.CreateAccountInput) (*entity.Account, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("request body is required")
	}
	if input.Name == "" || input.Email == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name and email are required")
	}
	if err := checkExactlyOneLocation(input.Address, input.Coordinate); err != nil {
		return nil, err
	}

	address, coordinate, err := srv.reconciler.Reconcile(ctx, input.Address, input.Coordinate)
	if err != nil {
		srv.log(ctx).Warn("Location reconciliation failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	now := time.Now()
	account := &entity.Account{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		Address:      address,
		Coordinate:   coordinate,
		OwnedRegions: []uuid.UUID{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Debug("Account created", slog.Any("accountID", account.ID))

	return account, nil
}

// Get retrieves a single account by id.
func (srv *accountService) Get(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return account, nil
}

// List returns one page of accounts plus the total collection size.
func (srv *accountService) List(ctx context.Context, offset, limit int) (*usecase.AccountPage, error) {
	if offset < 0 {
		offset = 0
	}

	rows, total, err := srv.accountRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return &usecase.AccountPage{Rows: rows, Total: total}, nil
}

// Update modifies name, email and/or location of an existing account.
// Omitted fields are left unchanged; when a location field is present the
// exactly-one rule and reconciliation apply exactly as on create.
func (srv *accountService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateAccountInput) (*entity.Account, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("request body is required")
	}

	var updated *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound
			}

			return errors.Wrap(err, "failed to find account")
		}

		if input.Name != nil {
			account.Name = *input.Name
		}
		if input.Email != nil {
			account.Email = *input.Email
		}

		if input.Address != nil || input.Coordinate != nil {
			if err := checkExactlyOneLocation(input.Address, input.Coordinate); err != nil {
				return err
			}

			address, coordinate, err := srv.reconciler.Reconcile(ctx, input.Address, input.Coordinate)
			if err != nil {
				return err
			}
			account.Address = address
			account.Coordinate = coordinate
		}

		account.UpdatedAt = time.Now()

		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to update account")
		}
		updated = account

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes an account. An account that still owns regions cannot be
// deleted; detach or delete its regions first. This keeps every stored
// region pointing at an existing owner.
func (srv *accountService) Delete(ctx context.Context, id uuid.UUID) error {
	unlock := srv.sync.LockOwner(id)
	defer unlock()

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound
			}

			return errors.Wrap(err, "failed to find account")
		}

		if len(account.OwnedRegions) > 0 {
			return domainerrors.ErrAccountHasRegions.WrapMessage("delete or reassign owned regions first")
		}

		if err := accountRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete account")
		}

		srv.log(ctx).Debug("Account deleted", slog.Any("accountID", id))

		return nil
	})
}

// checkExactlyOneLocation enforces the exactly-one-of rule for the
// address/coordinate pair and the geographic coordinate range.
func checkExactlyOneLocation(address *string, coord *entity.Coordinate) error {
	hasAddress := address != nil && *address != ""
	hasCoord := coord != nil

	if hasAddress == hasCoord {
		return domainerrors.ErrLocationConflict
	}
	if hasCoord && !coord.Valid() {
		return domainerrors.ErrValidationFailed.WrapMessage("coordinate outside valid range")
	}

	return nil
}
