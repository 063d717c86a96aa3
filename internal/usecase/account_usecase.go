// Package usecase defines the application-facing interfaces and their
// input/output types. Implementations live in the impl subpackage.
package usecase

import (
	"context"

	"atlas/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAccountInput carries the fields for creating a new account.
// Exactly one of Address/Coordinate must be set; the other half is derived
// through geocoding before the account is persisted.
type CreateAccountInput struct {
	Name       string             `json:"name"`
	Email      string             `json:"email"`
	Address    *string            `json:"address,omitempty"`
	Coordinate *entity.Coordinate `json:"coordinate,omitempty"`
}

// UpdateAccountInput carries the optional fields for updating an account.
// Nil fields are left unchanged. When either location field is present the
// exactly-one rule and reconciliation apply as on create.
type UpdateAccountInput struct {
	Name       *string            `json:"name,omitempty"`
	Email      *string            `json:"email,omitempty"`
	Address    *string            `json:"address,omitempty"`
	Coordinate *entity.Coordinate `json:"coordinate,omitempty"`
}

// AccountPage is one page of accounts plus the total collection size at the
// time of the query.
type AccountPage struct {
	Rows  []*entity.Account
	Total int64
}

// AccountUsecase defines the account management use cases.
type AccountUsecase interface {
	Create(ctx context.Context, input *CreateAccountInput) (*entity.Account, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	List(ctx context.Context, offset, limit int) (*AccountPage, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateAccountInput) (*entity.Account, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
