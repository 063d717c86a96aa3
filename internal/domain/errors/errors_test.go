package errors

import (
	"testing"

	"atlas/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrBoundaryInvalid.WithDetails("ring is not closed")

	assert.ErrorIs(t, err, ErrBoundaryInvalid)
	assert.Equal(t, "ring is not closed", err.Details())
	assert.Equal(t, ErrBoundaryInvalid.ErrorCode(), err.ErrorCode())
}

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrAccountHasRegions.WrapMessage("delete or reassign owned regions first")

	assert.ErrorIs(t, err, ErrAccountHasRegions)

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "ACCOUNT_HAS_REGIONS", appErr.ErrorCode())
}

func TestBaseError_IsDistinguishesCodes(t *testing.T) {
	assert.NotErrorIs(t, ErrRegionNotFound, ErrAccountNotFound)
	assert.NotErrorIs(t, ErrBoundaryInvalid.WithDetails("x"), ErrValidationFailed)
	assert.False(t, ErrBoundaryInvalid.Is(errors.New("BOUNDARY_INVALID")))
}
