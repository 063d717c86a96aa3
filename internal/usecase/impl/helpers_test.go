package impl

import (
	"context"
	"io"
	"log/slog"

	"atlas/internal/domain/repository"

	"github.com/paulmach/orb"
)

// newDiscardLogger returns a logger whose output goes nowhere.
func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeTxManager runs the callback directly against the injected repositories,
// standing in for a real database transaction.
type fakeTxManager struct {
	accounts repository.AccountRepository
	regions  repository.RegionRepository
}

func (f *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(f)
}

func (f *fakeTxManager) AccountRepo() repository.AccountRepository {
	return f.accounts
}

func (f *fakeTxManager) RegionRepo() repository.RegionRepository {
	return f.regions
}

// validRing is a small square around downtown Florianopolis, closed and
// counterclockwise.
func validRing() orb.Ring {
	return orb.Ring{
		{-48.52, -27.58},
		{-48.50, -27.58},
		{-48.50, -27.56},
		{-48.52, -27.56},
		{-48.52, -27.58},
	}
}
