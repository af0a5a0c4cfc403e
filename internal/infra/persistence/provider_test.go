package persistence

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"blog/config"
	"blog/internal/domain/entity"
	"blog/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNew_MemoryDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = config.StorageDriverMemory

	result, err := New(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	ctx := context.Background()
	user := &entity.User{Username: "alice"}
	require.NoError(t, result.UserRepo.Create(ctx, user))

	// The transaction manager sees writes made through the plain repositories.
	err = result.TxManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		found, err := f.UserRepo().FindByID(ctx, user.ID)
		if err != nil {
			return err
		}
		assert.Equal(t, "alice", found.Username)

		return nil
	})
	require.NoError(t, err)
}

func TestNew_UnknownDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = "sqlite"

	_, err := New(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.ErrorContains(t, err, "unknown storage driver")
}
