// Package persistence selects the storage backend configured under storage.driver.
package persistence

import (
	"log/slog"

	"blog/config"
	"blog/internal/domain/repository"
	"blog/internal/infra/persistence/memory"
	"blog/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Result exposes the repositories of the selected backend to fx.
type Result struct {
	fx.Out

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	PostRepo  repository.PostRepository
}

// New builds the repositories for storage.driver.
func New(params Params) (Result, error) {
	switch params.Config.Storage.Driver {
	case config.StorageDriverMemory:
		params.Logger.Warn("Using in-memory storage, data is lost on restart")
		store := memory.NewStore()

		return Result{
			TxManager: memory.NewTransactionManager(store),
			UserRepo:  memory.NewUserRepository(store),
			PostRepo:  memory.NewPostRepository(store),
		}, nil

	case config.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Result{}, err
		}

		return Result{
			TxManager: postgres.NewTransactionManager(db),
			UserRepo:  postgres.NewUserRepository(db),
			PostRepo:  postgres.NewPostRepository(db),
		}, nil

	default:
		return Result{}, errors.Errorf("unknown storage driver %q", params.Config.Storage.Driver)
	}
}
