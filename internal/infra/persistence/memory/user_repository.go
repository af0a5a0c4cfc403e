package memory

import (
	"context"
	"time"

	"blog/internal/domain/entity"
	"blog/internal/domain/repository"
)

type userRecord struct {
	id           int64
	username     string
	passwordHash string
	email        string
	createdAt    time.Time
}

func (r userRecord) toEntity() *entity.User {
	return &entity.User{
		ID:           r.id,
		Username:     r.username,
		PasswordHash: r.passwordHash,
		Email:        r.email,
		CreatedAt:    r.createdAt,
	}
}

type userRepository struct {
	store *Store
	inTx  bool
}

// NewUserRepository is the constructor for the in-memory UserRepository.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer repo.store.rlock(repo.inTx)()

	rec, ok := repo.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return rec.toEntity(), nil
}

func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer repo.store.rlock(repo.inTx)()

	id, ok := repo.store.byUsername[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return repo.store.users[id].toEntity(), nil
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer repo.store.lock(repo.inTx)()

	s := repo.store
	if _, taken := s.byUsername[user.Username]; taken {
		return repository.ErrUserAlreadyExists
	}

	s.lastUserID++
	rec := userRecord{
		id:           s.lastUserID,
		username:     user.Username,
		passwordHash: user.PasswordHash,
		email:        user.Email,
		createdAt:    s.now(),
	}
	s.users[rec.id] = rec
	s.byUsername[rec.username] = rec.id

	user.ID = rec.id
	user.CreatedAt = rec.createdAt

	return nil
}
