// Package memory is a process-local implementation of the repository
// interfaces, selected with storage.driver: memory and used by tests.
package memory

import (
	"context"
	"maps"
	"sync"
	"time"

	"blog/internal/domain/repository"
)

// Store holds every record behind a single lock. A transaction holds the
// write lock for its whole duration, which makes it serializable.
type Store struct {
	mu sync.RWMutex

	users      map[int64]userRecord
	byUsername map[string]int64
	posts      map[int64]postRecord
	lastUserID int64
	lastPostID int64

	now func() time.Time
}

// Option customizes a Store.
type Option func(*Store)

// WithClock replaces time.Now as the CreatedAt source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore returns an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		users:      make(map[int64]userRecord),
		byUsername: make(map[string]int64),
		posts:      make(map[int64]postRecord),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

type snapshot struct {
	users      map[int64]userRecord
	byUsername map[string]int64
	posts      map[int64]postRecord
	lastUserID int64
	lastPostID int64
}

func (s *Store) snapshot() snapshot {
	return snapshot{
		users:      maps.Clone(s.users),
		byUsername: maps.Clone(s.byUsername),
		posts:      maps.Clone(s.posts),
		lastUserID: s.lastUserID,
		lastPostID: s.lastPostID,
	}
}

func (s *Store) restore(snap snapshot) {
	s.users = snap.users
	s.byUsername = snap.byUsername
	s.posts = snap.posts
	s.lastUserID = snap.lastUserID
	s.lastPostID = snap.lastPostID
}

type transactionManager struct {
	store *Store
}

// NewTransactionManager is the constructor for the in-memory TransactionManager.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute runs fn under the store's write lock and undoes every write when fn
// fails or panics.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s := tm.store
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	committed := false
	defer func() {
		if !committed {
			s.restore(snap)
		}
	}()

	if err := fn(&repositoryFactory{store: s}); err != nil {
		return err
	}
	committed = true

	return nil
}

type repositoryFactory struct {
	store *Store
}

func (f *repositoryFactory) UserRepo() repository.UserRepository {
	return &userRepository{store: f.store, inTx: true}
}

func (f *repositoryFactory) PostRepo() repository.PostRepository {
	return &postRepository{store: f.store, inTx: true}
}

// lockers pick the lock a repository call needs; inside Execute the write
// lock is already held.
func (s *Store) rlock(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.mu.RLock()

	return s.mu.RUnlock
}

func (s *Store) lock(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.mu.Lock()

	return s.mu.Unlock
}
