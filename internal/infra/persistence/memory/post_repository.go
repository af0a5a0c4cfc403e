package memory

import (
	"context"
	"slices"
	"time"

	"blog/internal/domain/entity"
	"blog/internal/domain/repository"
)

type postRecord struct {
	id        int64
	subject   string
	content   string
	createdAt time.Time
}

func (r postRecord) toEntity() *entity.Post {
	return &entity.Post{
		ID:        r.id,
		Subject:   r.subject,
		Content:   r.content,
		CreatedAt: r.createdAt,
	}
}

type postRepository struct {
	store *Store
	inTx  bool
}

// NewPostRepository is the constructor for the in-memory PostRepository.
func NewPostRepository(store *Store) repository.PostRepository {
	return &postRepository{store: store}
}

func (repo *postRepository) FindByID(ctx context.Context, id int64) (*entity.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer repo.store.rlock(repo.inTx)()

	rec, ok := repo.store.posts[id]
	if !ok {
		return nil, repository.ErrPostNotFound
	}

	return rec.toEntity(), nil
}

func (repo *postRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer repo.store.rlock(repo.inTx)()

	records := make([]postRecord, 0, len(repo.store.posts))
	for _, rec := range repo.store.posts {
		records = append(records, rec)
	}

	slices.SortFunc(records, func(a, b postRecord) int {
		if c := b.createdAt.Compare(a.createdAt); c != 0 {
			return c
		}
		switch {
		case a.id > b.id:
			return -1
		case a.id < b.id:
			return 1
		default:
			return 0
		}
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	posts := make([]*entity.Post, 0, len(records))
	for _, rec := range records {
		posts = append(posts, rec.toEntity())
	}

	return posts, nil
}

func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer repo.store.lock(repo.inTx)()

	s := repo.store
	s.lastPostID++
	rec := postRecord{
		id:        s.lastPostID,
		subject:   post.Subject,
		content:   post.Content,
		createdAt: s.now(),
	}
	s.posts[rec.id] = rec

	post.ID = rec.id
	post.CreatedAt = rec.createdAt

	return nil
}
