package impl

import (
	"context"
	"log/slog"
	"strings"

	"blog/config"
	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	"blog/internal/usecase"

	"github.com/pkg/errors"
)

// postService implements the PostUsecase interface.
type postService struct {
	postRepo repository.PostRepository
	metrics  service.Metrics
	pageSize int
	logger   *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(
	postRepo repository.PostRepository,
	metrics service.Metrics,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.PostUsecase {
	return &postService{
		postRepo: postRepo,
		metrics:  metrics,
		pageSize: cfg.Blog.PageSize,
		logger:   logger,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListRecent returns the newest posts, one page at most.
func (srv *postService) ListRecent(ctx context.Context) ([]*entity.Post, error) {
	posts, err := srv.postRepo.ListRecent(ctx, srv.pageSize)
	if err != nil {
		srv.log(ctx).Error("Failed to list posts", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list posts")
	}

	return posts, nil
}

// Create stores a post when both subject and content are present.
func (srv *postService) Create(ctx context.Context, input *usecase.CreatePostInput) (*entity.Post, error) {
	if strings.TrimSpace(input.Subject) == "" || strings.TrimSpace(input.Content) == "" {
		errs := domainerrors.NewValidationErrors()
		errs.Add(domainerrors.FieldForm, domainerrors.KindShape, msgPostIncomplete)

		return nil, errs
	}

	post := &entity.Post{
		Subject: input.Subject,
		Content: input.Content,
	}
	if err := srv.postRepo.Create(ctx, post); err != nil {
		srv.log(ctx).Error("Failed to create post", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create post")
	}

	srv.metrics.ObservePostCreated()
	srv.log(ctx).Info("Post created", slog.Int64("post_id", post.ID))

	return post, nil
}

// Get returns one post or ErrPostNotFound.
func (srv *postService) Get(ctx context.Context, id int64) (*entity.Post, error) {
	post, err := srv.postRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPostNotFound, "post lookup")
		}

		return nil, errors.Wrap(err, "failed to find post")
	}

	return post, nil
}
