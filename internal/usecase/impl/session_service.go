package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	"blog/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	signer    service.TokenSigner
	metrics   service.Metrics
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	signer service.TokenSigner,
	metrics service.Metrics,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		txManager: txManager,
		userRepo:  userRepo,
		hasher:    hasher,
		signer:    signer,
		metrics:   metrics,
		validate:  newFormValidator(),
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp validates the form, creates the account and issues a session cookie value.
func (srv *sessionService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	errs := validateSignUp(srv.validate, input)

	// Without a well-formed username there is nothing to look up.
	if errs.Has(domainerrors.FieldUsername) {
		return nil, srv.rejectSignUp(ctx, errs)
	}

	var storedHash string
	if len(errs) == 0 {
		hash, err := srv.hasher.Hash(input.Username, input.Password)
		if err != nil {
			srv.metrics.ObserveSignUp(service.OutcomeError)
			srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

			return nil, errors.WithStack(fmt.Errorf("%w: %w", domainerrors.ErrPasswordHashFailed, err))
		}
		storedHash = hash
	}

	user := &entity.User{
		Username:     input.Username,
		PasswordHash: storedHash,
		Email:        input.Email,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Existence check, reported together with the shape errors
		_, err := userRepo.FindByUsername(ctx, input.Username)
		switch {
		case err == nil:
			errs.Add(domainerrors.FieldUsername, domainerrors.KindConflict, msgUserExists)
		case !errors.Is(err, repository.ErrUserNotFound):
			return errors.Wrap(err, "failed to check existing user")
		}

		if len(errs) > 0 {
			return errs
		}

		// 2. Insert; the store's uniqueness guard catches a concurrent winner
		if err := userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUserAlreadyExists) {
				errs.Add(domainerrors.FieldUsername, domainerrors.KindConflict, msgUserExists)

				return errs
			}

			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		var validationErrs domainerrors.ValidationErrors
		if errors.As(err, &validationErrs) {
			return nil, srv.rejectSignUp(ctx, validationErrs)
		}

		srv.metrics.ObserveSignUp(service.OutcomeError)
		srv.log(ctx).Error("Failed to sign up user", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to sign up user")
	}

	srv.metrics.ObserveSignUp(service.OutcomeSuccess)
	srv.log(ctx).Info("User signed up", slog.Int64("user_id", user.ID))

	return &usecase.SignUpOutput{
		User:   user,
		Cookie: srv.issue(user),
	}, nil
}

func (srv *sessionService) rejectSignUp(ctx context.Context, errs domainerrors.ValidationErrors) error {
	srv.metrics.ObserveSignUp(service.OutcomeRejected)
	srv.log(ctx).Debug("Signup rejected", slog.String("reason", errs.Error()))

	return errs
}

// Login checks the credentials of an existing account and issues a session cookie value.
// Unknown usernames and wrong passwords produce the same error.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	invalid := domainerrors.NewValidationErrors()
	invalid.Add(domainerrors.FieldUsername, domainerrors.KindCredentials, msgInvalidLogin)

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.metrics.ObserveLogin(service.OutcomeRejected)

			return nil, invalid
		}

		srv.metrics.ObserveLogin(service.OutcomeError)
		srv.log(ctx).Error("Failed to find user for login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find user")
	}

	ok, err := srv.hasher.Verify(user.Username, input.Password, user.PasswordHash)
	if err != nil {
		srv.metrics.ObserveLogin(service.OutcomeError)

		var corrupt *domainerrors.CorruptCredentialError
		if errors.As(err, &corrupt) {
			srv.log(ctx).Error("Stored credential is corrupt",
				slog.Int64("user_id", user.ID),
				slog.String("reason", corrupt.Reason),
			)

			return nil, errors.WithStack(corrupt)
		}

		return nil, errors.Wrap(err, "failed to verify password")
	}
	if !ok {
		srv.metrics.ObserveLogin(service.OutcomeRejected)

		return nil, invalid
	}

	srv.metrics.ObserveLogin(service.OutcomeSuccess)
	srv.log(ctx).Info("User logged in", slog.Int64("user_id", user.ID))

	return &usecase.LoginOutput{
		User:   user,
		Cookie: srv.issue(user),
	}, nil
}

// ResolveSession maps a cookie value to its account. Every failure degrades to anonymous.
func (srv *sessionService) ResolveSession(ctx context.Context, cookieValue string) *entity.User {
	if cookieValue == "" {
		srv.metrics.ObserveSessionResolve(service.OutcomeAnonymous)

		return nil
	}

	payload, ok := srv.signer.Verify(cookieValue)
	if !ok {
		srv.metrics.ObserveSessionResolve(service.OutcomeInvalid)

		return nil
	}

	id, err := strconv.ParseInt(payload, 10, 64)
	if err != nil {
		srv.metrics.ObserveSessionResolve(service.OutcomeInvalid)

		return nil
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.metrics.ObserveSessionResolve(service.OutcomeUnknownUser)

			return nil
		}

		srv.metrics.ObserveSessionResolve(service.OutcomeError)
		srv.log(ctx).Error("Failed to resolve session user", slog.Int64("user_id", id), slog.Any("error", err))

		return nil
	}

	srv.metrics.ObserveSessionResolve(service.OutcomeSuccess)

	return user
}

func (srv *sessionService) issue(user *entity.User) string {
	return srv.signer.Sign(strconv.FormatInt(user.ID, 10))
}
