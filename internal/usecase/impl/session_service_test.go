package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strconv"
	"testing"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	"blog/internal/infra/auth"
	"blog/internal/infra/metrics"
	"blog/internal/infra/persistence/memory"
	mockRepo "blog/internal/mocks/repository"
	mockSvc "blog/internal/mocks/service"
	"blog/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSessionKey = "test_session_secret_key_for_testing"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// sessionServiceFixtures wires the service to a real in-memory store and real crypto.
type sessionServiceFixtures struct {
	service usecase.SessionUsecase
	users   repository.UserRepository
	signer  service.TokenSigner
	hasher  service.PasswordHasher
	ctx     context.Context
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	t.Helper()

	store := memory.NewStore()
	users := memory.NewUserRepository(store)
	signer, err := auth.NewHMACSigner([]byte(testSessionKey))
	require.NoError(t, err)
	hasher := auth.NewSaltedHasher(16)

	return sessionServiceFixtures{
		service: NewSessionService(
			memory.NewTransactionManager(store),
			users,
			hasher,
			signer,
			metrics.Nop{},
			discardLogger(),
		),
		users:  users,
		signer: signer,
		hasher: hasher,
		ctx:    context.Background(),
	}
}

func requireValidationErrors(t *testing.T, err error) domainerrors.ValidationErrors {
	t.Helper()

	var errs domainerrors.ValidationErrors
	require.True(t, errors.As(err, &errs), "expected ValidationErrors, got %v", err)

	return errs
}

func TestSessionService_SignUp_Success(t *testing.T) {
	fx := createTestSessionService(t)

	output, err := fx.service.SignUp(fx.ctx, &usecase.SignUpInput{
		Username: "alice",
		Password: "secret",
		Verify:   "secret",
	})
	require.NoError(t, err)
	require.NotNil(t, output)

	assert.Equal(t, "alice", output.User.Username)
	assert.False(t, output.User.HasEmail())
	assert.NotContains(t, output.User.PasswordHash, "secret")
	assert.Equal(t, fx.signer.Sign(strconv.FormatInt(output.User.ID, 10)), output.Cookie)

	stored, err := fx.users.FindByUsername(fx.ctx, "alice")
	require.NoError(t, err)
	ok, err := fx.hasher.Verify("alice", "secret", stored.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)

	resolved := fx.service.ResolveSession(fx.ctx, output.Cookie)
	require.NotNil(t, resolved)
	assert.Equal(t, output.User.ID, resolved.ID)
	assert.Equal(t, "alice", resolved.Username)
}

func TestSessionService_SignUp_StoresEmail(t *testing.T) {
	fx := createTestSessionService(t)

	output, err := fx.service.SignUp(fx.ctx, &usecase.SignUpInput{
		Username: "bob",
		Password: "secret",
		Verify:   "secret",
		Email:    "bob@example.com",
	})
	require.NoError(t, err)

	stored, err := fx.users.FindByID(fx.ctx, output.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", stored.Email)
}

func TestSessionService_SignUp_PasswordMismatch(t *testing.T) {
	fx := createTestSessionService(t)

	output, err := fx.service.SignUp(fx.ctx, &usecase.SignUpInput{
		Username: "alice",
		Password: "abc",
		Verify:   "xyz",
	})
	assert.Nil(t, output)

	errs := requireValidationErrors(t, err)
	assert.Len(t, errs, 1)
	assert.True(t, errs.HasKind(domainerrors.FieldVerify, domainerrors.KindMismatch))

	_, err = fx.users.FindByUsername(fx.ctx, "alice")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestSessionService_SignUp_Conflict(t *testing.T) {
	fx := createTestSessionService(t)

	first, err := fx.service.SignUp(fx.ctx, &usecase.SignUpInput{Username: "alice", Password: "secret", Verify: "secret"})
	require.NoError(t, err)

	output, err := fx.service.SignUp(fx.ctx, &usecase.SignUpInput{Username: "alice", Password: "other", Verify: "other"})
	assert.Nil(t, output)

	errs := requireValidationErrors(t, err)
	assert.Len(t, errs, 1)
	assert.True(t, errs.HasKind(domainerrors.FieldUsername, domainerrors.KindConflict))
	assert.Equal(t, "That user already exists.", errs[domainerrors.FieldUsername].Message)

	// Only the first account exists and it keeps its password.
	_, err = fx.users.FindByID(fx.ctx, first.User.ID+1)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	stored, err := fx.users.FindByUsername(fx.ctx, "alice")
	require.NoError(t, err)
	ok, err := fx.hasher.Verify("alice", "secret", stored.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSessionService_SignUp_ConflictIsCaseSensitive(t *testing.T) {
	fx := createTestSessionService(t)

	_, err := fx.service.SignUp(fx.ctx, &usecase.SignUpInput{Username: "alice", Password: "secret", Verify: "secret"})
	require.NoError(t, err)

	_, err = fx.service.SignUp(fx.ctx, &usecase.SignUpInput{Username: "Alice", Password: "secret", Verify: "secret"})
	assert.NoError(t, err)
}

func TestSessionService_SignUp_AccumulatesConflictWithOtherErrors(t *testing.T) {
	fx := createTestSessionService(t)

	_, err := fx.service.SignUp(fx.ctx, &usecase.SignUpInput{Username: "alice", Password: "secret", Verify: "secret"})
	require.NoError(t, err)

	_, err = fx.service.SignUp(fx.ctx, &usecase.SignUpInput{
		Username: "alice",
		Password: "abc",
		Verify:   "xyz",
		Email:    "not-an-email",
	})

	errs := requireValidationErrors(t, err)
	assert.True(t, errs.HasKind(domainerrors.FieldUsername, domainerrors.KindConflict))
	assert.True(t, errs.HasKind(domainerrors.FieldVerify, domainerrors.KindMismatch))
	assert.True(t, errs.HasKind(domainerrors.FieldEmail, domainerrors.KindShape))
}

func TestSessionService_SignUp_InvalidEmailAlongsideOtherFields(t *testing.T) {
	fx := createTestSessionService(t)

	_, err := fx.service.SignUp(fx.ctx, &usecase.SignUpInput{
		Username: "x",
		Password: "secret",
		Verify:   "secret",
		Email:    "not-an-email",
	})

	errs := requireValidationErrors(t, err)
	assert.Len(t, errs, 2)
	assert.True(t, errs.HasKind(domainerrors.FieldEmail, domainerrors.KindShape))
	assert.True(t, errs.HasKind(domainerrors.FieldUsername, domainerrors.KindShape))
}

func TestSessionService_SignUp_ShapeErrorSkipsStorage(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	signer := mockSvc.NewMockTokenSigner(t)
	metricsMock := mockSvc.NewMockMetrics(t)

	metricsMock.EXPECT().ObserveSignUp(service.OutcomeRejected).Return()

	srv := NewSessionService(txManager, userRepo, hasher, signer, metricsMock, discardLogger())

	_, err := srv.SignUp(context.Background(), &usecase.SignUpInput{Username: "!", Password: "secret", Verify: "secret"})

	errs := requireValidationErrors(t, err)
	assert.True(t, errs.HasKind(domainerrors.FieldUsername, domainerrors.KindShape))
	txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestSessionService_SignUp_InsertRaceBecomesConflict(t *testing.T) {
	ctx := context.Background()
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	signer := mockSvc.NewMockTokenSigner(t)
	metricsMock := mockSvc.NewMockMetrics(t)

	hasher.EXPECT().Hash("alice", "secret").Return("digest,salt", nil)
	metricsMock.EXPECT().ObserveSignUp(service.OutcomeRejected).Return()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(txUserRepo)

			// Another signup wins between the lookup and the insert.
			txUserRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, repository.ErrUserNotFound)
			txUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Return(errors.Wrap(repository.ErrUserAlreadyExists, "username taken"))

			return fn(mockFactory)
		})

	srv := NewSessionService(txManager, userRepo, hasher, signer, metricsMock, discardLogger())

	output, err := srv.SignUp(ctx, &usecase.SignUpInput{Username: "alice", Password: "secret", Verify: "secret"})
	assert.Nil(t, output)

	errs := requireValidationErrors(t, err)
	assert.True(t, errs.HasKind(domainerrors.FieldUsername, domainerrors.KindConflict))
}

func TestSessionService_SignUp_StoreFailure(t *testing.T) {
	ctx := context.Background()
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	metricsMock := mockSvc.NewMockMetrics(t)

	hasher.EXPECT().Hash("alice", "secret").Return("digest,salt", nil)
	metricsMock.EXPECT().ObserveSignUp(service.OutcomeError).Return()

	dbErr := errors.New("connection refused")
	txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)
			mockFactory.EXPECT().UserRepo().Return(txUserRepo)
			txUserRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, dbErr)

			return fn(mockFactory)
		})

	srv := NewSessionService(txManager, mockRepo.NewMockUserRepository(t), hasher, mockSvc.NewMockTokenSigner(t), metricsMock, discardLogger())

	_, err := srv.SignUp(ctx, &usecase.SignUpInput{Username: "alice", Password: "secret", Verify: "secret"})
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)

	var errs domainerrors.ValidationErrors
	assert.False(t, errors.As(err, &errs))
}

func TestSessionService_SignUp_HashFailure(t *testing.T) {
	hasher := mockSvc.NewMockPasswordHasher(t)
	metricsMock := mockSvc.NewMockMetrics(t)

	errEntropy := errors.New("entropy exhausted")
	hasher.EXPECT().Hash("alice", "secret").Return("", errEntropy)
	metricsMock.EXPECT().ObserveSignUp(service.OutcomeError).Return()

	var logs bytes.Buffer
	srv := NewSessionService(
		mockRepo.NewMockTransactionManager(t),
		mockRepo.NewMockUserRepository(t),
		hasher,
		mockSvc.NewMockTokenSigner(t),
		metricsMock,
		slog.New(slog.NewJSONHandler(&logs, nil)),
	)

	_, err := srv.SignUp(context.Background(), &usecase.SignUpInput{Username: "alice", Password: "secret", Verify: "secret"})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	assert.ErrorIs(t, err, errEntropy)
	assert.Contains(t, logs.String(), "Failed to hash password")
	assert.Contains(t, logs.String(), "entropy exhausted")
	assert.NotContains(t, logs.String(), "secret")
}

func TestSessionService_Login(t *testing.T) {
	fx := createTestSessionService(t)

	signedUp, err := fx.service.SignUp(fx.ctx, &usecase.SignUpInput{Username: "alice", Password: "secret", Verify: "secret"})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		output, err := fx.service.Login(fx.ctx, &usecase.LoginInput{Username: "alice", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, signedUp.User.ID, output.User.ID)
		assert.Equal(t, signedUp.Cookie, output.Cookie)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := fx.service.Login(fx.ctx, &usecase.LoginInput{Username: "alice", Password: "secreT"})
		errs := requireValidationErrors(t, err)
		assert.True(t, errs.HasKind(domainerrors.FieldUsername, domainerrors.KindCredentials))
		assert.Equal(t, "Invalid login.", errs[domainerrors.FieldUsername].Message)
	})

	t.Run("unknown user gets the same error", func(t *testing.T) {
		_, wrongPassword := fx.service.Login(fx.ctx, &usecase.LoginInput{Username: "alice", Password: "nope"})
		_, unknownUser := fx.service.Login(fx.ctx, &usecase.LoginInput{Username: "mallory", Password: "nope"})
		assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
	})
}

func TestSessionService_Login_CorruptCredential(t *testing.T) {
	ctx := context.Background()
	userRepo := mockRepo.NewMockUserRepository(t)
	metricsMock := mockSvc.NewMockMetrics(t)

	corruptHash := "0123456789abcdef-no-separator"
	userRepo.EXPECT().FindByUsername(ctx, "alice").
		Return(&entity.User{ID: 7, Username: "alice", PasswordHash: corruptHash}, nil)
	metricsMock.EXPECT().ObserveLogin(service.OutcomeError).Return()

	srv := NewSessionService(
		mockRepo.NewMockTransactionManager(t),
		userRepo,
		auth.NewSaltedHasher(16),
		mockSvc.NewMockTokenSigner(t),
		metricsMock,
		discardLogger(),
	)

	output, err := srv.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "secret"})
	assert.Nil(t, output)

	var corrupt *domainerrors.CorruptCredentialError
	require.True(t, errors.As(err, &corrupt))
	assert.NotContains(t, err.Error(), corruptHash)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 500, appErr.HTTPCode())
}

func TestSessionService_ResolveSession(t *testing.T) {
	fx := createTestSessionService(t)

	signedUp, err := fx.service.SignUp(fx.ctx, &usecase.SignUpInput{Username: "alice", Password: "secret", Verify: "secret"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		cookie string
		want   *int64
	}{
		{name: "empty", cookie: ""},
		{name: "unsigned look-alike", cookie: strconv.FormatInt(signedUp.User.ID, 10) + "|deadbeef"},
		{name: "bare id", cookie: strconv.FormatInt(signedUp.User.ID, 10)},
		{name: "signed unknown id", cookie: fx.signer.Sign("999")},
		{name: "signed non-integer", cookie: fx.signer.Sign("alice")},
		{name: "signed overflow", cookie: fx.signer.Sign("99999999999999999999")},
		{name: "valid", cookie: signedUp.Cookie, want: &signedUp.User.ID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fx.service.ResolveSession(fx.ctx, tt.cookie)
			if tt.want == nil {
				assert.Nil(t, got)

				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, got.ID)
		})
	}
}

func TestSessionService_ResolveSession_StoreErrorIsAnonymous(t *testing.T) {
	ctx := context.Background()
	userRepo := mockRepo.NewMockUserRepository(t)
	signer := mockSvc.NewMockTokenSigner(t)
	metricsMock := mockSvc.NewMockMetrics(t)

	signer.EXPECT().Verify("3|sig").Return("3", true)
	userRepo.EXPECT().FindByID(ctx, int64(3)).Return(nil, errors.New("connection reset"))
	metricsMock.EXPECT().ObserveSessionResolve(service.OutcomeError).Return()

	srv := NewSessionService(mockRepo.NewMockTransactionManager(t), userRepo, mockSvc.NewMockPasswordHasher(t), signer, metricsMock, discardLogger())

	assert.Nil(t, srv.ResolveSession(ctx, "3|sig"))
}
