package impl

import (
	"context"
	"testing"

	"lapak/internal/domain/entity"
	domainerrors "lapak/internal/domain/errors"
	"lapak/internal/domain/repository"
	mockRepo "lapak/internal/mocks/repository"
	mockSvc "lapak/internal/mocks/service"
	"lapak/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Register_Success(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	svc := NewUserService(mockUserRepo, mockTx, mockHasher, mockTokenSvc, newDiscardLogger())

	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "sari@warung.id").
		Return(nil, repository.ErrUserNotFound)
	mockHasher.EXPECT().
		Hash("rahasia123").
		Return("$2a$10$hashed", nil)
	mockUserRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "sari@warung.id" && u.Name == "Bu Sari" && u.PasswordHash == "$2a$10$hashed"
		})).
		Return(nil)
	mockStatusRepo := mockRepo.NewMockOnboardingStatusRepository(t)
	mockStatusRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(st *entity.OnboardingStatus) bool {
			return st.CurrentStep == entity.StepBusinessProfile
		})).
		Return(nil)
	mockTx.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewUserRepository().Return(mockUserRepo)
			factory.EXPECT().NewOnboardingStatusRepository().Return(mockStatusRepo)

			return fn(factory)
		})
	mockTokenSvc.EXPECT().
		GenerateTokens(mock.Anything, mock.Anything).
		Return("access-token", "refresh-token", nil)

	user, tokens, err := svc.Register(ctx, usecase.RegisterInput{
		Name:     "Bu Sari",
		Email:    " Sari@Warung.ID ",
		Password: "rahasia123",
	})
	require.NoError(t, err)
	assert.Equal(t, "sari@warung.id", user.Email)
	assert.Equal(t, "access-token", tokens.AccessToken)
	assert.Equal(t, "refresh-token", tokens.RefreshToken)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	svc := NewUserService(mockUserRepo, mockTx, mockHasher, mockTokenSvc, newDiscardLogger())

	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "sari@warung.id").
		Return(&entity.User{ID: uuid.New(), Email: "sari@warung.id"}, nil)

	_, _, err := svc.Register(ctx, usecase.RegisterInput{
		Name:     "Bu Sari",
		Email:    "sari@warung.id",
		Password: "rahasia123",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_Success(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	svc := NewUserService(mockUserRepo, mockTx, mockHasher, mockTokenSvc, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "sari@warung.id").
		Return(&entity.User{ID: userID, Email: "sari@warung.id", PasswordHash: "$2a$10$hashed"}, nil)
	mockHasher.EXPECT().
		Check("rahasia123", "$2a$10$hashed").
		Return(true)
	mockTokenSvc.EXPECT().
		GenerateTokens(userID, mock.Anything).
		Return("access-token", "refresh-token", nil)

	user, tokens, err := svc.Login(ctx, usecase.LoginInput{
		Email:    "sari@warung.id",
		Password: "rahasia123",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.NotEmpty(t, tokens.AccessToken)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	svc := NewUserService(mockUserRepo, mockTx, mockHasher, mockTokenSvc, newDiscardLogger())

	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "sari@warung.id").
		Return(&entity.User{ID: uuid.New(), PasswordHash: "$2a$10$hashed"}, nil)
	mockHasher.EXPECT().
		Check("salah", "$2a$10$hashed").
		Return(false)

	_, _, err := svc.Login(ctx, usecase.LoginInput{
		Email:    "sari@warung.id",
		Password: "salah",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	svc := NewUserService(mockUserRepo, mockTx, mockHasher, mockTokenSvc, newDiscardLogger())

	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "tidakada@warung.id").
		Return(nil, repository.ErrUserNotFound)

	_, _, err := svc.Login(ctx, usecase.LoginInput{
		Email:    "tidakada@warung.id",
		Password: "rahasia123",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
