package impl

import (
	"context"
	"log/slog"
	"strings"

	"lapak/internal/domain/entity"
	domainerrors "lapak/internal/domain/errors"
	"lapak/internal/domain/repository"
	"lapak/internal/domain/service"
	"lapak/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo  repository.UserRepository
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	tokenSvc  service.TokenService
	logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	userRepo repository.UserRepository,
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo:  userRepo,
		txManager: txManager,
		hasher:    hasher,
		tokenSvc:  tokenSvc,
		logger:    logger,
	}
}

// Register creates a new console account and returns it with fresh tokens.
func (s *userService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, *usecase.AuthTokens, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, nil, domainerrors.ErrUserAlreadyExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, nil, errors.Wrap(err, "failed to look up user by email")
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, nil, domainerrors.ErrPasswordHashFailed.WithDetails(err.Error())
	}

	user := &entity.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         input.Name,
		PasswordHash: hash,
	}
	status := &entity.OnboardingStatus{
		UserID:      user.ID,
		CurrentStep: entity.StepBusinessProfile,
	}

	// The account and its wizard state are created together so a new user
	// never lands on a console without onboarding state.
	err = s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.NewUserRepository().Create(ctx, user); err != nil {
			return err
		}

		return repos.NewOnboardingStatusRepository().Create(ctx, status)
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, nil, err
		}

		return nil, nil, domainerrors.ErrUserCreationFailed.WithDetails(err.Error())
	}

	tokens, err := s.issueTokens(user.ID)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("user registered", slog.String("user_id", user.ID.String()))

	return user, tokens, nil
}

// Login verifies credentials and returns the account with fresh tokens.
func (s *userService) Login(ctx context.Context, input usecase.LoginInput) (*entity.User, *usecase.AuthTokens, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil, domainerrors.ErrInvalidCredentials
		}

		return nil, nil, errors.Wrap(err, "failed to look up user by email")
	}

	if !s.hasher.Check(input.Password, user.PasswordHash) {
		return nil, nil, domainerrors.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(user.ID)
	if err != nil {
		return nil, nil, err
	}

	return user, tokens, nil
}

func (s *userService) issueTokens(userID uuid.UUID) (*usecase.AuthTokens, error) {
	access, refresh, err := s.tokenSvc.GenerateTokens(userID, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.AuthTokens{AccessToken: access, RefreshToken: refresh}, nil
}
