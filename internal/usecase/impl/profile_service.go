package impl

import (
	"context"
	"log/slog"

	"lapak/internal/domain/entity"
	domainerrors "lapak/internal/domain/errors"
	"lapak/internal/domain/repository"
	"lapak/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.BusinessProfileRepository
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(profileRepo repository.BusinessProfileRepository, logger *slog.Logger) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// Get returns the profile owned by the user.
func (s *profileService) Get(ctx context.Context, userID uuid.UUID) (*entity.BusinessProfile, error) {
	profile, err := s.profileRepo.FindByOwner(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to load business profile")
	}

	return profile, nil
}

// Update rewrites the profile's descriptive fields.
func (s *profileService) Update(ctx context.Context, userID uuid.UUID, input usecase.UpdateProfileInput) (*entity.BusinessProfile, error) {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.Name = input.Name
	profile.Description = input.Description
	profile.Address = input.Address
	profile.Phone = input.Phone
	profile.BusinessHours = input.BusinessHours

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to update business profile")
	}

	return profile, nil
}
