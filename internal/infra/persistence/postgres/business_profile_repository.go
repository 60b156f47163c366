package postgres

import (
	"context"

	"lapak/internal/domain/entity"
	domainerrors "lapak/internal/domain/errors"
	"lapak/internal/domain/repository"
	"lapak/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// businessProfileRepository implements the domain.BusinessProfileRepository interface using GORM.
type businessProfileRepository struct {
	db *gorm.DB
}

// NewBusinessProfileRepository is the constructor for businessProfileRepository.
func NewBusinessProfileRepository(db *gorm.DB) repository.BusinessProfileRepository {
	return &businessProfileRepository{db: db}
}

// Create persists a new business profile.
func (repo *businessProfileRepository) Create(ctx context.Context, profile *entity.BusinessProfile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateProfile
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindByID retrieves a profile by its unique ID.
func (repo *businessProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BusinessProfile, error) {
	var profileM model.BusinessProfileModel
	if err := repo.db.WithContext(ctx).First(&profileM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find business profile by id")
	}

	return toProfileDomain(&profileM), nil
}

// FindByOwner retrieves the profile owned by a user.
func (repo *businessProfileRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.BusinessProfile, error) {
	var profileM model.BusinessProfileModel
	if err := repo.db.WithContext(ctx).First(&profileM, "owner_id = ?", ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find business profile by owner")
	}

	return toProfileDomain(&profileM), nil
}

// Update rewrites the profile's descriptive fields.
func (repo *businessProfileRepository) Update(ctx context.Context, profile *entity.BusinessProfile) error {
	updates := map[string]any{
		"name":           profile.Name,
		"description":    profile.Description,
		"address":        profile.Address,
		"phone":          profile.Phone,
		"business_hours": profile.BusinessHours,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.BusinessProfileModel{}).
		Where("id = ?", profile.ID).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update business profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// UpdateFeatures persists the feature flags chosen during onboarding.
func (repo *businessProfileRepository) UpdateFeatures(ctx context.Context, id uuid.UUID, productCatalog, orderManagement, paymentSystem bool) error {
	return repo.updateColumns(ctx, id, map[string]any{
		"feature_product_catalog":  productCatalog,
		"feature_order_management": orderManagement,
		"feature_payment_system":   paymentSystem,
	}, "failed to update feature flags")
}

// UpdateSystemPrompt stores the generated chatbot system prompt.
func (repo *businessProfileRepository) UpdateSystemPrompt(ctx context.Context, id uuid.UUID, prompt string) error {
	return repo.updateColumns(ctx, id, map[string]any{
		"system_prompt": prompt,
	}, "failed to update system prompt")
}

// UpdateChannelConnected flips the channel pairing flag.
func (repo *businessProfileRepository) UpdateChannelConnected(ctx context.Context, id uuid.UUID, connected bool) error {
	return repo.updateColumns(ctx, id, map[string]any{
		"channel_connected": connected,
	}, "failed to update channel pairing flag")
}

func (repo *businessProfileRepository) updateColumns(ctx context.Context, id uuid.UUID, updates map[string]any, failureMsg string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BusinessProfileModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, failureMsg)
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

func toProfileDomain(profileM *model.BusinessProfileModel) *entity.BusinessProfile {
	return &entity.BusinessProfile{
		ID:                     profileM.ID,
		OwnerID:                profileM.OwnerID,
		Name:                   profileM.Name,
		Description:            profileM.Description,
		Address:                profileM.Address,
		Phone:                  profileM.Phone,
		BusinessHours:          profileM.BusinessHours,
		SystemPrompt:           profileM.SystemPrompt,
		FeatureProductCatalog:  profileM.FeatureProductCatalog,
		FeatureOrderManagement: profileM.FeatureOrderManagement,
		FeaturePaymentSystem:   profileM.FeaturePaymentSystem,
		ChannelConnected:       profileM.ChannelConnected,
		CreatedAt:              profileM.CreatedAt,
		UpdatedAt:              profileM.UpdatedAt,
	}
}

func fromProfileDomain(profile *entity.BusinessProfile) *model.BusinessProfileModel {
	return &model.BusinessProfileModel{
		ID:                     profile.ID,
		OwnerID:                profile.OwnerID,
		Name:                   profile.Name,
		Description:            profile.Description,
		Address:                profile.Address,
		Phone:                  profile.Phone,
		BusinessHours:          profile.BusinessHours,
		SystemPrompt:           profile.SystemPrompt,
		FeatureProductCatalog:  profile.FeatureProductCatalog,
		FeatureOrderManagement: profile.FeatureOrderManagement,
		FeaturePaymentSystem:   profile.FeaturePaymentSystem,
		ChannelConnected:       profile.ChannelConnected,
	}
}
