package postgres

import (
	"context"
	"slices"
	"time"

	"lapak/internal/domain/entity"
	domainerrors "lapak/internal/domain/errors"
	"lapak/internal/domain/repository"
	"lapak/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// onboardingStatusRepository implements the domain.OnboardingStatusRepository interface using GORM.
type onboardingStatusRepository struct {
	db *gorm.DB
}

// NewOnboardingStatusRepository is the constructor for onboardingStatusRepository.
func NewOnboardingStatusRepository(db *gorm.DB) repository.OnboardingStatusRepository {
	return &onboardingStatusRepository{db: db}
}

// FindByUser retrieves the status record for a user.
func (repo *onboardingStatusRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.OnboardingStatus, error) {
	var statusM model.OnboardingStatusModel
	if err := repo.db.WithContext(ctx).First(&statusM, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOnboardingStatusNotFound
		}

		return nil, errors.Wrap(err, "failed to find onboarding status")
	}

	return toStatusDomain(&statusM), nil
}

// Create persists a fresh status record.
func (repo *onboardingStatusRepository) Create(ctx context.Context, status *entity.OnboardingStatus) error {
	statusM := fromStatusDomain(status)

	if err := repo.db.WithContext(ctx).Create(statusM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create onboarding status")
	}

	status.CreatedAt = statusM.CreatedAt
	status.UpdatedAt = statusM.UpdatedAt

	return nil
}

// MarkStepCompleted adds the step to the completed set and advances the
// current step. The read-modify-write runs inside a transaction so concurrent
// completions cannot lose a membership update.
func (repo *onboardingStatusRepository) MarkStepCompleted(ctx context.Context, userID uuid.UUID, step entity.Step) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var statusM model.OnboardingStatusModel
		if err := tx.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).First(&statusM, "user_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrOnboardingStatusNotFound
			}

			return errors.Wrap(err, "failed to load onboarding status")
		}

		if !slices.Contains(statusM.CompletedSteps, int64(step)) {
			statusM.CompletedSteps = append(statusM.CompletedSteps, int64(step))
			slices.Sort(statusM.CompletedSteps)
		}

		next := int(step) + 1
		if next > int(entity.StepCount)-1 {
			next = int(entity.StepCount) - 1
		}
		statusM.CurrentStep = next

		return tx.Save(&statusM).Error
	})
	if err != nil {
		if errors.Is(err, repository.ErrOnboardingStatusNotFound) {
			return err
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to mark step completed")
	}

	return nil
}

// UpdateCurrentStep moves the rendered step without touching the completed set.
func (repo *onboardingStatusRepository) UpdateCurrentStep(ctx context.Context, userID uuid.UUID, step entity.Step) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OnboardingStatusModel{}).
		Where("user_id = ?", userID).
		Update("current_step", int(step))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update current step")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOnboardingStatusNotFound
	}

	return nil
}

// MarkCompleted stamps the terminal completion time. A second call leaves the
// original stamp in place.
func (repo *onboardingStatusRepository) MarkCompleted(ctx context.Context, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OnboardingStatusModel{}).
		Where("user_id = ? AND completed_at IS NULL", userID).
		Update("completed_at", time.Now())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark onboarding completed")
	}

	return nil
}

func toStatusDomain(statusM *model.OnboardingStatusModel) *entity.OnboardingStatus {
	completed := make([]entity.Step, 0, len(statusM.CompletedSteps))
	for _, step := range statusM.CompletedSteps {
		completed = append(completed, entity.Step(step))
	}

	return &entity.OnboardingStatus{
		UserID:         statusM.UserID,
		CurrentStep:    entity.Step(statusM.CurrentStep),
		CompletedSteps: completed,
		CompletedAt:    statusM.CompletedAt,
		CreatedAt:      statusM.CreatedAt,
		UpdatedAt:      statusM.UpdatedAt,
	}
}

func fromStatusDomain(status *entity.OnboardingStatus) *model.OnboardingStatusModel {
	completed := make([]int64, 0, len(status.CompletedSteps))
	for _, step := range status.CompletedSteps {
		completed = append(completed, int64(step))
	}

	return &model.OnboardingStatusModel{
		UserID:         status.UserID,
		CurrentStep:    int(status.CurrentStep),
		CompletedSteps: completed,
		CompletedAt:    status.CompletedAt,
	}
}
