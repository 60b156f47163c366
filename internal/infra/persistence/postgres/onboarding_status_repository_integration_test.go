package postgres

import (
	"context"
	"os"
	"testing"

	"lapak/internal/domain/entity"
	"lapak/internal/domain/repository"
	"lapak/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// openTestDB connects to the database named by TEST_DATABASE_DSN. Tests using
// it are skipped when the variable is unset so the suite stays runnable
// without a local PostgreSQL.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&model.OnboardingStatusModel{}))

	return db
}

func TestOnboardingStatusRepository_UpdateThenFind_Integration(t *testing.T) {
	db := openTestDB(t)
	repo := NewOnboardingStatusRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	t.Cleanup(func() {
		db.Where("user_id = ?", userID).Delete(&model.OnboardingStatusModel{})
	})

	err := repo.Create(ctx, &entity.OnboardingStatus{
		UserID:      userID,
		CurrentStep: entity.StepBusinessProfile,
	})
	require.NoError(t, err)

	require.NoError(t, repo.UpdateCurrentStep(ctx, userID, entity.StepFeatures))

	status, err := repo.FindByUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, entity.StepFeatures, status.CurrentStep)
	assert.Empty(t, status.CompletedSteps)
	assert.Nil(t, status.CompletedAt)
}

func TestOnboardingStatusRepository_MarkStepCompleted_Integration(t *testing.T) {
	db := openTestDB(t)
	repo := NewOnboardingStatusRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	t.Cleanup(func() {
		db.Where("user_id = ?", userID).Delete(&model.OnboardingStatusModel{})
	})

	err := repo.Create(ctx, &entity.OnboardingStatus{
		UserID:      userID,
		CurrentStep: entity.StepBusinessProfile,
	})
	require.NoError(t, err)

	require.NoError(t, repo.MarkStepCompleted(ctx, userID, entity.StepBusinessProfile))
	// Completing the same step again must not duplicate the membership.
	require.NoError(t, repo.MarkStepCompleted(ctx, userID, entity.StepBusinessProfile))

	status, err := repo.FindByUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, entity.StepKnowledgeBase, status.CurrentStep)
	assert.Equal(t, []entity.Step{entity.StepBusinessProfile}, status.CompletedSteps)
}

func TestOnboardingStatusRepository_UpdateUnknownUser_Integration(t *testing.T) {
	db := openTestDB(t)
	repo := NewOnboardingStatusRepository(db)

	err := repo.UpdateCurrentStep(context.Background(), uuid.New(), entity.StepFeatures)
	assert.ErrorIs(t, err, repository.ErrOnboardingStatusNotFound)
}
