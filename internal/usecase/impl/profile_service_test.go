package impl

import (
	"context"
	"testing"

	"lapak/internal/domain/entity"
	domainerrors "lapak/internal/domain/errors"
	"lapak/internal/domain/repository"
	mockRepo "lapak/internal/mocks/repository"
	"lapak/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_Get_NotFound(t *testing.T) {
	mockProfileRepo := mockRepo.NewMockBusinessProfileRepository(t)
	svc := NewProfileService(mockProfileRepo, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()

	mockProfileRepo.EXPECT().
		FindByOwner(ctx, userID).
		Return(nil, repository.ErrProfileNotFound)

	_, err := svc.Get(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_Update_RewritesDescriptiveFields(t *testing.T) {
	mockProfileRepo := mockRepo.NewMockBusinessProfileRepository(t)
	svc := NewProfileService(mockProfileRepo, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.BusinessProfile{
		ID:      uuid.New(),
		OwnerID: userID,
		Name:    "Warung Lama",
		Phone:   "+62811111111",
	}

	mockProfileRepo.EXPECT().
		FindByOwner(ctx, userID).
		Return(existing, nil)
	mockProfileRepo.EXPECT().
		Update(ctx, existing).
		Return(nil)

	profile, err := svc.Update(ctx, userID, usecase.UpdateProfileInput{
		Name:          "Warung Bu Sari",
		Description:   "Masakan rumahan",
		Address:       "Jl. Melati No. 5",
		Phone:         "+6281234567890",
		BusinessHours: "09.00-17.00",
	})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, profile.ID)
	assert.Equal(t, "Warung Bu Sari", profile.Name)
	assert.Equal(t, "Masakan rumahan", profile.Description)
	assert.Equal(t, "+6281234567890", profile.Phone)
}
