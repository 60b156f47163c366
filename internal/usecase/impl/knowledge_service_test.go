package impl

import (
	"context"
	"io"
	"strings"
	"testing"

	"lapak/internal/domain/entity"
	domainerrors "lapak/internal/domain/errors"
	"lapak/internal/domain/repository"
	mockRepo "lapak/internal/mocks/repository"
	mockSvc "lapak/internal/mocks/service"
	"lapak/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type knowledgeMocks struct {
	entryRepo   *mockRepo.MockKnowledgeEntryRepository
	profileRepo *mockRepo.MockBusinessProfileRepository
	storage     *mockSvc.MockDocumentStorage
}

func newKnowledgeTestService(t *testing.T) (usecase.KnowledgeUsecase, *knowledgeMocks) {
	m := &knowledgeMocks{
		entryRepo:   mockRepo.NewMockKnowledgeEntryRepository(t),
		profileRepo: mockRepo.NewMockBusinessProfileRepository(t),
		storage:     mockSvc.NewMockDocumentStorage(t),
	}
	svc := NewKnowledgeService(m.entryRepo, m.profileRepo, m.storage, newDiscardLogger())

	return svc, m
}

func expectProfile(m *knowledgeMocks, ctx context.Context, userID uuid.UUID) *entity.BusinessProfile {
	profile := &entity.BusinessProfile{ID: uuid.New(), OwnerID: userID, Name: "Warung Bu Sari"}
	m.profileRepo.EXPECT().
		FindByOwner(ctx, userID).
		Return(profile, nil)

	return profile
}

func TestKnowledgeService_SaveText_CreatesCompletedEntry(t *testing.T) {
	svc, m := newKnowledgeTestService(t)
	ctx := context.Background()
	userID := uuid.New()
	profile := expectProfile(m, ctx, userID)

	m.entryRepo.EXPECT().
		FindTextEntry(ctx, profile.ID).
		Return(nil, repository.ErrEntryNotFound)
	m.entryRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(e *entity.KnowledgeEntry) bool {
			source, ok := e.Source.(entity.TextSource)

			return ok && source.Content == "Jam buka 9-17" &&
				e.BusinessProfileID == profile.ID &&
				e.ProcessingStatus == entity.ProcessingCompleted
		})).
		Return(nil)

	entry, err := svc.SaveText(ctx, userID, "", "Jam buka 9-17")
	require.NoError(t, err)
	assert.Equal(t, "Informasi Bisnis", entry.Title)
	assert.Equal(t, entity.ProcessingCompleted, entry.ProcessingStatus)
}

func TestKnowledgeService_SaveText_UpdatesExistingEntry(t *testing.T) {
	svc, m := newKnowledgeTestService(t)
	ctx := context.Background()
	userID := uuid.New()
	profile := expectProfile(m, ctx, userID)

	existing := &entity.KnowledgeEntry{
		ID:                uuid.New(),
		BusinessProfileID: profile.ID,
		Title:             "Informasi Bisnis",
		Source:            entity.TextSource{Content: "Jam buka 9-17"},
		ProcessingStatus:  entity.ProcessingCompleted,
	}
	m.entryRepo.EXPECT().
		FindTextEntry(ctx, profile.ID).
		Return(existing, nil)
	// The same entry is updated in place, never a second text entry created.
	m.entryRepo.EXPECT().
		Update(ctx, existing).
		Return(nil)

	entry, err := svc.SaveText(ctx, userID, "Profil Toko", "Jam buka 8-20")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, entry.ID)
	assert.Equal(t, "Profil Toko", entry.Title)
	assert.Equal(t, entity.TextSource{Content: "Jam buka 8-20"}, entry.Source)
}

func TestKnowledgeService_SaveText_RejectsEmptyContent(t *testing.T) {
	svc, _ := newKnowledgeTestService(t)

	_, err := svc.SaveText(context.Background(), uuid.New(), "Judul", "   ")

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestKnowledgeService_SaveURL_ResetsStatusToPending(t *testing.T) {
	svc, m := newKnowledgeTestService(t)
	ctx := context.Background()
	userID := uuid.New()
	profile := expectProfile(m, ctx, userID)

	existing := &entity.KnowledgeEntry{
		ID:                uuid.New(),
		BusinessProfileID: profile.ID,
		Title:             "warung.example.com",
		Source:            entity.URLSource{URL: "https://warung.example.com/lama"},
		ProcessingStatus:  entity.ProcessingCompleted,
	}
	m.entryRepo.EXPECT().
		FindURLEntry(ctx, profile.ID).
		Return(existing, nil)
	m.entryRepo.EXPECT().
		Update(ctx, existing).
		Return(nil)

	entry, err := svc.SaveURL(ctx, userID, "", "https://warung.example.com/baru")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, entry.ID)
	assert.Equal(t, "warung.example.com", entry.Title)
	assert.Equal(t, entity.ProcessingPending, entry.ProcessingStatus)
	assert.Equal(t, entity.URLSource{URL: "https://warung.example.com/baru"}, entry.Source)
}

func TestKnowledgeService_SaveURL_RejectsInvalidURL(t *testing.T) {
	svc, _ := newKnowledgeTestService(t)

	for _, rawURL := range []string{"", "not-a-url", "/relative/path"} {
		_, err := svc.SaveURL(context.Background(), uuid.New(), "", rawURL)

		require.Error(t, err, "url %q", rawURL)
		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	}
}

func TestKnowledgeService_UploadDocuments_PartialFailure(t *testing.T) {
	svc, m := newKnowledgeTestService(t)
	ctx := context.Background()
	userID := uuid.New()
	profile := expectProfile(m, ctx, userID)

	m.storage.EXPECT().
		Upload(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasSuffix(key, "/menu.pdf")
		}), "application/pdf", mock.Anything).
		Return("blob://docs/menu.pdf", nil).
		Once()
	m.storage.EXPECT().
		Upload(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasSuffix(key, "/harga.pdf")
		}), "application/pdf", mock.Anything).
		Return("", errors.New("bucket unreachable")).
		Once()

	m.entryRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(e *entity.KnowledgeEntry) bool {
			source, ok := e.Source.(entity.DocumentSource)

			return ok && source.FileName == "menu.pdf" &&
				source.StoragePath == "blob://docs/menu.pdf" &&
				e.ProcessingStatus == entity.ProcessingPending
		})).
		Return(nil).
		Once()

	results, err := svc.UploadDocuments(ctx, userID, []usecase.DocumentUpload{
		{FileName: "menu.pdf", ContentType: "application/pdf", Size: 1024, Payload: strings.NewReader("menu")},
		{FileName: "harga.pdf", ContentType: "application/pdf", Size: 2048, Payload: strings.NewReader("harga")},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.NotNil(t, results[0].Entry)
	assert.Empty(t, results[0].Err)
	assert.Equal(t, profile.ID, results[0].Entry.BusinessProfileID)

	assert.Nil(t, results[1].Entry)
	assert.Contains(t, results[1].Err, "bucket unreachable")
}

func TestKnowledgeService_UploadDocuments_CleansUpBlobOnRepoFailure(t *testing.T) {
	svc, m := newKnowledgeTestService(t)
	ctx := context.Background()
	userID := uuid.New()
	expectProfile(m, ctx, userID)

	var uploadedKey string
	m.storage.EXPECT().
		Upload(ctx, mock.Anything, "application/pdf", mock.Anything).
		Run(func(_ context.Context, key string, _ string, _ io.Reader) {
			uploadedKey = key
		}).
		Return("blob://docs/menu.pdf", nil)
	m.entryRepo.EXPECT().
		Create(ctx, mock.Anything).
		Return(errors.New("insert failed"))
	m.storage.EXPECT().
		Delete(ctx, mock.MatchedBy(func(key string) bool {
			return key == uploadedKey
		})).
		Return(nil)

	results, err := svc.UploadDocuments(ctx, userID, []usecase.DocumentUpload{
		{FileName: "menu.pdf", ContentType: "application/pdf", Size: 1024, Payload: strings.NewReader("menu")},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Nil(t, results[0].Entry)
	assert.Contains(t, results[0].Err, "insert failed")
}

func TestKnowledgeService_Delete_RejectsForeignEntry(t *testing.T) {
	svc, m := newKnowledgeTestService(t)
	ctx := context.Background()
	userID := uuid.New()
	expectProfile(m, ctx, userID)

	entryID := uuid.New()
	m.entryRepo.EXPECT().
		FindByID(ctx, entryID).
		Return(&entity.KnowledgeEntry{
			ID:                entryID,
			BusinessProfileID: uuid.New(), // someone else's profile
			Source:            entity.TextSource{Content: "rahasia"},
		}, nil)

	err := svc.Delete(ctx, userID, entryID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestKnowledgeService_Delete_RemovesDocumentBlob(t *testing.T) {
	svc, m := newKnowledgeTestService(t)
	ctx := context.Background()
	userID := uuid.New()
	profile := expectProfile(m, ctx, userID)

	entryID := uuid.New()
	m.entryRepo.EXPECT().
		FindByID(ctx, entryID).
		Return(&entity.KnowledgeEntry{
			ID:                entryID,
			BusinessProfileID: profile.ID,
			Source: entity.DocumentSource{
				FileName:    "menu.pdf",
				StoragePath: "blob://docs/menu.pdf",
			},
		}, nil)
	m.storage.EXPECT().
		Delete(ctx, "blob://docs/menu.pdf").
		Return(nil)
	m.entryRepo.EXPECT().
		Delete(ctx, entryID).
		Return(nil)

	err := svc.Delete(ctx, userID, entryID)
	require.NoError(t, err)
}

func TestKnowledgeService_Delete_BlobFailureStillDeletesEntry(t *testing.T) {
	svc, m := newKnowledgeTestService(t)
	ctx := context.Background()
	userID := uuid.New()
	profile := expectProfile(m, ctx, userID)

	entryID := uuid.New()
	m.entryRepo.EXPECT().
		FindByID(ctx, entryID).
		Return(&entity.KnowledgeEntry{
			ID:                entryID,
			BusinessProfileID: profile.ID,
			Source:            entity.DocumentSource{StoragePath: "blob://docs/menu.pdf"},
		}, nil)
	m.storage.EXPECT().
		Delete(ctx, "blob://docs/menu.pdf").
		Return(errors.New("bucket unreachable"))
	m.entryRepo.EXPECT().
		Delete(ctx, entryID).
		Return(nil)

	err := svc.Delete(ctx, userID, entryID)
	require.NoError(t, err)
}

func TestKnowledgeService_List_RequiresProfile(t *testing.T) {
	svc, m := newKnowledgeTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	m.profileRepo.EXPECT().
		FindByOwner(ctx, userID).
		Return(nil, repository.ErrProfileNotFound)

	_, err := svc.List(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrProfileIncomplete)
}
