package impl

import (
	"context"
	"testing"
	"time"

	"lapak/internal/domain/entity"
	domainerrors "lapak/internal/domain/errors"
	"lapak/internal/domain/service"
	mockRepo "lapak/internal/mocks/repository"
	mockSvc "lapak/internal/mocks/service"
	"lapak/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPendingDocument(profileID uuid.UUID, title string) *entity.KnowledgeEntry {
	return &entity.KnowledgeEntry{
		ID:                uuid.New(),
		BusinessProfileID: profileID,
		Title:             title,
		Source: entity.DocumentSource{
			FileName:    title + ".pdf",
			FileSize:    1024,
			FileType:    "application/pdf",
			StoragePath: "docs/" + title,
		},
		ProcessingStatus: entity.ProcessingPending,
	}
}

func newPendingURL(profileID uuid.UUID, title, rawURL string) *entity.KnowledgeEntry {
	return &entity.KnowledgeEntry{
		ID:                uuid.New(),
		BusinessProfileID: profileID,
		Title:             title,
		Source:            entity.URLSource{URL: rawURL},
		ProcessingStatus:  entity.ProcessingPending,
	}
}

func newCompletedText(profileID uuid.UUID) *entity.KnowledgeEntry {
	return &entity.KnowledgeEntry{
		ID:                uuid.New(),
		BusinessProfileID: profileID,
		Title:             "Informasi Bisnis",
		Source:            entity.TextSource{Content: "Jam buka 9-17"},
		ProcessingStatus:  entity.ProcessingCompleted,
	}
}

func TestIngestionService_Run_TextOnlyJumpsToFull(t *testing.T) {
	mockEntryRepo := mockRepo.NewMockKnowledgeEntryRepository(t)
	mockProfileRepo := mockRepo.NewMockBusinessProfileRepository(t)
	mockProcessor := mockSvc.NewMockDocumentProcessor(t)
	mockPrompts := mockSvc.NewMockPromptGenerator(t)
	svc := NewIngestionService(mockEntryRepo, mockProfileRepo, mockProcessor, mockPrompts, newTestConfig(time.Second), newDiscardLogger())

	ctx := context.Background()
	profileID := uuid.New()

	mockEntryRepo.EXPECT().
		FindByProfile(ctx, profileID).
		Return([]*entity.KnowledgeEntry{newCompletedText(profileID)}, nil)

	mockPrompts.EXPECT().
		GenerateSystemPrompt(mock.Anything, profileID).
		Return("Kamu adalah asisten toko.", nil)

	mockProfileRepo.EXPECT().
		UpdateSystemPrompt(ctx, profileID, "Kamu adalah asisten toko.").
		Return(nil)

	var updates []usecase.Progress
	report, err := svc.Run(ctx, profileID, func(p usecase.Progress) {
		updates = append(updates, p)
	})

	require.NoError(t, err)
	assert.Equal(t, 0, report.TotalEntries)
	assert.Empty(t, report.FailedEntries)
	assert.Equal(t, "Kamu adalah asisten toko.", report.SystemPrompt)

	// The prompt step is the only unit, so progress jumps straight to 100.
	require.Len(t, updates, 1)
	assert.InDelta(t, 100.0, updates[0].Percent, 0.001)
}

func TestIngestionService_Run_PartialFailureTolerance(t *testing.T) {
	mockEntryRepo := mockRepo.NewMockKnowledgeEntryRepository(t)
	mockProfileRepo := mockRepo.NewMockBusinessProfileRepository(t)
	mockProcessor := mockSvc.NewMockDocumentProcessor(t)
	mockPrompts := mockSvc.NewMockPromptGenerator(t)
	svc := NewIngestionService(mockEntryRepo, mockProfileRepo, mockProcessor, mockPrompts, newTestConfig(50*time.Millisecond), newDiscardLogger())

	ctx := context.Background()
	profileID := uuid.New()
	doc1 := newPendingDocument(profileID, "menu")
	doc2 := newPendingDocument(profileID, "harga")
	doc3 := newPendingDocument(profileID, "promo")

	mockEntryRepo.EXPECT().
		FindByProfile(ctx, profileID).
		Return([]*entity.KnowledgeEntry{doc1, doc2, doc3}, nil)

	for _, doc := range []*entity.KnowledgeEntry{doc1, doc2, doc3} {
		mockEntryRepo.EXPECT().
			UpdateProcessingStatus(ctx, doc.ID, entity.ProcessingInProgress, "").
			Return(nil).
			Once()
	}

	mockProcessor.EXPECT().
		ProcessDocument(mock.Anything, doc1).
		Return(&service.ProcessResult{ExtractedChars: 200}, nil).
		Once()
	// Document #2 always times out.
	mockProcessor.EXPECT().
		ProcessDocument(mock.Anything, doc2).
		Return(nil, context.DeadlineExceeded).
		Once()
	mockProcessor.EXPECT().
		ProcessDocument(mock.Anything, doc3).
		Return(&service.ProcessResult{ExtractedChars: 300}, nil).
		Once()

	mockEntryRepo.EXPECT().
		UpdateProcessingStatus(ctx, doc1.ID, entity.ProcessingCompleted, "").
		Return(nil).
		Once()
	mockEntryRepo.EXPECT().
		UpdateProcessingStatus(ctx, doc2.ID, entity.ProcessingFailed, "timed out after 50ms").
		Return(nil).
		Once()
	mockEntryRepo.EXPECT().
		UpdateProcessingStatus(ctx, doc3.ID, entity.ProcessingCompleted, "").
		Return(nil).
		Once()

	// Prompt generation still runs after the failed entry.
	mockPrompts.EXPECT().
		GenerateSystemPrompt(mock.Anything, profileID).
		Return("prompt", nil)
	mockProfileRepo.EXPECT().
		UpdateSystemPrompt(ctx, profileID, "prompt").
		Return(nil)

	report, err := svc.Run(ctx, profileID, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, report.TotalEntries)
	assert.Equal(t, 2, report.Processed)
	require.Len(t, report.FailedEntries, 1)
	assert.Equal(t, doc2.ID, report.FailedEntries[0].ID)
	assert.Equal(t, "harga", report.FailedEntries[0].Title)
	assert.Equal(t, "timed out after 50ms", report.FailedEntries[0].Reason)
	assert.True(t, report.PartialFailure())
}

func TestIngestionService_Run_MonotonicProgress(t *testing.T) {
	mockEntryRepo := mockRepo.NewMockKnowledgeEntryRepository(t)
	mockProfileRepo := mockRepo.NewMockBusinessProfileRepository(t)
	mockProcessor := mockSvc.NewMockDocumentProcessor(t)
	mockPrompts := mockSvc.NewMockPromptGenerator(t)
	svc := NewIngestionService(mockEntryRepo, mockProfileRepo, mockProcessor, mockPrompts, newTestConfig(time.Second), newDiscardLogger())

	ctx := context.Background()
	profileID := uuid.New()
	doc1 := newPendingDocument(profileID, "menu")
	doc2 := newPendingDocument(profileID, "harga")
	link := newPendingURL(profileID, "website", "https://warung.example.com")

	// Listing order interleaves kinds on purpose; documents must still be
	// attempted before urls.
	mockEntryRepo.EXPECT().
		FindByProfile(ctx, profileID).
		Return([]*entity.KnowledgeEntry{link, doc1, doc2}, nil)

	var order []string
	mockEntryRepo.EXPECT().
		UpdateProcessingStatus(ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(nil)

	mockProcessor.EXPECT().
		ProcessDocument(mock.Anything, mock.Anything).
		Run(func(_ context.Context, entry *entity.KnowledgeEntry) {
			order = append(order, entry.Title)
		}).
		Return(&service.ProcessResult{}, nil).
		Times(2)
	mockProcessor.EXPECT().
		ProcessURL(mock.Anything, link).
		Run(func(_ context.Context, entry *entity.KnowledgeEntry) {
			order = append(order, entry.Title)
		}).
		Return(&service.ProcessResult{}, nil).
		Once()

	mockPrompts.EXPECT().
		GenerateSystemPrompt(mock.Anything, profileID).
		Run(func(_ context.Context, _ uuid.UUID) {
			order = append(order, "prompt")
		}).
		Return("prompt", nil)
	mockProfileRepo.EXPECT().
		UpdateSystemPrompt(ctx, profileID, "prompt").
		Return(nil)

	var updates []usecase.Progress
	_, err := svc.Run(ctx, profileID, func(p usecase.Progress) {
		updates = append(updates, p)
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"menu", "harga", "website", "prompt"}, order)

	require.Len(t, updates, 4)
	last := 0.0
	for _, update := range updates {
		assert.GreaterOrEqual(t, update.Percent, last)
		last = update.Percent
	}
	assert.InDelta(t, 100.0, updates[len(updates)-1].Percent, 0.001)
	// 100 is reached only on the prompt unit.
	assert.Less(t, updates[len(updates)-2].Percent, 100.0)
}

func TestIngestionService_Run_PromptFailureIsFatal(t *testing.T) {
	mockEntryRepo := mockRepo.NewMockKnowledgeEntryRepository(t)
	mockProfileRepo := mockRepo.NewMockBusinessProfileRepository(t)
	mockProcessor := mockSvc.NewMockDocumentProcessor(t)
	mockPrompts := mockSvc.NewMockPromptGenerator(t)
	svc := NewIngestionService(mockEntryRepo, mockProfileRepo, mockProcessor, mockPrompts, newTestConfig(time.Second), newDiscardLogger())

	ctx := context.Background()
	profileID := uuid.New()

	mockEntryRepo.EXPECT().
		FindByProfile(ctx, profileID).
		Return([]*entity.KnowledgeEntry{newCompletedText(profileID)}, nil)

	mockPrompts.EXPECT().
		GenerateSystemPrompt(mock.Anything, profileID).
		Return("", errors.New("model unavailable"))

	var updates []usecase.Progress
	report, err := svc.Run(ctx, profileID, func(p usecase.Progress) {
		updates = append(updates, p)
	})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "PROMPT_GENERATION_FAILED", appErr.ErrorCode())

	// The report still describes the per-entry phase, and the prompt unit
	// still counts as attempted.
	require.NotNil(t, report)
	require.Len(t, updates, 1)
	assert.InDelta(t, 100.0, updates[0].Percent, 0.001)
}

func TestIngestionService_Run_EntryStatusWriteFailureIsNonFatal(t *testing.T) {
	mockEntryRepo := mockRepo.NewMockKnowledgeEntryRepository(t)
	mockProfileRepo := mockRepo.NewMockBusinessProfileRepository(t)
	mockProcessor := mockSvc.NewMockDocumentProcessor(t)
	mockPrompts := mockSvc.NewMockPromptGenerator(t)
	svc := NewIngestionService(mockEntryRepo, mockProfileRepo, mockProcessor, mockPrompts, newTestConfig(time.Second), newDiscardLogger())

	ctx := context.Background()
	profileID := uuid.New()
	doc := newPendingDocument(profileID, "menu")

	mockEntryRepo.EXPECT().
		FindByProfile(ctx, profileID).
		Return([]*entity.KnowledgeEntry{doc}, nil)

	statusErr := errors.New("connection reset")
	mockEntryRepo.EXPECT().
		UpdateProcessingStatus(ctx, doc.ID, entity.ProcessingInProgress, "").
		Return(statusErr).
		Once()
	mockEntryRepo.EXPECT().
		UpdateProcessingStatus(ctx, doc.ID, entity.ProcessingFailed, statusErr.Error()).
		Return(nil).
		Once()

	mockPrompts.EXPECT().
		GenerateSystemPrompt(mock.Anything, profileID).
		Return("prompt", nil)
	mockProfileRepo.EXPECT().
		UpdateSystemPrompt(ctx, profileID, "prompt").
		Return(nil)

	report, err := svc.Run(ctx, profileID, nil)
	require.NoError(t, err)
	require.Len(t, report.FailedEntries, 1)
	assert.Equal(t, 0, report.Processed)
}
