package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"lapak/internal/domain/entity"
	domainerrors "lapak/internal/domain/errors"
	"lapak/internal/domain/repository"
	"lapak/internal/domain/service"
	"lapak/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// knowledgeService implements the KnowledgeUsecase interface.
type knowledgeService struct {
	entryRepo   repository.KnowledgeEntryRepository
	profileRepo repository.BusinessProfileRepository
	storage     service.DocumentStorage
	logger      *slog.Logger
}

// NewKnowledgeService is the constructor for knowledgeService.
func NewKnowledgeService(
	entryRepo repository.KnowledgeEntryRepository,
	profileRepo repository.BusinessProfileRepository,
	storage service.DocumentStorage,
	logger *slog.Logger,
) usecase.KnowledgeUsecase {
	return &knowledgeService{
		entryRepo:   entryRepo,
		profileRepo: profileRepo,
		storage:     storage,
		logger:      logger,
	}
}

// List returns all entries of the user's profile in creation order.
func (s *knowledgeService) List(ctx context.Context, userID uuid.UUID) ([]*entity.KnowledgeEntry, error) {
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.FindByProfile(ctx, profile.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list knowledge entries")
	}

	return entries, nil
}

// SaveText creates or updates the profile's single text entry. Text content
// needs no extraction, so the entry is completed immediately.
func (s *knowledgeService) SaveText(ctx context.Context, userID uuid.UUID, title, content string) (*entity.KnowledgeEntry, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("teks tidak boleh kosong")
	}
	if strings.TrimSpace(title) == "" {
		title = "Informasi Bisnis"
	}

	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry, err := s.entryRepo.FindTextEntry(ctx, profile.ID)
	switch {
	case err == nil:
		entry.Title = title
		entry.Source = entity.TextSource{Content: content}
		entry.ProcessingStatus = entity.ProcessingCompleted
		entry.ErrorMessage = ""
		if err := s.entryRepo.Update(ctx, entry); err != nil {
			return nil, errors.Wrap(err, "failed to update text entry")
		}
	case errors.Is(err, repository.ErrEntryNotFound):
		entry = &entity.KnowledgeEntry{
			ID:                uuid.New(),
			BusinessProfileID: profile.ID,
			Title:             title,
			Source:            entity.TextSource{Content: content},
			ProcessingStatus:  entity.ProcessingCompleted,
		}
		if err := s.entryRepo.Create(ctx, entry); err != nil {
			return nil, errors.Wrap(err, "failed to create text entry")
		}
	default:
		return nil, errors.Wrap(err, "failed to look up text entry")
	}

	return entry, nil
}

// SaveURL creates or updates the profile's single url entry. Re-saving
// resets the status to pending so the new address is scraped on the next
// ingestion run.
func (s *knowledgeService) SaveURL(ctx context.Context, userID uuid.UUID, title, rawURL string) (*entity.KnowledgeEntry, error) {
	parsed, err := url.ParseRequestURI(strings.TrimSpace(rawURL))
	if err != nil || parsed.Host == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("alamat URL tidak valid")
	}
	if strings.TrimSpace(title) == "" {
		title = parsed.Host
	}

	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry, err := s.entryRepo.FindURLEntry(ctx, profile.ID)
	switch {
	case err == nil:
		entry.Title = title
		entry.Source = entity.URLSource{URL: parsed.String()}
		entry.ProcessingStatus = entity.ProcessingPending
		entry.ErrorMessage = ""
		if err := s.entryRepo.Update(ctx, entry); err != nil {
			return nil, errors.Wrap(err, "failed to update url entry")
		}
	case errors.Is(err, repository.ErrEntryNotFound):
		entry = &entity.KnowledgeEntry{
			ID:                uuid.New(),
			BusinessProfileID: profile.ID,
			Title:             title,
			Source:            entity.URLSource{URL: parsed.String()},
			ProcessingStatus:  entity.ProcessingPending,
		}
		if err := s.entryRepo.Create(ctx, entry); err != nil {
			return nil, errors.Wrap(err, "failed to create url entry")
		}
	default:
		return nil, errors.Wrap(err, "failed to look up url entry")
	}

	return entry, nil
}

// UploadDocuments stores each file in blob storage and creates a pending
// document entry per successful upload. One failed file never aborts the
// rest of the batch.
func (s *knowledgeService) UploadDocuments(ctx context.Context, userID uuid.UUID, uploads []usecase.DocumentUpload) ([]usecase.UploadResult, error) {
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	results := make([]usecase.UploadResult, 0, len(uploads))
	for _, upload := range uploads {
		entry, err := s.uploadOne(ctx, profile.ID, upload)
		result := usecase.UploadResult{FileName: upload.FileName, Entry: entry}
		if err != nil {
			result.Err = err.Error()
			s.logger.Warn("document upload failed",
				slog.String("file_name", upload.FileName),
				slog.Any("error", err),
			)
		}
		results = append(results, result)
	}

	return results, nil
}

func (s *knowledgeService) uploadOne(ctx context.Context, profileID uuid.UUID, upload usecase.DocumentUpload) (*entity.KnowledgeEntry, error) {
	entryID := uuid.New()
	key := fmt.Sprintf("%s/%s/%s", profileID, entryID, path.Base(upload.FileName))

	storagePath, err := s.storage.Upload(ctx, key, upload.ContentType, upload.Payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store document")
	}

	entry := &entity.KnowledgeEntry{
		ID:                entryID,
		BusinessProfileID: profileID,
		Title:             upload.FileName,
		Source: entity.DocumentSource{
			FileName:    upload.FileName,
			FileSize:    upload.Size,
			FileType:    upload.ContentType,
			StoragePath: storagePath,
		},
		ProcessingStatus: entity.ProcessingPending,
	}
	if err := s.entryRepo.Create(ctx, entry); err != nil {
		// Best effort: do not leave an orphaned blob behind.
		if cleanupErr := s.storage.Delete(ctx, key); cleanupErr != nil {
			s.logger.Error("failed to clean up orphaned document blob",
				slog.String("key", key),
				slog.Any("error", cleanupErr),
			)
		}

		return nil, errors.Wrap(err, "failed to create document entry")
	}

	return entry, nil
}

// Delete removes an entry owned by the user and, for document entries, its
// stored payload.
func (s *knowledgeService) Delete(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) error {
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return err
	}

	entry, err := s.entryRepo.FindByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return domainerrors.ErrEntryNotFound
		}

		return errors.Wrap(err, "failed to load knowledge entry")
	}
	if entry.BusinessProfileID != profile.ID {
		return domainerrors.ErrForbidden
	}

	if source, ok := entry.Source.(entity.DocumentSource); ok {
		if err := s.storage.Delete(ctx, source.StoragePath); err != nil {
			s.logger.Warn("failed to delete document blob",
				slog.String("key", source.StoragePath),
				slog.Any("error", err),
			)
		}
	}

	if err := s.entryRepo.Delete(ctx, entryID); err != nil {
		return errors.Wrap(err, "failed to delete knowledge entry")
	}

	return nil
}

func (s *knowledgeService) profile(ctx context.Context, userID uuid.UUID) (*entity.BusinessProfile, error) {
	profile, err := s.profileRepo.FindByOwner(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileIncomplete
		}

		return nil, errors.Wrap(err, "failed to load business profile")
	}

	return profile, nil
}
