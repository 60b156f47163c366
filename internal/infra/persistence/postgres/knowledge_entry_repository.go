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

// knowledgeEntryRepository implements the domain.KnowledgeEntryRepository interface using GORM.
type knowledgeEntryRepository struct {
	db *gorm.DB
}

// NewKnowledgeEntryRepository is the constructor for knowledgeEntryRepository.
func NewKnowledgeEntryRepository(db *gorm.DB) repository.KnowledgeEntryRepository {
	return &knowledgeEntryRepository{db: db}
}

// Create persists a new knowledge entry.
func (repo *knowledgeEntryRepository) Create(ctx context.Context, entry *entity.KnowledgeEntry) error {
	entryM := fromEntryDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProfileNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create knowledge entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt
	entry.UpdatedAt = entryM.UpdatedAt

	return nil
}

// Update rewrites an existing entry in place.
func (repo *knowledgeEntryRepository) Update(ctx context.Context, entry *entity.KnowledgeEntry) error {
	entryM := fromEntryDomain(entry)

	result := repo.db.WithContext(ctx).
		Model(&model.KnowledgeEntryModel{}).
		Where("id = ?", entry.ID).
		Select("kind", "title", "text_content", "url", "file_name", "file_size",
			"file_type", "storage_path", "processing_status", "error_message").
		Updates(entryM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update knowledge entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEntryNotFound
	}

	return nil
}

// FindByID retrieves an entry by its unique ID.
func (repo *knowledgeEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.KnowledgeEntry, error) {
	var entryM model.KnowledgeEntryModel
	if err := repo.db.WithContext(ctx).First(&entryM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find knowledge entry by id")
	}

	return toEntryDomain(&entryM), nil
}

// FindByProfile retrieves all entries for a business profile in creation order.
func (repo *knowledgeEntryRepository) FindByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.KnowledgeEntry, error) {
	var entryMs []model.KnowledgeEntryModel
	if err := repo.db.WithContext(ctx).
		Where("business_profile_id = ?", profileID).
		Order("created_at ASC").
		Find(&entryMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list knowledge entries")
	}

	entries := make([]*entity.KnowledgeEntry, 0, len(entryMs))
	for i := range entryMs {
		entries = append(entries, toEntryDomain(&entryMs[i]))
	}

	return entries, nil
}

// FindTextEntry retrieves the single text entry of a profile, if any.
func (repo *knowledgeEntryRepository) FindTextEntry(ctx context.Context, profileID uuid.UUID) (*entity.KnowledgeEntry, error) {
	return repo.findByKind(ctx, profileID, entity.EntryKindText)
}

// FindURLEntry retrieves the single url entry of a profile, if any.
func (repo *knowledgeEntryRepository) FindURLEntry(ctx context.Context, profileID uuid.UUID) (*entity.KnowledgeEntry, error) {
	return repo.findByKind(ctx, profileID, entity.EntryKindURL)
}

func (repo *knowledgeEntryRepository) findByKind(ctx context.Context, profileID uuid.UUID, kind entity.EntryKind) (*entity.KnowledgeEntry, error) {
	var entryM model.KnowledgeEntryModel
	if err := repo.db.WithContext(ctx).
		First(&entryM, "business_profile_id = ? AND kind = ?", profileID, string(kind)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEntryNotFound
		}

		return nil, errors.Wrapf(err, "failed to find %s entry", kind)
	}

	return toEntryDomain(&entryM), nil
}

// UpdateProcessingStatus transitions an entry's ingestion status and records
// the failure message.
func (repo *knowledgeEntryRepository) UpdateProcessingStatus(ctx context.Context, id uuid.UUID, status entity.ProcessingStatus, errorMessage string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.KnowledgeEntryModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"processing_status": string(status),
			"error_message":     errorMessage,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update processing status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEntryNotFound
	}

	return nil
}

// Delete removes an entry permanently.
func (repo *knowledgeEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.KnowledgeEntryModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete knowledge entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEntryNotFound
	}

	return nil
}

func toEntryDomain(entryM *model.KnowledgeEntryModel) *entity.KnowledgeEntry {
	entry := &entity.KnowledgeEntry{
		ID:                entryM.ID,
		BusinessProfileID: entryM.BusinessProfileID,
		Title:             entryM.Title,
		ProcessingStatus:  entity.ProcessingStatus(entryM.ProcessingStatus),
		ErrorMessage:      entryM.ErrorMessage,
		CreatedAt:         entryM.CreatedAt,
		UpdatedAt:         entryM.UpdatedAt,
	}

	switch entity.EntryKind(entryM.Kind) {
	case entity.EntryKindText:
		entry.Source = entity.TextSource{Content: derefString(entryM.TextContent)}
	case entity.EntryKindURL:
		entry.Source = entity.URLSource{URL: derefString(entryM.URL)}
	case entity.EntryKindDocument:
		entry.Source = entity.DocumentSource{
			FileName:    derefString(entryM.FileName),
			FileSize:    derefInt64(entryM.FileSize),
			FileType:    derefString(entryM.FileType),
			StoragePath: derefString(entryM.StoragePath),
		}
	}

	return entry
}

func fromEntryDomain(entry *entity.KnowledgeEntry) *model.KnowledgeEntryModel {
	entryM := &model.KnowledgeEntryModel{
		ID:                entry.ID,
		BusinessProfileID: entry.BusinessProfileID,
		Kind:              string(entry.Source.Kind()),
		Title:             entry.Title,
		ProcessingStatus:  string(entry.ProcessingStatus),
		ErrorMessage:      entry.ErrorMessage,
	}

	switch source := entry.Source.(type) {
	case entity.TextSource:
		entryM.TextContent = &source.Content
	case entity.URLSource:
		entryM.URL = &source.URL
	case entity.DocumentSource:
		entryM.FileName = &source.FileName
		entryM.FileSize = &source.FileSize
		entryM.FileType = &source.FileType
		entryM.StoragePath = &source.StoragePath
	}

	return entryM
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func derefInt64(n *int64) int64 {
	if n == nil {
		return 0
	}

	return *n
}
