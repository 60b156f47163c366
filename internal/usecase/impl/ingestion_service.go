package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"lapak/config"
	"lapak/internal/domain/entity"
	domainerrors "lapak/internal/domain/errors"
	"lapak/internal/domain/repository"
	"lapak/internal/domain/service"
	"lapak/internal/usecase"
	"lapak/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// defaultProcessingTimeout bounds each individual processing call when the
// config does not override it.
const defaultProcessingTimeout = 2 * time.Minute

// ingestionService implements the IngestionUsecase interface.
type ingestionService struct {
	entryRepo   repository.KnowledgeEntryRepository
	profileRepo repository.BusinessProfileRepository
	processor   service.DocumentProcessor
	prompts     service.PromptGenerator
	timeout     time.Duration
	logger      *slog.Logger
}

// NewIngestionService is the constructor for ingestionService.
func NewIngestionService(
	entryRepo repository.KnowledgeEntryRepository,
	profileRepo repository.BusinessProfileRepository,
	processor service.DocumentProcessor,
	prompts service.PromptGenerator,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.IngestionUsecase {
	timeout := defaultProcessingTimeout
	if cfg.Onboarding != nil && cfg.Onboarding.ProcessingTimeout > 0 {
		timeout = cfg.Onboarding.ProcessingTimeout
	}

	return &ingestionService{
		entryRepo:   entryRepo,
		profileRepo: profileRepo,
		processor:   processor,
		prompts:     prompts,
		timeout:     timeout,
		logger:      logger,
	}
}

// Run processes every pending document and url entry of the profile, in that
// order, then generates the system prompt. Individual entry failures are
// recorded and never abort the run; a prompt-generation failure fails the
// run as a whole.
func (s *ingestionService) Run(ctx context.Context, businessProfileID uuid.UUID, onProgress usecase.ProgressFunc) (*usecase.IngestionReport, error) {
	if onProgress == nil {
		onProgress = func(usecase.Progress) {}
	}
	started := time.Now()

	entries, err := s.entryRepo.FindByProfile(ctx, businessProfileID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list knowledge entries")
	}

	// Documents are attempted before urls. Text entries are complete at
	// save time and never reach this loop.
	var documents, urls []*entity.KnowledgeEntry
	for _, entry := range entries {
		if !entry.NeedsProcessing() {
			continue
		}
		switch entry.Source.Kind() {
		case entity.EntryKindDocument:
			documents = append(documents, entry)
		case entity.EntryKindURL:
			urls = append(urls, entry)
		}
	}

	// The +1 is the mandatory prompt-generation unit, so a run without any
	// pending entries jumps straight from 0 to 100.
	totalUnits := len(documents) + len(urls) + 1
	attempted := 0
	advance := func(label string) {
		attempted++
		onProgress(usecase.Progress{
			Label:   label,
			Percent: float64(attempted) / float64(totalUnits) * 100,
		})
	}

	report := &usecase.IngestionReport{TotalEntries: len(documents) + len(urls)}

	for _, entry := range documents {
		s.processEntry(ctx, entry, report)
		advance(entry.Title)
	}
	for _, entry := range urls {
		s.processEntry(ctx, entry, report)
		advance(entry.Title)
	}

	promptCtx, cancel := context.WithTimeout(ctx, s.timeout)
	prompt, err := s.prompts.GenerateSystemPrompt(promptCtx, businessProfileID)
	cancel()
	// The prompt step counts as an attempted unit whether it succeeded or
	// not, so progress always ends at 100.
	advance("system-prompt")
	if err != nil {
		return report, domainerrors.ErrPromptGenerationFailed.WithDetails(s.failureReason(err))
	}

	if err := s.profileRepo.UpdateSystemPrompt(ctx, businessProfileID, prompt); err != nil {
		return report, errors.Wrap(err, "failed to store system prompt")
	}
	report.SystemPrompt = prompt

	s.logger.Info("ingestion run finished",
		slog.String("business_profile_id", businessProfileID.String()),
		slog.Int("processed", report.Processed),
		slog.Int("failed", len(report.FailedEntries)),
		slog.String("elapsed", util.FormatDuration(time.Since(started))),
	)

	return report, nil
}

// processEntry attempts a single entry under its own timeout. The child
// context is cancelled as soon as the call returns, so an abandoned
// processing call cannot mutate entry state later: all status writes happen
// here, after the call has come back.
func (s *ingestionService) processEntry(ctx context.Context, entry *entity.KnowledgeEntry, report *usecase.IngestionReport) {
	if err := s.entryRepo.UpdateProcessingStatus(ctx, entry.ID, entity.ProcessingInProgress, ""); err != nil {
		s.markFailed(ctx, entry, report, err.Error())

		return
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	var err error
	switch entry.Source.Kind() {
	case entity.EntryKindDocument:
		_, err = s.processor.ProcessDocument(callCtx, entry)
	case entity.EntryKindURL:
		_, err = s.processor.ProcessURL(callCtx, entry)
	}
	cancel()

	if err != nil {
		s.markFailed(ctx, entry, report, s.failureReason(err))

		return
	}

	if err := s.entryRepo.UpdateProcessingStatus(ctx, entry.ID, entity.ProcessingCompleted, ""); err != nil {
		s.markFailed(ctx, entry, report, err.Error())

		return
	}
	report.Processed++
}

// markFailed records the failure on the entry and in the report. The run
// continues with the next entry regardless.
func (s *ingestionService) markFailed(ctx context.Context, entry *entity.KnowledgeEntry, report *usecase.IngestionReport, reason string) {
	if err := s.entryRepo.UpdateProcessingStatus(ctx, entry.ID, entity.ProcessingFailed, reason); err != nil {
		s.logger.Error("failed to record entry failure",
			slog.String("entry_id", entry.ID.String()),
			slog.Any("error", err),
		)
	}

	report.FailedEntries = append(report.FailedEntries, usecase.FailedEntry{
		ID:     entry.ID,
		Title:  entry.Title,
		Reason: reason,
	})

	s.logger.Warn("knowledge entry processing failed",
		slog.String("entry_id", entry.ID.String()),
		slog.String("reason", reason),
	)
}

// failureReason distinguishes a timeout from a processor-reported failure so
// the user-visible message can say so.
func (s *ingestionService) failureReason(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Sprintf("timed out after %dms", s.timeout.Milliseconds())
	}

	return err.Error()
}
