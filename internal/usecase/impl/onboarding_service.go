package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"lapak/internal/domain/entity"
	domainerrors "lapak/internal/domain/errors"
	"lapak/internal/domain/repository"
	"lapak/internal/domain/service"
	"lapak/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// onboardingService implements the OnboardingUsecase interface. It is the
// wizard's state machine: the authoritative step state lives in the status
// repository and is only advanced through explicit completion calls, never
// optimistically.
type onboardingService struct {
	statusRepo  repository.OnboardingStatusRepository
	profileRepo repository.BusinessProfileRepository
	entryRepo   repository.KnowledgeEntryRepository
	ingestion   usecase.IngestionUsecase
	publisher   service.EventPublisher
	qrcodeSvc   service.QRCodeService
	logger      *slog.Logger

	// inflight guards each user's step completion against duplicate
	// submissions: a second call while one is pending is a silent no-op.
	mu       sync.Mutex
	inflight map[uuid.UUID]struct{}
}

// NewOnboardingService is the constructor for onboardingService.
func NewOnboardingService(
	statusRepo repository.OnboardingStatusRepository,
	profileRepo repository.BusinessProfileRepository,
	entryRepo repository.KnowledgeEntryRepository,
	ingestion usecase.IngestionUsecase,
	publisher service.EventPublisher,
	qrcodeSvc service.QRCodeService,
	logger *slog.Logger,
) usecase.OnboardingUsecase {
	return &onboardingService{
		statusRepo:  statusRepo,
		profileRepo: profileRepo,
		entryRepo:   entryRepo,
		ingestion:   ingestion,
		publisher:   publisher,
		qrcodeSvc:   qrcodeSvc,
		logger:      logger,
		inflight:    make(map[uuid.UUID]struct{}),
	}
}

// Status returns the user's wizard state, creating the record on first access
// so a returning user resumes where they left off.
func (s *onboardingService) Status(ctx context.Context, userID uuid.UUID) (*entity.OnboardingStatus, error) {
	status, err := s.statusRepo.FindByUser(ctx, userID)
	if err == nil {
		return status, nil
	}
	if !errors.Is(err, repository.ErrOnboardingStatusNotFound) {
		return nil, errors.Wrap(err, "failed to load onboarding status")
	}

	status = &entity.OnboardingStatus{
		UserID:      userID,
		CurrentStep: entity.StepBusinessProfile,
	}
	if err := s.statusRepo.Create(ctx, status); err != nil {
		return nil, errors.Wrap(err, "failed to create onboarding status")
	}

	return status, nil
}

// NavigateTo switches the rendered step. Forward navigation to a step that
// was never completed is rejected without mutating any state.
func (s *onboardingService) NavigateTo(ctx context.Context, userID uuid.UUID, target entity.Step) (*entity.OnboardingStatus, error) {
	status, err := s.Status(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !status.CanNavigateTo(target) {
		return nil, domainerrors.ErrStepLocked
	}
	if target == status.CurrentStep {
		return status, nil
	}

	if err := s.statusRepo.UpdateCurrentStep(ctx, userID, target); err != nil {
		return nil, domainerrors.ErrStatusTrackerFailed.WithDetails(err.Error())
	}

	return s.reload(ctx, userID)
}

// Back moves one step backwards, never below the first step.
func (s *onboardingService) Back(ctx context.Context, userID uuid.UUID) (*entity.OnboardingStatus, error) {
	status, err := s.Status(ctx, userID)
	if err != nil {
		return nil, err
	}

	target := status.CurrentStep - 1
	if target < entity.StepBusinessProfile {
		target = entity.StepBusinessProfile
	}
	if target == status.CurrentStep {
		return status, nil
	}

	if err := s.statusRepo.UpdateCurrentStep(ctx, userID, target); err != nil {
		return nil, domainerrors.ErrStatusTrackerFailed.WithDetails(err.Error())
	}

	return s.reload(ctx, userID)
}

// CompleteBusinessProfile validates and persists the business profile, then
// completes step 0.
func (s *onboardingService) CompleteBusinessProfile(ctx context.Context, userID uuid.UUID, input usecase.BusinessProfileInput) (*entity.OnboardingStatus, error) {
	if !s.begin(userID) {
		return nil, nil
	}
	defer s.end(userID)

	var missing []string
	if strings.TrimSpace(input.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(input.Phone) == "" {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("kolom wajib diisi: " + strings.Join(missing, ", "))
	}

	profile, err := s.profileRepo.FindByOwner(ctx, userID)
	switch {
	case err == nil:
		profile.Name = input.Name
		profile.Description = input.Description
		profile.Address = input.Address
		profile.Phone = input.Phone
		profile.BusinessHours = input.BusinessHours
		if err := s.profileRepo.Update(ctx, profile); err != nil {
			return nil, errors.Wrap(err, "failed to update business profile")
		}
	case errors.Is(err, repository.ErrProfileNotFound):
		profile = &entity.BusinessProfile{
			ID:            uuid.New(),
			OwnerID:       userID,
			Name:          input.Name,
			Description:   input.Description,
			Address:       input.Address,
			Phone:         input.Phone,
			BusinessHours: input.BusinessHours,
		}
		if err := s.profileRepo.Create(ctx, profile); err != nil {
			return nil, errors.Wrap(err, "failed to create business profile")
		}
	default:
		return nil, errors.Wrap(err, "failed to load business profile")
	}

	return s.completeStep(ctx, userID, entity.StepBusinessProfile)
}

// CompleteKnowledgeStep gates on unsaved drafts and a non-empty knowledge
// base, runs the ingestion pipeline, and completes step 1 only when the run
// as a whole succeeded.
func (s *onboardingService) CompleteKnowledgeStep(ctx context.Context, userID uuid.UUID, drafts usecase.KnowledgeDrafts, onProgress usecase.ProgressFunc) (*entity.OnboardingStatus, *usecase.IngestionReport, error) {
	if !s.begin(userID) {
		return nil, nil, nil
	}
	defer s.end(userID)

	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	if unsaved := s.unsavedDrafts(ctx, profile.ID, drafts); len(unsaved) > 0 {
		return nil, nil, domainerrors.ErrUnsavedDrafts.WithDetails("belum disimpan: " + strings.Join(unsaved, ", "))
	}

	entries, err := s.entryRepo.FindByProfile(ctx, profile.ID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to list knowledge entries")
	}
	if len(entries) == 0 {
		return nil, nil, domainerrors.ErrEmptyKnowledgeBase
	}

	report, err := s.ingestion.Run(ctx, profile.ID, onProgress)
	if err != nil {
		return nil, report, err
	}

	status, err := s.completeStep(ctx, userID, entity.StepKnowledgeBase)
	if err != nil {
		return nil, report, err
	}

	return status, report, nil
}

// CompleteFeatureSelection persists the chosen feature flags and completes
// step 2. Coming-soon features cannot be enabled.
func (s *onboardingService) CompleteFeatureSelection(ctx context.Context, userID uuid.UUID, selection usecase.FeatureSelection) (*entity.OnboardingStatus, error) {
	if !s.begin(userID) {
		return nil, nil
	}
	defer s.end(userID)

	if selection.PaymentSystem {
		return nil, domainerrors.ErrFeatureLocked
	}

	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.profileRepo.UpdateFeatures(ctx, profile.ID, selection.ProductCatalog, selection.OrderManagement, false); err != nil {
		return nil, errors.Wrap(err, "failed to persist feature selection")
	}

	return s.completeStep(ctx, userID, entity.StepFeatures)
}

// CompleteChannelConnect completes the final step, stamps the terminal
// completion time and publishes the onboarding-completed event. A repeat
// call on an already completed wizard returns the status unchanged and does
// not re-fire the event.
func (s *onboardingService) CompleteChannelConnect(ctx context.Context, userID uuid.UUID) (*entity.OnboardingStatus, error) {
	if !s.begin(userID) {
		return nil, nil
	}
	defer s.end(userID)

	status, err := s.Status(ctx, userID)
	if err != nil {
		return nil, err
	}
	if status.IsCompleted() {
		return status, nil
	}

	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.profileRepo.UpdateChannelConnected(ctx, profile.ID, true); err != nil {
		return nil, errors.Wrap(err, "failed to mark channel connected")
	}

	if err := s.statusRepo.MarkStepCompleted(ctx, userID, entity.StepChannelConnect); err != nil {
		return nil, domainerrors.ErrStatusTrackerFailed.WithDetails(err.Error())
	}
	if err := s.statusRepo.MarkCompleted(ctx, userID); err != nil {
		return nil, domainerrors.ErrStatusTrackerFailed.WithDetails(err.Error())
	}

	status, err = s.reload(ctx, userID)
	if err != nil {
		return nil, err
	}

	completedAt := time.Now()
	if status.CompletedAt != nil {
		completedAt = *status.CompletedAt
	}
	event := &service.OnboardingCompletedEvent{
		UserID:            userID.String(),
		BusinessProfileID: profile.ID.String(),
		BusinessName:      profile.Name,
		CompletedAt:       completedAt,
	}
	// The wizard state is already terminal at this point. A publish failure
	// must not roll that back, so it is logged and swallowed.
	if err := s.publisher.PublishOnboardingCompleted(ctx, event); err != nil {
		s.logger.Error("failed to publish onboarding-completed event",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)
	}

	return status, nil
}

// ChannelPairingCode returns the PNG QR code shown on the final step.
func (s *onboardingService) ChannelPairingCode(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcodeSvc.GeneratePairingQR(profile.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pairing QR code")
	}

	return png, nil
}

// FeatureOptions returns the feature catalog rendered on step 2.
func (s *onboardingService) FeatureOptions(ctx context.Context, userID uuid.UUID) ([]entity.FeatureOption, error) {
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	return entity.FeatureCatalog(profile), nil
}

// begin claims the per-user completion slot. It returns false when another
// completion is still pending for the same user.
func (s *onboardingService) begin(userID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, pending := s.inflight[userID]; pending {
		return false
	}
	s.inflight[userID] = struct{}{}

	return true
}

func (s *onboardingService) end(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, userID)
}

// completeStep marks the step completed and re-reads the authoritative
// status. On any failure the current step is left untouched.
func (s *onboardingService) completeStep(ctx context.Context, userID uuid.UUID, step entity.Step) (*entity.OnboardingStatus, error) {
	if err := s.statusRepo.MarkStepCompleted(ctx, userID, step); err != nil {
		return nil, domainerrors.ErrStatusTrackerFailed.WithDetails(err.Error())
	}

	return s.reload(ctx, userID)
}

func (s *onboardingService) reload(ctx context.Context, userID uuid.UUID) (*entity.OnboardingStatus, error) {
	status, err := s.statusRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload onboarding status")
	}

	return status, nil
}

// profile resolves the user's business profile, translating the repository
// sentinel into the user-facing error.
func (s *onboardingService) profile(ctx context.Context, userID uuid.UUID) (*entity.BusinessProfile, error) {
	profile, err := s.profileRepo.FindByOwner(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileIncomplete
		}

		return nil, errors.Wrap(err, "failed to load business profile")
	}

	return profile, nil
}

// unsavedDrafts compares the client's draft fields against the saved text
// and url snapshots and names the fields that differ. This gate runs before
// any processing is attempted.
func (s *onboardingService) unsavedDrafts(ctx context.Context, profileID uuid.UUID, drafts usecase.KnowledgeDrafts) []string {
	var unsaved []string

	if text := strings.TrimSpace(drafts.Text); text != "" {
		entry, err := s.entryRepo.FindTextEntry(ctx, profileID)
		if err != nil || !textMatches(entry, text) {
			unsaved = append(unsaved, "teks")
		}
	}
	if rawURL := strings.TrimSpace(drafts.URL); rawURL != "" {
		entry, err := s.entryRepo.FindURLEntry(ctx, profileID)
		if err != nil || !urlMatches(entry, rawURL) {
			unsaved = append(unsaved, "url")
		}
	}

	return unsaved
}

func textMatches(entry *entity.KnowledgeEntry, draft string) bool {
	source, ok := entry.Source.(entity.TextSource)

	return ok && source.Content == draft
}

func urlMatches(entry *entity.KnowledgeEntry, draft string) bool {
	source, ok := entry.Source.(entity.URLSource)

	return ok && source.URL == draft
}
