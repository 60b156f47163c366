package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"lapak/internal/delivery/http/response"
	"lapak/internal/domain/entity"
	domainerrors "lapak/internal/domain/errors"
	"lapak/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OnboardingHandler exposes the onboarding wizard over HTTP.
type OnboardingHandler struct {
	uc     usecase.OnboardingUsecase
	logger *slog.Logger
}

// NewOnboardingHandler is the constructor for OnboardingHandler, injected by Fx.
func NewOnboardingHandler(uc usecase.OnboardingUsecase, logger *slog.Logger) *OnboardingHandler {
	return &OnboardingHandler{
		uc:     uc,
		logger: logger,
	}
}

type navigateRequest struct {
	Step int `json:"step"`
}

type businessProfileRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	BusinessHours string `json:"business_hours"`
}

type knowledgeStepRequest struct {
	TextDraft string `json:"text_draft"`
	URLDraft  string `json:"url_draft"`
}

type featureSelectionRequest struct {
	ProductCatalog  bool `json:"product_catalog"`
	OrderManagement bool `json:"order_management"`
	PaymentSystem   bool `json:"payment_system"`
}

// statusView decorates the raw wizard state with the labels the client renders.
type statusView struct {
	*entity.OnboardingStatus
	CurrentStepLabel string `json:"current_step_label"`
	TotalSteps       int    `json:"total_steps"`
}

func newStatusView(status *entity.OnboardingStatus) *statusView {
	if status == nil {
		return nil
	}

	return &statusView{
		OnboardingStatus: status,
		CurrentStepLabel: status.CurrentStep.Label(),
		TotalSteps:       entity.StepCount,
	}
}

// Status returns the user's wizard state.
func (h *OnboardingHandler) Status(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Sesi tidak valid")
	}

	status, err := h.uc.Status(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newStatusView(status), "")
}

// Navigate switches the rendered wizard step.
func (h *OnboardingHandler) Navigate(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Sesi tidak valid")
	}

	var req navigateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Data navigasi tidak valid")
	}

	status, err := h.uc.NavigateTo(c.Request().Context(), userID, entity.Step(req.Step))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newStatusView(status), "")
}

// Back moves the wizard one step backwards.
func (h *OnboardingHandler) Back(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Sesi tidak valid")
	}

	status, err := h.uc.Back(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newStatusView(status), "")
}

// CompleteBusinessProfile saves the profile step.
func (h *OnboardingHandler) CompleteBusinessProfile(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Sesi tidak valid")
	}

	var req businessProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Data profil bisnis tidak valid")
	}

	status, err := h.uc.CompleteBusinessProfile(c.Request().Context(), userID, usecase.BusinessProfileInput{
		Name:          req.Name,
		Description:   req.Description,
		Address:       req.Address,
		Phone:         req.Phone,
		BusinessHours: req.BusinessHours,
	})
	if err != nil {
		return errors.WithStack(err)
	}
	if status == nil {
		return response.Success(c, http.StatusAccepted, nil, "Permintaan sebelumnya masih diproses")
	}

	return response.Success(c, http.StatusOK, newStatusView(status), "Profil bisnis tersimpan")
}

// progressEvent is one line of the newline-delimited knowledge-step stream.
type progressEvent struct {
	Type    string  `json:"type"`
	Label   string  `json:"label,omitempty"`
	Percent float64 `json:"percent,omitempty"`
	Status  any     `json:"status,omitempty"`
	Report  any     `json:"report,omitempty"`
	Code    string  `json:"code,omitempty"`
	Message string  `json:"message,omitempty"`
}

// CompleteKnowledgeStep runs the ingestion pipeline and streams progress as
// newline-delimited JSON. The final line carries either the updated status
// plus the ingestion report, or the error that stopped the run.
func (h *OnboardingHandler) CompleteKnowledgeStep(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Sesi tidak valid")
	}

	var req knowledgeStepRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Data langkah pengetahuan tidak valid")
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "application/x-ndjson")
	res.WriteHeader(http.StatusOK)

	enc := json.NewEncoder(res)
	writeEvent := func(ev progressEvent) {
		if err := enc.Encode(ev); err != nil {
			h.logger.Warn("failed to write progress event", slog.Any("error", err))

			return
		}
		res.Flush()
	}

	drafts := usecase.KnowledgeDrafts{Text: req.TextDraft, URL: req.URLDraft}
	status, report, err := h.uc.CompleteKnowledgeStep(c.Request().Context(), userID, drafts, func(p usecase.Progress) {
		writeEvent(progressEvent{Type: "progress", Label: p.Label, Percent: p.Percent})
	})
	if err != nil {
		ev := progressEvent{Type: "error", Code: "INTERNAL_ERROR", Message: "Terjadi kesalahan pada server"}
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			ev.Code = appErr.ErrorCode()
			ev.Message = appErr.Message()
		} else {
			h.logger.Error("knowledge step failed", slog.Any("error", err))
		}
		if report != nil {
			ev.Report = report
		}
		writeEvent(ev)

		return nil
	}
	if status == nil {
		writeEvent(progressEvent{Type: "error", Code: "IN_PROGRESS", Message: "Permintaan sebelumnya masih diproses"})

		return nil
	}

	writeEvent(progressEvent{Type: "result", Status: newStatusView(status), Report: report})

	return nil
}

// CompleteFeatureSelection saves the feature step.
func (h *OnboardingHandler) CompleteFeatureSelection(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Sesi tidak valid")
	}

	var req featureSelectionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Data pilihan fitur tidak valid")
	}

	status, err := h.uc.CompleteFeatureSelection(c.Request().Context(), userID, usecase.FeatureSelection{
		ProductCatalog:  req.ProductCatalog,
		OrderManagement: req.OrderManagement,
		PaymentSystem:   req.PaymentSystem,
	})
	if err != nil {
		return errors.WithStack(err)
	}
	if status == nil {
		return response.Success(c, http.StatusAccepted, nil, "Permintaan sebelumnya masih diproses")
	}

	return response.Success(c, http.StatusOK, newStatusView(status), "Pilihan fitur tersimpan")
}

// CompleteChannelConnect completes the final wizard step.
func (h *OnboardingHandler) CompleteChannelConnect(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Sesi tidak valid")
	}

	status, err := h.uc.CompleteChannelConnect(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}
	if status == nil {
		return response.Success(c, http.StatusAccepted, nil, "Permintaan sebelumnya masih diproses")
	}

	return response.Success(c, http.StatusOK, newStatusView(status), "Onboarding selesai")
}

// PairingCode returns the channel pairing QR code as a PNG image.
func (h *OnboardingHandler) PairingCode(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Sesi tidak valid")
	}

	png, err := h.uc.ChannelPairingCode(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// FeatureOptions returns the feature catalog for the feature step.
func (h *OnboardingHandler) FeatureOptions(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Sesi tidak valid")
	}

	options, err := h.uc.FeatureOptions(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, options, "")
}
