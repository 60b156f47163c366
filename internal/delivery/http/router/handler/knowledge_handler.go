package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"lapak/config"
	"lapak/internal/delivery/http/response"
	"lapak/internal/usecase"
	"lapak/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	defaultMaxUploadSizeMB = 10
	defaultMaxUploadFiles  = 5
)

// KnowledgeHandler exposes knowledge-base management over HTTP.
type KnowledgeHandler struct {
	uc             usecase.KnowledgeUsecase
	logger         *slog.Logger
	maxUploadBytes int64
	maxUploadFiles int
}

// NewKnowledgeHandler is the constructor for KnowledgeHandler, injected by Fx.
func NewKnowledgeHandler(uc usecase.KnowledgeUsecase, cfg *config.Config, logger *slog.Logger) *KnowledgeHandler {
	maxSizeMB := int64(defaultMaxUploadSizeMB)
	maxFiles := defaultMaxUploadFiles
	if cfg.Onboarding != nil {
		if cfg.Onboarding.MaxUploadSizeMB > 0 {
			maxSizeMB = cfg.Onboarding.MaxUploadSizeMB
		}
		if cfg.Onboarding.MaxUploadFiles > 0 {
			maxFiles = cfg.Onboarding.MaxUploadFiles
		}
	}

	return &KnowledgeHandler{
		uc:             uc,
		logger:         logger,
		maxUploadBytes: maxSizeMB << 20,
		maxUploadFiles: maxFiles,
	}
}

type saveTextRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type saveURLRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// List returns all knowledge entries of the user's profile.
func (h *KnowledgeHandler) List(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Sesi tidak valid")
	}

	entries, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "")
}

// SaveText creates or updates the profile's single text entry.
func (h *KnowledgeHandler) SaveText(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Sesi tidak valid")
	}

	var req saveTextRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Data teks tidak valid")
	}

	entry, err := h.uc.SaveText(c.Request().Context(), userID, req.Title, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entry, "Informasi teks tersimpan")
}

// SaveURL creates or updates the profile's single url entry.
func (h *KnowledgeHandler) SaveURL(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Sesi tidak valid")
	}

	var req saveURLRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Data tautan tidak valid")
	}

	entry, err := h.uc.SaveURL(c.Request().Context(), userID, req.Title, req.URL)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entry, "Tautan website tersimpan")
}

// UploadDocuments accepts a multipart batch under the "files" field and
// reports per-file outcomes. Oversized files are rejected before upload.
func (h *KnowledgeHandler) UploadDocuments(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Sesi tidak valid")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Unggahan dokumen tidak valid")
	}

	files := form.File["files"]
	if len(files) == 0 {
		return response.BadRequest(c, "EMPTY_UPLOAD", "Tidak ada dokumen yang diunggah")
	}
	if len(files) > h.maxUploadFiles {
		return response.BadRequest(c, "TOO_MANY_FILES",
			fmt.Sprintf("Maksimal %d dokumen per unggahan", h.maxUploadFiles))
	}

	uploads := make([]usecase.DocumentUpload, 0, len(files))
	results := make([]usecase.UploadResult, 0, len(files))
	var closers []func() error
	defer func() {
		for _, closeFn := range closers {
			if closeErr := closeFn(); closeErr != nil {
				h.logger.Warn("failed to close uploaded file", slog.Any("error", closeErr))
			}
		}
	}()

	for _, file := range files {
		if file.Size > h.maxUploadBytes {
			results = append(results, usecase.UploadResult{
				FileName: file.Filename,
				Err:      fmt.Sprintf("ukuran melebihi batas %s", util.FormatBytes(h.maxUploadBytes)),
			})

			continue
		}

		src, openErr := file.Open()
		if openErr != nil {
			results = append(results, usecase.UploadResult{
				FileName: file.Filename,
				Err:      "gagal membaca berkas",
			})

			continue
		}
		closers = append(closers, src.Close)

		uploads = append(uploads, usecase.DocumentUpload{
			FileName:    file.Filename,
			ContentType: file.Header.Get(echo.HeaderContentType),
			Size:        file.Size,
			Payload:     src,
		})
	}

	if len(uploads) > 0 {
		uploaded, upErr := h.uc.UploadDocuments(c.Request().Context(), userID, uploads)
		if upErr != nil {
			return errors.WithStack(upErr)
		}
		results = append(results, uploaded...)
	}

	return response.Success(c, http.StatusOK, results, "Unggahan dokumen diproses")
}

// Delete removes a knowledge entry.
func (h *KnowledgeHandler) Delete(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Sesi tidak valid")
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "ID entri tidak valid")
	}

	if err := h.uc.Delete(c.Request().Context(), userID, entryID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Entri pengetahuan dihapus")
}
