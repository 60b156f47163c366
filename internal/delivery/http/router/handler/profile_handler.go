package handler

import (
	"log/slog"
	"net/http"

	"lapak/internal/delivery/http/response"
	"lapak/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler exposes the business profile outside the onboarding wizard.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

type updateProfileRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	BusinessHours string `json:"business_hours"`
}

// Get returns the business profile owned by the user.
func (h *ProfileHandler) Get(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Sesi tidak valid")
	}

	profile, err := h.uc.Get(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "")
}

// Update rewrites the profile's descriptive fields.
func (h *ProfileHandler) Update(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Sesi tidak valid")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Data profil tidak valid")
	}

	profile, err := h.uc.Update(c.Request().Context(), userID, usecase.UpdateProfileInput{
		Name:          req.Name,
		Description:   req.Description,
		Address:       req.Address,
		Phone:         req.Phone,
		BusinessHours: req.BusinessHours,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profil bisnis diperbarui")
}
