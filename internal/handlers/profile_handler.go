package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "posada/internal/errors"
	"posada/internal/models"
	"posada/internal/services"
)

// ProfileHandler handles the establishment profile
type ProfileHandler struct {
	profileService services.ProfileServicer
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService services.ProfileServicer) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// SaveProfileRequest represents the request payload for saving the profile.
// Empty fields fall back to their defaults.
type SaveProfileRequest struct {
	Name     string `json:"name" binding:"max=200"`
	Address  string `json:"address" binding:"max=500"`
	Location string `json:"location" binding:"max=200"`
	Phone    string `json:"phone" binding:"max=50"`
}

// GetProfile returns the establishment profile
// @Summary     Get profile
// @Description Get the establishment profile, with defaults when unset
// @Tags        profile
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.Profile "Profile"
// @Router      /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"profile": h.profileService.Profile()})
}

// SaveProfile overwrites the establishment profile
// @Summary     Save profile
// @Description Overwrite the establishment profile wholesale
// @Tags        profile
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SaveProfileRequest true "Profile fields"
// @Success     200 {object} models.Profile "Saved profile"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /profile [put]
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	var req SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	profile, err := h.profileService.SaveProfile(models.Profile{
		Name:     req.Name,
		Address:  req.Address,
		Location: req.Location,
		Phone:    req.Phone,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
