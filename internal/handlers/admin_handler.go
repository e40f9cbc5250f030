package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "posada/internal/errors"
	"posada/internal/services"
)

// AdminHandler handles maintenance requests
type AdminHandler struct {
	adminService services.AdminServicer
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(adminService services.AdminServicer) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// ResetRequest represents the confirmation payload for the reset operation
type ResetRequest struct {
	Confirm bool `json:"confirm"`
}

// Reset clears all data
// @Summary     Reset all data
// @Description Irreversibly clear the catalog, transaction log, and profile
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ResetRequest true "Confirmation"
// @Success     200 {object} MessageResponse "Data cleared"
// @Failure     400 {object} ErrorResponse "Not confirmed"
// @Router      /admin/reset [post]
func (h *AdminHandler) Reset(c *gin.Context) {
	var req ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.adminService.ResetAll(req.Confirm); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All data reset"})
}

// Health reports service status, including degraded persistence
// @Summary     Health check
// @Description Report service status and whether persistence is degraded
// @Tags        admin
// @Produce     json
// @Success     200 {object} map[string]any "Status"
// @Router      /api/health [get]
func (h *AdminHandler) Health(c *gin.Context) {
	status := gin.H{"status": "ok", "persistence": "ok"}
	if h.adminService.Degraded() {
		// Still 200: the session keeps working from memory, data just
		// may not survive a restart.
		status["persistence"] = "degraded"
	}
	c.JSON(http.StatusOK, status)
}
