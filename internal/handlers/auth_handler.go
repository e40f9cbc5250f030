package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "posada/internal/errors"
	"posada/internal/middleware"
	"posada/internal/services"
)

// AuthHandler handles terminal login sessions
type AuthHandler struct {
	sessionService services.SessionServicer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(sessionService services.SessionServicer) *AuthHandler {
	return &AuthHandler{sessionService: sessionService}
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Password string `json:"password" binding:"required,max=128"`
}

// AuthResponse represents the authentication response with token
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Login starts a terminal session
// @Summary     Log in
// @Description Start a terminal session and get a session token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "Terminal credentials"
// @Success     200 {object} AuthResponse "Session started"
// @Failure     400 {object} ErrorResponse "Missing credentials"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	sess, err := h.sessionService.Login(req.Username, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := middleware.GenerateToken(sess)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"username": sess.Username,
	})
}

// Logout ends the terminal session
// @Summary     Log out
// @Description End the terminal session
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} MessageResponse "Session ended"
// @Router      /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessionService.Logout(); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Session returns the restored session, if any
// @Summary     Current session
// @Description Get the persisted session restored at startup
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} AuthResponse "Current session"
// @Failure     404 {object} ErrorResponse "No active session"
// @Router      /auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	sess := h.sessionService.Current()
	if sess == nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrNotFound, "No active session"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": sess.Username})
}
