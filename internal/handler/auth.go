package handler

import (
	"net/http"

	"github.com/Aravind-ihub855/Mom-Automation/internal/logger"
	"github.com/Aravind-ihub855/Mom-Automation/internal/middleware"
	"github.com/Aravind-ihub855/Mom-Automation/internal/model"
	"github.com/Aravind-ihub855/Mom-Automation/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login handles POST /login. On success the session token is set as an
// HTTP-only SameSite-Lax cookie and echoed in the body.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logger.Warn("login.failed", "email", req.Email)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}
	logger.Info("login.ok", "email", req.Email)

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, int(middleware.SessionTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, model.LoginResponse{AccessToken: token, TokenType: "bearer"})
}

// Logout handles POST /logout by expiring the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
