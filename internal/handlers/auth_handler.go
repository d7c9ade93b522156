package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"doctorkays/internal/models"
	"doctorkays/internal/services"
)

type AuthHandler struct {
	login services.LoginService
}

func NewAuthHandler(login services.LoginService) *AuthHandler {
	return &AuthHandler{login: login}
}

// @Summary      Admin login, step one
// @Description  Checks credentials and emails a one-time verification code
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        login  body      models.AdminLoginRequest  true  "Admin credentials"
// @Success      200    {object}  map[string]interface{}
// @Failure      400    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[auth][login] bad request: bind json failed: err=%v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	email := strings.TrimSpace(req.Email)
	log.Printf("[auth][login] attempt email=%q", email)

	err := h.login.Login(c.Request.Context(), email, req.Password)
	switch {
	case err == nil:
		log.Printf("[auth][login] verification code sent email=%q", email)
		c.JSON(http.StatusOK, gin.H{"verificationSent": true})
	case errors.Is(err, services.ErrInvalidCredentials):
		log.Printf("[auth][login] invalid credentials email=%q", email)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
	case errors.Is(err, services.ErrChallengeDelivery):
		log.Printf("[auth][login] code delivery failed email=%q: err=%v", email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send verification code"})
	default:
		log.Printf("[auth][login] failed email=%q: err=%v", email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
	}
}

// @Summary      Admin login, step two
// @Description  Verifies the emailed code and returns a session token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        verify  body      models.VerifyLoginRequest  true  "Email and verification code"
// @Success      200     {object}  map[string]string
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /admin/verify-login [post]
func (h *AuthHandler) VerifyLogin(c *gin.Context) {
	var req models.VerifyLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[auth][verify] bad request: bind json failed: err=%v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	email := strings.TrimSpace(req.Email)

	sourceAddr := c.GetHeader("X-Forwarded-For")
	if sourceAddr == "" {
		sourceAddr = c.Request.RemoteAddr
	}

	token, err := h.login.VerifyLogin(c.Request.Context(), email, req.Token, sourceAddr)
	switch {
	case err == nil:
		log.Printf("[auth][verify] success email=%q", email)
		c.JSON(http.StatusOK, gin.H{"token": token})
	case errors.Is(err, services.ErrChallengeNotFound):
		log.Printf("[auth][verify] invalid or expired code email=%q", email)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired verification token"})
	case errors.Is(err, services.ErrAdminNotFound):
		log.Printf("[auth][verify] admin gone email=%q", email)
		c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
	default:
		log.Printf("[auth][verify] failed email=%q: err=%v", email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification failed"})
	}
}
