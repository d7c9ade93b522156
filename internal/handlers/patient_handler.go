package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"doctorkays/internal/models"
	"doctorkays/internal/services"
)

type PatientHandler struct {
	patients services.PatientService
}

func NewPatientHandler(patients services.PatientService) *PatientHandler {
	return &PatientHandler{patients: patients}
}

// @Summary      Patient signup
// @Tags         Patients
// @Accept       json
// @Produce      json
// @Param        signup  body      models.SignupRequest  true  "New account"
// @Success      201     {object}  map[string]interface{}
// @Failure      400     {object}  map[string]string
// @Failure      409     {object}  map[string]string
// @Router       /auth/signup [post]
func (h *PatientHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patient, token, err := h.patients.Signup(req)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{"user": patient, "token": token})
	case errors.Is(err, services.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
	case errors.Is(err, services.ErrPasswordMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match"})
	case errors.Is(err, services.ErrEmailInUse):
		c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
	default:
		log.Printf("[patients][signup] failed email=%q: err=%v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Signup failed"})
	}
}

// @Summary      Patient signin
// @Tags         Patients
// @Accept       json
// @Produce      json
// @Param        signin  body      models.SigninRequest  true  "Credentials"
// @Success      200     {object}  map[string]interface{}
// @Failure      401     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /auth/signin [post]
func (h *PatientHandler) Signin(c *gin.Context) {
	var req models.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patient, token, err := h.patients.Signin(req)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"user": patient, "token": token})
	case errors.Is(err, services.ErrPatientNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "No account with this email"})
	case errors.Is(err, services.ErrIncorrectPassword):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect password"})
	default:
		log.Printf("[patients][signin] failed email=%q: err=%v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Signin failed"})
	}
}
