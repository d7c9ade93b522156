package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"doctorkays/internal/models"
	"doctorkays/internal/services"
)

type DoctorHandler struct {
	doctors services.DoctorService
}

func NewDoctorHandler(doctors services.DoctorService) *DoctorHandler {
	return &DoctorHandler{doctors: doctors}
}

// @Summary      List doctors
// @Tags         Doctors
// @Produce      json
// @Success      200  {array}  models.Doctor
// @Router       /doctors [get]
func (h *DoctorHandler) List(c *gin.Context) {
	list, err := h.doctors.List()
	if err != nil {
		log.Printf("[doctors][list] failed: err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load doctors"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      Get a doctor
// @Tags         Doctors
// @Produce      json
// @Param        id   path      int  true  "Doctor ID"
// @Success      200  {object}  models.Doctor
// @Failure      404  {object}  map[string]string
// @Router       /doctors/{id} [get]
func (h *DoctorHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor id"})
		return
	}
	d, err := h.doctors.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrDoctorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
			return
		}
		log.Printf("[doctors][get] failed id=%d: err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load doctor"})
		return
	}
	c.JSON(http.StatusOK, d)
}

// @Summary      Add a doctor
// @Tags         Doctors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        doctor  body      models.Doctor  true  "Doctor"
// @Success      201     {object}  models.Doctor
// @Failure      400     {object}  map[string]string
// @Router       /doctors [post]
func (h *DoctorHandler) Create(c *gin.Context) {
	var d models.Doctor
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.doctors.Create(&d); err != nil {
		log.Printf("[doctors][create] failed name=%q: err=%v", d.Name, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, d)
}

// @Summary      Review a doctor
// @Tags         Doctors
// @Accept       json
// @Produce      json
// @Param        id      path      int            true  "Doctor ID"
// @Param        review  body      models.Review  true  "Review"
// @Success      200     {object}  models.Doctor
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /doctors/{id}/reviews [post]
func (h *DoctorHandler) AddReview(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor id"})
		return
	}
	var rev models.Review
	if err := c.ShouldBindJSON(&rev); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d, err := h.doctors.AddReview(id, &rev)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, d)
	case errors.Is(err, services.ErrBadRating):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
	case errors.Is(err, services.ErrDoctorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
	default:
		log.Printf("[doctors][review] failed id=%d: err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
	}
}
