package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"doctorkays/internal/models"
	"doctorkays/internal/services"
)

const maxReportUpload = 15 << 20 // 15 MiB

type ConsultationHandler struct {
	consultations services.ConsultationService
}

func NewConsultationHandler(consultations services.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{consultations: consultations}
}

// @Summary      List consultation requests
// @Tags         Consultations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  models.Consultation
// @Router       /consultation [get]
func (h *ConsultationHandler) List(c *gin.Context) {
	list, err := h.consultations.List()
	if err != nil {
		log.Printf("[consultation][list] failed: err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load consultations"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      Get a consultation request
// @Tags         Consultations
// @Produce      json
// @Param        id   path      int  true  "Consultation ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /consultation/{id} [get]
func (h *ConsultationHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid consultation id"})
		return
	}
	consultation, err := h.consultations.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrConsultationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Consultation not found"})
			return
		}
		log.Printf("[consultation][get] failed id=%d: err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching consultation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"consultation": consultation})
}

// @Summary      Create a consultation request
// @Tags         Consultations
// @Accept       json
// @Produce      json
// @Param        consultation  body      models.Consultation  true  "Consultation"
// @Success      201           {object}  models.Consultation
// @Failure      400           {object}  map[string]string
// @Router       /consultation [post]
func (h *ConsultationHandler) Add(c *gin.Context) {
	var consultation models.Consultation
	if err := c.ShouldBindJSON(&consultation); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if consultation.Name == "" || consultation.Email == "" || consultation.ConsultationType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email and consultation type are required"})
		return
	}
	if err := h.consultations.Add(&consultation); err != nil {
		log.Printf("[consultation][add] failed email=%q: err=%v", consultation.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save consultation"})
		return
	}
	c.JSON(http.StatusCreated, consultation)
}

// @Summary      Delete a consultation request
// @Tags         Consultations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Consultation ID"
// @Success      200  {object}  models.Consultation
// @Failure      404  {object}  map[string]string
// @Router       /consultation/{id} [delete]
func (h *ConsultationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid consultation id"})
		return
	}
	deleted, err := h.consultations.Delete(id)
	if err != nil {
		if errors.Is(err, services.ErrConsultationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Consultation not found"})
			return
		}
		log.Printf("[consultation][delete] failed id=%d: err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete consultation"})
		return
	}
	c.JSON(http.StatusOK, deleted)
}

// @Summary      Submit a free consultation
// @Description  Multipart form; the report file is required for blood-test and scan consultation types
// @Tags         Consultations
// @Accept       multipart/form-data
// @Produce      json
// @Param        name              formData  string  true   "Patient name"
// @Param        email             formData  string  true   "Patient email"
// @Param        consultationType  formData  string  true   "Consultation type"
// @Param        story             formData  string  false  "Patient story"
// @Param        reportFile        formData  file    false  "Medical report (PDF or image)"
// @Success      201               {object}  models.Consultation
// @Failure      400               {object}  map[string]string
// @Router       /consultation/free [post]
func (h *ConsultationHandler) AddFree(c *gin.Context) {
	consultation := models.Consultation{
		Name:             c.PostForm("name"),
		Email:            c.PostForm("email"),
		ConsultationType: c.PostForm("consultationType"),
		Story:            c.PostForm("story"),
	}
	if consultation.Name == "" || consultation.Email == "" || consultation.ConsultationType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email and consultation type are required"})
		return
	}

	var upload *services.ReportUpload
	if fh, err := c.FormFile("reportFile"); err == nil {
		if fh.Size > maxReportUpload {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Report file is too large"})
			return
		}
		f, err := fh.Open()
		if err != nil {
			log.Printf("[consultation][free] open upload failed: err=%v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read report file"})
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			log.Printf("[consultation][free] read upload failed: err=%v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read report file"})
			return
		}
		upload = &services.ReportUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		}
	}

	if err := h.consultations.AddFree(c.Request.Context(), &consultation, upload); err != nil {
		log.Printf("[consultation][free] failed email=%q: err=%v", consultation.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit free consultation"})
		return
	}
	c.JSON(http.StatusCreated, consultation)
}

// @Summary      Send a booking confirmation email
// @Tags         Consultations
// @Accept       json
// @Produce      json
// @Param        booking  body      models.BookingConfirmationRequest  true  "Booking details"
// @Success      200      {object}  map[string]string
// @Failure      400      {object}  map[string]string
// @Router       /booking-confirmation [post]
func (h *ConsultationHandler) SendBookingConfirmation(c *gin.Context) {
	var req models.BookingConfirmationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Email == "" || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and email are required"})
		return
	}
	if err := h.consultations.SendBookingConfirmation(req); err != nil {
		log.Printf("[consultation][booking] failed email=%q: err=%v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send booking confirmation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking confirmation sent"})
}
