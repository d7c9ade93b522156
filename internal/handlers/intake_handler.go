package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"doctorkays/internal/models"
	"doctorkays/internal/services"
)

// IntakeHandler serves the public site forms. Submissions are
// unauthenticated; listing is admin-only.
type IntakeHandler struct {
	intake services.IntakeService
}

func NewIntakeHandler(intake services.IntakeService) *IntakeHandler {
	return &IntakeHandler{intake: intake}
}

// @Summary      Submit a contact form
// @Tags         Forms
// @Accept       json
// @Produce      json
// @Param        contact  body      models.Contact  true  "Contact form"
// @Success      201      {object}  models.Contact
// @Failure      400      {object}  map[string]string
// @Router       /contact [post]
func (h *IntakeHandler) AddContact(c *gin.Context) {
	var form models.Contact
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if form.FirstName == "" || form.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "First name and email are required"})
		return
	}
	if err := h.intake.AddContact(&form); err != nil {
		log.Printf("[forms][contact] failed email=%q: err=%v", form.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit contact form"})
		return
	}
	c.JSON(http.StatusCreated, form)
}

func (h *IntakeHandler) ListContacts(c *gin.Context) {
	list, err := h.intake.ListContacts()
	if err != nil {
		log.Printf("[forms][contact] list failed: err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load contacts"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      Submit a volunteer application
// @Tags         Forms
// @Accept       json
// @Produce      json
// @Param        volunteer  body      models.Volunteer  true  "Volunteer form"
// @Success      201        {object}  models.Volunteer
// @Failure      400        {object}  map[string]string
// @Router       /volunteer [post]
func (h *IntakeHandler) AddVolunteer(c *gin.Context) {
	var form models.Volunteer
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if form.FirstName == "" || form.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "First name and email are required"})
		return
	}
	if err := h.intake.AddVolunteer(&form); err != nil {
		log.Printf("[forms][volunteer] failed email=%q: err=%v", form.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit volunteer form"})
		return
	}
	c.JSON(http.StatusCreated, form)
}

func (h *IntakeHandler) ListVolunteers(c *gin.Context) {
	list, err := h.intake.ListVolunteers()
	if err != nil {
		log.Printf("[forms][volunteer] list failed: err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load volunteers"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      Submit a sponsorship pledge
// @Tags         Forms
// @Accept       json
// @Produce      json
// @Param        sponsor  body      models.Sponsor  true  "Sponsorship form"
// @Success      201      {object}  models.Sponsor
// @Failure      400      {object}  map[string]string
// @Router       /sponsorship [post]
func (h *IntakeHandler) AddSponsor(c *gin.Context) {
	var form models.Sponsor
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if form.Name == "" || form.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and email are required"})
		return
	}
	if err := h.intake.AddSponsor(&form); err != nil {
		log.Printf("[forms][sponsor] failed email=%q: err=%v", form.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit sponsorship form"})
		return
	}
	c.JSON(http.StatusCreated, form)
}

func (h *IntakeHandler) ListSponsors(c *gin.Context) {
	list, err := h.intake.ListSponsors()
	if err != nil {
		log.Printf("[forms][sponsor] list failed: err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load sponsors"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      Submit an enquiry
// @Tags         Forms
// @Accept       json
// @Produce      json
// @Param        enquiry  body      models.Enquiry  true  "Enquiry"
// @Success      201      {object}  models.Enquiry
// @Failure      400      {object}  map[string]string
// @Router       /enquiry [post]
func (h *IntakeHandler) AddEnquiry(c *gin.Context) {
	var form models.Enquiry
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if form.FullName == "" || form.Enquiry == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Full name and enquiry are required"})
		return
	}
	if err := h.intake.AddEnquiry(&form); err != nil {
		log.Printf("[forms][enquiry] failed name=%q: err=%v", form.FullName, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit enquiry"})
		return
	}
	c.JSON(http.StatusCreated, form)
}

func (h *IntakeHandler) ListEnquiries(c *gin.Context) {
	list, err := h.intake.ListEnquiries()
	if err != nil {
		log.Printf("[forms][enquiry] list failed: err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load enquiries"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      Submit feedback
// @Tags         Forms
// @Accept       json
// @Produce      json
// @Param        feedback  body      models.Feedback  true  "Feedback"
// @Success      201       {object}  models.Feedback
// @Failure      400       {object}  map[string]string
// @Router       /feedback [post]
func (h *IntakeHandler) AddFeedback(c *gin.Context) {
	var form models.Feedback
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if form.Name == "" || form.Comments == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and comments are required"})
		return
	}
	if err := h.intake.AddFeedback(&form); err != nil {
		log.Printf("[forms][feedback] failed name=%q: err=%v", form.Name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit feedback"})
		return
	}
	c.JSON(http.StatusCreated, form)
}

func (h *IntakeHandler) ListFeedback(c *gin.Context) {
	list, err := h.intake.ListFeedback()
	if err != nil {
		log.Printf("[forms][feedback] list failed: err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load feedback"})
		return
	}
	c.JSON(http.StatusOK, list)
}
