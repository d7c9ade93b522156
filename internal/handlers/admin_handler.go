package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"doctorkays/internal/services"
)

type AdminHandler struct {
	admins services.AdminService
}

func NewAdminHandler(admins services.AdminService) *AdminHandler {
	return &AdminHandler{admins: admins}
}

type registerAdminRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Contact   string `json:"contact"`
	Address1  string `json:"address1"`
	Password  string `json:"password" binding:"required,min=8"`
}

// @Summary      Register a new admin
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        admin  body      registerAdminRequest  true  "New admin"
// @Success      201    {object}  models.Admin
// @Failure      400    {object}  map[string]string
// @Failure      409    {object}  map[string]string
// @Router       /admin/register [post]
func (h *AdminHandler) Register(c *gin.Context) {
	var req registerAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin, err := h.admins.Register(req.FirstName, req.LastName, req.Email, req.Contact, req.Address1, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "An admin with this email already exists"})
			return
		}
		log.Printf("[admin][register] failed email=%q: err=%v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register admin"})
		return
	}
	c.JSON(http.StatusCreated, admin)
}

// @Summary      Current admin profile
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.Admin
// @Failure      401  {object}  map[string]string
// @Router       /admin/me [get]
func (h *AdminHandler) Me(c *gin.Context) {
	id, ok := getIntFromCtx(c, "admin_id")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	admin, err := h.admins.GetProfile(id)
	if err != nil {
		log.Printf("[admin][me] load failed id=%d: err=%v", id, err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
		return
	}
	c.JSON(http.StatusOK, admin)
}

type updateAdminRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Contact   string `json:"contact"`
	Address1  string `json:"address1"`
	Password  string `json:"password"`
}

// @Summary      Update current admin profile
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        admin  body      updateAdminRequest  true  "Fields to change"
// @Success      200    {object}  models.Admin
// @Failure      400    {object}  map[string]string
// @Router       /admin/me [put]
func (h *AdminHandler) UpdateMe(c *gin.Context) {
	id, ok := getIntFromCtx(c, "admin_id")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	var req updateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	admin, err := h.admins.UpdateProfile(id, services.AdminUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Contact:   req.Contact,
		Address1:  req.Address1,
		Password:  req.Password,
	})
	if err != nil {
		log.Printf("[admin][update] failed id=%d: err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, admin)
}

// @Summary      Dashboard counters
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.AdminStats
// @Router       /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.admins.Stats()
	if err != nil {
		log.Printf("[admin][stats] failed: err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
