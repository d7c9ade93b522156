package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"doctorkays/internal/models"
	"doctorkays/internal/services"
)

type RoomHandler struct {
	rooms services.RoomService
}

func NewRoomHandler(rooms services.RoomService) *RoomHandler {
	return &RoomHandler{rooms: rooms}
}

// @Summary      Schedule a consultation room
// @Tags         Rooms
// @Accept       json
// @Produce      json
// @Param        room  body      models.CreateRoomRequest  true  "Room slot"
// @Success      201   {object}  models.Room
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	var req models.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	room, err := h.rooms.Create(req)
	if err != nil {
		if errors.Is(err, services.ErrRoomExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[rooms][create] failed name=%q: err=%v", req.RoomName, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, room)
}

// @Summary      Validate a room join
// @Description  Rejects joins before the scheduled start and after the end
// @Tags         Rooms
// @Produce      json
// @Param        roomName  path      string  true  "Room name"
// @Success      200       {object}  models.Room
// @Failure      403       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /rooms/{roomName}/validate [get]
func (h *RoomHandler) Validate(c *gin.Context) {
	roomName := c.Param("roomName")
	room, err := h.rooms.Validate(roomName)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, room)
	case errors.Is(err, services.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Consultation not found"})
	case errors.Is(err, services.ErrRoomNotStarted):
		c.JSON(http.StatusForbidden, gin.H{"error": "Consultation has not started yet"})
	case errors.Is(err, services.ErrRoomExpired):
		c.JSON(http.StatusForbidden, gin.H{"error": "Consultation time has expired"})
	default:
		log.Printf("[rooms][validate] failed name=%q: err=%v", roomName, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate room"})
	}
}

// @Summary      Get a room by name
// @Tags         Rooms
// @Produce      json
// @Param        roomName  path      string  true  "Room name"
// @Success      200       {object}  models.Room
// @Failure      404       {object}  map[string]string
// @Router       /rooms/{roomName} [get]
func (h *RoomHandler) GetByRoomName(c *gin.Context) {
	roomName := c.Param("roomName")
	room, err := h.rooms.GetByRoomName(roomName)
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Consultation not found"})
			return
		}
		log.Printf("[rooms][get] failed name=%q: err=%v", roomName, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load room"})
		return
	}
	c.JSON(http.StatusOK, room)
}
