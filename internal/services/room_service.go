package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"doctorkays/internal/models"
	"doctorkays/internal/repositories"
)

var (
	ErrRoomNotFound   = errors.New("consultation not found")
	ErrRoomExists     = errors.New("a consultation with this room name already exists")
	ErrRoomNotStarted = errors.New("consultation has not started yet")
	ErrRoomExpired    = errors.New("consultation time has expired")
)

type RoomService interface {
	Create(req models.CreateRoomRequest) (*models.Room, error)
	Validate(roomName string) (*models.Room, error)
	GetByRoomName(roomName string) (*models.Room, error)
}

type roomService struct {
	repo repositories.RoomRepository
	now  func() time.Time
}

func NewRoomService(repo repositories.RoomRepository) RoomService {
	return &roomService{repo: repo, now: time.Now}
}

func parseSlot(date, clock string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date or time format")
	}
	return t, nil
}

// Create validates the requested slot and stores the room. A missing room
// name gets a generated one so the link is unguessable.
func (s *roomService) Create(req models.CreateRoomRequest) (*models.Room, error) {
	if req.Name == "" || req.ConsultationDate == "" || req.StartTime == "" || req.EndTime == "" {
		return nil, fmt.Errorf("all fields are required")
	}

	start, err := parseSlot(req.ConsultationDate, req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := parseSlot(req.ConsultationDate, req.EndTime)
	if err != nil {
		return nil, err
	}
	if !start.Before(end) {
		return nil, fmt.Errorf("start time must be before end time")
	}
	if start.Before(s.now()) {
		return nil, fmt.Errorf("consultation start time cannot be in the past")
	}

	roomName := strings.TrimSpace(req.RoomName)
	if roomName == "" {
		roomName = uuid.NewString()
	}
	if existing, err := s.repo.GetByRoomName(roomName); err == nil && existing != nil {
		return nil, ErrRoomExists
	}

	day, err := time.ParseInLocation("2006-01-02", req.ConsultationDate, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date or time format")
	}

	room := &models.Room{
		CreatedBy:        req.Name,
		ConsultationDate: day,
		StartTime:        start,
		EndTime:          end,
		RoomName:         roomName,
		Status:           models.RoomStatusScheduled,
	}
	if err := s.repo.Create(room); err != nil {
		return nil, err
	}
	return room, nil
}

// Validate enforces the join window: before start and after end both reject.
func (s *roomService) Validate(roomName string) (*models.Room, error) {
	room, err := s.GetByRoomName(roomName)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if now.Before(room.StartTime) {
		return nil, ErrRoomNotStarted
	}
	if now.After(room.EndTime) {
		return nil, ErrRoomExpired
	}
	return room, nil
}

func (s *roomService) GetByRoomName(roomName string) (*models.Room, error) {
	room, err := s.repo.GetByRoomName(roomName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}
