package models

import "time"

const (
	RoomStatusScheduled = "scheduled"
	RoomStatusOngoing   = "ongoing"
	RoomStatusCompleted = "completed"
	RoomStatusExpired   = "expired"
)

// Room is a scheduled video-consultation slot. StartTime/EndTime bound the
// window during which joining the room is allowed.
type Room struct {
	ID               int       `json:"id"`
	CreatedBy        string    `json:"createdBy"`
	JoinedBy         string    `json:"joinedBy,omitempty"`
	ConsultationDate time.Time `json:"consultationDate"`
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	RoomName         string    `json:"roomName"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

type CreateRoomRequest struct {
	Name             string `json:"name"`
	RoomName         string `json:"roomName"`
	ConsultationDate string `json:"consultationDate"` // YYYY-MM-DD
	StartTime        string `json:"startTime"`        // HH:mm
	EndTime          string `json:"endTime"`          // HH:mm
}
