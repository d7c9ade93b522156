package repositories

import (
	"database/sql"

	"doctorkays/internal/models"
)

type RoomRepository interface {
	Create(room *models.Room) error
	GetByRoomName(roomName string) (*models.Room, error)
	UpdateStatus(id int, status string) error
}

type roomRepository struct {
	DB *sql.DB
}

func NewRoomRepository(db *sql.DB) RoomRepository {
	return &roomRepository{DB: db}
}

func (r *roomRepository) Create(room *models.Room) error {
	const q = `
		INSERT INTO rooms
			(created_by, consultation_date, start_time, end_time, room_name, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	return r.DB.QueryRow(q,
		room.CreatedBy, room.ConsultationDate, room.StartTime, room.EndTime,
		room.RoomName, room.Status,
	).Scan(&room.ID, &room.CreatedAt)
}

func (r *roomRepository) GetByRoomName(roomName string) (*models.Room, error) {
	const q = `
		SELECT id, created_by, COALESCE(joined_by,''),
		       consultation_date, start_time, end_time, room_name, status, created_at
		FROM rooms
		WHERE room_name = $1
	`
	room := &models.Room{}
	err := r.DB.QueryRow(q, roomName).Scan(
		&room.ID, &room.CreatedBy, &room.JoinedBy,
		&room.ConsultationDate, &room.StartTime, &room.EndTime,
		&room.RoomName, &room.Status, &room.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return room, nil
}

func (r *roomRepository) UpdateStatus(id int, status string) error {
	_, err := r.DB.Exec(`UPDATE rooms SET status=$1 WHERE id=$2`, status, id)
	return err
}
