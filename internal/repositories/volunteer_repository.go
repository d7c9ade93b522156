package repositories

import (
	"database/sql"

	"doctorkays/internal/models"
)

type VolunteerRepository interface {
	Create(v *models.Volunteer) error
	List() ([]*models.Volunteer, error)
}

type volunteerRepository struct {
	DB *sql.DB
}

func NewVolunteerRepository(db *sql.DB) VolunteerRepository {
	return &volunteerRepository{DB: db}
}

func (r *volunteerRepository) Create(v *models.Volunteer) error {
	const q = `
		INSERT INTO volunteers (first_name, last_name, email, phone, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	return r.DB.QueryRow(q, v.FirstName, v.LastName, v.Email, v.Phone, v.Message).
		Scan(&v.ID, &v.CreatedAt)
}

func (r *volunteerRepository) List() ([]*models.Volunteer, error) {
	const q = `
		SELECT id, first_name, last_name, email, phone, message, created_at
		FROM volunteers
		ORDER BY created_at DESC
	`
	rows, err := r.DB.Query(q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*models.Volunteer
	for rows.Next() {
		v := &models.Volunteer{}
		if err := rows.Scan(&v.ID, &v.FirstName, &v.LastName, &v.Email, &v.Phone, &v.Message, &v.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, rows.Err()
}
