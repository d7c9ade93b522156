package repositories

import (
	"database/sql"

	"doctorkays/internal/models"
)

type SponsorRepository interface {
	Create(s *models.Sponsor) error
	List() ([]*models.Sponsor, error)
}

type sponsorRepository struct {
	DB *sql.DB
}

func NewSponsorRepository(db *sql.DB) SponsorRepository {
	return &sponsorRepository{DB: db}
}

func (r *sponsorRepository) Create(s *models.Sponsor) error {
	const q = `
		INSERT INTO sponsors (name, email, phone, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	return r.DB.QueryRow(q, s.Name, s.Email, s.Phone, s.Price).Scan(&s.ID, &s.CreatedAt)
}

func (r *sponsorRepository) List() ([]*models.Sponsor, error) {
	const q = `
		SELECT id, name, email, phone, price, created_at
		FROM sponsors
		ORDER BY created_at DESC
	`
	rows, err := r.DB.Query(q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*models.Sponsor
	for rows.Next() {
		s := &models.Sponsor{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Price, &s.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, rows.Err()
}
