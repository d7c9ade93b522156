package repositories

import (
	"database/sql"

	"doctorkays/internal/models"
)

type EnquiryRepository interface {
	Create(e *models.Enquiry) error
	List() ([]*models.Enquiry, error)
}

type enquiryRepository struct {
	DB *sql.DB
}

func NewEnquiryRepository(db *sql.DB) EnquiryRepository {
	return &enquiryRepository{DB: db}
}

func (r *enquiryRepository) Create(e *models.Enquiry) error {
	const q = `
		INSERT INTO enquiries (fullname, enquiry)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	return r.DB.QueryRow(q, e.FullName, e.Enquiry).Scan(&e.ID, &e.CreatedAt)
}

func (r *enquiryRepository) List() ([]*models.Enquiry, error) {
	const q = `
		SELECT id, fullname, enquiry, created_at
		FROM enquiries
		ORDER BY created_at DESC
	`
	rows, err := r.DB.Query(q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*models.Enquiry
	for rows.Next() {
		e := &models.Enquiry{}
		if err := rows.Scan(&e.ID, &e.FullName, &e.Enquiry, &e.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, rows.Err()
}
