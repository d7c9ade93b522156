package repositories

import (
	"database/sql"

	"github.com/lib/pq"

	"doctorkays/internal/models"
)

type ContactRepository interface {
	Create(c *models.Contact) error
	List() ([]*models.Contact, error)
	Count() (int, error)
}

type contactRepository struct {
	DB *sql.DB
}

func NewContactRepository(db *sql.DB) ContactRepository {
	return &contactRepository{DB: db}
}

func (r *contactRepository) Create(c *models.Contact) error {
	const q = `
		INSERT INTO contacts (first_name, last_name, email, phone, message, services)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	return r.DB.QueryRow(q,
		c.FirstName, c.LastName, c.Email, c.Phone, c.Message, pq.Array(c.Services),
	).Scan(&c.ID, &c.CreatedAt)
}

func (r *contactRepository) List() ([]*models.Contact, error) {
	const q = `
		SELECT id, first_name, last_name, email, phone, message, services, created_at
		FROM contacts
		ORDER BY created_at DESC
	`
	rows, err := r.DB.Query(q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*models.Contact
	for rows.Next() {
		c := &models.Contact{}
		if err := rows.Scan(
			&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Message,
			pq.Array(&c.Services), &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

func (r *contactRepository) Count() (int, error) {
	var n int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM contacts`).Scan(&n)
	return n, err
}
