package repositories

import (
	"database/sql"

	"doctorkays/internal/models"
)

type PatientRepository interface {
	Create(p *models.Patient) error
	GetByID(id int) (*models.Patient, error)
	GetByEmail(email string) (*models.Patient, error)
}

type patientRepository struct {
	DB *sql.DB
}

func NewPatientRepository(db *sql.DB) PatientRepository {
	return &patientRepository{DB: db}
}

func (r *patientRepository) Create(p *models.Patient) error {
	const q = `
		INSERT INTO patients (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	return r.DB.QueryRow(q, p.Name, p.Email, p.PasswordHash).Scan(&p.ID, &p.CreatedAt)
}

func (r *patientRepository) GetByID(id int) (*models.Patient, error) {
	const q = `
		SELECT id, name, email, password_hash, created_at
		FROM patients
		WHERE id = $1
	`
	p := &models.Patient{}
	if err := r.DB.QueryRow(q, id).Scan(&p.ID, &p.Name, &p.Email, &p.PasswordHash, &p.CreatedAt); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *patientRepository) GetByEmail(email string) (*models.Patient, error) {
	const q = `
		SELECT id, name, email, password_hash, created_at
		FROM patients
		WHERE email = $1
	`
	p := &models.Patient{}
	if err := r.DB.QueryRow(q, email).Scan(&p.ID, &p.Name, &p.Email, &p.PasswordHash, &p.CreatedAt); err != nil {
		return nil, err
	}
	return p, nil
}
