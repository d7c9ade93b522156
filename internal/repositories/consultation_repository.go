package repositories

import (
	"database/sql"

	"doctorkays/internal/models"
)

type ConsultationRepository interface {
	Create(c *models.Consultation) error
	GetByID(id int) (*models.Consultation, error)
	List() ([]*models.Consultation, error)
	Delete(id int) (*models.Consultation, error)
	Count() (int, error)
}

type consultationRepository struct {
	DB *sql.DB
}

func NewConsultationRepository(db *sql.DB) ConsultationRepository {
	return &consultationRepository{DB: db}
}

func (r *consultationRepository) Create(c *models.Consultation) error {
	const q = `
		INSERT INTO consultations
			(name, email, consultation_type, story,
			 report_file_url, report_file_name, report_file_extension)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	return r.DB.QueryRow(q,
		c.Name, c.Email, c.ConsultationType, c.Story,
		nullIfEmpty(c.ReportFileURL), nullIfEmpty(c.ReportFileName), nullIfEmpty(c.ReportFileExtension),
	).Scan(&c.ID, &c.CreatedAt)
}

func (r *consultationRepository) GetByID(id int) (*models.Consultation, error) {
	const q = `
		SELECT id, name, email, consultation_type, story,
		       COALESCE(report_file_url,''), COALESCE(report_file_name,''),
		       COALESCE(report_file_extension,''), created_at
		FROM consultations
		WHERE id = $1
	`
	c := &models.Consultation{}
	err := r.DB.QueryRow(q, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.ConsultationType, &c.Story,
		&c.ReportFileURL, &c.ReportFileName, &c.ReportFileExtension, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *consultationRepository) List() ([]*models.Consultation, error) {
	const q = `
		SELECT id, name, email, consultation_type, story,
		       COALESCE(report_file_url,''), COALESCE(report_file_name,''),
		       COALESCE(report_file_extension,''), created_at
		FROM consultations
		ORDER BY created_at DESC
	`
	rows, err := r.DB.Query(q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*models.Consultation
	for rows.Next() {
		c := &models.Consultation{}
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Email, &c.ConsultationType, &c.Story,
			&c.ReportFileURL, &c.ReportFileName, &c.ReportFileExtension, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

func (r *consultationRepository) Delete(id int) (*models.Consultation, error) {
	c, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if _, err := r.DB.Exec(`DELETE FROM consultations WHERE id=$1`, id); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *consultationRepository) Count() (int, error) {
	var n int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM consultations`).Scan(&n)
	return n, err
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
