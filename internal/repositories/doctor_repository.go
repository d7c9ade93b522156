package repositories

import (
	"database/sql"
	"encoding/json"

	"doctorkays/internal/models"
)

type DoctorRepository interface {
	Create(d *models.Doctor) error
	GetByID(id int) (*models.Doctor, error)
	List() ([]*models.Doctor, error)
	AddReview(rev *models.Review) error
}

type doctorRepository struct {
	DB *sql.DB
}

func NewDoctorRepository(db *sql.DB) DoctorRepository {
	return &doctorRepository{DB: db}
}

func (r *doctorRepository) Create(d *models.Doctor) error {
	const q = `
		INSERT INTO doctors (name, specialty, image, category, location, about, available, available_dates)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	dates, err := json.Marshal(d.AvailableDates)
	if err != nil {
		return err
	}
	return r.DB.QueryRow(q,
		d.Name, d.Specialty, d.Image, d.Category, d.Location, d.About,
		d.Available, dates,
	).Scan(&d.ID, &d.CreatedAt)
}

func (r *doctorRepository) scanDoctor(scan func(dest ...interface{}) error) (*models.Doctor, error) {
	d := &models.Doctor{}
	var dates []byte
	err := scan(
		&d.ID, &d.Name, &d.Specialty, &d.Image, &d.Category,
		&d.Location, &d.About, &d.Available, &dates, &d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(dates) > 0 {
		if err := json.Unmarshal(dates, &d.AvailableDates); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (r *doctorRepository) GetByID(id int) (*models.Doctor, error) {
	const q = `
		SELECT id, name, specialty, COALESCE(image,''), COALESCE(category,''),
		       COALESCE(location,''), COALESCE(about,''), available,
		       COALESCE(available_dates,'[]'), created_at
		FROM doctors
		WHERE id = $1
	`
	d, err := r.scanDoctor(r.DB.QueryRow(q, id).Scan)
	if err != nil {
		return nil, err
	}
	reviews, err := r.reviewsFor(id)
	if err != nil {
		return nil, err
	}
	d.Reviews = reviews
	return d, nil
}

func (r *doctorRepository) reviewsFor(doctorID int) ([]models.Review, error) {
	const q = `
		SELECT id, doctor_id, author, rating, comment, created_at
		FROM doctor_reviews
		WHERE doctor_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.Query(q, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var rev models.Review
		if err := rows.Scan(&rev.ID, &rev.DoctorID, &rev.User, &rev.Rating, &rev.Comment, &rev.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

func (r *doctorRepository) List() ([]*models.Doctor, error) {
	const q = `
		SELECT id, name, specialty, COALESCE(image,''), COALESCE(category,''),
		       COALESCE(location,''), COALESCE(about,''), available,
		       COALESCE(available_dates,'[]'), created_at
		FROM doctors
		ORDER BY name
	`
	rows, err := r.DB.Query(q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*models.Doctor
	for rows.Next() {
		d, err := r.scanDoctor(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, d := range res {
		reviews, err := r.reviewsFor(d.ID)
		if err != nil {
			return nil, err
		}
		d.Reviews = reviews
	}
	return res, nil
}

func (r *doctorRepository) AddReview(rev *models.Review) error {
	const q = `
		INSERT INTO doctor_reviews (doctor_id, author, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	return r.DB.QueryRow(q, rev.DoctorID, rev.User, rev.Rating, rev.Comment).
		Scan(&rev.ID, &rev.CreatedAt)
}
