package repositories

import (
	"database/sql"

	"doctorkays/internal/models"
)

type FeedbackRepository interface {
	Create(f *models.Feedback) error
	List() ([]*models.Feedback, error)
}

type feedbackRepository struct {
	DB *sql.DB
}

func NewFeedbackRepository(db *sql.DB) FeedbackRepository {
	return &feedbackRepository{DB: db}
}

func (r *feedbackRepository) Create(f *models.Feedback) error {
	const q = `
		INSERT INTO feedback (name, comments)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	return r.DB.QueryRow(q, f.Name, f.Comments).Scan(&f.ID, &f.CreatedAt)
}

func (r *feedbackRepository) List() ([]*models.Feedback, error) {
	const q = `
		SELECT id, name, comments, created_at
		FROM feedback
		ORDER BY created_at DESC
	`
	rows, err := r.DB.Query(q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*models.Feedback
	for rows.Next() {
		f := &models.Feedback{}
		if err := rows.Scan(&f.ID, &f.Name, &f.Comments, &f.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, f)
	}
	return res, rows.Err()
}
