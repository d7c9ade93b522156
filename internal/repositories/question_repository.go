package repositories

import (
	"database/sql"

	"doctorkays/internal/models"
)

type QuestionRepository interface {
	Create(q *models.Question) error
	GetByID(id int) (*models.Question, error)
	List() ([]*models.Question, error)
	UpdateAnswer(id int, answer string) error
	AddComment(c *models.Comment) error
	AddReaction(id int, likeDelta, dislikeDelta int) error
	Count() (int, error)
}

type questionRepository struct {
	DB *sql.DB
}

func NewQuestionRepository(db *sql.DB) QuestionRepository {
	return &questionRepository{DB: db}
}

func (r *questionRepository) Create(q *models.Question) error {
	const query = `
		INSERT INTO questions (author, title, question)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	return r.DB.QueryRow(query, q.User, q.Title, q.Question).Scan(&q.ID, &q.CreatedAt)
}

func (r *questionRepository) GetByID(id int) (*models.Question, error) {
	const query = `
		SELECT id, author, title, question, COALESCE(answer,''),
		       has_doctor_replied, likes, dislikes, created_at
		FROM questions
		WHERE id = $1
	`
	q := &models.Question{}
	err := r.DB.QueryRow(query, id).Scan(
		&q.ID, &q.User, &q.Title, &q.Question, &q.Answer,
		&q.HasDoctorReplied, &q.Likes, &q.Dislikes, &q.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	comments, err := r.commentsFor(id)
	if err != nil {
		return nil, err
	}
	q.Comments = comments
	return q, nil
}

func (r *questionRepository) commentsFor(questionID int) ([]models.Comment, error) {
	const query = `
		SELECT id, question_id, author, content, created_at
		FROM question_comments
		WHERE question_id = $1
		ORDER BY created_at
	`
	rows, err := r.DB.Query(query, questionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.QuestionID, &c.User, &c.Content, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *questionRepository) List() ([]*models.Question, error) {
	const query = `
		SELECT id, author, title, question, COALESCE(answer,''),
		       has_doctor_replied, likes, dislikes, created_at
		FROM questions
		ORDER BY created_at DESC
	`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*models.Question
	for rows.Next() {
		q := &models.Question{}
		if err := rows.Scan(
			&q.ID, &q.User, &q.Title, &q.Question, &q.Answer,
			&q.HasDoctorReplied, &q.Likes, &q.Dislikes, &q.CreatedAt,
		); err != nil {
			return nil, err
		}
		res = append(res, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	// the forum list shows comment threads inline
	for _, q := range res {
		comments, err := r.commentsFor(q.ID)
		if err != nil {
			return nil, err
		}
		q.Comments = comments
	}
	return res, nil
}

func (r *questionRepository) UpdateAnswer(id int, answer string) error {
	const query = `
		UPDATE questions SET answer=$1, has_doctor_replied=TRUE WHERE id=$2
	`
	res, err := r.DB.Exec(query, answer, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *questionRepository) AddComment(c *models.Comment) error {
	const query = `
		INSERT INTO question_comments (question_id, author, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	return r.DB.QueryRow(query, c.QuestionID, c.User, c.Content).Scan(&c.ID, &c.CreatedAt)
}

func (r *questionRepository) AddReaction(id int, likeDelta, dislikeDelta int) error {
	const query = `
		UPDATE questions SET likes = likes + $1, dislikes = dislikes + $2 WHERE id=$3
	`
	res, err := r.DB.Exec(query, likeDelta, dislikeDelta, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *questionRepository) Count() (int, error) {
	var n int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM questions`).Scan(&n)
	return n, err
}
