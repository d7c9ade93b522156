package services

import (
	"database/sql"
	"errors"
	"strings"

	"doctorkays/internal/models"
	"doctorkays/internal/repositories"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrBadReaction      = errors.New("reaction must be like or dislike")
)

type QuestionService interface {
	Create(q *models.Question) error
	GetByID(id int) (*models.Question, error)
	List() ([]*models.Question, error)
	Answer(id int, answer string) (*models.Question, error)
	AddComment(questionID int, user, content string) (*models.Question, error)
	React(id int, reaction string) (*models.Question, error)
}

type questionService struct {
	repo repositories.QuestionRepository
}

func NewQuestionService(repo repositories.QuestionRepository) QuestionService {
	return &questionService{repo: repo}
}

func (s *questionService) Create(q *models.Question) error {
	return s.repo.Create(q)
}

func (s *questionService) GetByID(id int) (*models.Question, error) {
	q, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	return q, nil
}

func (s *questionService) List() ([]*models.Question, error) {
	return s.repo.List()
}

func (s *questionService) Answer(id int, answer string) (*models.Question, error) {
	if err := s.repo.UpdateAnswer(id, answer); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	return s.GetByID(id)
}

func (s *questionService) AddComment(questionID int, user, content string) (*models.Question, error) {
	if _, err := s.GetByID(questionID); err != nil {
		return nil, err
	}
	c := &models.Comment{QuestionID: questionID, User: user, Content: content}
	if err := s.repo.AddComment(c); err != nil {
		return nil, err
	}
	return s.GetByID(questionID)
}

func (s *questionService) React(id int, reaction string) (*models.Question, error) {
	var likeDelta, dislikeDelta int
	switch strings.ToLower(strings.TrimSpace(reaction)) {
	case "like":
		likeDelta = 1
	case "dislike":
		dislikeDelta = 1
	default:
		return nil, ErrBadReaction
	}
	if err := s.repo.AddReaction(id, likeDelta, dislikeDelta); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	return s.GetByID(id)
}
