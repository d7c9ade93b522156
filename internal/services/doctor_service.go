package services

import (
	"database/sql"
	"errors"
	"fmt"

	"doctorkays/internal/models"
	"doctorkays/internal/repositories"
)

var (
	ErrDoctorNotFound = errors.New("doctor not found")
	ErrBadRating      = errors.New("rating must be between 1 and 5")
)

type DoctorService interface {
	Create(d *models.Doctor) error
	GetByID(id int) (*models.Doctor, error)
	List() ([]*models.Doctor, error)
	AddReview(doctorID int, rev *models.Review) (*models.Doctor, error)
}

type doctorService struct {
	repo repositories.DoctorRepository
}

func NewDoctorService(repo repositories.DoctorRepository) DoctorService {
	return &doctorService{repo: repo}
}

func (s *doctorService) Create(d *models.Doctor) error {
	if d.Name == "" || d.Specialty == "" {
		return fmt.Errorf("name and specialty are required")
	}
	return s.repo.Create(d)
}

func (s *doctorService) GetByID(id int) (*models.Doctor, error) {
	d, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *doctorService) List() ([]*models.Doctor, error) {
	return s.repo.List()
}

// AddReview stores the review and returns the doctor with the refreshed
// review list, so the caller gets the updated document in one round trip.
func (s *doctorService) AddReview(doctorID int, rev *models.Review) (*models.Doctor, error) {
	if rev.Rating < 1 || rev.Rating > 5 {
		return nil, ErrBadRating
	}
	if rev.User == "" {
		return nil, fmt.Errorf("user is required")
	}
	if _, err := s.GetByID(doctorID); err != nil {
		return nil, err
	}
	rev.DoctorID = doctorID
	if err := s.repo.AddReview(rev); err != nil {
		return nil, err
	}
	return s.GetByID(doctorID)
}
