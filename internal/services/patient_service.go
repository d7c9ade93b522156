package services

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"doctorkays/internal/middleware"
	"doctorkays/internal/models"
	"doctorkays/internal/repositories"
)

var (
	ErrEmailInUse        = errors.New("email already in use")
	ErrPasswordMismatch  = errors.New("passwords do not match")
	ErrPatientNotFound   = errors.New("no user with that email")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrMissingFields     = errors.New("all fields are required")
)

const patientSessionLifetime = 7 * 24 * time.Hour

type PatientService interface {
	Signup(req models.SignupRequest) (*models.Patient, string, error)
	Signin(req models.SigninRequest) (*models.Patient, string, error)
}

type patientService struct {
	patients  repositories.PatientRepository
	auth      AuthService
	jwtSecret []byte
}

func NewPatientService(patients repositories.PatientRepository, auth AuthService, jwtSecret []byte) PatientService {
	return &patientService{patients: patients, auth: auth, jwtSecret: jwtSecret}
}

func (s *patientService) mintToken(p *models.Patient) (string, error) {
	claims := &middleware.PatientClaims{
		PatientID: p.ID,
		Email:     p.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(patientSessionLifetime)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

func (s *patientService) Signup(req models.SignupRequest) (*models.Patient, string, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if name == "" || email == "" || req.Password == "" || req.ConfirmPassword == "" {
		return nil, "", ErrMissingFields
	}
	if req.Password != req.ConfirmPassword {
		return nil, "", ErrPasswordMismatch
	}
	if existing, err := s.patients.GetByEmail(email); err == nil && existing != nil {
		return nil, "", ErrEmailInUse
	}

	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}
	p := &models.Patient{Name: name, Email: email, PasswordHash: hash}
	if err := s.patients.Create(p); err != nil {
		return nil, "", err
	}

	token, err := s.mintToken(p)
	if err != nil {
		return nil, "", err
	}
	return p, token, nil
}

func (s *patientService) Signin(req models.SigninRequest) (*models.Patient, string, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		return nil, "", ErrMissingFields
	}

	p, err := s.patients.GetByEmail(email)
	if err != nil || p == nil {
		return nil, "", ErrPatientNotFound
	}
	if !s.auth.CheckPassword(p.PasswordHash, req.Password) {
		return nil, "", ErrIncorrectPassword
	}

	token, err := s.mintToken(p)
	if err != nil {
		return nil, "", err
	}
	return p, token, nil
}
