package services

import (
	"database/sql"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doctorkays/internal/middleware"
	"doctorkays/internal/models"
)

type fakePatientRepo struct {
	byEmail map[string]*models.Patient
	nextID  int
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{byEmail: map[string]*models.Patient{}, nextID: 1}
}

func (f *fakePatientRepo) Create(p *models.Patient) error {
	p.ID = f.nextID
	f.nextID++
	p.CreatedAt = time.Now()
	f.byEmail[p.Email] = p
	return nil
}

func (f *fakePatientRepo) GetByID(id int) (*models.Patient, error) {
	for _, p := range f.byEmail {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakePatientRepo) GetByEmail(email string) (*models.Patient, error) {
	p, ok := f.byEmail[email]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return p, nil
}

func newPatientFixture() PatientService {
	return NewPatientService(newFakePatientRepo(), NewAuthService(), []byte(testJWTSecret))
}

func TestPatientSignup(t *testing.T) {
	svc := newPatientFixture()

	p, token, err := svc.Signup(models.SignupRequest{
		Name:            "Pat Doe",
		Email:           "Pat@Example.Test",
		Password:        "hunter22",
		ConfirmPassword: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, "pat@example.test", p.Email)
	assert.NotEqual(t, "hunter22", p.PasswordHash)

	claims := &middleware.PatientClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, p.ID, claims.PatientID)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestPatientSignupValidation(t *testing.T) {
	svc := newPatientFixture()

	_, _, err := svc.Signup(models.SignupRequest{Email: "pat@example.test", Password: "x", ConfirmPassword: "x"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, _, err = svc.Signup(models.SignupRequest{Name: "Pat", Email: "pat@example.test", Password: "a", ConfirmPassword: "b"})
	assert.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestPatientSignupDuplicateEmail(t *testing.T) {
	svc := newPatientFixture()

	req := models.SignupRequest{Name: "Pat", Email: "pat@example.test", Password: "hunter22", ConfirmPassword: "hunter22"}
	_, _, err := svc.Signup(req)
	require.NoError(t, err)

	_, _, err = svc.Signup(req)
	assert.ErrorIs(t, err, ErrEmailInUse)
}

func TestPatientSignin(t *testing.T) {
	svc := newPatientFixture()

	_, _, err := svc.Signup(models.SignupRequest{Name: "Pat", Email: "pat@example.test", Password: "hunter22", ConfirmPassword: "hunter22"})
	require.NoError(t, err)

	p, token, err := svc.Signin(models.SigninRequest{Email: "pat@example.test", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, "pat@example.test", p.Email)
	assert.NotEmpty(t, token)

	_, _, err = svc.Signin(models.SigninRequest{Email: "pat@example.test", Password: "wrong"})
	assert.ErrorIs(t, err, ErrIncorrectPassword)

	_, _, err = svc.Signin(models.SigninRequest{Email: "ghost@example.test", Password: "hunter22"})
	assert.ErrorIs(t, err, ErrPatientNotFound)
}
