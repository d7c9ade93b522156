package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doctorkays/internal/middleware"
	"doctorkays/internal/models"
	"doctorkays/internal/services"
)

type stubRecordService struct {
	byPatient map[int]*models.MedicalRecord
	asked     int
}

func (s *stubRecordService) GetByPatient(patientID int) (*models.MedicalRecord, error) {
	s.asked = patientID
	rec, ok := s.byPatient[patientID]
	if !ok {
		return nil, services.ErrRecordNotFound
	}
	return rec, nil
}

func (s *stubRecordService) List() ([]*models.MedicalRecord, error) { return nil, nil }
func (s *stubRecordService) Update(patientID int, upd *models.MedicalRecordUpdate) (*models.MedicalRecord, error) {
	return nil, nil
}
func (s *stubRecordService) Delete(patientID int) error { return nil }

func newRecordRouter(stub *stubRecordService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewRecordHandler(stub)
	r.GET("/api/records/me", middleware.PatientAuth(), h.GetOwn)
	return r
}

func signPatientToken(t *testing.T, patientID int) string {
	t.Helper()
	claims := &middleware.PatientClaims{
		PatientID: patientID,
		Email:     "pat@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(middleware.JWTKey)
	require.NoError(t, err)
	return token
}

func getOwnRecord(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/records/me", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetOwnRecordReturnsSignedInPatients(t *testing.T) {
	stub := &stubRecordService{byPatient: map[int]*models.MedicalRecord{
		7: {PatientID: 7, Diagnosis: "seasonal allergy"},
	}}
	r := newRecordRouter(stub)

	w := getOwnRecord(r, signPatientToken(t, 7))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 7, stub.asked)
	assert.Contains(t, w.Body.String(), "seasonal allergy")
}

func TestGetOwnRecordNotFound(t *testing.T) {
	stub := &stubRecordService{byPatient: map[int]*models.MedicalRecord{}}
	r := newRecordRouter(stub)

	w := getOwnRecord(r, signPatientToken(t, 3))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetOwnRecordRejectsMissingToken(t *testing.T) {
	stub := &stubRecordService{byPatient: map[int]*models.MedicalRecord{}}
	r := newRecordRouter(stub)

	w := getOwnRecord(r, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, stub.asked)
}
