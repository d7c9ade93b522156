package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doctorkays/internal/middleware"
	"doctorkays/internal/models"
	"doctorkays/internal/utils"
)

type fakeAdminRepo struct {
	byEmail map[string]*models.Admin
}

func (f *fakeAdminRepo) Create(admin *models.Admin) error { return nil }
func (f *fakeAdminRepo) Update(admin *models.Admin) error { return nil }
func (f *fakeAdminRepo) GetByID(id int) (*models.Admin, error) {
	for _, a := range f.byEmail {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, errors.New("not found")
}
func (f *fakeAdminRepo) GetByEmail(email string) (*models.Admin, error) {
	a, ok := f.byEmail[email]
	if !ok {
		return nil, errors.New("not found")
	}
	return a, nil
}

// recordingEmails captures outgoing mail instead of dialing SMTP.
type recordingEmails struct {
	mu       sync.Mutex
	codes    []string
	alerts   int
	failSend bool
}

func (r *recordingEmails) SendVerificationCode(email, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failSend {
		return errors.New("smtp unavailable")
	}
	r.codes = append(r.codes, code)
	return nil
}
func (r *recordingEmails) SendLoginAlert(admin *models.Admin, ip string, loc utils.Location) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts++
	return nil
}
func (r *recordingEmails) SendAdminWelcome(email, firstName, lastName string) error { return nil }
func (r *recordingEmails) SendContactConfirmation(c *models.Contact) error          { return nil }
func (r *recordingEmails) SendVolunteerConfirmation(v *models.Volunteer) error      { return nil }
func (r *recordingEmails) SendIntakeAcknowledgement(email, name, formName string) error {
	return nil
}
func (r *recordingEmails) SendFreeConsultationEmails(c *models.Consultation, report *Attachment) error {
	return nil
}
func (r *recordingEmails) SendBookingConfirmation(req models.BookingConfirmationRequest, confirmationPDF []byte) error {
	return nil
}

func (r *recordingEmails) lastCode() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.codes) == 0 {
		return ""
	}
	return r.codes[len(r.codes)-1]
}

type noopAlerts struct {
	mu    sync.Mutex
	calls int
}

func (n *noopAlerts) NotifyLogin(admin *models.Admin, sourceAddr string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls++
}

const testJWTSecret = "test-secret"

func newLoginFixture(t *testing.T) (LoginService, *recordingEmails, *miniredis.Miniredis, *noopAlerts) {
	t.Helper()

	auth := NewAuthService()
	hash, err := auth.HashPassword("correct horse")
	require.NoError(t, err)

	admins := &fakeAdminRepo{byEmail: map[string]*models.Admin{
		"admin@clinic.test": {
			ID:           1,
			FirstName:    "Kay",
			LastName:     "Doctor",
			Email:        "admin@clinic.test",
			PasswordHash: hash,
		},
	}}

	mr := miniredis.RunT(t)
	store := NewChallengeStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	emails := &recordingEmails{}
	alerts := &noopAlerts{}
	svc := NewLoginService(admins, auth, store, emails, alerts, []byte(testJWTSecret))
	return svc, emails, mr, alerts
}

func TestLoginIssuesChallenge(t *testing.T) {
	svc, emails, _, _ := newLoginFixture(t)

	err := svc.Login(context.Background(), "admin@clinic.test", "correct horse")
	require.NoError(t, err)

	code := emails.lastCode()
	assert.Len(t, code, 8)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _, _, _ := newLoginFixture(t)
	ctx := context.Background()

	err := svc.Login(ctx, "admin@clinic.test", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// unknown email yields the same error as a wrong password
	err = svc.Login(ctx, "stranger@clinic.test", "correct horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginDeliveryFailure(t *testing.T) {
	svc, emails, _, _ := newLoginFixture(t)
	emails.failSend = true

	err := svc.Login(context.Background(), "admin@clinic.test", "correct horse")
	assert.ErrorIs(t, err, ErrChallengeDelivery)
}

func TestVerifyLoginEndToEnd(t *testing.T) {
	svc, emails, _, _ := newLoginFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Login(ctx, "admin@clinic.test", "correct horse"))

	token, err := svc.VerifyLogin(ctx, "admin@clinic.test", emails.lastCode(), "203.0.113.7")
	require.NoError(t, err)

	claims := &middleware.Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, 1, claims.AdminID)
	assert.Equal(t, "admin@clinic.test", claims.Email)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestVerifyLoginWrongCode(t *testing.T) {
	svc, emails, _, _ := newLoginFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Login(ctx, "admin@clinic.test", "correct horse"))

	_, err := svc.VerifyLogin(ctx, "admin@clinic.test", "00000000", "203.0.113.7")
	assert.ErrorIs(t, err, ErrChallengeNotFound)

	// the real code is still usable afterwards
	_, err = svc.VerifyLogin(ctx, "admin@clinic.test", emails.lastCode(), "203.0.113.7")
	assert.NoError(t, err)
}

func TestVerifyLoginSingleUse(t *testing.T) {
	svc, emails, _, _ := newLoginFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Login(ctx, "admin@clinic.test", "correct horse"))
	code := emails.lastCode()

	_, err := svc.VerifyLogin(ctx, "admin@clinic.test", code, "203.0.113.7")
	require.NoError(t, err)

	_, err = svc.VerifyLogin(ctx, "admin@clinic.test", code, "203.0.113.7")
	assert.ErrorIs(t, err, ErrChallengeNotFound)
}

func TestVerifyLoginExpiredCode(t *testing.T) {
	svc, emails, mr, _ := newLoginFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Login(ctx, "admin@clinic.test", "correct horse"))
	mr.FastForward(5*time.Minute + time.Second)

	_, err := svc.VerifyLogin(ctx, "admin@clinic.test", emails.lastCode(), "203.0.113.7")
	assert.ErrorIs(t, err, ErrChallengeNotFound)
}

func TestReissueInvalidatesPreviousCode(t *testing.T) {
	svc, emails, _, _ := newLoginFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Login(ctx, "admin@clinic.test", "correct horse"))
	first := emails.lastCode()

	require.NoError(t, svc.Login(ctx, "admin@clinic.test", "correct horse"))
	second := emails.lastCode()
	require.NotEqual(t, first, second)

	_, err := svc.VerifyLogin(ctx, "admin@clinic.test", first, "203.0.113.7")
	assert.ErrorIs(t, err, ErrChallengeNotFound)

	_, err = svc.VerifyLogin(ctx, "admin@clinic.test", second, "203.0.113.7")
	assert.NoError(t, err)
}

func TestVerifyLoginTriggersAlert(t *testing.T) {
	svc, emails, _, alerts := newLoginFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Login(ctx, "admin@clinic.test", "correct horse"))
	_, err := svc.VerifyLogin(ctx, "admin@clinic.test", emails.lastCode(), "203.0.113.7")
	require.NoError(t, err)

	// the alert runs detached from the request
	assert.Eventually(t, func() bool {
		alerts.mu.Lock()
		defer alerts.mu.Unlock()
		return alerts.calls == 1
	}, time.Second, 10*time.Millisecond)
}
