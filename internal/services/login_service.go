package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"doctorkays/internal/middleware"
	"doctorkays/internal/repositories"
	"doctorkays/internal/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrChallengeDelivery  = errors.New("failed to deliver verification code")
)

const (
	challengeTTL    = 5 * time.Minute
	sessionLifetime = 24 * time.Hour
)

// LoginService implements the two-step admin login: password check, emailed
// one-time code, then JWT issuance on successful verification.
type LoginService interface {
	Login(ctx context.Context, email, password string) error
	VerifyLogin(ctx context.Context, email, code, sourceAddr string) (string, error)
}

type loginService struct {
	admins     repositories.AdminRepository
	auth       AuthService
	challenges *ChallengeStore
	emails     EmailService
	alerts     AlertService
	jwtSecret  []byte
}

func NewLoginService(
	admins repositories.AdminRepository,
	auth AuthService,
	challenges *ChallengeStore,
	emails EmailService,
	alerts AlertService,
	jwtSecret []byte,
) LoginService {
	return &loginService{
		admins:     admins,
		auth:       auth,
		challenges: challenges,
		emails:     emails,
		alerts:     alerts,
		jwtSecret:  jwtSecret,
	}
}

// Login authenticates the credentials and, on success, issues a fresh
// challenge for the email. A repeated login replaces the previous code, so
// only the most recently emailed code is ever valid.
func (s *loginService) Login(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(strings.ToLower(email))

	admin, err := s.admins.GetByEmail(email)
	if err != nil || admin == nil {
		// unknown email and wrong password are indistinguishable to the caller
		log.Printf("[login] attempt for unknown email=%q", email)
		return ErrInvalidCredentials
	}
	if !s.auth.CheckPassword(admin.PasswordHash, password) {
		log.Printf("[login] bad password for adminID=%d", admin.ID)
		return ErrInvalidCredentials
	}

	code, err := utils.NewVerificationCode()
	if err != nil {
		return fmt.Errorf("generate verification code: %w", err)
	}

	// The entry goes live before the email is sent; if delivery fails the
	// entry stays until expiry so a resend can reuse the flow.
	if err := s.challenges.Put(ctx, email, code, challengeTTL); err != nil {
		return err
	}
	if err := s.emails.SendVerificationCode(admin.Email, code); err != nil {
		log.Printf("[login] code delivery failed for adminID=%d: %v", admin.ID, err)
		return ErrChallengeDelivery
	}

	log.Printf("[login] challenge issued for adminID=%d ttl=%s", admin.ID, challengeTTL)
	return nil
}

// VerifyLogin consumes the pending challenge and mints a session token. The
// login alert runs detached; its outcome never affects the response.
func (s *loginService) VerifyLogin(ctx context.Context, email, code, sourceAddr string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	if err := s.challenges.Consume(ctx, email, code); err != nil {
		return "", err
	}

	admin, err := s.admins.GetByEmail(email)
	if err != nil || admin == nil {
		return "", ErrAdminNotFound
	}

	claims := &middleware.Claims{
		AdminID: admin.ID,
		Email:   admin.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionLifetime)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	if s.alerts != nil {
		go s.alerts.NotifyLogin(admin, sourceAddr)
	}

	log.Printf("[login] verified adminID=%d", admin.ID)
	return signed, nil
}
