package services

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const loginChallengePrefix = "login:pending:"

var (
	ErrChallengeNotFound = errors.New("challenge not found or expired")
	ErrChallengeBackend  = errors.New("challenge store unavailable")
)

// loginChallenge is the pending two-factor entry for one admin email.
// At most one entry per email can be live; issuing a new one replaces it.
type loginChallenge struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ChallengeStore keeps pending login challenges in Redis so that every
// service instance sees the same entries. TTL mirrors the expiry stamp.
type ChallengeStore struct {
	redis *redis.Client
}

func NewChallengeStore(client *redis.Client) *ChallengeStore {
	return &ChallengeStore{redis: client}
}

func (s *ChallengeStore) key(email string) string {
	return loginChallengePrefix + strings.ToLower(strings.TrimSpace(email))
}

// Put stores a challenge for the email, overwriting any prior entry.
func (s *ChallengeStore) Put(ctx context.Context, email, code string, ttl time.Duration) error {
	entry := loginChallenge{
		Code:      code,
		ExpiresAt: time.Now().Add(ttl),
	}
	encoded, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	if err := s.redis.Set(ctx, s.key(email), encoded, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrChallengeBackend, err)
	}
	return nil
}

// Consume validates the submitted code and deletes the entry on success.
// A wrong code leaves the entry in place until expiry or the next issuance.
func (s *ChallengeStore) Consume(ctx context.Context, email, code string) error {
	data, err := s.redis.Get(ctx, s.key(email)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrChallengeNotFound
		}
		return fmt.Errorf("%w: %v", ErrChallengeBackend, err)
	}

	var entry loginChallenge
	if err := json.Unmarshal(data, &entry); err != nil {
		return fmt.Errorf("%w: %v", ErrChallengeBackend, err)
	}
	if time.Now().After(entry.ExpiresAt) {
		_, _ = s.redis.Del(ctx, s.key(email)).Result()
		return ErrChallengeNotFound
	}
	if subtle.ConstantTimeCompare([]byte(entry.Code), []byte(code)) != 1 {
		return ErrChallengeNotFound
	}

	if err := s.redis.Del(ctx, s.key(email)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrChallengeBackend, err)
	}
	return nil
}
