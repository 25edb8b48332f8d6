package jwt

import (
	"errors"
	"testing"
	"time"

	"jobboard/internal/config"

	"github.com/google/uuid"
)

func newTestService(now time.Time) *HMACService {
	s := NewHMACService("jobboard", config.JWTConfig{
		AccessSecret:     "access-secret",
		RefreshSecret:    "refresh-secret",
		AccessExpiresIn:  15 * time.Minute,
		RefreshExpiresIn: time.Hour,
	})
	s.now = func() time.Time { return now }
	return s
}

func TestAccessTokenRoundTrip(t *testing.T) {
	s := newTestService(time.Now())
	id := uuid.New()

	tok, err := s.GenerateAccessToken(id, "employer")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	c, err := s.ValidateAccessToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if c.UserID != id || c.Role != "employer" || c.Issuer != "jobboard" {
		t.Fatalf("unexpected claims: %+v", c)
	}
}

func TestRefreshTokenIsNotAnAccessToken(t *testing.T) {
	s := newTestService(time.Now())
	tok, err := s.GenerateRefreshToken(uuid.New())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := s.ValidateAccessToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
	if _, err := s.ValidateRefreshToken(tok); err != nil {
		t.Fatalf("refresh validate: %v", err)
	}
}

func TestExpiredToken(t *testing.T) {
	issued := time.Now().Add(-2 * time.Hour)
	s := newTestService(issued)
	tok, err := s.GenerateAccessToken(uuid.New(), "candidate")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	s.now = time.Now
	if _, err := s.ValidateAccessToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestWrongIssuerRejected(t *testing.T) {
	s := newTestService(time.Now())
	tok, _ := s.GenerateAccessToken(uuid.New(), "candidate")

	other := newTestService(time.Now())
	other.issuer = "someone-else"
	if _, err := other.ValidateAccessToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
