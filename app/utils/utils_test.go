package utils

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"BE-HOTEL-ADMIN/app/entities"
)

var admin = entities.Account{ID: 1, Username: "admin", Role: entities.RoleAdmin}

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("secret", 0, 0)
	pair, err := m.GeneratePair(admin)
	if err != nil {
		t.Fatalf("GeneratePair: %v", err)
	}
	claims, err := m.Parse(pair.AccessToken, entities.TokenAccess)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.UserID != 1 || claims.Role != entities.RoleAdmin || claims.ID == "" {
		t.Fatalf("unexpected claims %+v", claims)
	}
	if pair.AccessToken == pair.RefreshToken {
		t.Fatalf("expected distinct access and refresh tokens")
	}
}

func TestTokenPurposeAndSecretChecked(t *testing.T) {
	m := NewTokenManager("secret", 0, 0)
	refresh, _ := m.Generate(admin, entities.TokenRefresh)
	if _, err := m.Parse(refresh, entities.TokenAccess); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected refresh token rejected as access token, got %v", err)
	}
	other := NewTokenManager("other", 0, 0)
	if _, err := other.Parse(refresh, entities.TokenRefresh); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected wrong secret rejected, got %v", err)
	}
	if _, err := m.Parse("not-a-token", entities.TokenAccess); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected garbage rejected, got %v", err)
	}
}

func TestTokenExpires(t *testing.T) {
	m := NewTokenManager("secret", time.Minute, 0)
	start := time.Now()
	m.now = func() time.Time { return start }
	token, _ := m.Generate(admin, entities.TokenAccess)

	m.now = func() time.Time { return start.Add(2 * time.Minute) }
	if _, err := m.Parse(token, entities.TokenAccess); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected expired token rejected, got %v", err)
	}
}

func TestLogMailerWritesLink(t *testing.T) {
	var buf bytes.Buffer
	mailer := NewLogMailer("http://localhost:8080", log.New(&buf, "", 0))
	if err := mailer.SendResetEmail("jane@example.com", "abc"); err != nil {
		t.Fatalf("SendResetEmail: %v", err)
	}
	if !strings.Contains(buf.String(), "http://localhost:8080/password/reset/abc") {
		t.Fatalf("expected reset link in log, got %q", buf.String())
	}
}
