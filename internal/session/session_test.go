package session

import (
	"errors"
	"testing"
	"time"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestLoginIssuesUserAndToken(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	user, token, err := m.Login("kasir@toko.id", false)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected a generated user id")
	}
	if user.Email != "kasir@toko.id" || user.IsManager {
		t.Fatalf("unexpected user: %+v", user)
	}
	if token == "" {
		t.Fatalf("expected a signed token")
	}
}

func TestLoginTrimsEmailAndCarriesRole(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	user, _, err := m.Login("  owner@toko.id  ", true)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Email != "owner@toko.id" {
		t.Fatalf("expected trimmed email, got %q", user.Email)
	}
	if !user.IsManager {
		t.Fatalf("expected manager role")
	}
}

func TestLoginRejectsEmptyEmail(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	if _, _, err := m.Login("   ", false); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	user, token, err := m.Login("owner@toko.id", true)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	restored, err := m.Restore(token)
	if err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if restored.ID != user.ID || restored.Email != user.Email || !restored.IsManager {
		t.Fatalf("restored user mismatch: %+v vs %+v", restored, user)
	}
}

func TestRestoreRejectsExpiredToken(t *testing.T) {
	issued := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	m := NewManager("test-secret", time.Hour).WithClock(fixedClock(issued))

	_, token, err := m.Login("kasir@toko.id", false)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	m.WithClock(fixedClock(issued.Add(2 * time.Hour)))
	if _, err := m.Restore(token); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestRestoreRejectsForeignToken(t *testing.T) {
	issuer := NewManager("secret-a", time.Hour)
	verifier := NewManager("secret-b", time.Hour)

	_, token, err := issuer.Login("kasir@toko.id", false)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, err := verifier.Restore(token); err == nil {
		t.Fatalf("expected token signed with another secret to be rejected")
	}
}

func TestRestoreRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := m.Restore(tok); err == nil {
			t.Fatalf("expected %q to be rejected", tok)
		}
	}
}

func TestNewManagerDefaults(t *testing.T) {
	m := NewManager("", 0)
	if string(m.secret) != "dev-change-me" {
		t.Fatalf("expected fallback secret")
	}
	if m.tokenTTL != 12*time.Hour {
		t.Fatalf("expected 12h default TTL, got %v", m.tokenTTL)
	}
}
