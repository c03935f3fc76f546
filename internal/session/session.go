package session

import (
	"errors"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"tokopos/internal/domain"
	"tokopos/internal/xid"
)

// ErrInvalidEmail rejects a login with an empty email. This is the only
// login precondition: there is no credential check by design.
var ErrInvalidEmail = errors.New("email required")

type sessionClaims struct {
	jwtlib.RegisteredClaims
	Email   string `json:"email"`
	Manager bool   `json:"manager"`
}

// Manager issues and verifies local session tokens. Login is unconditional;
// the token only makes the persisted session slot tamper-evident and lets a
// restart expire stale sessions.
type Manager struct {
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
}

func NewManager(secret string, tokenTTL time.Duration) *Manager {
	if secret == "" {
		secret = "dev-change-me"
	}
	if tokenTTL <= 0 {
		tokenTTL = 12 * time.Hour
	}
	return &Manager{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source. Test hook.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// Login activates a new user unconditionally (documented limitation, not a
// bug) and returns it with a signed token for the session slot.
func (m *Manager) Login(email string, isManager bool) (domain.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.User{}, "", ErrInvalidEmail
	}

	user := domain.User{
		ID:        xid.New("user"),
		Email:     email,
		IsManager: isManager,
	}

	now := m.now()
	claims := sessionClaims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(m.tokenTTL)),
			Issuer:    "tokopos",
		},
		Email:   user.Email,
		Manager: user.IsManager,
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return domain.User{}, "", err
	}

	return user, token, nil
}

// Restore rebuilds the active user from a persisted token. Invalid, expired,
// or foreign tokens return an error; callers degrade to logged-out.
func (m *Manager) Restore(tokenStr string) (domain.User, error) {
	claims := &sessionClaims{}
	token, err := jwtlib.ParseWithClaims(tokenStr, claims, func(t *jwtlib.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	}, jwtlib.WithValidMethods([]string{"HS256"}), jwtlib.WithTimeFunc(m.now))
	if err != nil || !token.Valid {
		return domain.User{}, errors.New("invalid or expired session")
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return domain.User{}, errors.New("invalid session subject")
	}
	return domain.User{ID: sub, Email: claims.Email, IsManager: claims.Manager}, nil
}
