package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/ariefcatur/larana-store/internal/metrics"
	"github.com/ariefcatur/larana-store/internal/redisx"
	"github.com/ariefcatur/larana-store/internal/storage"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid session token")
)

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type Session struct {
	ID    string `json:"-"`
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Gate checks the single admin credential pair and tracks sessions in the
// store. A stored session never expires; only Logout ends it.
type Gate struct {
	email    string
	password string
	secret   []byte
	store    storage.Store
}

func NewGate(email, password, secret string, store storage.Store) *Gate {
	return &Gate{email: email, password: password, secret: []byte(secret), store: store}
}

func sessionKey(id string) string { return fmt.Sprintf(redisx.KeySession, id) }

// Login returns ok=false with no session written when the pair does not match.
func (g *Gate) Login(ctx context.Context, email, password string) (Session, bool, error) {
	match := subtle.ConstantTimeCompare([]byte(email), []byte(g.email)) == 1
	match = subtle.ConstantTimeCompare([]byte(password), []byte(g.password)) == 1 && match
	metrics.RecordLogin(match)
	if !match {
		return Session{}, false, nil
	}

	user := User{ID: "admin-001", Name: "Admin User", Email: email, Role: "admin"}
	id := uuid.NewString()
	if err := storage.SetJSON(ctx, g.store, sessionKey(id), user); err != nil {
		return Session{}, false, fmt.Errorf("store session: %w", err)
	}
	token, err := g.IssueToken(id)
	if err != nil {
		return Session{}, false, err
	}
	return Session{ID: id, Token: token, User: user}, true, nil
}

func (g *Gate) Logout(ctx context.Context, sessionID string) error {
	return g.store.Delete(ctx, sessionKey(sessionID))
}

// Current returns the stored user for sessionID. A malformed stored value is
// deleted and reported as no session.
func (g *Gate) Current(ctx context.Context, sessionID string) (User, bool, error) {
	var u User
	err := storage.GetJSON(ctx, g.store, sessionKey(sessionID), &u)
	switch {
	case err == nil:
		return u, true, nil
	case errors.Is(err, storage.ErrNotFound):
		return User{}, false, nil
	}
	if errors.Is(err, storage.ErrCorrupt) {
		log.Printf("auth: drop unreadable session %s: %v", sessionID, err)
		_ = g.store.Delete(ctx, sessionKey(sessionID))
		return User{}, false, nil
	}
	return User{}, false, err
}

// IssueToken signs an HS256 token carrying the session id. The token has no
// expiry; validity is decided by the stored session.
func (g *Gate) IssueToken(sessionID string) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:       sessionID,
		Subject:  "admin-001",
		IssuedAt: jwt.NewNumericDate(time.Now()),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
}

func (g *Gate) ParseToken(token string) (string, error) {
	var claims jwt.RegisteredClaims
	t, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return g.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !t.Valid || claims.ID == "" {
		return "", ErrInvalidToken
	}
	return claims.ID, nil
}
