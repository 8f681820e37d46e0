package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ariefcatur/larana-store/internal/storage"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGate() (*Gate, *storage.Memory) {
	store := storage.NewMemory()
	return NewGate("admin@larana.com", "admin123", "test-secret", store), store
}

func TestLogin_Success(t *testing.T) {
	g, store := newGate()
	ctx := context.Background()

	s, ok, err := g.Login(ctx, "admin@larana.com", "admin123")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "admin", s.User.Role)
	assert.Equal(t, "Admin User", s.User.Name)
	assert.NotEmpty(t, s.Token)

	raw, err := store.Get(ctx, "admin_user:"+s.ID)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"admin-001","name":"Admin User","email":"admin@larana.com","role":"admin"}`, string(raw))

	id, err := g.ParseToken(s.Token)
	require.NoError(t, err)
	assert.Equal(t, s.ID, id)
}

func TestLogin_WrongPairWritesNothing(t *testing.T) {
	g, _ := newGate()
	for _, pair := range [][2]string{
		{"admin@larana.com", "wrong"},
		{"other@larana.com", "admin123"},
		{"", ""},
	} {
		s, ok, err := g.Login(context.Background(), pair[0], pair[1])
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, s.ID)
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	g, _ := newGate()
	ctx := context.Background()
	s, _, _ := g.Login(ctx, "admin@larana.com", "admin123")

	_, ok, err := g.Current(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, g.Logout(ctx, s.ID))
	_, ok, err = g.Current(ctx, s.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCurrent_CorruptSessionDropped(t *testing.T) {
	g, store := newGate()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "admin_user:bad", []byte("{{")))

	_, ok, err := g.Current(ctx, "bad")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = store.Get(ctx, "admin_user:bad")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestParseToken_RejectsForeignSignature(t *testing.T) {
	g, _ := newGate()
	other := NewGate("a", "b", "another-secret", storage.NewMemory())
	tok, err := other.IssueToken("sess")
	require.NoError(t, err)

	_, err = g.ParseToken(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{ID: "sess"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = g.ParseToken(none)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMiddleware(t *testing.T) {
	g, _ := newGate()
	ctx := context.Background()
	h := g.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := UserFrom(r.Context())
		require.True(t, ok)
		_, _ = w.Write([]byte(u.Email))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	s, _, _ := g.Login(ctx, "admin@larana.com", "admin123")
	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+s.Token)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin@larana.com", rec.Body.String())

	require.NoError(t, g.Logout(ctx, s.ID))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
