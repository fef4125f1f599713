package auth

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIssuer() *Issuer {
	return NewIssuer(Config{
		SecretKey:    "secret",
		ClientID:     "client",
		ClientSecret: "s3cret",
		TokenTTL:     30 * time.Minute,
	})
}

func TestIssueAndVerify(t *testing.T) {
	i := testIssuer()
	tok, err := i.Issue("client", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "bearer", tok.TokenType)
	assert.Equal(t, int64(1800), tok.ExpiresIn)

	sub, err := i.Verify(tok.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "client", sub)
}

func TestIssue_WrongCredentials(t *testing.T) {
	_, err := testIssuer().Issue("client", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerify_Expired(t *testing.T) {
	i := testIssuer()
	i.now = func() time.Time { return time.Now().Add(-time.Hour) }
	tok, err := i.Issue("client", "s3cret")
	require.NoError(t, err)

	i.now = time.Now
	_, err = i.Verify(tok.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_OtherSecret(t *testing.T) {
	tok, err := testIssuer().Issue("client", "s3cret")
	require.NoError(t, err)

	other := NewIssuer(Config{SecretKey: "other", TokenTTL: time.Minute})
	_, err = other.Verify(tok.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMiddleware(t *testing.T) {
	i := testIssuer()
	called := false
	h := i.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		id, ok := ClientID(r.Context())
		assert.True(t, ok)
		assert.Equal(t, "client", id)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	assert.False(t, called)

	req.Header.Set("Authorization", "Bearer garbage")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)

	tok, err := i.Issue("client", "s3cret")
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+tok.AccessToken)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestNewConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".auth.env")
	require.NoError(t, os.WriteFile(path, []byte("AUTH_SECRET_KEY=k\nAUTH_CLIENT_ID=id\nAUTH_CLIENT_SECRET=sec\nAUTH_TOKEN_TTL=5m\n"), 0o600))
	t.Setenv("AUTH_CLIENT_ID", "from-env")

	cfg, err := NewConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.Enabled())
	assert.Equal(t, "from-env", cfg.ClientID)
	assert.Equal(t, "sec", cfg.ClientSecret)
	assert.Equal(t, 5*time.Minute, cfg.TokenTTL)
	assert.NoError(t, cfg.Validate())
}

func TestNewConfig_MissingFileDisablesAuth(t *testing.T) {
	cfg, err := NewConfig(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	if os.Getenv("AUTH_SECRET_KEY") == "" {
		assert.False(t, cfg.Enabled())
	}
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
}

func TestConfig_ValidateRequiresCredentials(t *testing.T) {
	cfg := &Config{SecretKey: "k"}
	assert.Error(t, cfg.Validate())
	assert.NoError(t, (&Config{}).Validate())
}
