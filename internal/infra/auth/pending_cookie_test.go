package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wearsync/config"
	"wearsync/internal/domain/entity"
	domainerrors "wearsync/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCookieConfig(baseURL string) *config.Config {
	return &config.Config{
		Security: &config.SecurityConfig{
			CookieHashKey: "cookie-secret",
			CookieName:    "fitbit_pkce",
			BaseURL:       baseURL,
		},
		OAuth: &config.OAuthConfig{PendingTTL: 10 * time.Minute},
	}
}

func newTestPendingCookie(t *testing.T, cfg *config.Config) *PendingCookie {
	t.Helper()

	codec, err := NewPendingCookie(cfg)
	require.NoError(t, err)

	return codec
}

func TestNewPendingCookie_RequiresSecret(t *testing.T) {
	cfg := newTestCookieConfig("http://localhost")
	cfg.Security.CookieHashKey = ""

	_, err := NewPendingCookie(cfg)
	require.Error(t, err)
}

func TestDeriveCookieKey_SeparatesPurposes(t *testing.T) {
	hashKey, err := deriveCookieKey([]byte("cookie-secret"), cookieHashKeyInfo)
	require.NoError(t, err)
	blockKey, err := deriveCookieKey([]byte("cookie-secret"), cookieBlockKeyInfo)
	require.NoError(t, err)
	again, err := deriveCookieKey([]byte("cookie-secret"), cookieHashKeyInfo)
	require.NoError(t, err)

	assert.Len(t, hashKey, cookieKeySize)
	assert.Len(t, blockKey, cookieKeySize)
	assert.NotEqual(t, hashKey, blockKey)
	assert.Equal(t, hashKey, again)
}

func TestPendingCookie_RoundTrip(t *testing.T) {
	codec := newTestPendingCookie(t, newTestCookieConfig("http://127.0.0.1:8000"))
	pending := &entity.PendingAuthorization{
		Verifier:  "verifier",
		State:     "state",
		UserID:    "u1",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	cookie, err := codec.Encode(pending)
	require.NoError(t, err)
	assert.Equal(t, "fitbit_pkce", cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, 600, cookie.MaxAge)
	assert.NotContains(t, cookie.Value, "verifier")

	req := httptest.NewRequest(http.MethodGet, "/auth/fitbit/callback", nil)
	req.AddCookie(cookie)

	got, err := codec.Decode(req)
	require.NoError(t, err)
	assert.Equal(t, pending.Verifier, got.Verifier)
	assert.Equal(t, pending.State, got.State)
	assert.Equal(t, pending.UserID, got.UserID)
	assert.True(t, pending.CreatedAt.Equal(got.CreatedAt))
}

func TestPendingCookie_SecureOnHTTPS(t *testing.T) {
	codec := newTestPendingCookie(t, newTestCookieConfig("https://wearsync.example.com"))

	cookie, err := codec.Encode(&entity.PendingAuthorization{Verifier: "v", State: "s"})
	require.NoError(t, err)
	assert.True(t, cookie.Secure)
	assert.True(t, codec.Clear().Secure)
}

func TestPendingCookie_DecodeFailures(t *testing.T) {
	codec := newTestPendingCookie(t, newTestCookieConfig("http://localhost"))
	foreign := newTestPendingCookie(t, &config.Config{
		Security: &config.SecurityConfig{CookieHashKey: "other", CookieName: "fitbit_pkce"},
		OAuth:    &config.OAuthConfig{PendingTTL: 10 * time.Minute},
	})
	forged, err := foreign.Encode(&entity.PendingAuthorization{Verifier: "v", State: "s", UserID: "u1"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		cookie *http.Cookie
	}{
		{name: "no cookie"},
		{name: "plain json", cookie: &http.Cookie{Name: "fitbit_pkce", Value: `{"v":"x","s":"abc.u1"}`}},
		{name: "sealed with another key", cookie: forged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/auth/fitbit/callback", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}

			_, err := codec.Decode(req)
			require.Error(t, err)
			assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
		})
	}
}

func TestPendingCookie_Clear(t *testing.T) {
	codec := newTestPendingCookie(t, newTestCookieConfig("http://localhost"))

	cleared := codec.Clear()
	assert.Equal(t, "fitbit_pkce", cleared.Name)
	assert.Empty(t, cleared.Value)
	assert.Equal(t, -1, cleared.MaxAge)
}
