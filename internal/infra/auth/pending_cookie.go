package auth

import (
	"crypto/sha256"
	"io"
	"net/http"
	"net/url"
	"time"

	"wearsync/config"
	"wearsync/internal/domain/entity"
	domainerrors "wearsync/internal/domain/errors"
	"wearsync/internal/errors"

	"github.com/gorilla/securecookie"
	"golang.org/x/crypto/hkdf"
)

const cookieKeySize = 32

var (
	cookieHashKeyInfo  = []byte("wearsync pkce cookie hash")
	cookieBlockKeyInfo = []byte("wearsync pkce cookie block")
)

// PendingCookie seals a PendingAuthorization into an HttpOnly cookie between start and callback.
type PendingCookie struct {
	name   string
	codec  *securecookie.SecureCookie
	secure bool
	ttl    time.Duration
	now    func() time.Time
}

// NewPendingCookie derives separate HMAC and AES keys from the configured cookie secret.
func NewPendingCookie(cfg *config.Config) (*PendingCookie, error) {
	secret := []byte(cfg.Security.CookieHashKey)

	hashKey, err := deriveCookieKey(secret, cookieHashKeyInfo)
	if err != nil {
		return nil, err
	}
	blockKey, err := deriveCookieKey(secret, cookieBlockKeyInfo)
	if err != nil {
		return nil, err
	}

	ttl := cfg.OAuth.PendingTTL
	codec := securecookie.New(hashKey, blockKey)
	codec.MaxAge(int(ttl.Seconds()))
	codec.SetSerializer(securecookie.JSONEncoder{})

	// Plain http only for local development.
	secure := true
	if base, err := url.Parse(cfg.Security.BaseURL); err == nil && base.Scheme != "https" {
		secure = false
	}

	return &PendingCookie{
		name:   cfg.Security.CookieName,
		codec:  codec,
		secure: secure,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func deriveCookieKey(secret, info []byte) ([]byte, error) {
	if len(secret) == 0 {
		return nil, errors.New("cookie secret is empty")
	}

	key := make([]byte, cookieKeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, nil, info), key); err != nil {
		return nil, errors.Wrap(err, "derive cookie key")
	}

	return key, nil
}

// Name returns the cookie name.
func (c *PendingCookie) Name() string {
	return c.name
}

// Encode builds the Set-Cookie value for pending.
func (c *PendingCookie) Encode(pending *entity.PendingAuthorization) (*http.Cookie, error) {
	value, err := c.codec.Encode(c.name, pending)
	if err != nil {
		return nil, errors.Wrap(err, "encode pending authorization cookie")
	}

	return &http.Cookie{
		Name:     c.name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(c.ttl.Seconds()),
		Expires:  c.now().Add(c.ttl),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// Decode reads the pending authorization from r. A missing, forged or stale cookie is a ValidationError.
func (c *PendingCookie) Decode(r *http.Request) (*entity.PendingAuthorization, error) {
	raw, err := r.Cookie(c.name)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrMissingPKCECookie)
	}

	var pending entity.PendingAuthorization
	if err := c.codec.Decode(c.name, raw.Value, &pending); err != nil {
		return nil, errors.WithStack(domainerrors.ErrMissingPKCECookie.WithDetails(err.Error()))
	}

	if pending.Verifier == "" || pending.State == "" {
		return nil, errors.WithStack(domainerrors.ErrMissingPKCECookie.WithDetails("incomplete pending authorization"))
	}

	return &pending, nil
}

// Clear returns a cookie that deletes the pending authorization on the client.
func (c *PendingCookie) Clear() *http.Cookie {
	return &http.Cookie{
		Name:     c.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
