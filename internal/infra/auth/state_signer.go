// Package auth provides the PKCE authorization flow: signed state, challenges and the pending-attempt cookie.
package auth

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	domainerrors "wearsync/internal/domain/errors"
	"wearsync/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const stateNonceBytes = 24

// stateClaims binds a nonce (jti) to a user (sub) for one authorization attempt.
type stateClaims struct {
	jwt.RegisteredClaims
}

// StateSigner issues and verifies HS256-signed OAuth state tokens.
type StateSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewStateSigner creates a signer whose states expire after ttl.
func NewStateSigner(secret string, ttl time.Duration) (*StateSigner, error) {
	if secret == "" {
		return nil, errors.New("state secret must be provided")
	}

	return &StateSigner{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Sign returns a new state for userID. Every call uses a fresh nonce.
func (s *StateSigner) Sign(userID string) (string, error) {
	nonce := make([]byte, stateNonceBytes)
	if _, err := rand.Read(nonce); err != nil {
		return "", errors.Wrap(err, "generate state nonce")
	}

	now := s.now()
	claims := stateClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        base64.RawURLEncoding.EncodeToString(nonce),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign state")
	}

	return signed, nil
}

// Verify checks the signature and lifetime of state and returns the bound user id.
// Any failure is a MalformedStateError.
func (s *StateSigner) Verify(state string) (string, error) {
	claims := &stateClaims{}
	_, err := jwt.ParseWithClaims(state, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", errors.WithStack(domainerrors.ErrMalformedState.WithDetails(err.Error()))
	}

	if claims.Subject == "" || claims.ID == "" {
		return "", errors.WithStack(domainerrors.ErrMalformedState.WithDetails("state carries no user binding"))
	}

	return claims.Subject, nil
}
