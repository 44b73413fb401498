package auth

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"net/url"
	"strings"
	"testing"
	"time"

	domainerrors "wearsync/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newTestOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     "23ABCD",
		ClientSecret: "secret",
		RedirectURL:  "http://127.0.0.1:8000/auth/fitbit/callback",
		Scopes:       []string{"activity", "heartrate", "sleep", "profile"},
		Endpoint: oauth2.Endpoint{
			AuthURL:   "https://www.fitbit.com/oauth2/authorize",
			TokenURL:  "https://api.fitbit.com/oauth2/token",
			AuthStyle: oauth2.AuthStyleInHeader,
		},
	}
}

func newTestFlow(t *testing.T) *pkceFlow {
	t.Helper()

	signer, err := NewStateSigner("state-secret", 10*time.Minute)
	require.NoError(t, err)

	return newPKCEFlow(newTestOAuthConfig(), signer)
}

func TestPKCEFlow_Begin_ChallengeIsS256OfVerifier(t *testing.T) {
	flow := newTestFlow(t)

	for range 20 {
		req, err := flow.Begin(context.Background(), "u1")
		require.NoError(t, err)

		sum := sha256.Sum256([]byte(req.Verifier))
		want := base64.RawURLEncoding.EncodeToString(sum[:])

		assert.Equal(t, want, req.Challenge)
		assert.NotContains(t, req.Challenge, "=")
		assert.GreaterOrEqual(t, len(req.Verifier), 43)
		assert.LessOrEqual(t, len(req.Verifier), 128)
	}
}

func TestPKCEFlow_Begin_RedirectURL(t *testing.T) {
	flow := newTestFlow(t)

	req, err := flow.Begin(context.Background(), "u1")
	require.NoError(t, err)

	parsed, err := url.Parse(req.RedirectURL)
	require.NoError(t, err)
	assert.Equal(t, "www.fitbit.com", parsed.Host)

	q := parsed.Query()
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "23ABCD", q.Get("client_id"))
	assert.Equal(t, "http://127.0.0.1:8000/auth/fitbit/callback", q.Get("redirect_uri"))
	assert.Equal(t, "activity heartrate sleep profile", q.Get("scope"))
	assert.Equal(t, req.Challenge, q.Get("code_challenge"))
	assert.Equal(t, "S256", q.Get("code_challenge_method"))
	assert.Equal(t, req.State, q.Get("state"))

	assert.Equal(t, "u1", req.Pending.UserID)
	assert.Equal(t, req.State, req.Pending.State)
	assert.Equal(t, req.Verifier, req.Pending.Verifier)
}

func TestPKCEFlow_Begin_StatesAreNeverReused(t *testing.T) {
	flow := newTestFlow(t)
	seen := make(map[string]struct{})

	for range 50 {
		req, err := flow.Begin(context.Background(), "u1")
		require.NoError(t, err)

		_, dup := seen[req.State]
		require.False(t, dup)
		seen[req.State] = struct{}{}
	}
}

func TestPKCEFlow_Begin_MissingUser(t *testing.T) {
	flow := newTestFlow(t)

	_, err := flow.Begin(context.Background(), "  ")
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
}

func TestPKCEFlow_Complete(t *testing.T) {
	flow := newTestFlow(t)
	ctx := context.Background()

	issued, err := flow.Begin(ctx, "user.with.dots")
	require.NoError(t, err)
	other, err := flow.Begin(ctx, "user.with.dots")
	require.NoError(t, err)

	tests := []struct {
		name     string
		pending  string
		received string
		wantUser string
		wantKind domainerrors.Kind
	}{
		{name: "matching state", pending: issued.State, received: issued.State, wantUser: "user.with.dots"},
		{name: "identity suffix swapped", pending: "abc.u1", received: "abc.u2", wantKind: domainerrors.KindStateMismatch},
		{name: "state from another attempt", pending: issued.State, received: other.State, wantKind: domainerrors.KindStateMismatch},
		{name: "truncated state", pending: issued.State, received: issued.State[:len(issued.State)-1], wantKind: domainerrors.KindStateMismatch},
		{name: "missing state", pending: issued.State, received: "", wantKind: domainerrors.KindValidation},
		{name: "equal but unsigned", pending: "abc.u1", received: "abc.u1", wantKind: domainerrors.KindMalformedState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, err := flow.Complete(ctx, tt.pending, tt.received)
			if tt.wantKind != domainerrors.KindUnknown {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, domainerrors.KindOf(err))
				assert.Empty(t, userID)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantUser, userID)
		})
	}
}

func TestStateSigner_RejectsForeignSignature(t *testing.T) {
	ours, err := NewStateSigner("ours", time.Minute)
	require.NoError(t, err)
	theirs, err := NewStateSigner("theirs", time.Minute)
	require.NoError(t, err)

	state, err := theirs.Sign("u1")
	require.NoError(t, err)

	_, err = ours.Verify(state)
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindMalformedState, domainerrors.KindOf(err))
}

func TestStateSigner_RejectsExpiredState(t *testing.T) {
	signer, err := NewStateSigner("secret", time.Minute)
	require.NoError(t, err)

	issuedAt := time.Now().Add(-time.Hour)
	signer.now = func() time.Time { return issuedAt }
	state, err := signer.Sign("u1")
	require.NoError(t, err)

	signer.now = time.Now
	_, err = signer.Verify(state)
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindMalformedState, domainerrors.KindOf(err))
}

func TestStateSigner_RejectsAlgNone(t *testing.T) {
	signer, err := NewStateSigner("secret", time.Minute)
	require.NoError(t, err)

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"u1","jti":"n","exp":4102444800}`))

	_, err = signer.Verify(strings.Join([]string{header, payload, ""}, "."))
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindMalformedState, domainerrors.KindOf(err))
}

func TestNewStateSigner_RequiresSecret(t *testing.T) {
	_, err := NewStateSigner("", time.Minute)
	require.Error(t, err)
}
