package fitbit

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wearsync/config"
	domainerrors "wearsync/internal/domain/errors"
	"wearsync/internal/errors"
	"wearsync/internal/infra/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const activityBody = `{"summary":{"steps":"8421","distances":[{"activity":"total","distance":6.234}],"caloriesOut":"2100"}}`

type fakeFitbit struct {
	tokenHandler http.HandlerFunc
	activity     http.HandlerFunc
	sleep        http.HandlerFunc
	heart        http.HandlerFunc
}

func (f *fakeFitbit) serve(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth2/token", orNotFound(f.tokenHandler))
	mux.HandleFunc("GET /1/user/-/activities/date/{day}", orNotFound(f.activity))
	mux.HandleFunc("GET /1.2/user/-/sleep/date/{day}", orNotFound(f.sleep))
	mux.HandleFunc("GET /1/user/-/activities/heart/date/{day}/1d.json", orNotFound(f.heart))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

// orNotFound lets a test declare only the endpoints it exercises.
func orNotFound(h http.HandlerFunc) http.HandlerFunc {
	if h == nil {
		return http.NotFound
	}

	return h
}

func jsonHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func newTestClient(t *testing.T, baseURL string) *client {
	t.Helper()

	cfg := &config.Config{
		Fitbit: &config.FitbitConfig{
			ClientID:       "23ABCD",
			ClientSecret:   "shh",
			RedirectURL:    "http://127.0.0.1:8000/auth/fitbit/callback",
			AuthURL:        baseURL + "/oauth2/authorize",
			TokenURL:       baseURL + "/oauth2/token",
			APIBaseURL:     baseURL,
			Scopes:         []string{"activity"},
			RequestTimeout: 2 * time.Second,
		},
	}

	return NewClient(ClientParams{
		Config:   cfg,
		OAuth:    NewOAuthConfig(cfg),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Recorder: metrics.Noop(),
	}).(*client)
}

func TestClient_ExchangeCode(t *testing.T) {
	fake := &fakeFitbit{
		tokenHandler: func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "23ABCD", user)
			assert.Equal(t, "shh", pass)

			require.NoError(t, r.ParseForm())
			assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
			assert.Equal(t, "the-code", r.PostForm.Get("code"))
			assert.Equal(t, "the-verifier", r.PostForm.Get("code_verifier"))
			assert.Equal(t, "http://127.0.0.1:8000/auth/fitbit/callback", r.PostForm.Get("redirect_uri"))

			jsonHandler(http.StatusOK, `{"access_token":"at","refresh_token":"rt","expires_in":28800,"scope":"activity sleep","token_type":"Bearer","user_id":"ABC123"}`)(w, r)
		},
	}
	c := newTestClient(t, fake.serve(t).URL)

	grant, err := c.ExchangeCode(context.Background(), "the-code", "the-verifier")
	require.NoError(t, err)

	assert.Equal(t, "at", grant.AccessToken)
	assert.Equal(t, "rt", grant.RefreshToken)
	assert.InDelta(t, 28800, grant.ExpiresIn, 2)
	assert.Equal(t, "activity sleep", grant.Scope)
	assert.Equal(t, "ABC123", grant.ProviderUserID)
}

func TestClient_ExchangeCode_Rejected(t *testing.T) {
	fake := &fakeFitbit{
		tokenHandler: jsonHandler(http.StatusBadRequest, `{"errors":[{"errorType":"invalid_grant"}],"success":false}`),
	}
	c := newTestClient(t, fake.serve(t).URL)

	_, err := c.ExchangeCode(context.Background(), "stale", "v")
	require.Error(t, err)

	providerErr, ok := errorsAsProvider(err)
	require.True(t, ok)
	assert.Equal(t, domainerrors.KindExchange, providerErr.Kind())
	assert.Equal(t, http.StatusBadRequest, providerErr.Status)
	assert.Contains(t, providerErr.Body, "invalid_grant")
}

func TestClient_RefreshToken(t *testing.T) {
	tests := []struct {
		name        string
		response    string
		wantRefresh string
	}{
		{
			name:        "rotated",
			response:    `{"access_token":"at2","refresh_token":"rt2","expires_in":3600}`,
			wantRefresh: "rt2",
		},
		{
			name:        "not rotated keeps previous",
			response:    `{"access_token":"at2","expires_in":3600}`,
			wantRefresh: "rt1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeFitbit{
				tokenHandler: func(w http.ResponseWriter, r *http.Request) {
					require.NoError(t, r.ParseForm())
					assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
					assert.Equal(t, "rt1", r.PostForm.Get("refresh_token"))

					jsonHandler(http.StatusOK, tt.response)(w, r)
				},
			}
			c := newTestClient(t, fake.serve(t).URL)

			grant, err := c.RefreshToken(context.Background(), "rt1")
			require.NoError(t, err)
			assert.Equal(t, "at2", grant.AccessToken)
			assert.Equal(t, tt.wantRefresh, grant.RefreshToken)
			assert.InDelta(t, 3600, grant.ExpiresIn, 2)
		})
	}
}

func TestClient_RefreshToken_Rejected(t *testing.T) {
	fake := &fakeFitbit{
		tokenHandler: jsonHandler(http.StatusUnauthorized, `{"errors":[{"errorType":"invalid_token"}]}`),
	}
	c := newTestClient(t, fake.serve(t).URL)

	_, err := c.RefreshToken(context.Background(), "revoked")
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindRefresh, domainerrors.KindOf(err))

	providerErr, ok := errorsAsProvider(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, providerErr.Status)
}

func TestClient_FetchDailyMetrics_OptionalCallsFail(t *testing.T) {
	fake := &fakeFitbit{
		activity: func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer access", r.Header.Get("Authorization"))
			assert.Equal(t, "2024-05-01.json", r.PathValue("day"))
			jsonHandler(http.StatusOK, activityBody)(w, r)
		},
		sleep: jsonHandler(http.StatusInternalServerError, `oops`),
		heart: jsonHandler(http.StatusTooManyRequests, `{"errors":[]}`),
	}
	c := newTestClient(t, fake.serve(t).URL)

	payload, err := c.FetchDailyMetrics(context.Background(), "access", "2024-05-01")
	require.NoError(t, err)

	assert.Equal(t, 8421, payload.Activity.Summary.Steps.Int())
	assert.Nil(t, payload.Sleep)
	assert.Nil(t, payload.Heart)
}

func TestClient_FetchDailyMetrics_AllCallsSucceed(t *testing.T) {
	fake := &fakeFitbit{
		activity: jsonHandler(http.StatusOK, activityBody),
		sleep:    jsonHandler(http.StatusOK, `{"summary":{"totalMinutesAsleep":431,"totalSleepRecords":1}}`),
		heart: jsonHandler(http.StatusOK, `{"activities-heart":[{"dateTime":"2024-05-01","value":{"restingHeartRate":58,
			"heartRateZones":[{"name":"Out of Range","min":30,"max":98},{"name":"Peak","min":160,"max":220}]}}]}`),
	}
	c := newTestClient(t, fake.serve(t).URL)

	payload, err := c.FetchDailyMetrics(context.Background(), "access", "2024-05-01")
	require.NoError(t, err)

	require.NotNil(t, payload.Sleep)
	assert.Equal(t, 431, payload.Sleep.Summary.TotalMinutesAsleep.Int())
	require.NotNil(t, payload.Heart)
	require.Len(t, payload.Heart.ActivitiesHeart, 1)
	assert.Equal(t, 58, payload.Heart.ActivitiesHeart[0].Value.RestingHeartRate.Int())
	assert.Len(t, payload.Heart.ActivitiesHeart[0].Value.HeartRateZones, 2)
}

func TestFakeFitbit_UndeclaredEndpointIsNotFound(t *testing.T) {
	srv := (&fakeFitbit{}).serve(t)

	resp, err := http.Get(srv.URL + "/1.2/user/-/sleep/date/2024-05-01.json")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestClient_FetchDailyMetrics_MissingOptionalEndpoints(t *testing.T) {
	fake := &fakeFitbit{activity: jsonHandler(http.StatusOK, activityBody)}
	c := newTestClient(t, fake.serve(t).URL)

	payload, err := c.FetchDailyMetrics(context.Background(), "access", "2024-05-01")
	require.NoError(t, err)

	assert.Equal(t, 8421, payload.Activity.Summary.Steps.Int())
	assert.Nil(t, payload.Sleep)
	assert.Nil(t, payload.Heart)
}

func TestClient_FetchDailyMetrics_ActivityFailureIsFatal(t *testing.T) {
	fake := &fakeFitbit{
		activity: jsonHandler(http.StatusForbidden, `{"errors":[{"errorType":"insufficient_scope"}]}`),
		sleep:    jsonHandler(http.StatusOK, `{"summary":{}}`),
		heart:    jsonHandler(http.StatusOK, `{}`),
	}
	c := newTestClient(t, fake.serve(t).URL)

	_, err := c.FetchDailyMetrics(context.Background(), "access", "2024-05-01")
	require.Error(t, err)

	providerErr, ok := errorsAsProvider(err)
	require.True(t, ok)
	assert.Equal(t, domainerrors.KindProviderAPI, providerErr.Kind())
	assert.Equal(t, http.StatusForbidden, providerErr.HTTPCode())
	assert.Contains(t, providerErr.Body, "insufficient_scope")
}

func errorsAsProvider(err error) (*domainerrors.ProviderError, bool) {
	return errors.AsType[*domainerrors.ProviderError](err)
}
