package fitbit

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"wearsync/config"
	deliverycontext "wearsync/internal/delivery/context"
	"wearsync/internal/domain/entity"
	domainerrors "wearsync/internal/domain/errors"
	"wearsync/internal/domain/service"
	"wearsync/internal/errors"

	"go.uber.org/fx"
	"golang.org/x/oauth2"
	"golang.org/x/sync/errgroup"
)

const (
	// defaultExpiresIn applies when the token endpoint omits expires_in.
	defaultExpiresIn = 28800
	maxResponseBytes = 1 << 20

	opExchange   = "token_exchange"
	opRefresh    = "token_refresh"
	opActivities = "activities"
	opSleep      = "sleep"
	opHeartRate  = "heart_rate"
)

// ClientParams holds dependencies for the Fitbit client, injected by Fx.
type ClientParams struct {
	fx.In

	Config   *config.Config
	OAuth    *oauth2.Config
	Logger   *slog.Logger
	Recorder service.MetricsRecorder
}

type client struct {
	oauthCfg   *oauth2.Config
	apiBaseURL string
	httpClient *http.Client
	timeout    time.Duration
	logger     *slog.Logger
	recorder   service.MetricsRecorder
	now        func() time.Time
}

// NewClient creates the Fitbit implementation of service.WearableProvider.
func NewClient(params ClientParams) service.WearableProvider {
	return &client{
		oauthCfg:   params.OAuth,
		apiBaseURL: strings.TrimRight(params.Config.Fitbit.APIBaseURL, "/"),
		httpClient: &http.Client{},
		timeout:    params.Config.Fitbit.RequestTimeout,
		logger:     params.Logger,
		recorder:   params.Recorder,
		now:        time.Now,
	}
}

func (c *client) Provider() entity.ProviderType {
	return entity.ProviderFitbit
}

// ExchangeCode posts the code and PKCE verifier to the token endpoint.
func (c *client) ExchangeCode(ctx context.Context, code, verifier string) (*entity.TokenGrant, error) {
	if code == "" {
		return nil, errors.WithStack(domainerrors.NewValidationError("missing code"))
	}

	ctx, cancel := c.tokenContext(ctx)
	defer cancel()

	start := c.now()
	token, err := c.oauthCfg.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		status, body := retrieveErrorDetails(err)
		c.recorder.ObserveProviderCall(opExchange, status, time.Since(start))

		return nil, errors.WithStack(domainerrors.NewExchangeError(status, body, err))
	}
	c.recorder.ObserveProviderCall(opExchange, http.StatusOK, time.Since(start))

	return c.toGrant(token, ""), nil
}

// RefreshToken runs the refresh_token grant. The old refresh token survives when none is rotated in.
func (c *client) RefreshToken(ctx context.Context, refreshToken string) (*entity.TokenGrant, error) {
	if refreshToken == "" {
		return nil, errors.WithStack(domainerrors.NewRefreshError(0, "no refresh token stored", nil))
	}

	ctx, cancel := c.tokenContext(ctx)
	defer cancel()

	start := c.now()
	// An empty access token is never valid, so the source always refreshes.
	token, err := c.oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken}).Token()
	if err != nil {
		status, body := retrieveErrorDetails(err)
		c.recorder.ObserveProviderCall(opRefresh, status, time.Since(start))

		return nil, errors.WithStack(domainerrors.NewRefreshError(status, body, err))
	}
	c.recorder.ObserveProviderCall(opRefresh, http.StatusOK, time.Since(start))

	return c.toGrant(token, refreshToken), nil
}

// FetchDailyMetrics runs the three reads concurrently. Sleep and heart-rate failures are logged and dropped.
func (c *client) FetchDailyMetrics(ctx context.Context, accessToken, date string) (*entity.RawProviderPayload, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)
	day := url.PathEscape(date)
	payload := &entity.RawProviderPayload{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return c.getJSON(gctx, accessToken, opActivities, "/1/user/-/activities/date/"+day+".json", &payload.Activity)
	})

	g.Go(func() error {
		var sleep entity.SleepPayload
		if err := c.getJSON(gctx, accessToken, opSleep, "/1.2/user/-/sleep/date/"+day+".json", &sleep); err != nil {
			logger.WarnContext(ctx, "Sleep data unavailable, omitting", slog.String("date", date), slog.Any("error", err))

			return nil
		}
		payload.Sleep = &sleep

		return nil
	})

	g.Go(func() error {
		var heart entity.HeartPayload
		if err := c.getJSON(gctx, accessToken, opHeartRate, "/1/user/-/activities/heart/date/"+day+"/1d.json", &heart); err != nil {
			logger.WarnContext(ctx, "Heart rate data unavailable, omitting", slog.String("date", date), slog.Any("error", err))

			return nil
		}
		payload.Heart = &heart

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return payload, nil
}

// getJSON performs one bounded bearer-authenticated GET and decodes a 200 answer into out.
func (c *client) getJSON(ctx context.Context, accessToken, operation, path string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	apiClient := oauth2.NewClient(
		context.WithValue(ctx, oauth2.HTTPClient, c.httpClient),
		oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"}),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBaseURL+path, nil)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	start := c.now()
	resp, err := apiClient.Do(req)
	if err != nil {
		c.recorder.ObserveProviderCall(operation, 0, time.Since(start))

		return errors.WithStack(domainerrors.NewProviderAPIError(0, err.Error(), err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	c.recorder.ObserveProviderCall(operation, resp.StatusCode, time.Since(start))
	if err != nil {
		return errors.WithStack(domainerrors.NewProviderAPIError(resp.StatusCode, "read response body", err))
	}

	if resp.StatusCode != http.StatusOK {
		return errors.WithStack(domainerrors.NewProviderAPIError(resp.StatusCode, string(body), nil))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.WithStack(domainerrors.NewProviderAPIError(http.StatusBadGateway, "undecodable "+operation+" response", err))
	}

	return nil
}

func (c *client) tokenContext(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)

	return context.WithValue(ctx, oauth2.HTTPClient, c.httpClient), cancel
}

func (c *client) toGrant(token *oauth2.Token, previousRefresh string) *entity.TokenGrant {
	refresh := token.RefreshToken
	if refresh == "" {
		refresh = previousRefresh
	}

	expiresIn := int64(defaultExpiresIn)
	if !token.Expiry.IsZero() {
		expiresIn = int64(math.Round(token.Expiry.Sub(c.now()).Seconds()))
	}

	return &entity.TokenGrant{
		AccessToken:    token.AccessToken,
		RefreshToken:   refresh,
		ExpiresIn:      expiresIn,
		Scope:          extraString(token, "scope"),
		ProviderUserID: extraString(token, "user_id"),
	}
}

func extraString(token *oauth2.Token, key string) string {
	if v, ok := token.Extra(key).(string); ok {
		return v
	}

	return ""
}

// retrieveErrorDetails extracts the token endpoint status and body; transport errors have status 0.
func retrieveErrorDetails(err error) (int, string) {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		status := 0
		if retrieveErr.Response != nil {
			status = retrieveErr.Response.StatusCode
		}

		return status, string(retrieveErr.Body)
	}

	return 0, err.Error()
}
