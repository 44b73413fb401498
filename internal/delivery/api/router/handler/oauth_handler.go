package handler

import (
	"log/slog"
	"net/url"

	"wearsync/config"
	"wearsync/internal/delivery/api/response"
	deliverycontext "wearsync/internal/delivery/context"
	"wearsync/internal/errors"
	"wearsync/internal/infra/auth"
	"wearsync/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OAuthHandlerParams holds dependencies for OAuthHandler, injected by Fx.
type OAuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthorizationUsecase
	Cookie *auth.PendingCookie
	Config *config.Config
	Logger *slog.Logger
}

// OAuthHandler drives the browser through the provider consent round trip.
type OAuthHandler struct {
	authUC          usecase.AuthorizationUsecase
	cookie          *auth.PendingCookie
	successRedirect string
	logger          *slog.Logger
}

// NewOAuthHandler is the constructor for OAuthHandler
func NewOAuthHandler(params OAuthHandlerParams) (*OAuthHandler, error) {
	successRedirect, err := buildSuccessRedirect(params.Config.Fitbit.SuccessRedirectURL)
	if err != nil {
		return nil, err
	}

	return &OAuthHandler{
		authUC:          params.AuthUC,
		cookie:          params.Cookie,
		successRedirect: successRedirect,
		logger:          params.Logger,
	}, nil
}

// Start handles GET /auth/fitbit/start?user_id=
func (h *OAuthHandler) Start(c echo.Context) error {
	authReq, err := h.authUC.Start(c.Request().Context(), c.QueryParam("user_id"))
	if err != nil {
		return err
	}

	cookie, err := h.cookie.Encode(authReq.Pending)
	if err != nil {
		return err
	}
	c.SetCookie(cookie)

	return response.Redirect(c, authReq.RedirectURL)
}

// Callback handles GET /auth/fitbit/callback?code=&state=
func (h *OAuthHandler) Callback(c echo.Context) error {
	ctx := c.Request().Context()

	// The pending attempt is single use, whatever happens next.
	c.SetCookie(h.cookie.Clear())

	pending, err := h.cookie.Decode(c.Request())
	if err != nil {
		return err
	}

	userID, err := h.authUC.Callback(ctx, &usecase.CallbackInput{
		Pending: pending,
		Code:    c.QueryParam("code"),
		State:   c.QueryParam("state"),
	})
	if err != nil {
		return err
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).InfoContext(ctx, "Fitbit connected", slog.String("userID", userID))

	return response.Redirect(c, h.successRedirect)
}

// buildSuccessRedirect appends the markers the UI uses to open the wearable tab and start a sync.
func buildSuccessRedirect(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", errors.Wrap(err, "parse fitbit success redirect url")
	}

	q := u.Query()
	q.Set("targetTab", "tab-wearable")
	q.Set("autoSync", "1")
	q.Set("provider", "fitbit")
	u.RawQuery = q.Encode()

	return u.String(), nil
}
