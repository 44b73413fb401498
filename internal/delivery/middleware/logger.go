package middleware

import (
	"log/slog"
	"net/url"
	"time"

	"wearsync/config"
	deliverycontext "wearsync/internal/delivery/context"
	domainerrors "wearsync/internal/domain/errors"
	"wearsync/internal/errors"

	"github.com/labstack/echo/v4"
)

// queryParamsToRedact carry OAuth secrets on the callback URL.
var queryParamsToRedact = []string{"code", "state"}

// LoggerMiddleware logs one line per request; successful requests only in debug mode.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			// The error handler has not written yet; report what it will write.
			if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
				status = httpErr.Code
			} else {
				status = domainerrors.HTTPStatusOf(err)
			}
		}

		if m.debug || status >= 400 {
			m.logRequest(c, start, status, err)
		}

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, status int, err error) {
	req := c.Request()

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.String("route", c.Path()),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	if req.URL.RawQuery != "" {
		fields = append(fields, slog.String("query", redactQuery(req.URL.Query())))
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if status >= 400 {
		logLevel = slog.LevelWarn
	}
	if status >= 500 {
		logLevel = slog.LevelError
	}

	ctx := req.Context()
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).LogAttrs(ctx, logLevel, "HTTP Request", fields...)
}

func redactQuery(values url.Values) string {
	for _, key := range queryParamsToRedact {
		if values.Has(key) {
			values.Set(key, "redacted")
		}
	}

	return values.Encode()
}
