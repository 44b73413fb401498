// Package pubsub publishes daily sync events to Google Pub/Sub, to a local push endpoint, or nowhere.
package pubsub

import (
	"context"
	"log/slog"

	"wearsync/config"
	"wearsync/internal/domain/lifecycle"
	"wearsync/internal/domain/service"
	"wearsync/internal/errors"

	"go.uber.org/fx"
)

// Provider names accepted in pubsub.provider.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

const (
	attrEventType = "event_type"
	attrUserID    = "user_id"
	attrSource    = "source"
	attrDate      = "date"
	attrRequestID = "request_id"

	eventTypeDailySynced = "wearable.daily_synced"
)

// noopPublisher drops events when no broker is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishDailySynced(ctx context.Context, event *service.DailySyncedEvent) error {
	p.logger.DebugContext(ctx, "Event publishing disabled, dropping daily synced event",
		slog.String("event_id", event.EventID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the publisher named by pubsub.provider.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	var publisher service.EventPublisher

	switch cfg.Provider {
	case ProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub", slog.String("endpoint", cfg.LocalEndpoint))

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case ProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("project ID and topic ID are required for google provider")
		}

		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		google, err := NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}
		publisher = google

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.InfoContext(ctx, "Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// eventAttributes are the message attributes subscribers filter on.
func eventAttributes(event *service.DailySyncedEvent) map[string]string {
	attributes := map[string]string{
		attrEventType: eventTypeDailySynced,
		attrUserID:    event.UserID,
		attrSource:    event.Source,
		attrDate:      event.Date,
	}
	if event.RequestID != "" {
		attributes[attrRequestID] = event.RequestID
	}

	return attributes
}
