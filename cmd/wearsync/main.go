package main

import (
	"context"
	"log/slog"
	"os"

	"wearsync/config"
	"wearsync/internal/delivery"
	"wearsync/internal/delivery/api"
	"wearsync/internal/delivery/api/router/handler"
	"wearsync/internal/infra/auth"
	"wearsync/internal/infra/crypto"
	logs "wearsync/internal/infra/log"
	"wearsync/internal/infra/metrics"
	"wearsync/internal/infra/persistence/postgres"
	"wearsync/internal/infra/provider/fitbit"
	"wearsync/internal/infra/pubsub"
	"wearsync/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.New,
		metrics.NewRecorder,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewConnectionRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			crypto.New,
			fitbit.NewOAuthConfig,
			fitbit.NewClient,
			auth.NewAuthorizationFlow,
			auth.NewPendingCookie,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewConnectionService,
			impl.NewAuthorizationService,
			impl.NewSyncService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewOAuthHandler,
			handler.NewWearableHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, d := range params.Deliveries {
		go func() {
			if err := d.Serve(ctx); err != nil {
				params.Logger.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
