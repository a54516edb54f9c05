package main

import (
	"context"
	"log/slog"
	"os"

	"mapnmeet/config"
	"mapnmeet/internal/delivery"
	"mapnmeet/internal/delivery/http"
	"mapnmeet/internal/delivery/http/middleware"
	"mapnmeet/internal/delivery/http/router/handler"
	"mapnmeet/internal/delivery/sweeper"
	"mapnmeet/internal/delivery/worker"
	workerhandler "mapnmeet/internal/delivery/worker/handler"
	"mapnmeet/internal/domain/service"
	"mapnmeet/internal/infra/auth"
	"mapnmeet/internal/infra/auth/google"
	logs "mapnmeet/internal/infra/log"
	"mapnmeet/internal/infra/persistence/postgres"
	"mapnmeet/internal/infra/pubsub"
	"mapnmeet/internal/infra/qrcode"
	"mapnmeet/internal/usecase"
	"mapnmeet/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewActivityRepository,
			postgres.NewFollowRepository,
			postgres.NewNotificationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			google.NewAuthService,
			google.NewOAuthCodeService,
			newQRCodeService,
			newDirectHandler,
			pubsub.NewEventPublisher,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	shareBaseURL := ""
	if cfg.Activities != nil {
		shareBaseURL = cfg.Activities.ShareBaseURL
	}

	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(shareBaseURL, 256, "M")
	}

	return qrcode.NewQRCodeService(shareBaseURL, cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newDirectHandler routes direct-provider events into the notification
// fan-out usecase.
func newDirectHandler(notificationSvc usecase.NotificationUsecase) pubsub.DirectHandler {
	return notificationSvc.FanOut
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewActivityService,
			impl.NewParticipationService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewActivityHandler,
			handler.NewParticipationHandler,
			handler.NewNotificationHandler,
			workerhandler.NewFanoutHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				sweeper.NewSweeper,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
