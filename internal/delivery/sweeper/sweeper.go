// Package sweeper hosts the retention sweep loop: read notifications past
// their TTL and activities past their expiry horizon are hard-deleted on a
// fixed interval.
package sweeper

import (
	"context"
	"log/slog"
	"time"

	"mapnmeet/config"
	"mapnmeet/internal/delivery"
	"mapnmeet/internal/usecase"

	"go.uber.org/fx"
)

type sweeper struct {
	notificationSvc usecase.NotificationUsecase
	interval        time.Duration
	logger          *slog.Logger
	stop            chan struct{}
}

// SweeperParams holds dependencies for the sweeper, injected by Fx.
type SweeperParams struct {
	fx.In

	Lc              fx.Lifecycle
	Cfg             *config.Config
	Logger          *slog.Logger
	NotificationSvc usecase.NotificationUsecase
}

// NewSweeper creates the retention sweep delivery.
func NewSweeper(params SweeperParams) (delivery.Delivery, error) {
	interval := time.Hour
	if params.Cfg != nil && params.Cfg.Notifications != nil && params.Cfg.Notifications.SweepInterval > 0 {
		interval = params.Cfg.Notifications.SweepInterval
	}

	s := &sweeper{
		notificationSvc: params.NotificationSvc,
		interval:        interval,
		logger:          params.Logger,
		stop:            make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			close(s.stop)

			return nil
		},
	})

	return s, nil
}

// Serve runs the sweep loop until shutdown. One sweep runs immediately so a
// restarted instance does not wait a full interval to catch up.
func (s *sweeper) Serve(ctx context.Context) error {
	s.logger.Info("Starting retention sweeper", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweep(ctx)

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-s.stop:
			s.logger.Info("Stopping retention sweeper")

			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *sweeper) sweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	if _, err := s.notificationSvc.PurgeExpired(sweepCtx, time.Now()); err != nil {
		s.logger.Error("Retention sweep failed", slog.Any("error", err))
	}
}
