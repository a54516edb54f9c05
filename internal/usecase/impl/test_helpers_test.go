package impl

import (
	"io"
	"log/slog"
	"time"

	"mapnmeet/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Activities: &config.ActivitiesConfig{
			Retention: 30 * 24 * time.Hour,
		},
		Notifications: &config.NotificationsConfig{
			TTL:      24 * time.Hour,
			PageSize: 10,
		},
	}
}
