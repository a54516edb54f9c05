package pubsub

import (
	"context"
	"log/slog"

	"mapnmeet/config"
	"mapnmeet/internal/domain/constants"
	"mapnmeet/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DirectHandler consumes an activity event in-process. The fan-out usecase
// provides one so the direct publisher can hand events straight to it
// without a broker in between.
type DirectHandler func(ctx context.Context, event *service.ActivityEvent) error

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc      fx.Lifecycle
	Ctx     context.Context
	Config  *config.Config
	Logger  *slog.Logger
	Handler DirectHandler `optional:"true"`
}

// NewEventPublisher creates an EventPublisher based on configuration.
// Without explicit configuration events are fanned out in-process, which is
// what a single-binary deployment wants.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	provider := constants.PubSubProviderDirect
	if cfg != nil && cfg.Provider != "" {
		provider = cfg.Provider
	}

	var publisher service.EventPublisher
	var err error

	switch provider {
	case constants.PubSubProviderDirect:
		if params.Handler == nil {
			return nil, errors.New("direct provider requires an in-process event handler")
		}
		logger.Info("Using direct in-process publisher for activity events")

		publisher = NewDirectPublisher(params.Handler, logger)

	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for activity events",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", provider)
	}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}
