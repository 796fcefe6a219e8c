package bootstrap

import (
	"context"
	"log/slog"

	"travel-booking/internal/infra/notify"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewNotifier,
	),
)

// NewNotifier publishes lifecycle events to AMQP when a broker is configured
// and writes them to the log otherwise.
func NewNotifier(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (commands.Notifier, error) {
	if !cfg.Broker.Enabled {
		return notify.NewLogNotifier(logger, clk), nil
	}

	broker, err := notify.Dial(cfg.Broker)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return broker.Close()
		},
	})
	return notify.NewAMQPNotifier(broker.Channel, cfg.Broker.Queue, clk), nil
}
