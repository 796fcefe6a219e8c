package bootstrap

import (
	"travel-booking/cmd/bootstrap/components"
	"travel-booking/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule exposes the booking and sweep sections on their own so
// usecases do not depend on the whole Config.
var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.BookingConfig { return cfg.Booking },
		func(cfg config.Config) config.SweepConfig { return cfg.Sweep },
	),
)

// CoreModule is everything but the HTTP surface and the scheduler, so batch
// entrypoints can reuse it.
var CoreModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	RedisModule,
	BrokerModule,
	components.PersistenceModule,
	components.UseCaseModule,
)

var Module = fx.Options(
	CoreModule,
	components.HandlerModule,
	SchedulerModule,
)
