package bootstrap

import (
	"locker-hub/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	RedisModule,
	NotifyModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	WorkerModule,
)
