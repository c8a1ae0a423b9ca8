package components

import (
	"locker-hub/internal/domain/reservation"
	"locker-hub/internal/pkg/clock"
	"locker-hub/internal/pkg/config"
	"locker-hub/internal/pkg/secret"
	"locker-hub/internal/usecase"
	"locker-hub/internal/usecase/commands"
	"locker-hub/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		reservation.NewHourlyPriceCalculator,
		fx.As(new(reservation.PriceCalculator)),
	),
	fx.Annotate(
		reservation.NewRandomAccessCodeIssuer,
		fx.As(new(reservation.AccessCodeIssuer)),
	),
	func(cfg config.Config) commands.SecretHasher {
		return secret.NewHasher(cfg.OTP.HashCost)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationUseCase,
		commands.NewLockerUseCase,
		commands.NewVerificationUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewLockerQueries,
		queries.NewReservationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
