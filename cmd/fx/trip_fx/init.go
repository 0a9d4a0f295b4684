package trip_fx

import (
	"go.uber.org/fx"

	"qtravel/internal/api/controllers"
	"qtravel/internal/repositories"
	"qtravel/internal/services"
)

var Module = fx.Provide(
	repositories.NewTripRepository,
	repositories.NewCollaboratorRepository,
	services.NewTripService,
	controllers.NewTripController,
)
