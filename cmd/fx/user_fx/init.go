package user_fx

import (
	"go.uber.org/fx"

	"qtravel/internal/api/controllers"
	"qtravel/internal/repositories"
	"qtravel/internal/services"
)

var Module = fx.Provide(
	repositories.NewUserRepository,
	repositories.NewPreferenceRepository,
	services.NewUserService,
	controllers.NewUserController,
)
