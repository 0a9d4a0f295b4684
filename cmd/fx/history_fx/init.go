package history_fx

import (
	"go.uber.org/fx"

	"qtravel/internal/api/controllers"
	"qtravel/internal/repositories"
	"qtravel/internal/services"
)

var Module = fx.Provide(
	repositories.NewTravelHistoryRepository,
	repositories.NewAIInteractionRepository,
	services.NewHistoryService,
	controllers.NewHistoryController,
)
