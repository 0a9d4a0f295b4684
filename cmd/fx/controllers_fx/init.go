package controllers_fx

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"qtravel/internal/api"
	"qtravel/internal/api/controllers"
	"qtravel/internal/config"
	"qtravel/pkg/middleware"
)

var Module = fx.Options(
	fx.Provide(controllers.NewSystemController),
	fx.Provide(provideRouter),
)

type routerParams struct {
	fx.In

	Config      *config.Config
	Logger      zerolog.Logger
	RateLimiter *middleware.RateLimiter `optional:"true"`

	System    *controllers.SystemController
	User      *controllers.UserController
	Trip      *controllers.TripController
	Itinerary *controllers.ItineraryController
	Feedback  *controllers.FeedbackController
	History   *controllers.HistoryController
}

func provideRouter(p routerParams) *gin.Engine {
	if !p.Config.IsLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	return api.NewRouter(api.RouterOptions{
		Logger:             p.Logger,
		CORSAllowedOrigins: p.Config.Server.CORSAllowedOrigins,
		RateLimiter:        p.RateLimiter,
	}, api.Controllers{
		System:    p.System,
		User:      p.User,
		Trip:      p.Trip,
		Itinerary: p.Itinerary,
		Feedback:  p.Feedback,
		History:   p.History,
	})
}
