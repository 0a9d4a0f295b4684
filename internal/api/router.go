package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"qtravel/internal/api/controllers"
	"qtravel/pkg/middleware"
)

type Controllers struct {
	System    *controllers.SystemController
	User      *controllers.UserController
	Trip      *controllers.TripController
	Itinerary *controllers.ItineraryController
	Feedback  *controllers.FeedbackController
	History   *controllers.HistoryController
}

type RouterOptions struct {
	Logger             zerolog.Logger
	CORSAllowedOrigins []string
	// RateLimiter is optional; nil disables limiting.
	RateLimiter *middleware.RateLimiter
}

func NewRouter(opts RouterOptions, ctrls Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(middleware.CORSMiddleware(opts.CORSAllowedOrigins))
	if opts.RateLimiter != nil {
		r.Use(opts.RateLimiter.Middleware())
	}

	RegisterRoutes(r, ctrls)
	return r
}

func RegisterRoutes(r *gin.Engine, ctrls Controllers) {
	r.GET("/", ctrls.System.Health)
	r.POST("/generate-itinerary", ctrls.System.GenerateItinerary)

	apiGroup := r.Group("/api")
	apiGroup.GET("/version", ctrls.System.Version)

	users := apiGroup.Group("/users")
	users.POST("", ctrls.User.CreateUser)
	users.GET("", ctrls.User.ListUsers)
	users.GET("/by-email", ctrls.User.GetUserByEmail)
	users.GET("/:id", ctrls.User.GetUser)
	users.PUT("/:id", ctrls.User.UpdateUser)
	users.DELETE("/:id", ctrls.User.DeleteUser)
	users.POST("/:id/preferences", ctrls.User.AddPreference)
	users.GET("/:id/preferences", ctrls.User.ListPreferences)
	users.POST("/:id/trips", ctrls.Trip.CreateTrip)
	users.GET("/:id/trips", ctrls.Trip.ListTrips)
	users.POST("/:id/history", ctrls.History.AddTravelHistory)
	users.GET("/:id/history", ctrls.History.ListTravelHistory)
	users.POST("/:id/ai-interactions", ctrls.History.LogAIInteraction)
	users.GET("/:id/ai-interactions", ctrls.History.ListAIInteractions)

	apiGroup.DELETE("/preferences/:id", ctrls.User.DeletePreference)

	trips := apiGroup.Group("/trips")
	trips.GET("/:id", ctrls.Trip.GetTrip)
	trips.PUT("/:id", ctrls.Trip.UpdateTrip)
	trips.DELETE("/:id", ctrls.Trip.DeleteTrip)
	trips.GET("/:id/cost", ctrls.Trip.GetTripCost)
	trips.POST("/:id/items", ctrls.Itinerary.AddItem)
	trips.GET("/:id/items", ctrls.Itinerary.ListItems)
	trips.POST("/:id/collaborators", ctrls.Trip.AddCollaborator)
	trips.GET("/:id/collaborators", ctrls.Trip.ListCollaborators)
	trips.GET("/:id/feedback", ctrls.Feedback.ListTripFeedback)

	items := apiGroup.Group("/items")
	items.GET("/:id", ctrls.Itinerary.GetItem)
	items.PUT("/:id", ctrls.Itinerary.UpdateItem)
	items.DELETE("/:id", ctrls.Itinerary.DeleteItem)
	items.PUT("/:id/booking", ctrls.Itinerary.SaveBooking)
	items.GET("/:id/booking", ctrls.Itinerary.GetBooking)

	apiGroup.DELETE("/bookings/:id", ctrls.Itinerary.DeleteBooking)
	apiGroup.DELETE("/collaborators/:id", ctrls.Trip.RemoveCollaborator)
	apiGroup.POST("/feedback", ctrls.Feedback.AddFeedback)
	apiGroup.DELETE("/history/:id", ctrls.History.DeleteTravelHistory)
}
