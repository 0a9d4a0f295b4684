package feedback_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"qtravel/internal/api/controllers"
	"qtravel/internal/repositories"
	"qtravel/internal/services"
)

var Module = fx.Provide(
	provideFeedbackRepo, provideFeedbackService, provideFeedbackController,
)

func provideFeedbackRepo(db *gorm.DB) repositories.FeedbackRepository {
	return repositories.NewFeedbackRepository(db)
}

func provideFeedbackService(tripRepo repositories.TripRepository, feedbackRepo repositories.FeedbackRepository) services.FeedbackServiceInterface {
	return services.NewFeedbackService(tripRepo, feedbackRepo)
}

func provideFeedbackController(feedbackService services.FeedbackServiceInterface) *controllers.FeedbackController {
	return controllers.NewFeedbackController(feedbackService)
}
