package controllers

import (
	"github.com/gin-gonic/gin"

	"qtravel/internal/models/request_models"
	"qtravel/internal/services"
	"qtravel/pkg/utils"
)

type FeedbackController struct {
	feedbackService services.FeedbackServiceInterface
}

func NewFeedbackController(feedbackService services.FeedbackServiceInterface) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

// AddFeedback godoc
// @Summary Rate a trip
// @Description rating must be between 1 and 5.
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body request_models.CreateFeedbackRequest true "Feedback payload"
// @Success 201 {object} utils.APIResponse{data=db_models.Feedback}
// @Failure 400 {object} utils.APIResponse
// @Router /api/feedback [post]
func (f *FeedbackController) AddFeedback(c *gin.Context) {
	var req request_models.CreateFeedbackRequest
	if !bindJSON(c, &req) {
		return
	}

	feedback, err := f.feedbackService.AddFeedback(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, feedback, "Feedback added successfully")
}

// ListTripFeedback godoc
// @Summary List feedback for a trip
// @Tags Feedback
// @Produce json
// @Param id path string true "Trip ID"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse{data=[]db_models.Feedback}
// @Router /api/trips/{id}/feedback [get]
func (f *FeedbackController) ListTripFeedback(c *gin.Context) {
	tripID, ok := pathID(c)
	if !ok {
		return
	}
	page, pageSize, ok := pagination(c, 10)
	if !ok {
		return
	}

	feedback, err := f.feedbackService.ListTripFeedback(c.Request.Context(), tripID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, feedback, "Feedback fetched successfully")
}
