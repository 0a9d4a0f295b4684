package controllers

import (
	"github.com/gin-gonic/gin"

	"qtravel/internal/models/request_models"
	"qtravel/internal/services"
	"qtravel/pkg/utils"
)

type HistoryController struct {
	historyService services.HistoryServiceInterface
}

func NewHistoryController(historyService services.HistoryServiceInterface) *HistoryController {
	return &HistoryController{historyService: historyService}
}

// AddTravelHistory godoc
// @Summary Record a past trip
// @Tags History
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body request_models.CreateTravelHistoryRequest true "History payload"
// @Success 201 {object} utils.APIResponse{data=db_models.TravelHistory}
// @Router /api/users/{id}/history [post]
func (h *HistoryController) AddTravelHistory(c *gin.Context) {
	userID, ok := pathID(c)
	if !ok {
		return
	}
	var req request_models.CreateTravelHistoryRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.historyService.AddTravelHistory(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, entry, "Travel history added successfully")
}

// ListTravelHistory godoc
// @Summary List a user's past trips
// @Tags History
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} utils.APIResponse{data=[]db_models.TravelHistory}
// @Router /api/users/{id}/history [get]
func (h *HistoryController) ListTravelHistory(c *gin.Context) {
	userID, ok := pathID(c)
	if !ok {
		return
	}

	entries, err := h.historyService.ListTravelHistory(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "Travel history fetched successfully")
}

// DeleteTravelHistory godoc
// @Summary Delete a travel history entry
// @Tags History
// @Param id path string true "History entry ID"
// @Success 200 {object} utils.APIResponse
// @Router /api/history/{id} [delete]
func (h *HistoryController) DeleteTravelHistory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.historyService.DeleteTravelHistory(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Travel history deleted successfully")
}

// LogAIInteraction godoc
// @Summary Store an AI prompt and its response
// @Tags AI
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body request_models.CreateAIInteractionRequest true "Interaction payload"
// @Success 201 {object} utils.APIResponse{data=db_models.AIInteraction}
// @Router /api/users/{id}/ai-interactions [post]
func (h *HistoryController) LogAIInteraction(c *gin.Context) {
	userID, ok := pathID(c)
	if !ok {
		return
	}
	var req request_models.CreateAIInteractionRequest
	if !bindJSON(c, &req) {
		return
	}

	interaction, err := h.historyService.LogAIInteraction(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, interaction, "AI interaction logged successfully")
}

// ListAIInteractions godoc
// @Summary List a user's AI interactions
// @Tags AI
// @Produce json
// @Param id path string true "User ID"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse{data=[]db_models.AIInteraction}
// @Router /api/users/{id}/ai-interactions [get]
func (h *HistoryController) ListAIInteractions(c *gin.Context) {
	userID, ok := pathID(c)
	if !ok {
		return
	}
	page, pageSize, ok := pagination(c, 20)
	if !ok {
		return
	}

	interactions, err := h.historyService.ListAIInteractions(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, interactions, "AI interactions fetched successfully")
}
