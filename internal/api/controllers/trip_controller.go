package controllers

import (
	"github.com/gin-gonic/gin"

	"qtravel/internal/models/request_models"
	"qtravel/internal/services"
	"qtravel/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{tripService: tripService}
}

// CreateTrip godoc
// @Summary Create a trip for a user
// @Tags Trips
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body request_models.TripRequest true "Trip payload"
// @Success 201 {object} utils.APIResponse{data=db_models.Trip}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/users/{id}/trips [post]
func (t *TripController) CreateTrip(c *gin.Context) {
	userID, ok := pathID(c)
	if !ok {
		return
	}
	var req request_models.TripRequest
	if !bindJSON(c, &req) {
		return
	}

	trip, err := t.tripService.CreateTrip(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, trip, "Trip created successfully")
}

// ListTrips godoc
// @Summary List a user's trips
// @Tags Trips
// @Produce json
// @Param id path string true "User ID"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse{data=[]db_models.Trip}
// @Router /api/users/{id}/trips [get]
func (t *TripController) ListTrips(c *gin.Context) {
	userID, ok := pathID(c)
	if !ok {
		return
	}
	page, pageSize, ok := pagination(c, 10)
	if !ok {
		return
	}

	trips, err := t.tripService.ListTrips(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

// GetTrip godoc
// @Summary Get a trip with its owner, items, bookings and collaborators
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse{data=db_models.Trip}
// @Failure 404 {object} utils.APIResponse
// @Router /api/trips/{id} [get]
func (t *TripController) GetTrip(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	trip, err := t.tripService.GetTrip(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

// UpdateTrip godoc
// @Summary Replace a trip's fields
// @Tags Trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body request_models.TripRequest true "Trip payload"
// @Success 200 {object} utils.APIResponse{data=db_models.Trip}
// @Failure 404 {object} utils.APIResponse
// @Router /api/trips/{id} [put]
func (t *TripController) UpdateTrip(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req request_models.TripRequest
	if !bindJSON(c, &req) {
		return
	}

	trip, err := t.tripService.UpdateTrip(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip updated successfully")
}

// DeleteTrip godoc
// @Summary Delete a trip with its items, bookings, collaborators and feedback
// @Tags Trips
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/trips/{id} [delete]
func (t *TripController) DeleteTrip(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := t.tripService.DeleteTrip(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}

// GetTripCost godoc
// @Summary Sum the costs of a trip's itinerary items
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse{data=response_models.TripCostResponse}
// @Failure 404 {object} utils.APIResponse
// @Router /api/trips/{id}/cost [get]
func (t *TripController) GetTripCost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	cost, err := t.tripService.GetTripCost(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cost, "Trip cost calculated successfully")
}

// AddCollaborator godoc
// @Summary Invite a collaborator to a trip
// @Tags Collaborators
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body request_models.CreateCollaboratorRequest true "Collaborator payload"
// @Success 201 {object} utils.APIResponse{data=db_models.TripCollaborator}
// @Failure 400 {object} utils.APIResponse
// @Router /api/trips/{id}/collaborators [post]
func (t *TripController) AddCollaborator(c *gin.Context) {
	tripID, ok := pathID(c)
	if !ok {
		return
	}
	var req request_models.CreateCollaboratorRequest
	if !bindJSON(c, &req) {
		return
	}

	collaborator, err := t.tripService.AddCollaborator(c.Request.Context(), tripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, collaborator, "Collaborator added successfully")
}

// ListCollaborators godoc
// @Summary List a trip's collaborators
// @Tags Collaborators
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse{data=[]db_models.TripCollaborator}
// @Router /api/trips/{id}/collaborators [get]
func (t *TripController) ListCollaborators(c *gin.Context) {
	tripID, ok := pathID(c)
	if !ok {
		return
	}

	collaborators, err := t.tripService.ListCollaborators(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, collaborators, "Collaborators fetched successfully")
}

// RemoveCollaborator godoc
// @Summary Remove a collaborator
// @Tags Collaborators
// @Param id path string true "Collaborator ID"
// @Success 200 {object} utils.APIResponse
// @Router /api/collaborators/{id} [delete]
func (t *TripController) RemoveCollaborator(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := t.tripService.RemoveCollaborator(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Collaborator removed successfully")
}
