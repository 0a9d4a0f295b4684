package controllers

import (
	"github.com/gin-gonic/gin"

	"qtravel/internal/models/request_models"
	"qtravel/internal/services"
	"qtravel/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{itineraryService: itineraryService}
}

// AddItem godoc
// @Summary Add an itinerary item to a trip
// @Description type must be one of flight, hotel, activity, restaurant, transport.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body request_models.ItineraryItemRequest true "Item payload"
// @Success 201 {object} utils.APIResponse{data=db_models.ItineraryItem}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/trips/{id}/items [post]
func (i *ItineraryController) AddItem(c *gin.Context) {
	tripID, ok := pathID(c)
	if !ok {
		return
	}
	var req request_models.ItineraryItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := i.itineraryService.AddItem(c.Request.Context(), tripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, item, "Itinerary item added successfully")
}

// ListItems godoc
// @Summary List a trip's itinerary items
// @Tags Itinerary
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse{data=[]db_models.ItineraryItem}
// @Router /api/trips/{id}/items [get]
func (i *ItineraryController) ListItems(c *gin.Context) {
	tripID, ok := pathID(c)
	if !ok {
		return
	}

	items, err := i.itineraryService.ListItems(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Itinerary items fetched successfully")
}

// GetItem godoc
// @Summary Get an itinerary item with its booking
// @Tags Itinerary
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} utils.APIResponse{data=db_models.ItineraryItem}
// @Failure 404 {object} utils.APIResponse
// @Router /api/items/{id} [get]
func (i *ItineraryController) GetItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	item, err := i.itineraryService.GetItem(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, item, "Itinerary item fetched successfully")
}

// UpdateItem godoc
// @Summary Replace an itinerary item's fields
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body request_models.ItineraryItemRequest true "Item payload"
// @Success 200 {object} utils.APIResponse{data=db_models.ItineraryItem}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/items/{id} [put]
func (i *ItineraryController) UpdateItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req request_models.ItineraryItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := i.itineraryService.UpdateItem(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, item, "Itinerary item updated successfully")
}

// DeleteItem godoc
// @Summary Delete an itinerary item and its booking
// @Tags Itinerary
// @Param id path string true "Item ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/items/{id} [delete]
func (i *ItineraryController) DeleteItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := i.itineraryService.DeleteItem(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary item deleted successfully")
}

// SaveBooking godoc
// @Summary Create or replace the booking of an itinerary item
// @Description status must be one of pending, confirmed, cancelled.
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body request_models.BookingRequest true "Booking payload"
// @Success 200 {object} utils.APIResponse{data=db_models.Booking}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/items/{id}/booking [put]
func (i *ItineraryController) SaveBooking(c *gin.Context) {
	itemID, ok := pathID(c)
	if !ok {
		return
	}
	var req request_models.BookingRequest
	if !bindJSON(c, &req) {
		return
	}

	booking, err := i.itineraryService.SaveBooking(c.Request.Context(), itemID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, booking, "Booking saved successfully")
}

// GetBooking godoc
// @Summary Get the booking of an itinerary item
// @Tags Bookings
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} utils.APIResponse{data=db_models.Booking}
// @Failure 404 {object} utils.APIResponse
// @Router /api/items/{id}/booking [get]
func (i *ItineraryController) GetBooking(c *gin.Context) {
	itemID, ok := pathID(c)
	if !ok {
		return
	}

	booking, err := i.itineraryService.GetBooking(c.Request.Context(), itemID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, booking, "Booking fetched successfully")
}

// DeleteBooking godoc
// @Summary Delete a booking
// @Tags Bookings
// @Param id path string true "Booking ID"
// @Success 200 {object} utils.APIResponse
// @Router /api/bookings/{id} [delete]
func (i *ItineraryController) DeleteBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := i.itineraryService.DeleteBooking(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Booking deleted successfully")
}
