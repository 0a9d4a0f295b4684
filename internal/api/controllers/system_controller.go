package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"qtravel/internal/models/db_models"
	"qtravel/internal/models/response_models"
)

const (
	APIName    = "QTravel API"
	APIVersion = "0.1.0"
)

// SystemController serves the unversioned routes. Their bodies are plain
// JSON objects, not wrapped in utils.APIResponse.
type SystemController struct{}

func NewSystemController() *SystemController {
	return &SystemController{}
}

// Health godoc
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} response_models.HealthResponse
// @Router / [get]
func (s *SystemController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response_models.HealthResponse{
		Status:  "ok",
		Message: APIName + " is running",
	})
}

// Version godoc
// @Summary API version
// @Tags System
// @Produce json
// @Success 200 {object} response_models.VersionResponse
// @Router /api/version [get]
func (s *SystemController) Version(c *gin.Context) {
	c.JSON(http.StatusOK, response_models.VersionResponse{
		Version:       APIVersion,
		Name:          APIName,
		SchemaVersion: db_models.SchemaVersion,
	})
}

// GenerateItinerary godoc
// @Summary Generate an itinerary
// @Description Placeholder. The request body is ignored and nothing is stored.
// @Tags System
// @Produce json
// @Success 200 {object} response_models.MessageResponse
// @Router /generate-itinerary [post]
func (s *SystemController) GenerateItinerary(c *gin.Context) {
	c.JSON(http.StatusOK, response_models.MessageResponse{
		Message: "Endpoint to be implemented",
	})
}
