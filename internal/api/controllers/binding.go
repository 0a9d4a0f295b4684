package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"qtravel/pkg/utils"
)

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	return true
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		utils.HandleServiceError(c, err)
		return uuid.Nil, false
	}
	return id, true
}

func pagination(c *gin.Context, defaultSize int) (int, int, bool) {
	page, pageSize, err := utils.ParsePagination(c, defaultSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return 0, 0, false
	}
	return page, pageSize, true
}
