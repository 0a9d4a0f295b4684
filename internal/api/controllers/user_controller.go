package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"qtravel/internal/models/request_models"
	"qtravel/internal/services"
	"qtravel/pkg/utils"
)

type UserController struct {
	userService services.UserServiceInterface
}

func NewUserController(userService services.UserServiceInterface) *UserController {
	return &UserController{userService: userService}
}

// CreateUser godoc
// @Summary Create a user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.CreateUserRequest true "User payload"
// @Success 201 {object} utils.APIResponse{data=db_models.User}
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/users [post]
func (u *UserController) CreateUser(c *gin.Context) {
	var req request_models.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := u.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, user, "User created successfully")
}

// ListUsers godoc
// @Summary List users
// @Tags Users
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse{data=[]db_models.User}
// @Router /api/users [get]
func (u *UserController) ListUsers(c *gin.Context) {
	page, pageSize, ok := pagination(c, 20)
	if !ok {
		return
	}

	users, err := u.userService.ListUsers(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, users, "Users fetched successfully")
}

// GetUser godoc
// @Summary Get a user with preferences, trips, feedback, history and AI logs
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} utils.APIResponse{data=db_models.User}
// @Failure 404 {object} utils.APIResponse
// @Router /api/users/{id} [get]
func (u *UserController) GetUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := u.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "User fetched successfully")
}

// GetUserByEmail godoc
// @Summary Find a user by email
// @Tags Users
// @Produce json
// @Param email query string true "Email"
// @Success 200 {object} utils.APIResponse{data=db_models.User}
// @Failure 404 {object} utils.APIResponse
// @Router /api/users/by-email [get]
func (u *UserController) GetUserByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		utils.RespondError(c, http.StatusBadRequest, "Email is required")
		return
	}

	user, err := u.userService.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "User fetched successfully")
}

// UpdateUser godoc
// @Summary Update a user
// @Description Only the fields present in the body are changed.
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body request_models.UpdateUserRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=db_models.User}
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/users/{id} [put]
func (u *UserController) UpdateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req request_models.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := u.userService.UpdateUser(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "User updated successfully")
}

// DeleteUser godoc
// @Summary Delete a user and everything it owns
// @Tags Users
// @Param id path string true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/users/{id} [delete]
func (u *UserController) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := u.userService.DeleteUser(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "User deleted successfully")
}

// AddPreference godoc
// @Summary Add a weighted preference
// @Tags Preferences
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body request_models.CreatePreferenceRequest true "Preference payload"
// @Success 201 {object} utils.APIResponse{data=db_models.UserPreference}
// @Failure 400 {object} utils.APIResponse
// @Router /api/users/{id}/preferences [post]
func (u *UserController) AddPreference(c *gin.Context) {
	userID, ok := pathID(c)
	if !ok {
		return
	}
	var req request_models.CreatePreferenceRequest
	if !bindJSON(c, &req) {
		return
	}

	pref, err := u.userService.AddPreference(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, pref, "Preference added successfully")
}

// ListPreferences godoc
// @Summary List a user's preferences
// @Tags Preferences
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} utils.APIResponse{data=[]db_models.UserPreference}
// @Router /api/users/{id}/preferences [get]
func (u *UserController) ListPreferences(c *gin.Context) {
	userID, ok := pathID(c)
	if !ok {
		return
	}

	prefs, err := u.userService.ListPreferences(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, prefs, "Preferences fetched successfully")
}

// DeletePreference godoc
// @Summary Delete a preference
// @Tags Preferences
// @Param id path string true "Preference ID"
// @Success 200 {object} utils.APIResponse
// @Router /api/preferences/{id} [delete]
func (u *UserController) DeletePreference(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := u.userService.DeletePreference(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Preference deleted successfully")
}
