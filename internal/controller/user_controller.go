package controller

import (
	"errors"
	"net/http"
	"strconv"

	"craftconnect_backend/internal/model"
	"craftconnect_backend/internal/service"
	"craftconnect_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Service *service.UserService
}

func NewUserController(svc *service.UserService) *UserController {
	return &UserController{Service: svc}
}

// GetProfile godoc
// @Summary Get user profile by type and ID
// @Tags Users
// @Produce json
// @Param user_type query string true "artisan or client"
// @Param user_id query int true "User ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/users/profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	userType := ctx.Query("user_type")
	userID, err := strconv.Atoi(ctx.Query("user_id"))
	if userType == "" || err != nil {
		util.BadRequest(ctx, "user_type and user_id are required")
		return
	}

	user, err := c.Service.GetProfile(model.UserType(userType), uint(userID))
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.BadRequest(ctx, err.Error())
		}
		return
	}

	util.Success(ctx, gin.H{"user": user})
}

// UpdateProfile godoc
// @Summary Update the logged-in user's profile
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.ProfileUpdate true "Fields to update"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/users/profile/update [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var update service.ProfileUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.Service.UpdateProfile(claims.UserType, claims.UserID, update)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrCategoryNotFound):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"user": user})
}

// UploadProfilePicture godoc
// @Summary Upload a profile picture for the logged-in user
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "Image file"
// @Success 200 {object} util.Response
// @Router /api/users/profile/picture [post]
func (c *UserController) UploadProfilePicture(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	url, err := c.Service.UploadProfilePicture(ctx.Request.Context(), claims.UserType, claims.UserID, file)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"profilePicture": url})
}

// ListTradeCategories godoc
// @Summary List all trade categories
// @Tags Users
// @Produce json
// @Success 200 {object} util.Response{data=[]model.TradeCategory}
// @Router /api/users/trade-categories [get]
func (c *UserController) ListTradeCategories(ctx *gin.Context) {
	categories, err := c.Service.ListTradeCategories(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, categories)
}

// swagger:model AddTradeCategoryRequest
type AddTradeCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// AddTradeCategory godoc
// @Summary Add a trade category
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body AddTradeCategoryRequest true "Category name"
// @Success 201 {object} util.Response{data=model.TradeCategory}
// @Failure 409 {object} util.Response "Category already exists"
// @Router /api/users/trade-categories/add [post]
func (c *UserController) AddTradeCategory(ctx *gin.Context) {
	var req AddTradeCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	category, err := c.Service.AddTradeCategory(ctx.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, util.ErrCategoryExists) {
			util.Error(ctx, http.StatusConflict, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, category)
}
