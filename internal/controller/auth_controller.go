package controller

import (
	"errors"
	"net/http"

	"craftconnect_backend/internal/model"
	"craftconnect_backend/internal/service"
	"craftconnect_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
	UserService *service.UserService
}

func NewAuthController(authService *service.AuthService, userService *service.UserService) *AuthController {
	return &AuthController{
		AuthService: authService,
		UserService: userService,
	}
}

// swagger:model ArtisanRegisterRequest
type ArtisanRegisterRequest struct {
	FirstName       string `json:"firstName" binding:"required"`
	LastName        string `json:"lastName" binding:"required"`
	PhoneNumber     string `json:"phoneNumber" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	TradeCategoryID *uint  `json:"tradeCategoryId"`
	Location        string `json:"location"`
	Language        string `json:"language"`
	Bio             string `json:"bio"`
	BusinessName    string `json:"businessName"`
}

// RegisterArtisan godoc
// @Summary Register a new artisan
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body ArtisanRegisterRequest true "Artisan registration info"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response "Email or phone already registered"
// @Router /api/users/artisan/register [post]
func (c *AuthController) RegisterArtisan(ctx *gin.Context) {
	var req ArtisanRegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	artisan := &model.Artisan{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		PhoneNumber:     req.PhoneNumber,
		Email:           req.Email,
		Password:        req.Password,
		TradeCategoryID: req.TradeCategoryID,
		Location:        req.Location,
		Language:        req.Language,
		Bio:             req.Bio,
		BusinessName:    req.BusinessName,
	}

	if err := c.AuthService.RegisterArtisan(artisan); err != nil {
		if errors.Is(err, util.ErrEmailRegistered) || errors.Is(err, util.ErrPhoneRegistered) {
			util.Error(ctx, http.StatusConflict, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{
		"id":       artisan.ID,
		"fullName": artisan.FirstName + " " + artisan.LastName,
		"location": artisan.Location,
		"language": artisan.Language,
	})
}

// swagger:model ClientRegisterRequest
type ClientRegisterRequest struct {
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	PhoneNumber  string `json:"phoneNumber" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	Location     string `json:"location"`
	Language     string `json:"language"`
	Bio          string `json:"bio"`
	BusinessName string `json:"businessName"`
}

// RegisterClient godoc
// @Summary Register a new client
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body ClientRegisterRequest true "Client registration info"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response "Email or phone already registered"
// @Router /api/users/client/register [post]
func (c *AuthController) RegisterClient(ctx *gin.Context) {
	var req ClientRegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	client := &model.Client{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PhoneNumber:  req.PhoneNumber,
		Email:        req.Email,
		Password:     req.Password,
		Location:     req.Location,
		Language:     req.Language,
		Bio:          req.Bio,
		BusinessName: req.BusinessName,
	}

	if err := c.AuthService.RegisterClient(client); err != nil {
		if errors.Is(err, util.ErrEmailRegistered) || errors.Is(err, util.ErrPhoneRegistered) {
			util.Error(ctx, http.StatusConflict, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{
		"id":       client.ID,
		"fullName": client.FirstName + " " + client.LastName,
		"location": client.Location,
		"language": client.Language,
	})
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Login for both artisans and clients
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response "Invalid password"
// @Failure 404 {object} util.Response "User not found"
// @Router /api/users/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.Error(ctx, http.StatusNotFound, err.Error())
		case errors.Is(err, util.ErrInvalidCredentials):
			util.Error(ctx, http.StatusUnauthorized, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}

// Me godoc
// @Summary Profile of the logged-in user
// @Tags Auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/users/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.UserService.GetProfile(claims.UserType, claims.UserID)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, gin.H{"userType": claims.UserType, "user": user})
}
