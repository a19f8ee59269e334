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

type AssessmentController struct {
	Service *service.AssessmentService
}

func NewAssessmentController(svc *service.AssessmentService) *AssessmentController {
	return &AssessmentController{Service: svc}
}

// StartAssessment godoc
// @Summary Start AI assessment
// @Description Generates a 5-question multiple-choice test for the given trade and creates a pending attempt
// @Tags Assessment
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.StartAssessmentRequest true "Trade category and artisan ID"
// @Success 201 {object} util.Response{data=model.Assessment}
// @Failure 400 {object} util.Response "Missing trade_category or artisan"
// @Failure 502 {object} util.Response "Upstream AI failure or invalid AI JSON"
// @Failure 500 {object} util.Response "AI output violates the question schema"
// @Router /api/assessment/start [post]
func (c *AssessmentController) StartAssessment(ctx *gin.Context) {
	var req service.StartAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	// Artisans may only start attempts for themselves.
	if user := util.GetUserFromContext(ctx); user != nil && user.UserType == model.ArtisanUser && user.UserID != req.ArtisanID {
		util.Forbidden(ctx)
		return
	}

	assessment, err := c.Service.StartAssessment(ctx.Request.Context(), req)
	if err != nil {
		c.renderError(ctx, err, true)
		return
	}

	util.Created(ctx, assessment)
}

// SubmitAssessment godoc
// @Summary Submit completed AI assessment
// @Description Scores the submitted answers, fetches AI feedback and completes the attempt
// @Tags Assessment
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.SubmitAssessmentRequest true "Assessment ID and ordered answers (A-D)"
// @Success 200 {object} util.Response{data=service.SubmitResult}
// @Failure 400 {object} util.Response "Missing fields or answer count mismatch"
// @Failure 404 {object} util.Response "Assessment not found"
// @Failure 409 {object} util.Response "Assessment already submitted"
// @Failure 500 {object} util.Response "AI evaluation failed or returned invalid JSON"
// @Router /api/assessment/submit [post]
func (c *AssessmentController) SubmitAssessment(ctx *gin.Context) {
	var req service.SubmitAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.SubmitAssessment(ctx.Request.Context(), req)
	if err != nil {
		c.renderError(ctx, err, false)
		return
	}

	util.Success(ctx, result)
}

// GetAssessment godoc
// @Summary Get one assessment
// @Tags Assessment
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Assessment ID"
// @Success 200 {object} util.Response{data=model.Assessment}
// @Failure 404 {object} util.Response
// @Router /api/assessment/{id} [get]
func (c *AssessmentController) GetAssessment(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	assessment, err := c.Service.GetAssessment(uint(id))
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, assessment)
}

// ListArtisanAssessments godoc
// @Summary List an artisan's assessments
// @Tags Assessment
// @Produce json
// @Security ApiKeyAuth
// @Param artisanId path int true "Artisan ID"
// @Success 200 {object} util.Response{data=[]model.Assessment}
// @Router /api/assessment/artisan/{artisanId} [get]
func (c *AssessmentController) ListArtisanAssessments(ctx *gin.Context) {
	artisanID, err := strconv.Atoi(ctx.Param("artisanId"))
	if err != nil {
		util.BadRequest(ctx, "invalid artisan id")
		return
	}

	assessments, err := c.Service.ListByArtisan(uint(artisanID))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, assessments)
}

// renderError maps orchestrator failures onto the documented status
// codes. Start reports malformed AI JSON as a gateway problem; submit
// keeps the original 500 for it.
func (c *AssessmentController) renderError(ctx *gin.Context, err error, startPhase bool) {
	var genErr *service.GenerationError
	var malformed *service.MalformedResponseError
	var schema *service.SchemaViolationError

	switch {
	case errors.Is(err, util.ErrInvalidInput):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrAssessmentNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrAssessmentCompleted):
		util.Error(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrGenerationTimeout):
		util.Error(ctx, http.StatusGatewayTimeout, err.Error())
	case errors.As(err, &genErr):
		util.ErrorWithDetails(ctx, http.StatusBadGateway, "AI generation failed", gin.H{
			"details": genErr.Error(),
		})
	case errors.As(err, &malformed):
		code := http.StatusInternalServerError
		if startPhase {
			code = http.StatusBadGateway
		}
		util.ErrorWithDetails(ctx, code, "Invalid JSON returned by AI", gin.H{
			"raw_output": malformed.Raw,
		})
	case errors.As(err, &schema):
		util.ErrorWithDetails(ctx, http.StatusInternalServerError, err.Error(), gin.H{
			"details": schema.Detail,
		})
	default:
		util.LogInternalError(ctx, err)
	}
}
