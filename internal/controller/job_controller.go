package controller

import (
	"errors"
	"net/http"
	"strconv"

	"craftconnect_backend/internal/service"
	"craftconnect_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type JobController struct {
	Service *service.JobService
}

func NewJobController(svc *service.JobService) *JobController {
	return &JobController{Service: svc}
}

// CreateJob godoc
// @Summary Create a job posting
// @Tags Jobs
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateJobRequest true "Job details"
// @Success 201 {object} util.Response{data=model.JobPosting}
// @Failure 400 {object} util.Response
// @Router /api/jobs/create [post]
func (c *JobController) CreateJob(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	job, err := c.Service.CreateJob(claims.UserID, req)
	if err != nil {
		if errors.Is(err, util.ErrInvalidInput) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, job)
}

// ListJobs godoc
// @Summary List all open job postings
// @Tags Jobs
// @Produce json
// @Success 200 {object} util.Response{data=[]model.JobPosting}
// @Router /api/jobs/all [get]
func (c *JobController) ListJobs(ctx *gin.Context) {
	jobs, err := c.Service.ListOpenJobs()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, jobs)
}

// AssignJob godoc
// @Summary Accept a job as the logged-in artisan
// @Tags Jobs
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Job ID"
// @Success 200 {object} util.Response{data=model.JobPosting}
// @Failure 400 {object} util.Response "Job is not open"
// @Failure 404 {object} util.Response
// @Router /api/jobs/{id}/assign [post]
func (c *JobController) AssignJob(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	jobID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid job id")
		return
	}

	job, err := c.Service.AssignJob(uint(jobID), claims.UserID)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	util.Success(ctx, job)
}

// CompleteJob godoc
// @Summary Mark a job as completed
// @Description Only the client who created the job can complete it
// @Tags Jobs
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Job ID"
// @Success 200 {object} util.Response{data=model.JobPosting}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/jobs/{id}/complete [post]
func (c *JobController) CompleteJob(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	jobID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid job id")
		return
	}

	job, err := c.Service.CompleteJob(uint(jobID), claims.UserID)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	util.Success(ctx, job)
}

func (c *JobController) renderError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrJobNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrJobNotOpen):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrPermissionDenied):
		util.Error(ctx, http.StatusForbidden, "Only the client who created the job can complete it")
	default:
		util.LogInternalError(ctx, err)
	}
}
