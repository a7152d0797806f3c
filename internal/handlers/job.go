package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/labourlink-api/internal/dto"
	apierrors "github.com/yukikurage/labourlink-api/internal/errors"
	"github.com/yukikurage/labourlink-api/internal/middleware"
	"github.com/yukikurage/labourlink-api/internal/services"
	"github.com/yukikurage/labourlink-api/internal/utils"
)

// JobHandler handles job posting endpoints
type JobHandler struct {
	jobService *services.JobService
}

// NewJobHandler creates a new JobHandler
func NewJobHandler(jobService *services.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// ListJobs returns open jobs for the public board
func (h *JobHandler) ListJobs(c *gin.Context) {
	pagination := utils.GetPaginationParams(c)

	jobs, total, err := h.jobService.ListOpenJobs(c.Request.Context(), services.ListJobsInput{
		Category: c.Query("category"),
		Location: c.Query("location"),
		Search:   c.Query("q"),
		Page:     pagination.Page,
		PageSize: pagination.Limit,
	})
	if err != nil {
		respondInternalError(c, "list jobs", err)
		return
	}

	c.JSON(http.StatusOK, dto.JobListResponse{
		Jobs:  dto.ToJobDTOs(jobs),
		Page:  pagination.Page,
		Limit: pagination.Limit,
		Total: total,
	})
}

// CreateJob posts a new job for the calling recruiter
func (h *JobHandler) CreateJob(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !bindJSON(c, &req) {
		return
	}

	job, err := h.jobService.CreateJob(c.Request.Context(), actor, services.CreateJobInput{
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		Location:        req.Location,
		Wage:            string(req.Wage),
		JobType:         req.JobType,
		ExperienceLevel: req.ExperienceLevel,
	})
	if err != nil {
		respondJobError(c, "create job", err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToJobDTO(*job))
}

// ListRecruiterJobs returns the calling recruiter's jobs
func (h *JobHandler) ListRecruiterJobs(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	jobs, err := h.jobService.ListRecruiterJobs(c.Request.Context(), actor)
	if err != nil {
		respondJobError(c, "list recruiter jobs", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJobDTOs(jobs))
}

// UpdateJobStatus opens or closes a job
func (h *JobHandler) UpdateJobStatus(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	jobID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	job, err := h.jobService.UpdateJobStatus(c.Request.Context(), actor, jobID, req.Status)
	if err != nil {
		respondJobError(c, "update job status", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJobDTO(*job))
}

// DraftJob suggests job fields from free text
func (h *JobHandler) DraftJob(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.DraftJobRequest
	if !bindJSON(c, &req) {
		return
	}

	draft, err := h.jobService.DraftJob(c.Request.Context(), actor, req.Text)
	if err != nil {
		respondJobError(c, "draft job", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

func respondJobError(c *gin.Context, operation string, err error) {
	if respondRoleError(c, err) {
		return
	}

	switch {
	case errors.Is(err, services.ErrJobMissingFields),
		errors.Is(err, services.ErrInvalidWage),
		errors.Is(err, services.ErrInvalidJobStatus),
		errors.Is(err, services.ErrDraftTextRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrOnlyRecruitersCanPostJobs),
		errors.Is(err, services.ErrNotJobOwner):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrJobNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrAIServiceNotConfigured):
		apierrors.ServiceUnavailable(c, err.Error())
	case errors.Is(err, services.ErrAIDraftFailed):
		log.Printf("request_id=%s %s: %v", middleware.RequestIDFromContext(c), operation, err)
		apierrors.BadGateway(c, services.ErrAIDraftFailed.Error())
	default:
		respondInternalError(c, operation, err)
	}
}
