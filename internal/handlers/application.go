package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/labourlink-api/internal/dto"
	apierrors "github.com/yukikurage/labourlink-api/internal/errors"
	"github.com/yukikurage/labourlink-api/internal/services"
)

// ApplicationHandler handles the application lifecycle endpoints
type ApplicationHandler struct {
	applicationService *services.ApplicationService
}

// NewApplicationHandler creates a new ApplicationHandler
func NewApplicationHandler(applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// Apply creates an application of the calling worker to a job
func (h *ApplicationHandler) Apply(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !bindJSON(c, &req) {
		return
	}

	app, err := h.applicationService.Apply(c.Request.Context(), actor, services.ApplyInput{
		JobID:   req.JobID,
		Message: req.Message,
	})
	if err != nil {
		respondApplicationError(c, "apply", err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToApplicationDTO(*app))
}

// ListWorkerApplications returns the calling worker's applications
func (h *ApplicationHandler) ListWorkerApplications(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	apps, err := h.applicationService.ListForWorker(c.Request.Context(), actor)
	if err != nil {
		respondApplicationError(c, "list worker applications", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToApplicationDTOs(apps))
}

// ListRecruiterApplications returns applications to the calling recruiter's jobs
func (h *ApplicationHandler) ListRecruiterApplications(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	apps, err := h.applicationService.ListForRecruiter(c.Request.Context(), actor)
	if err != nil {
		respondApplicationError(c, "list recruiter applications", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToApplicationDTOs(apps))
}

// UpdateStatus changes the status of an application
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	applicationID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	app, err := h.applicationService.UpdateStatus(c.Request.Context(), actor, applicationID, req.Status)
	if err != nil {
		respondApplicationError(c, "update application status", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToApplicationDTO(*app))
}

// AddFeedback rates a hired worker
func (h *ApplicationHandler) AddFeedback(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	applicationID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.FeedbackRequest
	if !bindJSON(c, &req) {
		return
	}

	app, err := h.applicationService.AddFeedback(c.Request.Context(), actor, applicationID, services.FeedbackInput{
		Rating:   string(req.Rating),
		Feedback: req.Feedback,
	})
	if err != nil {
		respondApplicationError(c, "add feedback", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToApplicationDTO(*app))
}

func respondApplicationError(c *gin.Context, operation string, err error) {
	if respondRoleError(c, err) {
		return
	}

	switch {
	case errors.Is(err, services.ErrJobIDRequired),
		errors.Is(err, services.ErrInvalidApplicationStatus),
		errors.Is(err, services.ErrInvalidRating):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrAlreadyApplied):
		apierrors.AlreadyExists(c, err.Error())
	case errors.Is(err, services.ErrJobNotOpen),
		errors.Is(err, services.ErrFeedbackRequiresHiredStatus):
		apierrors.InvalidOperation(c, err.Error())
	case errors.Is(err, services.ErrOnlyWorkersCanApply),
		errors.Is(err, services.ErrNotApplicationOwner):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrJobNotFound),
		errors.Is(err, services.ErrApplicationNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		respondInternalError(c, operation, err)
	}
}
