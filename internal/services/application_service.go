package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/yukikurage/labourlink-api/internal/constants"
	"github.com/yukikurage/labourlink-api/internal/models"
	"github.com/yukikurage/labourlink-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrOnlyWorkersCanApply         = errors.New("Only workers can apply to jobs.")
	ErrJobIDRequired               = errors.New("jobId is required.")
	ErrJobNotOpen                  = errors.New("This job is not open for applications.")
	ErrAlreadyApplied              = errors.New("You have already applied for this job.")
	ErrApplicationNotFound         = errors.New("Application not found.")
	ErrInvalidApplicationStatus    = errors.New("Invalid status value.")
	ErrNotApplicationOwner         = errors.New("Not allowed for this application.")
	ErrFeedbackRequiresHiredStatus = errors.New("You can only rate workers who are hired.")
	ErrInvalidRating               = fmt.Errorf("Rating must be between %d and %d.", constants.MinRating, constants.MaxRating)
)

// ApplicationService handles the application lifecycle between workers and recruiters.
type ApplicationService struct {
	appRepo repository.ApplicationRepository
	jobRepo repository.JobRepository
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(appRepo repository.ApplicationRepository, jobRepo repository.JobRepository) *ApplicationService {
	return &ApplicationService{
		appRepo: appRepo,
		jobRepo: jobRepo,
	}
}

// ApplyInput represents a worker's application to a job
type ApplyInput struct {
	JobID   string
	Message string
}

// FeedbackInput represents a recruiter's rating of a hired worker. Rating is the
// raw text of the submitted value.
type FeedbackInput struct {
	Rating   string
	Feedback string
}

// Apply creates an application with status applied. The (worker, job) pair is
// unique in the store, so a concurrent duplicate fails on insert as well as on
// the pre-check.
func (s *ApplicationService) Apply(ctx context.Context, actor Actor, input ApplyInput) (*models.Application, error) {
	if !actor.IsWorker() {
		return nil, ErrOnlyWorkersCanApply
	}

	rawJobID := strings.TrimSpace(input.JobID)
	if rawJobID == "" {
		return nil, ErrJobIDRequired
	}

	jobID, err := uuid.Parse(rawJobID)
	if err != nil {
		return nil, ErrJobNotFound
	}

	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}

	if job.Status != models.JobStatusOpen {
		return nil, ErrJobNotOpen
	}

	if _, err := s.appRepo.FindByWorkerAndJob(ctx, actor.UserID, job.ID); err == nil {
		return nil, ErrAlreadyApplied
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing application: %w", err)
	}

	app := &models.Application{
		WorkerID:    actor.UserID,
		JobID:       job.ID,
		RecruiterID: job.RecruiterID,
		Message:     strings.TrimSpace(input.Message),
		Status:      models.ApplicationStatusApplied,
	}

	if err := s.appRepo.Create(ctx, app); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyApplied
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	app.Job = *job

	return app, nil
}

// ListForWorker returns the calling worker's applications with their jobs.
func (s *ApplicationService) ListForWorker(ctx context.Context, actor Actor) ([]models.Application, error) {
	if err := actor.requireWorker(); err != nil {
		return nil, err
	}

	apps, err := s.appRepo.ListByWorker(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list worker applications: %w", err)
	}
	return apps, nil
}

// ListForRecruiter returns applications to the calling recruiter's jobs with job and worker.
func (s *ApplicationService) ListForRecruiter(ctx context.Context, actor Actor) ([]models.Application, error) {
	if err := actor.requireRecruiter(); err != nil {
		return nil, err
	}

	apps, err := s.appRepo.ListByRecruiter(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recruiter applications: %w", err)
	}
	return apps, nil
}

// UpdateStatus moves an application to any of the known statuses. No transition
// graph is enforced.
func (s *ApplicationService) UpdateStatus(ctx context.Context, actor Actor, applicationID uuid.UUID, status string) (*models.Application, error) {
	if err := actor.requireRecruiter(); err != nil {
		return nil, err
	}

	newStatus := models.ApplicationStatus(strings.TrimSpace(status))
	if !newStatus.Valid() {
		return nil, ErrInvalidApplicationStatus
	}

	app, err := s.findOwned(ctx, actor, applicationID)
	if err != nil {
		return nil, err
	}

	if app.Status != newStatus {
		if err := s.appRepo.UpdateStatus(ctx, app, newStatus); err != nil {
			return nil, fmt.Errorf("failed to update application status: %w", err)
		}
		app.Status = newStatus
	}

	return app, nil
}

// AddFeedback rates a hired worker. Calling it again overwrites the previous
// rating and feedback.
func (s *ApplicationService) AddFeedback(ctx context.Context, actor Actor, applicationID uuid.UUID, input FeedbackInput) (*models.Application, error) {
	if err := actor.requireRecruiter(); err != nil {
		return nil, err
	}

	app, err := s.findOwned(ctx, actor, applicationID)
	if err != nil {
		return nil, err
	}

	if app.Status != models.ApplicationStatusHired {
		return nil, ErrFeedbackRequiresHiredStatus
	}

	rating, err := ParseRating(input.Rating)
	if err != nil {
		return nil, err
	}

	feedback := strings.TrimSpace(input.Feedback)
	if err := s.appRepo.UpdateFeedback(ctx, app, rating, feedback); err != nil {
		return nil, fmt.Errorf("failed to save feedback: %w", err)
	}
	app.Rating = &rating
	app.Feedback = feedback

	return app, nil
}

// ParseRating accepts an integral number from MinRating to MaxRating given as
// a JSON number or a numeric string.
func ParseRating(text string) (int, error) {
	n, err := parseNumber(text)
	if err != nil || n != math.Trunc(n) || n < constants.MinRating || n > constants.MaxRating {
		return 0, ErrInvalidRating
	}
	return int(n), nil
}

func (s *ApplicationService) findOwned(ctx context.Context, actor Actor, applicationID uuid.UUID) (*models.Application, error) {
	app, err := s.appRepo.FindByID(ctx, applicationID, "Job", "Worker")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}

	if app.RecruiterID != actor.UserID {
		return nil, ErrNotApplicationOwner
	}

	return app, nil
}
