package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/yukikurage/labourlink-api/internal/models"
	"github.com/yukikurage/labourlink-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrJobMissingFields          = errors.New("Missing required fields (title, description, category, location, wage).")
	ErrInvalidWage               = errors.New("Invalid wage value.")
	ErrJobNotFound               = errors.New("Job not found.")
	ErrInvalidJobStatus          = errors.New("Invalid status value.")
	ErrNotJobOwner               = errors.New("You can only update your own jobs.")
	ErrDraftTextRequired         = errors.New("Text is required")
	ErrAIServiceNotConfigured    = errors.New("AI service is not configured")
	ErrAIDraftFailed             = errors.New("Could not generate a job draft")
	ErrOnlyRecruitersCanPostJobs = errors.New("Only recruiters can post jobs.")
)

// JobService handles job postings.
type JobService struct {
	jobRepo repository.JobRepository
	drafter JobDrafter
}

// NewJobService creates a new JobService. drafter may be nil when no AI key is configured.
func NewJobService(jobRepo repository.JobRepository, drafter JobDrafter) *JobService {
	return &JobService{
		jobRepo: jobRepo,
		drafter: drafter,
	}
}

// CreateJobInput represents input for posting a job. Wage is the raw text of the
// submitted value so that both numbers and numeric strings are accepted.
type CreateJobInput struct {
	Title           string
	Description     string
	Category        string
	Location        string
	Wage            string
	JobType         string
	ExperienceLevel string
}

// ListJobsInput represents filters for the public job board
type ListJobsInput struct {
	Category string
	Location string
	Search   string
	Page     int
	PageSize int
}

// CreateJob posts a new open job owned by the calling recruiter.
func (s *JobService) CreateJob(ctx context.Context, actor Actor, input CreateJobInput) (*models.Job, error) {
	if !actor.IsRecruiter() {
		return nil, ErrOnlyRecruitersCanPostJobs
	}

	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	category := strings.TrimSpace(input.Category)
	location := strings.TrimSpace(input.Location)
	wageText := strings.TrimSpace(input.Wage)

	if title == "" || description == "" || category == "" || location == "" || wageText == "" {
		return nil, ErrJobMissingFields
	}

	wage, err := parseNumber(wageText)
	if err != nil || wage < 0 {
		return nil, ErrInvalidWage
	}

	job := &models.Job{
		RecruiterID:     actor.UserID,
		Title:           title,
		Description:     description,
		Category:        category,
		Location:        location,
		Wage:            wage,
		JobType:         valueOrDefault(input.JobType, models.DefaultJobType),
		ExperienceLevel: valueOrDefault(input.ExperienceLevel, models.DefaultExperienceLevel),
		Status:          models.JobStatusOpen,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	return job, nil
}

// ListOpenJobs returns open jobs, newest first.
func (s *JobService) ListOpenJobs(ctx context.Context, input ListJobsInput) ([]models.Job, int64, error) {
	jobs, total, err := s.jobRepo.ListOpen(ctx, repository.JobFilter{
		Category: strings.TrimSpace(input.Category),
		Location: strings.TrimSpace(input.Location),
		Search:   strings.TrimSpace(input.Search),
		Page:     input.Page,
		PageSize: input.PageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, total, nil
}

// ListRecruiterJobs returns every job the calling recruiter posted.
func (s *JobService) ListRecruiterJobs(ctx context.Context, actor Actor) ([]models.Job, error) {
	if err := actor.requireRecruiter(); err != nil {
		return nil, err
	}

	jobs, err := s.jobRepo.ListByRecruiter(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recruiter jobs: %w", err)
	}
	return jobs, nil
}

// UpdateJobStatus opens or closes a job owned by the calling recruiter.
func (s *JobService) UpdateJobStatus(ctx context.Context, actor Actor, jobID uuid.UUID, status string) (*models.Job, error) {
	if err := actor.requireRecruiter(); err != nil {
		return nil, err
	}

	newStatus := models.JobStatus(strings.TrimSpace(status))
	if !newStatus.Valid() {
		return nil, ErrInvalidJobStatus
	}

	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}

	if job.RecruiterID != actor.UserID {
		return nil, ErrNotJobOwner
	}

	if job.Status == newStatus {
		return job, nil
	}

	if err := s.jobRepo.UpdateStatus(ctx, job.ID, newStatus); err != nil {
		return nil, fmt.Errorf("failed to update job status: %w", err)
	}
	job.Status = newStatus

	return job, nil
}

// DraftJob turns a free-form description into suggested job fields.
func (s *JobService) DraftJob(ctx context.Context, actor Actor, text string) (*JobDraft, error) {
	if err := actor.requireRecruiter(); err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrDraftTextRequired
	}

	if s.drafter == nil {
		return nil, ErrAIServiceNotConfigured
	}

	draft, err := s.drafter.DraftJob(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAIDraftFailed, err)
	}

	draft.JobType = valueOrDefault(draft.JobType, models.DefaultJobType)
	draft.ExperienceLevel = valueOrDefault(draft.ExperienceLevel, models.DefaultExperienceLevel)
	if draft.Wage < 0 {
		draft.Wage = 0
	}

	return draft, nil
}

func valueOrDefault(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}
