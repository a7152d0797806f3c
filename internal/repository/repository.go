package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/yukikurage/labourlink-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// FindByEmail finds a user by lowercase email
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// JobRepository defines the interface for job data access
type JobRepository interface {
	// Create creates a new job
	Create(ctx context.Context, job *models.Job) error

	// FindByID finds a job by ID
	FindByID(ctx context.Context, id uuid.UUID) (*models.Job, error)

	// ListOpen retrieves open jobs with filtering and pagination
	ListOpen(ctx context.Context, filter JobFilter) ([]models.Job, int64, error)

	// ListByRecruiter retrieves every job owned by a recruiter, newest first
	ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]models.Job, error)

	// UpdateStatus sets the status of a job
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.JobStatus) error
}

// JobFilter holds filtering options for listing open jobs
type JobFilter struct {
	Category string
	Location string
	Search   string
	Page     int
	PageSize int
}

// ApplicationRepository defines the interface for application data access
type ApplicationRepository interface {
	// Create inserts an application. A second application for the same
	// (worker, job) pair fails with gorm.ErrDuplicatedKey.
	Create(ctx context.Context, app *models.Application) error

	// FindByID finds an application by ID with optional preloading
	FindByID(ctx context.Context, id uuid.UUID, preload ...string) (*models.Application, error)

	// FindByWorkerAndJob finds the application of a worker for a job
	FindByWorkerAndJob(ctx context.Context, workerID, jobID uuid.UUID) (*models.Application, error)

	// ListByWorker lists a worker's applications with their jobs, newest first
	ListByWorker(ctx context.Context, workerID uuid.UUID) ([]models.Application, error)

	// ListByRecruiter lists applications to a recruiter's jobs with job and worker, newest first
	ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]models.Application, error)

	// UpdateStatus sets the status of an application
	UpdateStatus(ctx context.Context, app *models.Application, status models.ApplicationStatus) error

	// UpdateFeedback sets rating and feedback of an application
	UpdateFeedback(ctx context.Context, app *models.Application, rating int, feedback string) error
}

// ChatRepository defines the interface for conversation data access
type ChatRepository interface {
	// Create appends a message
	Create(ctx context.Context, msg *models.ChatMessage) error

	// ListByApplication lists all messages of an application, oldest first, with senders
	ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]models.ChatMessage, error)

	// LatestByApplications returns the most recent message of each application
	// that has at least one message, keyed by application ID
	LatestByApplications(ctx context.Context, applicationIDs []uuid.UUID) (map[uuid.UUID]models.ChatMessage, error)
}

// ProfileRepository defines the interface for profile data access
type ProfileRepository interface {
	// FindByUserID finds the profile of a user
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error)

	// Upsert creates the profile or replaces its editable fields
	Upsert(ctx context.Context, profile *models.Profile) error
}
