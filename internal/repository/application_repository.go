package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/yukikurage/labourlink-api/internal/database"
	"github.com/yukikurage/labourlink-api/internal/models"
	"gorm.io/gorm"
)

// GormApplicationRepository is a GORM implementation of ApplicationRepository
type GormApplicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &GormApplicationRepository{db: db}
}

// Create inserts a new application
func (r *GormApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	return r.db.WithContext(ctx).Create(app).Error
}

// FindByID finds an application by ID with optional preloading
func (r *GormApplicationRepository) FindByID(ctx context.Context, id uuid.UUID, preload ...string) (*models.Application, error) {
	var app models.Application
	query := r.db.WithContext(ctx)

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.Where("id = ?", id).First(&app).Error; err != nil {
		return nil, err
	}

	return &app, nil
}

// FindByWorkerAndJob finds the application of a worker for a job
func (r *GormApplicationRepository) FindByWorkerAndJob(ctx context.Context, workerID, jobID uuid.UUID) (*models.Application, error) {
	var app models.Application
	if err := r.db.WithContext(ctx).
		Where("worker_id = ? AND job_id = ?", workerID, jobID).
		First(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// ListByWorker lists a worker's applications with their jobs, newest first
func (r *GormApplicationRepository) ListByWorker(ctx context.Context, workerID uuid.UUID) ([]models.Application, error) {
	var apps []models.Application
	if err := r.db.WithContext(ctx).
		Preload("Job").
		Preload("Recruiter").
		Where("worker_id = ?", workerID).
		Scopes(database.NewestFirst("applications")).
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// ListByRecruiter lists applications to a recruiter's jobs with job and worker, newest first
func (r *GormApplicationRepository) ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]models.Application, error) {
	var apps []models.Application
	if err := r.db.WithContext(ctx).
		Preload("Job").
		Preload("Worker").
		Where("recruiter_id = ?", recruiterID).
		Scopes(database.NewestFirst("applications")).
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// UpdateStatus sets the status of an application
func (r *GormApplicationRepository) UpdateStatus(ctx context.Context, app *models.Application, status models.ApplicationStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("id = ?", app.ID).
		Update("status", status).Error
}

// UpdateFeedback sets rating and feedback of an application
func (r *GormApplicationRepository) UpdateFeedback(ctx context.Context, app *models.Application, rating int, feedback string) error {
	return r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("id = ?", app.ID).
		Updates(map[string]interface{}{
			"rating":   rating,
			"feedback": feedback,
		}).Error
}
