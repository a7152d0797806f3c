package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/yukikurage/labourlink-api/internal/database"
	"github.com/yukikurage/labourlink-api/internal/models"
	"github.com/yukikurage/labourlink-api/internal/utils"
	"gorm.io/gorm"
)

// GormJobRepository is a GORM implementation of JobRepository
type GormJobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *gorm.DB) JobRepository {
	return &GormJobRepository{db: db}
}

// Create creates a new job
func (r *GormJobRepository) Create(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

// FindByID finds a job by ID
func (r *GormJobRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	var job models.Job
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// ListOpen retrieves open jobs with filtering and pagination
func (r *GormJobRepository) ListOpen(ctx context.Context, filter JobFilter) ([]models.Job, int64, error) {
	var jobs []models.Job

	query := r.db.WithContext(ctx).Model(&models.Job{}).Where("jobs.status = ?", models.JobStatusOpen)

	if filter.Category != "" {
		query = query.Where("LOWER(jobs.category) = ?", strings.ToLower(filter.Category))
	}
	if filter.Location != "" {
		query = query.Where("LOWER(jobs.location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
	}
	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(jobs.title) LIKE ? OR LOWER(jobs.description) LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Scopes(database.NewestFirst("jobs"))
	if filter.Page > 0 && filter.PageSize > 0 {
		listQuery = listQuery.Scopes(database.Paginate(utils.NewPaginationParams(filter.Page, filter.PageSize)))
	}

	if err := listQuery.Find(&jobs).Error; err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

// ListByRecruiter retrieves every job owned by a recruiter, newest first
func (r *GormJobRepository) ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.WithContext(ctx).
		Where("recruiter_id = ?", recruiterID).
		Scopes(database.NewestFirst("jobs")).
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// UpdateStatus sets the status of a job
func (r *GormJobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.JobStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("id = ?", id).
		Update("status", status).Error
}
