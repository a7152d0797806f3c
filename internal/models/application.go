package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationStatus string

const (
	ApplicationStatusApplied     ApplicationStatus = "applied"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusHired       ApplicationStatus = "hired"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

// Valid reports whether s is a known status. Any known status may follow any other.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusShortlisted, ApplicationStatusHired, ApplicationStatusRejected:
		return true
	default:
		return false
	}
}

// Application links one worker to one job. RecruiterID is copied from the job at
// creation time and is what ownership checks compare against.
type Application struct {
	ID          uuid.UUID         `gorm:"type:char(36);primaryKey" json:"id"`
	WorkerID    uuid.UUID         `gorm:"type:char(36);not null;uniqueIndex:idx_applications_worker_job,priority:1" json:"workerId"`
	JobID       uuid.UUID         `gorm:"type:char(36);not null;uniqueIndex:idx_applications_worker_job,priority:2;index" json:"jobId"`
	RecruiterID uuid.UUID         `gorm:"type:char(36);not null;index" json:"recruiterId"`
	Message     string            `gorm:"type:text" json:"message"`
	Status      ApplicationStatus `gorm:"type:varchar(20);not null;default:'applied'" json:"status"`
	Rating      *int              `json:"rating,omitempty"`
	Feedback    string            `gorm:"type:text" json:"feedback"`
	CreatedAt   time.Time         `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`

	// Relations
	Worker    User `gorm:"foreignKey:WorkerID" json:"-"`
	Recruiter User `gorm:"foreignKey:RecruiterID" json:"-"`
	Job       Job  `gorm:"foreignKey:JobID" json:"-"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	assignID(&a.ID)
	return nil
}

// HasParticipant reports whether userID is the worker or the recruiter of the application.
func (a *Application) HasParticipant(userID uuid.UUID) bool {
	return a.WorkerID == userID || a.RecruiterID == userID
}
