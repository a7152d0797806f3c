package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobStatus string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"
)

const (
	DefaultJobType         = "daily"
	DefaultExperienceLevel = "fresher"
)

func (s JobStatus) Valid() bool {
	return s == JobStatusOpen || s == JobStatusClosed
}

type Job struct {
	ID              uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	RecruiterID     uuid.UUID `gorm:"type:char(36);not null;index" json:"recruiterId"`
	Title           string    `gorm:"type:varchar(255);not null" json:"title"`
	Description     string    `gorm:"type:text;not null" json:"description"`
	Category        string    `gorm:"type:varchar(100);not null;index" json:"category"`
	Location        string    `gorm:"type:varchar(255);not null" json:"location"`
	Wage            float64   `gorm:"not null" json:"wage"`
	JobType         string    `gorm:"type:varchar(50);not null;default:'daily'" json:"jobType"`
	ExperienceLevel string    `gorm:"type:varchar(50);not null;default:'fresher'" json:"experienceLevel"`
	Status          JobStatus `gorm:"type:varchar(20);not null;default:'open';index" json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	// Relations
	Recruiter User `gorm:"foreignKey:RecruiterID" json:"-"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	assignID(&j.ID)
	return nil
}
