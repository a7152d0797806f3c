package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Profile holds the role-specific details a user edits after registering.
// Worker fields and recruiter fields are mutually exclusive.
type Profile struct {
	ID                 uuid.UUID                   `gorm:"type:char(36);primaryKey" json:"id"`
	UserID             uuid.UUID                   `gorm:"type:char(36);uniqueIndex;not null" json:"userId"`
	Role               Role                        `gorm:"type:varchar(20);not null" json:"role"`
	Skills             datatypes.JSONSlice[string] `json:"skills"`
	ExperienceYears    int                         `gorm:"not null;default:0" json:"experienceYears"`
	PreferredLocations datatypes.JSONSlice[string] `json:"preferredLocations"`
	Bio                string                      `gorm:"type:text" json:"bio"`
	CompanyName        string                      `gorm:"type:varchar(255)" json:"companyName"`
	CompanyAddress     string                      `gorm:"type:varchar(255)" json:"companyAddress"`
	CompanyType        string                      `gorm:"type:varchar(100)" json:"companyType"`
	Website            string                      `gorm:"type:varchar(255)" json:"website"`
	CreatedAt          time.Time                   `json:"createdAt"`
	UpdatedAt          time.Time                   `json:"updatedAt"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	assignID(&p.ID)
	return nil
}
