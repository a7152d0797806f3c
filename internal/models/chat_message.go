package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatMessage is an append-only entry in the conversation of one application.
type ChatMessage struct {
	ID            uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	ApplicationID uuid.UUID `gorm:"type:char(36);not null;index:idx_chat_messages_application_created,priority:1" json:"applicationId"`
	SenderID      uuid.UUID `gorm:"type:char(36);not null" json:"senderId"`
	Message       string    `gorm:"type:text;not null" json:"message"`
	CreatedAt     time.Time `gorm:"index:idx_chat_messages_application_created,priority:2" json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	// Relations
	Sender      User        `gorm:"foreignKey:SenderID" json:"-"`
	Application Application `gorm:"foreignKey:ApplicationID" json:"-"`
}

func (m *ChatMessage) BeforeCreate(tx *gorm.DB) error {
	assignID(&m.ID)
	return nil
}
