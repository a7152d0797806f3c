package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/yukikurage/labourlink-api/internal/models"
	"gorm.io/gorm"
)

// GormChatRepository is a GORM implementation of ChatRepository
type GormChatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a new ChatRepository
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &GormChatRepository{db: db}
}

// Create appends a message
func (r *GormChatRepository) Create(ctx context.Context, msg *models.ChatMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// ListByApplication lists all messages of an application, oldest first
func (r *GormChatRepository) ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	if err := r.db.WithContext(ctx).
		Preload("Sender").
		Where("application_id = ?", applicationID).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// LatestByApplications fetches the newest message of every listed application in
// one query instead of one query per conversation.
func (r *GormChatRepository) LatestByApplications(ctx context.Context, applicationIDs []uuid.UUID) (map[uuid.UUID]models.ChatMessage, error) {
	latest := make(map[uuid.UUID]models.ChatMessage, len(applicationIDs))
	if len(applicationIDs) == 0 {
		return latest, nil
	}

	var messages []models.ChatMessage
	if err := r.db.WithContext(ctx).
		Preload("Sender").
		Where("chat_messages.application_id IN ?", applicationIDs).
		Where("chat_messages.created_at = (SELECT MAX(m2.created_at) FROM chat_messages m2 WHERE m2.application_id = chat_messages.application_id)").
		Find(&messages).Error; err != nil {
		return nil, err
	}

	// Messages sharing the max timestamp collapse to one per application.
	for _, msg := range messages {
		current, ok := latest[msg.ApplicationID]
		if !ok || msg.CreatedAt.After(current.CreatedAt) ||
			(msg.CreatedAt.Equal(current.CreatedAt) && msg.ID.String() > current.ID.String()) {
			latest[msg.ApplicationID] = msg
		}
	}

	return latest, nil
}
