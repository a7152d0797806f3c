package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/yukikurage/labourlink-api/internal/constants"
	"github.com/yukikurage/labourlink-api/internal/models"
	"github.com/yukikurage/labourlink-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrMessageRequired          = errors.New("Message is required")
	ErrMessageTooLong           = fmt.Errorf("Message must be at most %d characters", constants.MaxMessageLength)
	ErrChatApplicationNotFound  = errors.New("Application not found")
	ErrNotConversationMember    = errors.New("You are not allowed to view this chat")
	ErrConversationRoleRequired = errors.New("Only workers and recruiters have conversations")
)

// ChatService handles the conversation attached to each application. Membership
// is always read from the application's worker and recruiter references.
type ChatService struct {
	chatRepo repository.ChatRepository
	appRepo  repository.ApplicationRepository
}

// NewChatService creates a new ChatService
func NewChatService(chatRepo repository.ChatRepository, appRepo repository.ApplicationRepository) *ChatService {
	return &ChatService{
		chatRepo: chatRepo,
		appRepo:  appRepo,
	}
}

// Conversation pairs an application with its latest message, if any.
type Conversation struct {
	Application models.Application
	LastMessage *models.ChatMessage
}

// ListMessages returns the application and its messages in ascending creation order.
func (s *ChatService) ListMessages(ctx context.Context, actor Actor, applicationID uuid.UUID) (*models.Application, []models.ChatMessage, error) {
	app, err := s.findForParticipant(ctx, actor, applicationID)
	if err != nil {
		return nil, nil, err
	}

	messages, err := s.chatRepo.ListByApplication(ctx, app.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return app, messages, nil
}

// PostMessage appends a message from the caller to the application's conversation.
func (s *ChatService) PostMessage(ctx context.Context, actor Actor, applicationID uuid.UUID, text string) (*models.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrMessageRequired
	}
	if utf8.RuneCountInString(text) > constants.MaxMessageLength {
		return nil, ErrMessageTooLong
	}

	app, err := s.findForParticipant(ctx, actor, applicationID)
	if err != nil {
		return nil, err
	}

	msg := &models.ChatMessage{
		ApplicationID: app.ID,
		SenderID:      actor.UserID,
		Message:       text,
	}

	if err := s.chatRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	msg.Sender = models.User{
		ID:   actor.UserID,
		Name: actor.Name,
		Role: actor.Role,
	}

	return msg, nil
}

// ListConversations returns every application the caller takes part in, with
// the most recent message of each.
func (s *ChatService) ListConversations(ctx context.Context, actor Actor) ([]Conversation, error) {
	var (
		apps []models.Application
		err  error
	)

	switch actor.Role {
	case models.RoleWorker:
		apps, err = s.appRepo.ListByWorker(ctx, actor.UserID)
	case models.RoleRecruiter:
		apps, err = s.appRepo.ListByRecruiter(ctx, actor.UserID)
	default:
		return nil, ErrConversationRoleRequired
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(apps))
	for _, app := range apps {
		ids = append(ids, app.ID)
	}

	latest, err := s.chatRepo.LatestByApplications(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load latest messages: %w", err)
	}

	conversations := make([]Conversation, 0, len(apps))
	for _, app := range apps {
		conversation := Conversation{Application: app}
		if msg, ok := latest[app.ID]; ok {
			conversation.LastMessage = &msg
		}
		conversations = append(conversations, conversation)
	}

	return conversations, nil
}

func (s *ChatService) findForParticipant(ctx context.Context, actor Actor, applicationID uuid.UUID) (*models.Application, error) {
	app, err := s.appRepo.FindByID(ctx, applicationID, "Job", "Worker", "Recruiter")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChatApplicationNotFound
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}

	if !app.HasParticipant(actor.UserID) {
		return nil, ErrNotConversationMember
	}

	return app, nil
}
