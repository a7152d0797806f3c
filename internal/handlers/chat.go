package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/labourlink-api/internal/dto"
	apierrors "github.com/yukikurage/labourlink-api/internal/errors"
	"github.com/yukikurage/labourlink-api/internal/services"
)

// ChatHandler handles the per-application conversation endpoints
type ChatHandler struct {
	chatService *services.ChatService
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// ListConversations returns every conversation of the caller with its latest message
func (h *ChatHandler) ListConversations(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	conversations, err := h.chatService.ListConversations(c.Request.Context(), actor)
	if err != nil {
		respondChatError(c, "list conversations", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConversationDTOs(conversations))
}

// GetMessages returns one application's conversation
func (h *ChatHandler) GetMessages(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	applicationID, ok := pathID(c, "applicationId")
	if !ok {
		return
	}

	app, messages, err := h.chatService.ListMessages(c.Request.Context(), actor, applicationID)
	if err != nil {
		respondChatError(c, "list messages", err)
		return
	}

	c.JSON(http.StatusOK, dto.ChatThreadResponse{
		Application: dto.ToApplicationDTO(*app),
		Messages:    dto.ToChatMessageDTOs(messages),
	})
}

// PostMessage appends a message to one application's conversation
func (h *ChatHandler) PostMessage(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	applicationID, ok := pathID(c, "applicationId")
	if !ok {
		return
	}

	var req dto.PostMessageRequest
	if !bindJSON(c, &req) {
		return
	}

	msg, err := h.chatService.PostMessage(c.Request.Context(), actor, applicationID, req.Message)
	if err != nil {
		respondChatError(c, "post message", err)
		return
	}

	c.JSON(http.StatusCreated, dto.PostMessageResponse{
		Message:     "Message sent",
		ChatMessage: dto.ToChatMessageDTO(*msg),
	})
}

func respondChatError(c *gin.Context, operation string, err error) {
	switch {
	case errors.Is(err, services.ErrMessageRequired),
		errors.Is(err, services.ErrMessageTooLong):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotConversationMember),
		errors.Is(err, services.ErrConversationRoleRequired):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrChatApplicationNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		respondInternalError(c, operation, err)
	}
}
