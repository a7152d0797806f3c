package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/yukikurage/labourlink-api/internal/models"
	"github.com/yukikurage/labourlink-api/internal/services"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone"`
	Role      models.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Message string  `json:"message"`
	User    UserDTO `json:"user"`
	Token   string  `json:"token"`
}

// JobDTO represents a job in API responses
type JobDTO struct {
	ID              uuid.UUID        `json:"id"`
	RecruiterID     uuid.UUID        `json:"recruiterId"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Category        string           `json:"category"`
	Location        string           `json:"location"`
	Wage            float64          `json:"wage"`
	JobType         string           `json:"jobType"`
	ExperienceLevel string           `json:"experienceLevel"`
	Status          models.JobStatus `json:"status"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// JobListResponse represents a page of open jobs
type JobListResponse struct {
	Jobs  []JobDTO `json:"jobs"`
	Page  int      `json:"page"`
	Limit int      `json:"limit"`
	Total int64    `json:"total"`
}

// ApplicationDTO represents an application. Job, worker and recruiter are
// included when they were loaded.
type ApplicationDTO struct {
	ID          uuid.UUID                `json:"id"`
	WorkerID    uuid.UUID                `json:"workerId"`
	JobID       uuid.UUID                `json:"jobId"`
	RecruiterID uuid.UUID                `json:"recruiterId"`
	Message     string                   `json:"message"`
	Status      models.ApplicationStatus `json:"status"`
	Rating      *int                     `json:"rating"`
	Feedback    string                   `json:"feedback"`
	CreatedAt   time.Time                `json:"createdAt"`
	UpdatedAt   time.Time                `json:"updatedAt"`
	Job         *JobDTO                  `json:"job,omitempty"`
	Worker      *UserDTO                 `json:"worker,omitempty"`
	Recruiter   *UserDTO                 `json:"recruiter,omitempty"`
}

// SenderDTO annotates a chat message with who wrote it
type SenderDTO struct {
	ID   uuid.UUID   `json:"id"`
	Name string      `json:"name"`
	Role models.Role `json:"role"`
}

// ChatMessageDTO represents a chat message in API responses
type ChatMessageDTO struct {
	ID            uuid.UUID `json:"id"`
	ApplicationID uuid.UUID `json:"applicationId"`
	SenderID      uuid.UUID `json:"senderId"`
	Message       string    `json:"message"`
	CreatedAt     time.Time `json:"createdAt"`
	Sender        SenderDTO `json:"sender"`
}

// ChatThreadResponse is one application's conversation
type ChatThreadResponse struct {
	Application ApplicationDTO   `json:"application"`
	Messages    []ChatMessageDTO `json:"messages"`
}

// PostMessageResponse is returned after a message is stored
type PostMessageResponse struct {
	Message     string         `json:"message"`
	ChatMessage ChatMessageDTO `json:"chatMessage"`
}

// ConversationDTO pairs an application with its latest message, null when
// nothing has been said yet
type ConversationDTO struct {
	Application ApplicationDTO  `json:"application"`
	LastMessage *ChatMessageDTO `json:"lastMessage"`
}

// ProfileDTO represents a profile in API responses
type ProfileDTO struct {
	UserID             uuid.UUID   `json:"userId"`
	Role               models.Role `json:"role"`
	Skills             []string    `json:"skills"`
	ExperienceYears    int         `json:"experienceYears"`
	PreferredLocations []string    `json:"preferredLocations"`
	Bio                string      `json:"bio"`
	CompanyName        string      `json:"companyName"`
	CompanyAddress     string      `json:"companyAddress"`
	CompanyType        string      `json:"companyType"`
	Website            string      `json:"website"`
	IsNew              bool        `json:"isNew"`
	UpdatedAt          *time.Time  `json:"updatedAt,omitempty"`
}

// Conversion functions

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

// ToJobDTO converts a Job model to JobDTO
func ToJobDTO(job models.Job) JobDTO {
	return JobDTO{
		ID:              job.ID,
		RecruiterID:     job.RecruiterID,
		Title:           job.Title,
		Description:     job.Description,
		Category:        job.Category,
		Location:        job.Location,
		Wage:            job.Wage,
		JobType:         job.JobType,
		ExperienceLevel: job.ExperienceLevel,
		Status:          job.Status,
		CreatedAt:       job.CreatedAt,
		UpdatedAt:       job.UpdatedAt,
	}
}

// ToJobDTOs converts a slice of Job models
func ToJobDTOs(jobs []models.Job) []JobDTO {
	result := make([]JobDTO, 0, len(jobs))
	for _, job := range jobs {
		result = append(result, ToJobDTO(job))
	}
	return result
}

// ToApplicationDTO converts an Application model to ApplicationDTO
func ToApplicationDTO(app models.Application) ApplicationDTO {
	dto := ApplicationDTO{
		ID:          app.ID,
		WorkerID:    app.WorkerID,
		JobID:       app.JobID,
		RecruiterID: app.RecruiterID,
		Message:     app.Message,
		Status:      app.Status,
		Rating:      app.Rating,
		Feedback:    app.Feedback,
		CreatedAt:   app.CreatedAt,
		UpdatedAt:   app.UpdatedAt,
	}

	if app.Job.ID != uuid.Nil {
		job := ToJobDTO(app.Job)
		dto.Job = &job
	}
	if app.Worker.ID != uuid.Nil {
		worker := ToUserDTO(app.Worker)
		dto.Worker = &worker
	}
	if app.Recruiter.ID != uuid.Nil {
		recruiter := ToUserDTO(app.Recruiter)
		dto.Recruiter = &recruiter
	}

	return dto
}

// ToApplicationDTOs converts a slice of Application models
func ToApplicationDTOs(apps []models.Application) []ApplicationDTO {
	result := make([]ApplicationDTO, 0, len(apps))
	for _, app := range apps {
		result = append(result, ToApplicationDTO(app))
	}
	return result
}

// ToChatMessageDTO converts a ChatMessage model to ChatMessageDTO
func ToChatMessageDTO(msg models.ChatMessage) ChatMessageDTO {
	return ChatMessageDTO{
		ID:            msg.ID,
		ApplicationID: msg.ApplicationID,
		SenderID:      msg.SenderID,
		Message:       msg.Message,
		CreatedAt:     msg.CreatedAt,
		Sender: SenderDTO{
			ID:   msg.SenderID,
			Name: msg.Sender.Name,
			Role: msg.Sender.Role,
		},
	}
}

// ToChatMessageDTOs converts a slice of ChatMessage models
func ToChatMessageDTOs(messages []models.ChatMessage) []ChatMessageDTO {
	result := make([]ChatMessageDTO, 0, len(messages))
	for _, msg := range messages {
		result = append(result, ToChatMessageDTO(msg))
	}
	return result
}

// ToConversationDTOs converts conversation summaries
func ToConversationDTOs(conversations []services.Conversation) []ConversationDTO {
	result := make([]ConversationDTO, 0, len(conversations))
	for _, conversation := range conversations {
		item := ConversationDTO{Application: ToApplicationDTO(conversation.Application)}
		if conversation.LastMessage != nil {
			last := ToChatMessageDTO(*conversation.LastMessage)
			item.LastMessage = &last
		}
		result = append(result, item)
	}
	return result
}

// ToProfileDTO converts a Profile model to ProfileDTO
func ToProfileDTO(profile models.Profile, isNew bool) ProfileDTO {
	dto := ProfileDTO{
		UserID:             profile.UserID,
		Role:               profile.Role,
		Skills:             nonNilStrings(profile.Skills),
		ExperienceYears:    profile.ExperienceYears,
		PreferredLocations: nonNilStrings(profile.PreferredLocations),
		Bio:                profile.Bio,
		CompanyName:        profile.CompanyName,
		CompanyAddress:     profile.CompanyAddress,
		CompanyType:        profile.CompanyType,
		Website:            profile.Website,
		IsNew:              isNew,
	}
	if !isNew {
		updatedAt := profile.UpdatedAt
		dto.UpdatedAt = &updatedAt
	}
	return dto
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
