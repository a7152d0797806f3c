package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// JobDraft is a job posting suggested from free text. The recruiter reviews it
// before submitting it as a real job.
type JobDraft struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	Location        string  `json:"location"`
	Wage            float64 `json:"wage"`
	JobType         string  `json:"jobType"`
	ExperienceLevel string  `json:"experienceLevel"`
}

// JobDrafter turns free text into a JobDraft.
type JobDrafter interface {
	DraftJob(ctx context.Context, text string) (*JobDraft, error)
}

type AIService struct {
	client *openai.Client
	model  string
}

func NewAIService(apiKey string) *AIService {
	return &AIService{
		client: openai.NewClient(apiKey),
		model:  openai.GPT4o,
	}
}

// DraftJob asks the chat model to extract job fields from a recruiter's description.
func (s *AIService) DraftJob(ctx context.Context, text string) (*JobDraft, error) {
	if s.client == nil {
		return nil, fmt.Errorf("OpenAI client not initialized")
	}

	prompt := fmt.Sprintf(`You help recruiters post daily-wage and short-term jobs for workers.
Extract a job posting from the text below.

Text:
%s

Reply with a single JSON object of this shape:
{
  "title": "short job title",
  "description": "what the worker will do",
  "category": "one word trade such as construction, painting, electrical, cleaning",
  "location": "city or area, empty string if unknown",
  "wage": 0,
  "jobType": "daily, weekly, monthly or contract",
  "experienceLevel": "fresher, intermediate or expert"
}

Rules:
- wage is a number in local currency per job type period, 0 if not mentioned
- return JSON only, no explanation`, text)

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.2,
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	return parseJobDraft(resp.Choices[0].Message.Content)
}

func parseJobDraft(content string) (*JobDraft, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var draft JobDraft
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w (response: %s)", err, content)
	}

	if strings.TrimSpace(draft.Title) == "" {
		return nil, fmt.Errorf("AI response has no title")
	}

	return &draft, nil
}
