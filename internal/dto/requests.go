package dto

import (
	"bytes"
	"encoding/json"
	"strings"
)

// FlexibleNumber keeps the text of a JSON value that should hold a number.
// Numbers, numeric strings and anything else are all accepted here; the
// service decides whether the text is a valid number. null becomes "".
type FlexibleNumber string

func (n *FlexibleNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = FlexibleNumber(s)
		return nil
	}

	*n = FlexibleNumber(data)
	return nil
}

// StringList accepts either a JSON array of strings or one comma-separated string.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = strings.Split(s, ",")
		return nil
	}

	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	*l = values
	return nil
}

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateJobRequest represents the job posting request body
type CreateJobRequest struct {
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Category        string         `json:"category"`
	Location        string         `json:"location"`
	Wage            FlexibleNumber `json:"wage"`
	JobType         string         `json:"jobType"`
	ExperienceLevel string         `json:"experienceLevel"`
}

// DraftJobRequest represents free text to turn into a job draft
type DraftJobRequest struct {
	Text string `json:"text"`
}

// UpdateStatusRequest is shared by job and application status changes
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ApplyRequest represents a worker's application
type ApplyRequest struct {
	JobID   string `json:"jobId"`
	Message string `json:"message"`
}

// FeedbackRequest represents a recruiter's rating of a hired worker
type FeedbackRequest struct {
	Rating   FlexibleNumber `json:"rating"`
	Feedback string         `json:"feedback"`
}

// PostMessageRequest represents a chat message
type PostMessageRequest struct {
	Message string `json:"message"`
}

// UpdateProfileRequest represents the editable profile fields
type UpdateProfileRequest struct {
	Skills             StringList `json:"skills"`
	ExperienceYears    int        `json:"experienceYears"`
	PreferredLocations StringList `json:"preferredLocations"`
	Bio                string     `json:"bio"`
	CompanyName        string     `json:"companyName"`
	CompanyAddress     string     `json:"companyAddress"`
	CompanyType        string     `json:"companyType"`
	Website            string     `json:"website"`
}
