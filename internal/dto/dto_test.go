package dto

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/labourlink-api/internal/models"
	"github.com/yukikurage/labourlink-api/internal/services"
)

func TestFlexibleNumber(t *testing.T) {
	tests := []struct {
		body string
		want FlexibleNumber
	}{
		{body: `{"rating": 5}`, want: "5"},
		{body: `{"rating": "4"}`, want: "4"},
		{body: `{"rating": 2.5}`, want: "2.5"},
		{body: `{"rating": "abc"}`, want: "abc"},
		{body: `{"rating": true}`, want: "true"},
		{body: `{"rating": null}`, want: ""},
		{body: `{}`, want: ""},
	}

	for _, tt := range tests {
		var req FeedbackRequest
		require.NoError(t, json.Unmarshal([]byte(tt.body), &req), tt.body)
		assert.Equal(t, tt.want, req.Rating, tt.body)
	}
}

func TestStringList(t *testing.T) {
	var req UpdateProfileRequest
	require.NoError(t, json.Unmarshal([]byte(`{"skills":"masonry, tiling","preferredLocations":["Pune","Mumbai"]}`), &req))
	assert.Equal(t, StringList{"masonry", " tiling"}, req.Skills)
	assert.Equal(t, StringList{"Pune", "Mumbai"}, req.PreferredLocations)

	require.Error(t, json.Unmarshal([]byte(`{"skills":42}`), &req))
}

func TestToApplicationDTO_IncludesLoadedRelationsOnly(t *testing.T) {
	rating := 4
	app := models.Application{
		ID:          uuid.New(),
		WorkerID:    uuid.New(),
		JobID:       uuid.New(),
		RecruiterID: uuid.New(),
		Status:      models.ApplicationStatusHired,
		Rating:      &rating,
	}
	app.Job = models.Job{ID: app.JobID, Title: "Mason"}

	dto := ToApplicationDTO(app)
	require.NotNil(t, dto.Job)
	assert.Equal(t, "Mason", dto.Job.Title)
	assert.Nil(t, dto.Worker)
	assert.Nil(t, dto.Recruiter)

	body, err := json.Marshal(dto)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"jobId":"`+app.JobID.String()+`"`)
	assert.Contains(t, string(body), `"rating":4`)
	assert.NotContains(t, string(body), `"worker":`)
}

func TestToConversationDTOs_NullLastMessage(t *testing.T) {
	conversations := []services.Conversation{
		{Application: models.Application{ID: uuid.New()}},
	}

	body, err := json.Marshal(ToConversationDTOs(conversations))
	require.NoError(t, err)
	assert.Contains(t, string(body), `"lastMessage":null`)
}

func TestToProfileDTO_NewProfileHasEmptyLists(t *testing.T) {
	dto := ToProfileDTO(models.Profile{UserID: uuid.New(), Role: models.RoleWorker}, true)

	body, err := json.Marshal(dto)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"skills":[]`)
	assert.Contains(t, string(body), `"isNew":true`)
	assert.NotContains(t, string(body), `"updatedAt"`)
}
