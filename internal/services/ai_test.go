package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseJobDraft(t *testing.T) {
	draft, err := parseJobDraft("```json\n{\"title\":\"Electrician\",\"category\":\"electrical\",\"wage\":900,\"jobType\":\"daily\"}\n```")
	require.NoError(t, err)
	require.Equal(t, "Electrician", draft.Title)
	require.Equal(t, "electrical", draft.Category)
	require.Equal(t, 900.0, draft.Wage)

	_, err = parseJobDraft("not json")
	require.Error(t, err)

	_, err = parseJobDraft(`{"title":"  "}`)
	require.Error(t, err)
}
