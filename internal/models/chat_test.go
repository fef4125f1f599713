package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	projectmodels "github.com/Jamolkhon5/projassist/internal/ai/project/models"
)

func TestToTranscript(t *testing.T) {
	got := ToTranscript([]Message{
		{Role: "user", Content: "a"},
		{Role: "assistant", Content: "b"},
		{Role: "system", Content: "c"},
	})
	assert.Equal(t, projectmodels.Transcript{
		{Speaker: projectmodels.SpeakerUser, Text: "a"},
		{Speaker: projectmodels.SpeakerAssistant, Text: "b"},
		{Speaker: projectmodels.SpeakerUser, Text: "c"},
	}, got)
	assert.Empty(t, ToTranscript(nil))
}

func TestGuidedQuestionnaireRequest_DecodesOrderedResponses(t *testing.T) {
	var req GuidedQuestionnaireRequest
	require.NoError(t, json.Unmarshal([]byte(`{"responses":{"goals":"g","experience":"e"},"project_type":"pm"}`), &req))
	assert.Equal(t, []string{"goals", "experience"}, req.Responses.Keys())
	assert.Equal(t, "pm", req.ProjectType)
}
