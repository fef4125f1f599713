package service

import (
	"strings"

	"github.com/Jamolkhon5/projassist/internal/ai/project/models"
	"github.com/Jamolkhon5/projassist/internal/ai/project/prompts"
)

// RenderTranscript writes each turn as "{label}: {text}" followed by a blank
// line, oldest first. An empty transcript renders as "".
func RenderTranscript(t models.Transcript) string {
	var sb strings.Builder
	for _, turn := range t {
		sb.WriteString(roleLabel(turn.Speaker))
		sb.WriteString(": ")
		sb.WriteString(turn.Text)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// Anything that is not the user is rendered as the assistant.
func roleLabel(s models.Speaker) string {
	if s == models.SpeakerUser {
		return prompts.UserLabel
	}
	return prompts.AssistantLabel
}
