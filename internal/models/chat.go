package models

import (
	"time"

	projectmodels "github.com/Jamolkhon5/projassist/internal/ai/project/models"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type DirectQuestionRequest struct {
	Question    string    `json:"question"`
	ProjectType string    `json:"project_type,omitempty"`
	ChatHistory []Message `json:"chat_history,omitempty"`
}

type GuidedQuestionnaireRequest struct {
	Responses   *projectmodels.Answers `json:"responses"`
	ProjectType string                 `json:"project_type,omitempty"`
}

type APIResponse struct {
	Response string `json:"response"`
}

type AuthRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type IntegrationRequest struct {
	ProjectID       string                 `json:"project_id"`
	ProjectData     map[string]interface{} `json:"project_data"`
	IntegrationType string                 `json:"integration_type"`
}

type IntegrationResponse struct {
	Status  string                 `json:"status"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data,omitempty"`
}

type IntegrationStatus struct {
	ProjectID   string    `json:"project_id"`
	Status      string    `json:"status"`
	LastUpdated time.Time `json:"last_updated"`
}

type SyncResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ToTranscript converts wire history into chat turns. Roles other than
// "assistant" are treated as the user.
func ToTranscript(history []Message) projectmodels.Transcript {
	t := make(projectmodels.Transcript, 0, len(history))
	for _, m := range history {
		speaker := projectmodels.SpeakerUser
		if m.Role == string(projectmodels.SpeakerAssistant) {
			speaker = projectmodels.SpeakerAssistant
		}
		t = append(t, projectmodels.ChatTurn{Speaker: speaker, Text: m.Content})
	}
	return t
}
