package service

import (
	"github.com/Jamolkhon5/projassist/internal/ai/project/models"
	"github.com/Jamolkhon5/projassist/internal/ai/project/prompts"
)

// Mode is the interaction style a chat session is in.
type Mode string

const (
	ModeNone   Mode = ""
	ModeGuided Mode = "guided"
	ModeDirect Mode = "direct"
)

// Session is the per-user conversation state of a chat front-end. It lives
// for one user session and is only touched by one action at a time.
type Session struct {
	ID            string
	Mode          Mode
	ProjectType   models.ProjectType
	Messages      models.Transcript
	Questionnaire *Questionnaire
}

func NewSession(id string, store *prompts.Store) *Session {
	return &Session{
		ID:            id,
		Questionnaire: NewQuestionnaire(store),
	}
}

// Reset clears everything except the session ID.
func (s *Session) Reset() {
	s.Mode = ModeNone
	s.ProjectType = ""
	s.Messages = nil
	s.Questionnaire.Restart()
}

func (s *Session) appendTurn(speaker models.Speaker, text string) {
	s.Messages = append(s.Messages, models.ChatTurn{Speaker: speaker, Text: text})
}
