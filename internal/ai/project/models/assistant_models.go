package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ProjectType selects which question set and templates apply to a session.
type ProjectType string

const (
	ProjectManagement ProjectType = "pm"
	GraduationProject ProjectType = "gp"
)

// ParseProjectType accepts the short codes used by the API and the front-ends.
func ParseProjectType(s string) (ProjectType, error) {
	switch pt := ProjectType(strings.ToLower(strings.TrimSpace(s))); pt {
	case ProjectManagement, GraduationProject:
		return pt, nil
	default:
		return "", fmt.Errorf("unsupported project type %q", s)
	}
}

func (p ProjectType) Valid() bool {
	return p == ProjectManagement || p == GraduationProject
}

// Label returns the Arabic name shown to users.
func (p ProjectType) Label() string {
	switch p {
	case ProjectManagement:
		return "إدارة المشاريع البرمجية"
	case GraduationProject:
		return "مشاريع التخرج"
	default:
		return ""
	}
}

// Speaker identifies who produced a chat turn.
type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// ChatTurn is a single message in a conversation.
type ChatTurn struct {
	Speaker Speaker `json:"role"`
	Text    string  `json:"content"`
}

// Transcript is a chronological list of turns. Order is never changed once appended.
type Transcript []ChatTurn

// AnswerKind tells front-ends which input widget a field needs.
type AnswerKind string

const (
	FreeText     AnswerKind = "free_text"
	SingleChoice AnswerKind = "single_choice"
	NumericRange AnswerKind = "numeric_range"
)

// QuestionnaireField describes one question of a guided questionnaire.
type QuestionnaireField struct {
	Key     string     `json:"key"`
	Prompt  string     `json:"prompt"`
	Kind    AnswerKind `json:"kind"`
	Choices []string   `json:"choices,omitempty"`
	// Default is the preselected choice or number; empty for free text.
	Default string `json:"default,omitempty"`
	Min     int    `json:"min,omitempty"`
	Max     int    `json:"max,omitempty"`
}

// Answers maps field keys to answers and remembers the order in which keys were first set.
type Answers struct {
	keys   []string
	values map[string]string
}

func NewAnswers() *Answers {
	return &Answers{values: make(map[string]string)}
}

// Set stores an answer. Re-answering a key keeps its original position.
func (a *Answers) Set(key, value string) {
	if a.values == nil {
		a.values = make(map[string]string)
	}
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
}

func (a *Answers) Get(key string) (string, bool) {
	if a == nil {
		return "", false
	}
	v, ok := a.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (a *Answers) Keys() []string {
	if a == nil {
		return nil
	}
	out := make([]string, len(a.keys))
	copy(out, a.keys)
	return out
}

func (a *Answers) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

// MarshalJSON writes the answers as an object in insertion order.
func (a *Answers) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range a.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(a.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object of strings keeping the document order,
// which a plain map would lose.
func (a *Answers) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*a = Answers{values: make(map[string]string)}
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("answers must be a JSON object")
	}

	out := NewAnswers()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("answers: unexpected key %v", keyTok)
		}
		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("answers: value for %q must be a string: %w", key, err)
		}
		out.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*a = *out
	return nil
}

// PromptRequest is either a DirectRequest or a GuidedRequest.
type PromptRequest interface {
	promptRequest()
}

// DirectRequest is a free-form question, optionally with earlier turns.
// Transcript must not contain the question itself.
type DirectRequest struct {
	Question    string
	Transcript  Transcript
	ProjectType ProjectType
}

// GuidedRequest carries a finished questionnaire.
type GuidedRequest struct {
	Answers     *Answers
	ProjectType ProjectType
}

func (DirectRequest) promptRequest() {}
func (GuidedRequest) promptRequest() {}
