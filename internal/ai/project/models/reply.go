package models

// ActionKind names a button a chat front-end can offer.
type ActionKind string

const (
	ActionChooseMode        ActionKind = "mode"
	ActionChooseProjectType ActionKind = "ptype"
	ActionAnswer            ActionKind = "answer"
	ActionBack              ActionKind = "back"
	ActionGenerate          ActionKind = "generate"
	ActionRestart           ActionKind = "restart"
	ActionTopic             ActionKind = "topic"
)

// Action is a suggested next step. Value is what the front-end sends back.
type Action struct {
	Kind  ActionKind `json:"kind"`
	Label string     `json:"label"`
	Value string     `json:"value,omitempty"`
}

// AssistantResponse is what the dialogue returns for one user action.
type AssistantResponse struct {
	Message string   `json:"message"`
	Actions []Action `json:"actions,omitempty"`
	// Progress is set while a questionnaire is running, from 0 to 1.
	Progress *float64 `json:"progress,omitempty"`
}
