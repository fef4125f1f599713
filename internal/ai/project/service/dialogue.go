package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Jamolkhon5/projassist/internal/ai/project/models"
	"github.com/Jamolkhon5/projassist/internal/ai/project/prompts"
	"github.com/Jamolkhon5/projassist/internal/ai/project/validator"
)

// topicsPerType is how many popular topics of each project type are offered.
const topicsPerType = 5

// Dialogue drives a chat session through mode selection, the guided
// questionnaire and direct questions. It keeps no state of its own.
type Dialogue struct {
	assistant *ProjectAssistant
}

func NewDialogue(assistant *ProjectAssistant) *Dialogue {
	return &Dialogue{assistant: assistant}
}

// Welcome shows the greeting and the two interaction modes.
func (d *Dialogue) Welcome() *models.AssistantResponse {
	return &models.AssistantResponse{
		Message: prompts.WelcomeMessage + "\n\n" + prompts.ChooseModeText,
		Actions: modeActions(),
	}
}

// HandleText routes free text according to the session's mode.
func (d *Dialogue) HandleText(ctx context.Context, s *Session, text string) *models.AssistantResponse {
	switch s.Mode {
	case ModeGuided:
		return d.Answer(s, text)
	case ModeDirect:
		return d.Ask(ctx, s, text)
	default:
		return d.Welcome()
	}
}

// Dispatch performs a button action sent back by a front-end.
func (d *Dialogue) Dispatch(ctx context.Context, s *Session, kind models.ActionKind, value string) *models.AssistantResponse {
	switch kind {
	case models.ActionChooseMode:
		if Mode(value) == ModeGuided {
			return d.EnterGuided(s)
		}
		return d.EnterDirect(s)
	case models.ActionChooseProjectType:
		pt, err := models.ParseProjectType(value)
		if err != nil {
			return &models.AssistantResponse{Message: prompts.ChooseProjectTypeText, Actions: projectTypeActions()}
		}
		return d.ChooseProjectType(s, pt)
	case models.ActionAnswer:
		if s.Mode != ModeGuided {
			return d.Welcome()
		}
		return d.Answer(s, value)
	case models.ActionBack:
		return d.Back(s)
	case models.ActionGenerate:
		return d.Generate(ctx, s)
	case models.ActionRestart:
		return d.RestartQuestionnaire(s)
	case models.ActionTopic:
		return d.PickTopic(ctx, s, value)
	default:
		return d.Welcome()
	}
}

// EnterGuided starts the questionnaire. A project type chosen earlier skips
// the selection step.
func (d *Dialogue) EnterGuided(s *Session) *models.AssistantResponse {
	s.Mode = ModeGuided
	q := s.Questionnaire
	q.Restart()
	_ = q.Start()
	if s.ProjectType.Valid() {
		_ = q.ChooseProjectType(s.ProjectType)
	}
	return d.questionnaireView(s, "")
}

// EnterDirect switches to free questions, greeting the user on an empty conversation.
func (d *Dialogue) EnterDirect(s *Session) *models.AssistantResponse {
	s.Mode = ModeDirect
	if len(s.Messages) == 0 {
		s.appendTurn(models.SpeakerAssistant, prompts.DirectModeWelcome)
	}
	return &models.AssistantResponse{Message: prompts.DirectModeWelcome}
}

// ChooseProjectType answers the questionnaire's first step.
func (d *Dialogue) ChooseProjectType(s *Session, pt models.ProjectType) *models.AssistantResponse {
	if s.Mode != ModeGuided {
		return d.SwitchProjectType(s, pt)
	}
	if err := s.Questionnaire.ChooseProjectType(pt); err != nil {
		return d.questionnaireView(s, "")
	}
	s.ProjectType = pt
	return d.questionnaireView(s, "")
}

// Answer submits text for the current question.
func (d *Dialogue) Answer(s *Session, text string) *models.AssistantResponse {
	var answerErr *validator.AnswerError
	if err := s.Questionnaire.Submit(text); errors.As(err, &answerErr) {
		return d.questionnaireView(s, "❌ "+answerErr.Message)
	}
	return d.questionnaireView(s, "")
}

// Back returns to the previous question.
func (d *Dialogue) Back(s *Session) *models.AssistantResponse {
	_ = s.Questionnaire.Back()
	return d.questionnaireView(s, "")
}

// RestartQuestionnaire drops all answers and the project type.
func (d *Dialogue) RestartQuestionnaire(s *Session) *models.AssistantResponse {
	s.Questionnaire.Restart()
	s.ProjectType = ""
	s.Mode = ModeGuided
	_ = s.Questionnaire.Start()
	return d.questionnaireView(s, "")
}

// Generate sends the finished questionnaire to the model. The reply becomes
// part of the conversation and the session continues in direct mode.
func (d *Dialogue) Generate(ctx context.Context, s *Session) *models.AssistantResponse {
	q := s.Questionnaire
	if q.Phase() != PhaseComplete {
		return d.questionnaireView(s, "")
	}
	reply := d.assistant.AskGuided(ctx, q.Answers(), q.ProjectType())
	s.appendTurn(models.SpeakerAssistant, reply)
	s.Mode = ModeDirect
	return &models.AssistantResponse{Message: reply}
}

// Ask answers a direct question using the conversation so far as context.
func (d *Dialogue) Ask(ctx context.Context, s *Session, question string) *models.AssistantResponse {
	if err := validator.ValidateQuestion(question); err != nil {
		return &models.AssistantResponse{Message: prompts.AskPlaceholder}
	}
	s.Mode = ModeDirect

	history := make(models.Transcript, len(s.Messages))
	copy(history, s.Messages)
	s.appendTurn(models.SpeakerUser, question)

	pt := s.ProjectType
	if !pt.Valid() {
		pt = d.assistant.Classify(question)
	}
	reply := d.assistant.AskDirect(ctx, question, pt, history)
	s.appendTurn(models.SpeakerAssistant, reply)
	return &models.AssistantResponse{Message: reply}
}

// SwitchProjectType changes the help area. In guided mode the questions
// start over for the new type.
func (d *Dialogue) SwitchProjectType(s *Session, pt models.ProjectType) *models.AssistantResponse {
	if !pt.Valid() {
		return &models.AssistantResponse{Message: prompts.ChooseProjectTypeText, Actions: projectTypeActions()}
	}
	s.ProjectType = pt
	if s.Mode == ModeGuided {
		_ = s.Questionnaire.SwitchProjectType(pt)
		return d.questionnaireView(s, "")
	}
	return &models.AssistantResponse{Message: "تم تغيير مجال المساعدة إلى: " + pt.Label()}
}

// Clear forgets the whole conversation.
func (d *Dialogue) Clear(s *Session) *models.AssistantResponse {
	s.Reset()
	resp := d.Welcome()
	resp.Message = prompts.ClearedText + "\n\n" + resp.Message
	return resp
}

// Topics lists popular topics from both project types.
func (d *Dialogue) Topics() *models.AssistantResponse {
	var actions []models.Action
	add := func(pt models.ProjectType, topics []string) {
		for i := 0; i < len(topics) && i < topicsPerType; i++ {
			actions = append(actions, models.Action{
				Kind:  models.ActionTopic,
				Label: topics[i],
				Value: fmt.Sprintf("%s:%d", pt, i),
			})
		}
	}
	add(models.ProjectManagement, prompts.ProjectManagementAspects)
	add(models.GraduationProject, prompts.GraduationProjectCategories)
	return &models.AssistantResponse{Message: prompts.PopularTopicsHeader, Actions: actions}
}

// PickTopic asks about a popular topic and sets the project type to the topic's.
func (d *Dialogue) PickTopic(ctx context.Context, s *Session, value string) *models.AssistantResponse {
	pt, topic, ok := parseTopic(value)
	if !ok {
		return d.Topics()
	}
	query := fmt.Sprintf(prompts.PMTopicQuery, topic)
	if pt == models.GraduationProject {
		query = fmt.Sprintf(prompts.GPTopicQuery, topic)
	}
	s.ProjectType = pt
	return d.Ask(ctx, s, query)
}

func parseTopic(value string) (models.ProjectType, string, bool) {
	code, idx, found := strings.Cut(value, ":")
	if !found {
		return "", "", false
	}
	pt, err := models.ParseProjectType(code)
	if err != nil {
		return "", "", false
	}
	i, err := strconv.Atoi(idx)
	if err != nil || i < 0 || i >= topicsPerType {
		return "", "", false
	}
	topics := prompts.ProjectManagementAspects
	if pt == models.GraduationProject {
		topics = prompts.GraduationProjectCategories
	}
	if i >= len(topics) {
		return "", "", false
	}
	return pt, topics[i], true
}

// questionnaireView renders the questionnaire's current phase. notice, if
// set, is shown above the question (for example a validation error).
func (d *Dialogue) questionnaireView(s *Session, notice string) *models.AssistantResponse {
	q := s.Questionnaire
	var sb strings.Builder
	if notice != "" {
		sb.WriteString(notice + "\n\n")
	}
	sb.WriteString("**" + prompts.GuidedModeLabel + "**\n\n")

	switch q.Phase() {
	case PhaseSelectingProjectType, PhaseUnstarted:
		sb.WriteString(prompts.ChooseProjectTypeText)
		return &models.AssistantResponse{Message: sb.String(), Actions: projectTypeActions()}

	case PhaseComplete:
		sb.WriteString(prompts.SummaryHeader + "\n")
		for _, row := range q.Summary() {
			sb.WriteString(fmt.Sprintf("\n• %s %s", row[0], row[1]))
		}
		progress := q.Progress()
		return &models.AssistantResponse{
			Message:  sb.String(),
			Progress: &progress,
			Actions: []models.Action{
				{Kind: models.ActionGenerate, Label: prompts.GenerateLabel},
				{Kind: models.ActionRestart, Label: prompts.RestartLabel},
			},
		}
	}

	field, _ := q.CurrentField()
	sb.WriteString(fmt.Sprintf("(%d/%d) %s", q.Cursor()+1, len(q.Fields()), field.Prompt))

	var actions []models.Action
	switch field.Kind {
	case models.SingleChoice:
		for i, c := range field.Choices {
			actions = append(actions, models.Action{
				Kind:  models.ActionAnswer,
				Label: c,
				Value: strconv.Itoa(i + 1),
			})
		}
	case models.NumericRange:
		sb.WriteString(fmt.Sprintf("\n(%d - %d)", field.Min, field.Max))
		if field.Default != "" {
			actions = append(actions, models.Action{Kind: models.ActionAnswer, Label: field.Default, Value: field.Default})
		}
	}
	if q.Cursor() > 0 {
		actions = append(actions, models.Action{Kind: models.ActionBack, Label: prompts.BackLabel})
	}

	progress := q.Progress()
	return &models.AssistantResponse{Message: sb.String(), Actions: actions, Progress: &progress}
}

func modeActions() []models.Action {
	return []models.Action{
		{Kind: models.ActionChooseMode, Label: prompts.GuidedModeLabel, Value: string(ModeGuided)},
		{Kind: models.ActionChooseMode, Label: prompts.DirectModeLabel, Value: string(ModeDirect)},
	}
}

func projectTypeActions() []models.Action {
	return []models.Action{
		{Kind: models.ActionChooseProjectType, Label: models.ProjectManagement.Label(), Value: string(models.ProjectManagement)},
		{Kind: models.ActionChooseProjectType, Label: models.GraduationProject.Label(), Value: string(models.GraduationProject)},
	}
}
