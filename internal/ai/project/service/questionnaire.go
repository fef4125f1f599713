package service

import (
	"errors"

	"github.com/Jamolkhon5/projassist/internal/ai/project/models"
	"github.com/Jamolkhon5/projassist/internal/ai/project/prompts"
	"github.com/Jamolkhon5/projassist/internal/ai/project/validator"
)

var (
	ErrQuestionnaireComplete = errors.New("questionnaire already complete")
	ErrNoCurrentField        = errors.New("no question is being asked")
	ErrProjectTypeUnset      = errors.New("project type not selected")
	ErrInvalidTransition     = errors.New("action not allowed in current questionnaire phase")
)

// Phase is the questionnaire's position in its lifecycle.
type Phase string

const (
	PhaseUnstarted            Phase = "unstarted"
	PhaseSelectingProjectType Phase = "selecting_project_type"
	PhaseAskingField          Phase = "asking_field"
	PhaseComplete             Phase = "complete"
)

// Questionnaire walks a user through the fixed question list of one project
// type. The cursor moves by one per accepted answer, can step back but never
// below the first field, and rests at len(fields) once everything is answered.
type Questionnaire struct {
	store       *prompts.Store
	phase       Phase
	projectType models.ProjectType
	cursor      int
	answers     *models.Answers
}

func NewQuestionnaire(store *prompts.Store) *Questionnaire {
	return &Questionnaire{
		store:   store,
		phase:   PhaseUnstarted,
		answers: models.NewAnswers(),
	}
}

func (q *Questionnaire) Phase() Phase                    { return q.phase }
func (q *Questionnaire) ProjectType() models.ProjectType { return q.projectType }
func (q *Questionnaire) Cursor() int                     { return q.cursor }
func (q *Questionnaire) Answers() *models.Answers        { return q.answers }

func (q *Questionnaire) Fields() []models.QuestionnaireField {
	return q.store.Fields(q.projectType)
}

// Start enters guided mode and waits for a project type.
func (q *Questionnaire) Start() error {
	if q.phase != PhaseUnstarted {
		return ErrInvalidTransition
	}
	q.phase = PhaseSelectingProjectType
	return nil
}

// ChooseProjectType picks the question set and moves to the first question.
func (q *Questionnaire) ChooseProjectType(pt models.ProjectType) error {
	if q.phase != PhaseSelectingProjectType {
		return ErrInvalidTransition
	}
	if !pt.Valid() {
		return ErrProjectTypeUnset
	}
	q.begin(pt)
	return nil
}

// SwitchProjectType restarts the questions for a different type. The project
// type is known afterwards, so the selection step is skipped.
func (q *Questionnaire) SwitchProjectType(pt models.ProjectType) error {
	if !pt.Valid() {
		return ErrProjectTypeUnset
	}
	q.begin(pt)
	return nil
}

func (q *Questionnaire) begin(pt models.ProjectType) {
	q.projectType = pt
	q.cursor = 0
	q.answers = models.NewAnswers()
	q.phase = PhaseAskingField
	if len(q.Fields()) == 0 {
		q.phase = PhaseComplete
	}
}

// CurrentField returns the question being asked.
func (q *Questionnaire) CurrentField() (models.QuestionnaireField, bool) {
	if q.phase != PhaseAskingField {
		return models.QuestionnaireField{}, false
	}
	return q.Fields()[q.cursor], true
}

// Submit validates and stores the answer to the current question and
// advances. After the last answer the questionnaire is complete and further
// answers are rejected.
func (q *Questionnaire) Submit(raw string) error {
	switch q.phase {
	case PhaseComplete:
		return ErrQuestionnaireComplete
	case PhaseAskingField:
	default:
		return ErrNoCurrentField
	}

	field := q.Fields()[q.cursor]
	value, err := validator.ValidateAnswer(field, raw)
	if err != nil {
		return err
	}
	q.answers.Set(field.Key, value)

	q.cursor++
	if q.cursor == len(q.Fields()) {
		q.phase = PhaseComplete
	}
	return nil
}

// Back returns to the previous question. It is a no-op on the first one.
func (q *Questionnaire) Back() error {
	if q.phase != PhaseAskingField {
		return ErrInvalidTransition
	}
	if q.cursor > 0 {
		q.cursor--
	}
	return nil
}

// Restart discards the project type and all answers.
func (q *Questionnaire) Restart() {
	q.phase = PhaseUnstarted
	q.projectType = ""
	q.cursor = 0
	q.answers = models.NewAnswers()
}

// Progress is the answered fraction, from 0 to 1.
func (q *Questionnaire) Progress() float64 {
	n := len(q.Fields())
	if n == 0 {
		return 0
	}
	return float64(q.cursor) / float64(n)
}

// Summary pairs each answered question with its answer, in answer order.
func (q *Questionnaire) Summary() [][2]string {
	out := make([][2]string, 0, q.answers.Len())
	for _, key := range q.answers.Keys() {
		label := key
		if f, ok := q.store.Field(q.projectType, key); ok {
			label = f.Prompt
		}
		v, _ := q.answers.Get(key)
		out = append(out, [2]string{label, v})
	}
	return out
}
