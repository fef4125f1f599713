package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jamolkhon5/projassist/internal/ai/project/models"
	"github.com/Jamolkhon5/projassist/internal/ai/project/prompts"
	"github.com/Jamolkhon5/projassist/internal/ai/project/validator"
)

// validAnswers holds one acceptable answer per field of the graduation-project catalog.
var validAnswers = []string{"1", "الذكاء الاصطناعي", "Python", "3", "1", "1"}

func startedQuestionnaire(t *testing.T, pt models.ProjectType) *Questionnaire {
	t.Helper()
	q := NewQuestionnaire(prompts.Default())
	require.NoError(t, q.Start())
	require.NoError(t, q.ChooseProjectType(pt))
	return q
}

func TestQuestionnaire_Lifecycle(t *testing.T) {
	q := NewQuestionnaire(prompts.Default())
	assert.Equal(t, PhaseUnstarted, q.Phase())
	assert.ErrorIs(t, q.Submit("x"), ErrNoCurrentField)

	require.NoError(t, q.Start())
	assert.Equal(t, PhaseSelectingProjectType, q.Phase())
	assert.ErrorIs(t, q.ChooseProjectType(""), ErrProjectTypeUnset)

	require.NoError(t, q.ChooseProjectType(models.GraduationProject))
	assert.Equal(t, PhaseAskingField, q.Phase())
	f, ok := q.CurrentField()
	require.True(t, ok)
	assert.Equal(t, "field_of_study", f.Key)
}

func TestQuestionnaire_BackAtFirstFieldIsNoop(t *testing.T) {
	q := startedQuestionnaire(t, models.ProjectManagement)
	require.NoError(t, q.Back())
	assert.Equal(t, 0, q.Cursor())
	assert.Equal(t, PhaseAskingField, q.Phase())
}

func TestQuestionnaire_BackRevisitsPreviousField(t *testing.T) {
	q := startedQuestionnaire(t, models.ProjectManagement)
	require.NoError(t, q.Submit("1"))
	require.NoError(t, q.Back())
	assert.Equal(t, 0, q.Cursor())

	require.NoError(t, q.Submit("متقدم"))
	v, _ := q.Answers().Get("experience")
	assert.Equal(t, "متقدم", v)
	assert.Equal(t, 1, q.Answers().Len())
}

func TestQuestionnaire_CompletesExactlyOnce(t *testing.T) {
	q := startedQuestionnaire(t, models.GraduationProject)
	n := len(q.Fields())
	require.Len(t, validAnswers, n)

	for i, a := range validAnswers {
		assert.Equal(t, PhaseAskingField, q.Phase(), "before answer %d", i)
		require.NoError(t, q.Submit(a))
	}
	assert.Equal(t, PhaseComplete, q.Phase())
	assert.Equal(t, n, q.Cursor())
	assert.Equal(t, 1.0, q.Progress())

	assert.ErrorIs(t, q.Submit("extra"), ErrQuestionnaireComplete)
	assert.Equal(t, n, q.Answers().Len())
	assert.ErrorIs(t, q.Back(), ErrInvalidTransition)
	_, ok := q.CurrentField()
	assert.False(t, ok)
}

func TestQuestionnaire_InvalidAnswerDoesNotAdvance(t *testing.T) {
	q := startedQuestionnaire(t, models.GraduationProject)
	err := q.Submit("99")
	var answerErr *validator.AnswerError
	require.ErrorAs(t, err, &answerErr)
	assert.Equal(t, 0, q.Cursor())
	assert.Equal(t, 0, q.Answers().Len())
}

func TestQuestionnaire_ProgressAndSummary(t *testing.T) {
	q := startedQuestionnaire(t, models.GraduationProject)
	require.NoError(t, q.Submit("1"))
	require.NoError(t, q.Submit("الروبوتات"))

	assert.InDelta(t, 2.0/6.0, q.Progress(), 1e-9)
	summary := q.Summary()
	require.Len(t, summary, 2)
	field, _ := prompts.Default().Field(models.GraduationProject, "interests")
	assert.Equal(t, [2]string{field.Prompt, "الروبوتات"}, summary[1])
}

func TestQuestionnaire_RestartClearsEverything(t *testing.T) {
	q := startedQuestionnaire(t, models.ProjectManagement)
	require.NoError(t, q.Submit("1"))
	q.Restart()

	assert.Equal(t, PhaseUnstarted, q.Phase())
	assert.Equal(t, models.ProjectType(""), q.ProjectType())
	assert.Equal(t, 0, q.Cursor())
	assert.Equal(t, 0, q.Answers().Len())
}

func TestQuestionnaire_SwitchProjectTypeStartsOver(t *testing.T) {
	q := startedQuestionnaire(t, models.ProjectManagement)
	require.NoError(t, q.Submit("1"))
	require.NoError(t, q.SwitchProjectType(models.GraduationProject))

	assert.Equal(t, models.GraduationProject, q.ProjectType())
	assert.Equal(t, 0, q.Cursor())
	assert.Equal(t, 0, q.Answers().Len())
	assert.Equal(t, PhaseAskingField, q.Phase())
}
