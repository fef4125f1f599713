package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Jamolkhon5/projassist/internal/ai/project/models"
	"github.com/Jamolkhon5/projassist/internal/ai/project/prompts"
)

func TestRenderTranscript(t *testing.T) {
	assert.Equal(t, "", RenderTranscript(nil))
	assert.Equal(t, "", RenderTranscript(models.Transcript{}))

	got := RenderTranscript(models.Transcript{
		{Speaker: models.SpeakerUser, Text: "a"},
		{Speaker: models.SpeakerAssistant, Text: "b"},
	})
	assert.Equal(t, "المستخدم: a\n\nالمساعد: b\n\n", got)
}

func TestAssemble_DirectWithoutHistoryEndsWithQuestion(t *testing.T) {
	store := prompts.Default()
	got := Assemble(models.DirectRequest{Question: "Q", ProjectType: models.ProjectManagement}, store)

	assert.True(t, strings.HasSuffix(got, "Q"))
	assert.True(t, strings.HasPrefix(got, store.System))
	assert.Contains(t, got, prompts.Fill(store.Direct[models.ProjectManagement], store.DirectFill[models.ProjectManagement]))
}

func TestAssemble_DirectUnknownTypeUsesProjectManagementTemplate(t *testing.T) {
	store := prompts.Default()
	assert.Equal(t,
		Assemble(models.DirectRequest{Question: "Q", ProjectType: models.ProjectManagement}, store),
		Assemble(models.DirectRequest{Question: "Q"}, store))
}

func TestAssemble_DirectWithHistory(t *testing.T) {
	store := prompts.Default()
	t1 := models.ChatTurn{Speaker: models.SpeakerUser, Text: "T1"}
	t2 := models.ChatTurn{Speaker: models.SpeakerAssistant, Text: "T2"}

	got := Assemble(&models.DirectRequest{
		Question:    "Q",
		Transcript:  models.Transcript{t1, t2},
		ProjectType: models.GraduationProject,
	}, store)

	rendered := RenderTranscript(models.Transcript{t1, t2})
	idxHistory := strings.Index(got, rendered)
	idxQuestion := strings.Index(got, "المستخدم: Q")
	assert.GreaterOrEqual(t, idxHistory, 0)
	assert.Greater(t, idxQuestion, idxHistory)
	assert.Less(t, strings.Index(got, "T1"), strings.Index(got, "T2"))

	for _, pt := range []models.ProjectType{models.ProjectManagement, models.GraduationProject} {
		for _, filler := range store.DirectFill[pt] {
			assert.NotContains(t, got, filler)
		}
	}
	assert.NotContains(t, got, "{topic}")
}

func TestAssemble_GuidedListsAnswersInOrder(t *testing.T) {
	answers := models.NewAnswers()
	answers.Set("experience", "متوسط")
	answers.Set("team_size", "5")

	got := Assemble(models.GuidedRequest{Answers: answers, ProjectType: models.ProjectManagement}, prompts.Default())

	assert.Contains(t, got, "- experience: متوسط\n")
	assert.Less(t, strings.Index(got, "- experience"), strings.Index(got, "- team_size"))
	assert.Contains(t, got, prompts.AnswersHeader)
}

func TestAssemble_GuidedGraduationProjectTemplate(t *testing.T) {
	store := prompts.Default()
	answers := models.NewAnswers()
	answers.Set("interests", "الذكاء الاصطناعي")

	got := Assemble(models.GuidedRequest{Answers: answers, ProjectType: models.GraduationProject}, store)
	assert.Contains(t, got, store.GuidedFill[models.GraduationProject]["project_ideas"])
	assert.NotContains(t, got, store.GuidedFill[models.ProjectManagement]["general_advice"])
}
