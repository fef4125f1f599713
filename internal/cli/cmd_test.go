package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jamolkhon5/projassist/internal/ai/project/models"
	"github.com/Jamolkhon5/projassist/internal/ai/project/prompts"
	"github.com/Jamolkhon5/projassist/internal/ai/project/service"
)

type recordingSender struct {
	prompts []string
}

func (s *recordingSender) Send(_ context.Context, prompt string) string {
	s.prompts = append(s.prompts, prompt)
	return "الإجابة"
}

func testApp() (*App, *recordingSender) {
	sender := &recordingSender{}
	assistant := service.NewProjectAssistant(prompts.Default(), sender)
	return &App{
		Assistant:     assistant,
		Dialogue:      service.NewDialogue(assistant),
		IsInteractive: func() bool { return false },
	}, sender
}

func TestAskCmd(t *testing.T) {
	app, sender := testApp()
	root := NewRootCmd(app)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"ask", "أريد أفكار لمشروع التخرج"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "الإجابة")
	assert.Contains(t, out.String(), models.GraduationProject.Label())
	require.Len(t, sender.prompts, 1)
}

func TestAskCmd_InvalidType(t *testing.T) {
	app, sender := testApp()
	root := NewRootCmd(app)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"ask", "سؤال", "--type", "hr"})

	assert.Error(t, root.Execute())
	assert.Empty(t, sender.prompts)
}

func TestGuidedCmd_RequiresTerminal(t *testing.T) {
	app, _ := testApp()
	root := NewRootCmd(app)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"guided", "--type", "pm"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestResolveProjectType(t *testing.T) {
	pt, err := resolveProjectType("", func() models.ProjectType { return models.GraduationProject })
	require.NoError(t, err)
	assert.Equal(t, models.GraduationProject, pt)

	pt, err = resolveProjectType("pm", nil)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectManagement, pt)
}

func TestQuestionnaireFormSeedsDefaults(t *testing.T) {
	fields := prompts.Default().Fields(models.ProjectManagement)
	values := make([]string, len(fields))
	form := questionnaireForm(fields, values)

	require.NotNil(t, form)
	assert.Equal(t, "متوسط", values[0])
	assert.Equal(t, "5", values[2])
	assert.Equal(t, "", values[5])
}

func TestRenderSummary(t *testing.T) {
	out := renderSummary([][2]string{{"سؤال", "جواب"}})
	assert.Contains(t, out, "سؤال")
	assert.Contains(t, out, "جواب")
}
