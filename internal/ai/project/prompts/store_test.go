package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Jamolkhon5/projassist/internal/ai/project/models"
)

func TestFill(t *testing.T) {
	got := Fill("a {x} b {y} c {z}", map[string]string{"x": "1", "y": "2"})
	assert.Equal(t, "a 1 b 2 c {z}", got)
}

func TestDefault_TemplatesHaveNoPlaceholdersLeft(t *testing.T) {
	s := Default()
	for _, pt := range []models.ProjectType{models.ProjectManagement, models.GraduationProject} {
		guided := Fill(s.Guided[pt], s.GuidedFill[pt])
		direct := Fill(s.Direct[pt], s.DirectFill[pt])
		assert.False(t, strings.ContainsAny(guided, "{}"), "guided %s", pt)
		assert.False(t, strings.ContainsAny(direct, "{}"), "direct %s", pt)
	}
}

func TestDefault_Catalogs(t *testing.T) {
	s := Default()

	pm := s.Fields(models.ProjectManagement)
	keys := make([]string, len(pm))
	for i, f := range pm {
		keys[i] = f.Key
	}
	assert.Equal(t, []string{"experience", "project_type", "team_size", "project_phase", "methodology", "challenges", "goals"}, keys)

	gp := s.Fields(models.GraduationProject)
	assert.Len(t, gp, 6)

	f, ok := s.Field(models.GraduationProject, "team_size")
	assert.True(t, ok)
	assert.Equal(t, models.NumericRange, f.Kind)
	assert.Equal(t, 1, f.Min)
	assert.Equal(t, 10, f.Max)

	_, ok = s.Field(models.ProjectManagement, "nope")
	assert.False(t, ok)
	assert.Nil(t, s.Fields("xx"))
}

func TestDefault_ChoiceDefaultsAreValidChoices(t *testing.T) {
	for pt, fields := range Default().Questions {
		for _, f := range fields {
			if f.Kind != models.SingleChoice || f.Default == "" {
				continue
			}
			assert.Contains(t, f.Choices, f.Default, "%s/%s", pt, f.Key)
		}
	}
}
