package prompts

import (
	"strings"

	"github.com/Jamolkhon5/projassist/internal/ai/project/models"
)

// Store bundles the templates and catalogs the prompt assembler reads from.
// A Store is never modified after construction and can be shared freely.
type Store struct {
	System     string
	Guided     map[models.ProjectType]string
	Direct     map[models.ProjectType]string
	Questions  map[models.ProjectType][]models.QuestionnaireField
	GuidedFill map[models.ProjectType]map[string]string
	DirectFill map[models.ProjectType]map[string]string
}

// Generic filler for the template placeholders. The values are descriptive
// stand-ins, not derived from the user's input.
var (
	pmGuidedFill = map[string]string{
		"general_advice":       "نصائح عامة مخصصة بناءً على إجابات المستخدم",
		"suggested_tools":      "أدوات مقترحة بناءً على احتياجات المشروع",
		"best_practices":       "أفضل الممارسات في إدارة المشاريع البرمجية",
		"actionable_steps":     "خطوات عملية يمكن تطبيقها فوراً",
		"additional_resources": "موارد إضافية للمساعدة في إدارة المشروع",
	}
	gpGuidedFill = map[string]string{
		"project_ideas":            "أفكار مشاريع مخصصة بناءً على مجال الدراسة والاهتمامات",
		"suggested_technologies":   "تقنيات مقترحة لتنفيذ المشاريع",
		"starting_steps":           "خطوات عملية لبدء تنفيذ المشروع",
		"challenges_and_solutions": "تحديات محتملة وحلولها",
		"learning_resources":       "موارد تعليمية للمساعدة في تنفيذ المشروع",
	}
	pmDirectFill = map[string]string{
		"topic":    "الموضوع المطلوب",
		"response": "سيتم توليد إجابة مفصلة هنا",
	}
	gpDirectFill = map[string]string{
		"topic":    "الموضوع المطلوب",
		"response": "سيتم توليد أفكار وإرشادات هنا",
	}
)

var defaultStore = &Store{
	System: SystemPrompt,
	Guided: map[models.ProjectType]string{
		models.ProjectManagement: PMGuidedGenerationTemplate,
		models.GraduationProject: GPGuidedGenerationTemplate,
	},
	Direct: map[models.ProjectType]string{
		models.ProjectManagement: PMDirectModeTemplate,
		models.GraduationProject: GPDirectModeTemplate,
	},
	Questions: map[models.ProjectType][]models.QuestionnaireField{
		models.ProjectManagement: PMQuestions,
		models.GraduationProject: GPQuestions,
	},
	GuidedFill: map[models.ProjectType]map[string]string{
		models.ProjectManagement: pmGuidedFill,
		models.GraduationProject: gpGuidedFill,
	},
	DirectFill: map[models.ProjectType]map[string]string{
		models.ProjectManagement: pmDirectFill,
		models.GraduationProject: gpDirectFill,
	},
}

// Default returns the built-in store.
func Default() *Store {
	return defaultStore
}

// Fields returns the question catalog for a project type, nil if unknown.
func (s *Store) Fields(pt models.ProjectType) []models.QuestionnaireField {
	return s.Questions[pt]
}

// Field looks up a single question by key.
func (s *Store) Field(pt models.ProjectType, key string) (models.QuestionnaireField, bool) {
	for _, f := range s.Questions[pt] {
		if f.Key == key {
			return f, true
		}
	}
	return models.QuestionnaireField{}, false
}

// Fill replaces every {name} placeholder of tmpl with values[name].
// Unknown placeholders are left as they are.
func Fill(tmpl string, values map[string]string) string {
	pairs := make([]string, 0, len(values)*2)
	for k, v := range values {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
