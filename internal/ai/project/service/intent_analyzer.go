package service

import (
	"strings"

	"github.com/Jamolkhon5/projassist/internal/ai/project/models"
)

var (
	pmKeywords = []string{
		"إدارة المشروع", "مدير المشروع", "الجدول الزمني", "المخاطر",
		"الميزانية", "فريق العمل", "أصحاب المصلحة",
	}
	gpKeywords = []string{
		"مشروع التخرج", "مشاريع التخرج", "أفكار", "فكرة مشروع", "تخرجي", "دراستي",
	}
)

// IntentAnalyzer guesses the project type of a free-form question.
type IntentAnalyzer struct {
	keywords map[models.ProjectType][]string
}

func NewIntentAnalyzer() *IntentAnalyzer {
	return &IntentAnalyzer{
		keywords: map[models.ProjectType][]string{
			models.ProjectManagement: pmKeywords,
			models.GraduationProject: gpKeywords,
		},
	}
}

// ClassifyProjectType counts how many keywords of each set appear in text
// (case-sensitive substring match) and returns the type with the strictly
// higher count. Ties, including no hits at all, resolve to ProjectManagement.
func (ia *IntentAnalyzer) ClassifyProjectType(text string) models.ProjectType {
	pm := ia.countKeywords(text, models.ProjectManagement)
	gp := ia.countKeywords(text, models.GraduationProject)
	if gp > pm {
		return models.GraduationProject
	}
	return models.ProjectManagement
}

func (ia *IntentAnalyzer) countKeywords(text string, pt models.ProjectType) int {
	n := 0
	for _, kw := range ia.keywords[pt] {
		if strings.Contains(text, kw) {
			n++
		}
	}
	return n
}
