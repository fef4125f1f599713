package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Jamolkhon5/projassist/internal/ai/project/models"
)

func TestClassifyProjectType(t *testing.T) {
	ia := NewIntentAnalyzer()
	tests := []struct {
		name string
		text string
		want models.ProjectType
	}{
		{"no keywords", "مرحبا", models.ProjectManagement},
		{"empty", "", models.ProjectManagement},
		{"pm only", "كيف أتعامل مع المخاطر في الميزانية؟", models.ProjectManagement},
		{"gp only", "أريد أفكار لمشروع التخرج", models.GraduationProject},
		{"tie", "أفكار حول المخاطر", models.ProjectManagement},
		{"gp wins", "فكرة مشروع تخرجي تتعلق بالمخاطر وأفكار جديدة", models.GraduationProject},
		{"pm wins", "مدير المشروع و فريق العمل يحتاجون أفكار", models.ProjectManagement},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ia.ClassifyProjectType(tt.text))
		})
	}
}

func TestClassifyProjectType_RepeatedKeywordCountsOnce(t *testing.T) {
	ia := NewIntentAnalyzer()
	// one distinct gp keyword repeated vs two distinct pm keywords
	text := "أفكار أفكار أفكار المخاطر الميزانية"
	assert.Equal(t, models.ProjectManagement, ia.ClassifyProjectType(text))
}
