package prompts

import "github.com/Jamolkhon5/projassist/internal/ai/project/models"

// PMQuestions is the ordered project-management questionnaire.
var PMQuestions = []models.QuestionnaireField{
	{
		Key:     "experience",
		Prompt:  "ما هو مستوى خبرتك في إدارة المشاريع البرمجية؟",
		Kind:    models.SingleChoice,
		Choices: []string{"مبتدئ", "متوسط", "متقدم"},
		Default: "متوسط",
	},
	{
		Key:    "project_type",
		Prompt: "ما نوع المشروع الذي تديره أو تخطط لإدارته؟",
		Kind:   models.SingleChoice,
		Choices: []string{
			"تطوير برمجيات", "تطوير تطبيقات موبايل", "تطوير مواقع", "تطوير واجهات مستخدم",
			"تطوير واجهات برمجة التطبيقات", "تطوير قواعد بيانات", "تطوير ذكاء اصطناعي",
			"تطوير أمن معلومات", "تطوير ألعاب", "تطوير أنظمة مدمجة", "تطوير خدمات سحابية",
			"تطوير DevOps", "تطوير Blockchain", "تطوير IoT", "تطوير AR/VR", "أخرى",
		},
		Default: "تطوير برمجيات",
	},
	{
		Key:     "team_size",
		Prompt:  "كم عدد أعضاء فريق العمل؟",
		Kind:    models.NumericRange,
		Min:     1,
		Max:     100,
		Default: "5",
	},
	{
		Key:     "project_phase",
		Prompt:  "في أي مرحلة يقع المشروع حالياً؟",
		Kind:    models.SingleChoice,
		Choices: []string{"التخطيط", "التطوير", "الاختبار", "النشر", "الصيانة", "التقييم", "الإغلاق"},
		Default: "التخطيط",
	},
	{
		Key:    "methodology",
		Prompt: "ما هي منهجية إدارة المشروع المتبعة؟",
		Kind:   models.SingleChoice,
		Choices: []string{
			"أجايل", "ووترفول", "هجين", "Scrum", "Kanban", "Lean", "DevOps",
			"Six Sigma", "Prince2", "PMP", "ITIL", "COBIT", "أخرى",
		},
		Default: "أجايل",
	},
	{
		Key:    "challenges",
		Prompt: "ما هي أبرز التحديات التي تواجهك في إدارة المشروع؟",
		Kind:   models.FreeText,
	},
	{
		Key:    "goals",
		Prompt: "ما هي أهدافك الرئيسية من تحسين إدارة المشروع؟",
		Kind:   models.FreeText,
	},
}

// GPQuestions is the ordered graduation-project questionnaire.
var GPQuestions = []models.QuestionnaireField{
	{
		Key:    "field_of_study",
		Prompt: "ما هو مجال دراستك؟",
		Kind:   models.SingleChoice,
		Choices: []string{
			"علوم الحاسوب", "هندسة البرمجيات", "هندسة الحاسوب", "نظم المعلومات",
			"تكنولوجيا المعلومات", "الذكاء الاصطناعي", "علم البيانات", "أمن المعلومات",
			"الشبكات", "هندسة كهربائية", "هندسة الاتصالات", "هندسة إلكترونية", "أخرى",
		},
		Default: "علوم الحاسوب",
	},
	{
		Key:    "interests",
		Prompt: "ما هي المجالات أو التقنيات التي تهتم بها؟",
		Kind:   models.FreeText,
	},
	{
		Key:    "skills",
		Prompt: "ما هي المهارات ولغات البرمجة التي تتقنها؟",
		Kind:   models.FreeText,
	},
	{
		Key:     "team_size",
		Prompt:  "كم عدد أعضاء فريق مشروع التخرج؟",
		Kind:    models.NumericRange,
		Min:     1,
		Max:     10,
		Default: "3",
	},
	{
		Key:     "duration",
		Prompt:  "ما هي المدة المتاحة لتنفيذ المشروع؟",
		Kind:    models.SingleChoice,
		Choices: []string{"فصل دراسي واحد", "فصلين دراسيين", "سنة كاملة"},
		Default: "فصلين دراسيين",
	},
	{
		Key:     "preferences",
		Prompt:  "ما نوع المشروع الذي تفضله؟",
		Kind:    models.SingleChoice,
		Choices: []string{"مشروع عملي", "مشروع بحثي", "مزيج من الاثنين"},
		Default: "مشروع عملي",
	},
}

// ProjectManagementAspects lists popular project-management topics.
var ProjectManagementAspects = []string{
	"تخطيط المشروع",
	"إدارة المخاطر",
	"إدارة الفريق",
	"إدارة الوقت والجدولة",
	"إدارة الميزانية",
	"التواصل مع أصحاب المصلحة",
	"ضمان الجودة",
	"منهجيات أجايل",
}

// GraduationProjectCategories lists popular graduation-project areas.
var GraduationProjectCategories = []string{
	"تطبيقات الويب",
	"تطبيقات الموبايل",
	"الذكاء الاصطناعي وتعلم الآلة",
	"إنترنت الأشياء",
	"أمن المعلومات",
	"تحليل البيانات",
	"الألعاب",
	"الأنظمة المدمجة",
}
