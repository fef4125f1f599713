// Package prompts holds the fixed prompt skeletons, welcome texts and question
// catalogs. Everything here is read-only after package initialization.
package prompts

// SystemPrompt is sent with every request to the model.
const SystemPrompt = `أنت "مساعد المشاريع الذكي"، مساعد متخصص يقدم الإرشاد باللغة العربية في مجالين:
1. إدارة المشاريع البرمجية: التخطيط، الجدولة، إدارة المخاطر، الميزانية، قيادة فرق العمل، منهجيات التطوير (أجايل، سكرم، كانبان، ووترفول وغيرها)، والتواصل مع أصحاب المصلحة.
2. مشاريع التخرج: اقتراح أفكار مشاريع مناسبة لمجال دراسة الطالب ومهاراته، اختيار التقنيات، تقسيم العمل، وتجاوز التحديات المتوقعة.

قواعد الإجابة:
- أجب دائماً باللغة العربية الفصحى المبسطة، ويمكنك ذكر المصطلحات التقنية بالإنجليزية بين قوسين.
- نظم إجابتك بعناوين واضحة وقوائم نقطية عند الحاجة.
- قدم نصائح عملية قابلة للتطبيق، وتجنب العموميات.
- إذا كان السؤال خارج نطاق المجالين، وضح ذلك بلطف ووجه المستخدم إلى ما يمكنك المساعدة فيه.`

// PMGuidedGenerationTemplate turns project-management questionnaire answers into advice.
const PMGuidedGenerationTemplate = `بناءً على إجابات المستخدم في الاستبيان أدناه، قدم خطة إرشادية مخصصة لإدارة مشروعه البرمجي وفق الهيكل التالي:

## النصائح العامة
{general_advice}

## الأدوات المقترحة
{suggested_tools}

## أفضل الممارسات
{best_practices}

## خطوات عملية
{actionable_steps}

## موارد إضافية
{additional_resources}`

// GPGuidedGenerationTemplate turns graduation-project questionnaire answers into ideas.
const GPGuidedGenerationTemplate = `بناءً على إجابات الطالب في الاستبيان أدناه، اقترح أفكاراً لمشروع التخرج وفق الهيكل التالي:

## أفكار المشاريع
{project_ideas}

## التقنيات المقترحة
{suggested_technologies}

## خطوات البدء
{starting_steps}

## التحديات المحتملة وحلولها
{challenges_and_solutions}

## موارد تعليمية
{learning_resources}`

// PMDirectModeTemplate frames a single project-management question.
const PMDirectModeTemplate = `أجب عن سؤال المستخدم حول إدارة المشاريع البرمجية.

الموضوع: {topic}

الإجابة:
{response}

احرص على أن تكون الإجابة عملية ومدعومة بأمثلة من واقع المشاريع البرمجية.`

// GPDirectModeTemplate frames a single graduation-project question.
const GPDirectModeTemplate = `أجب عن سؤال الطالب حول مشاريع التخرج.

الموضوع: {topic}

الإجابة:
{response}

احرص على اقتراح أفكار قابلة للتنفيذ ضمن إمكانيات طالب جامعي.`

// WelcomeMessage is shown before the user picks an interaction mode.
const WelcomeMessage = `مرحباً بك في **مساعد المشاريع الذكي**! 👋

يمكنني مساعدتك في:
- **إدارة المشاريع البرمجية**: التخطيط، الجدولة، إدارة الفريق والمخاطر.
- **مشاريع التخرج**: اقتراح أفكار مشاريع وتقنيات وخطوات تنفيذ.

اختر طريقة التفاعل:
- **الاستبيان الموجه**: أجب عن مجموعة أسئلة قصيرة وسأقدم لك إرشادات مخصصة.
- **الطريقة المباشرة**: اطرح سؤالك مباشرة.`

// DirectModeWelcome opens an empty direct-mode conversation.
const DirectModeWelcome = "مرحباً بك في نمط الطريقة المباشرة. يمكنك الآن طرح سؤالك مباشرة حول إدارة المشاريع البرمجية أو مشاريع التخرج، وسأقوم بمساعدتك."

// FallbackReply replaces the model answer whenever the model call fails.
const FallbackReply = "عذراً، حدث خطأ في الاتصال بنموذج الذكاء الاصطناعي. يرجى المحاولة مرة أخرى."

// Role labels and section markers used when rendering a conversation.
const (
	UserLabel             = "المستخدم"
	AssistantLabel        = "المساعد"
	HistoryMarker         = "--- سجل المحادثة السابق ---"
	CurrentQuestionMarker = "--- السؤال الحالي ---"
	QuestionLinePrefix    = "سؤال المستخدم: "
	AnswersHeader         = "إجابات المستخدم:"
)

// Interface texts shared by the chat front-ends.
const (
	ChooseModeText        = "اختر طريقة التفاعل:"
	GuidedModeLabel       = "الاستبيان الموجه"
	DirectModeLabel       = "الطريقة المباشرة"
	ChooseProjectTypeText = "ما هو مجال اهتمامك؟"
	BackLabel             = "السابق"
	GenerateLabel         = "توليد النصائح والإرشادات"
	RestartLabel          = "بدء الاستبيان من جديد"
	SummaryHeader         = "ملخص إجاباتك:"
	GeneratingText        = "جاري التوليد..."
	ThinkingText          = "جاري التفكير..."
	AskPlaceholder        = "اكتب سؤالك هنا..."
	ClearedText           = "تم مسح المحادثة."
	PopularTopicsHeader   = "موضوعات شائعة"
)

// PMTopicQuery and GPTopicQuery build the question sent when a popular topic is picked.
const (
	PMTopicQuery = "أخبرني المزيد عن %s"
	GPTopicQuery = "اقترح علي أفكار لمشاريع تخرج في مجال %s"
)
