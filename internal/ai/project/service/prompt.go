package service

import (
	"strings"

	"github.com/Jamolkhon5/projassist/internal/ai/project/models"
	"github.com/Jamolkhon5/projassist/internal/ai/project/prompts"
)

// Assemble builds the single prompt string sent to the model.
//
// A direct request that carries history skips the topic templates: the prompt
// is the system prompt, the rendered history and the raw question. Without
// history, the project type's direct template is used and the question is
// appended last. A guided request uses the generation template followed by
// one "- key: answer" line per answer, in answer order.
func Assemble(req models.PromptRequest, store *prompts.Store) string {
	switch r := req.(type) {
	case models.DirectRequest:
		if len(r.Transcript) > 0 {
			return assembleWithHistory(r, store)
		}
		return assembleDirect(r, store)
	case *models.DirectRequest:
		return Assemble(*r, store)
	case models.GuidedRequest:
		return assembleGuided(r, store)
	case *models.GuidedRequest:
		return Assemble(*r, store)
	default:
		return ""
	}
}

func assembleWithHistory(r models.DirectRequest, store *prompts.Store) string {
	var sb strings.Builder
	sb.WriteString(store.System)
	sb.WriteString("\n\n")
	sb.WriteString(prompts.HistoryMarker)
	sb.WriteString("\n\n")
	sb.WriteString(RenderTranscript(r.Transcript))
	sb.WriteString(prompts.CurrentQuestionMarker)
	sb.WriteString("\n\n")
	sb.WriteString(prompts.UserLabel + ": " + r.Question)
	sb.WriteString("\n\n")
	sb.WriteString(prompts.AssistantLabel + ":")
	return sb.String()
}

func assembleDirect(r models.DirectRequest, store *prompts.Store) string {
	pt := templateType(r.ProjectType)
	body := prompts.Fill(store.Direct[pt], store.DirectFill[pt])

	var sb strings.Builder
	sb.WriteString(store.System)
	sb.WriteString("\n\n")
	sb.WriteString(body)
	sb.WriteString("\n\n")
	sb.WriteString(prompts.QuestionLinePrefix)
	sb.WriteString(r.Question)
	return sb.String()
}

func assembleGuided(r models.GuidedRequest, store *prompts.Store) string {
	pt := templateType(r.ProjectType)
	body := prompts.Fill(store.Guided[pt], store.GuidedFill[pt])

	var sb strings.Builder
	sb.WriteString(store.System)
	sb.WriteString("\n\n")
	sb.WriteString(body)
	sb.WriteString("\n\n")
	sb.WriteString(prompts.AnswersHeader)
	sb.WriteString("\n")
	for _, key := range r.Answers.Keys() {
		value, _ := r.Answers.Get(key)
		sb.WriteString("- " + key + ": " + value + "\n")
	}
	return sb.String()
}

// templateType maps an unset or unknown type to the default one.
func templateType(pt models.ProjectType) models.ProjectType {
	if pt.Valid() {
		return pt
	}
	return models.ProjectManagement
}
