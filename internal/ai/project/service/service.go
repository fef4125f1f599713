package service

import (
	"context"
	"log"

	"github.com/Jamolkhon5/projassist/internal/ai/project/models"
	"github.com/Jamolkhon5/projassist/internal/ai/project/prompts"
)

// Sender delivers an assembled prompt to the model. Implementations return a
// printable reply even when the call fails.
type Sender interface {
	Send(ctx context.Context, prompt string) string
}

type ProjectAssistant struct {
	store    *prompts.Store
	sender   Sender
	analyzer *IntentAnalyzer
}

func NewProjectAssistant(store *prompts.Store, sender Sender) *ProjectAssistant {
	return &ProjectAssistant{
		store:    store,
		sender:   sender,
		analyzer: NewIntentAnalyzer(),
	}
}

// Store returns the template store used for prompt assembly.
func (pa *ProjectAssistant) Store() *prompts.Store {
	return pa.store
}

// Classify infers the project type of a question.
func (pa *ProjectAssistant) Classify(question string) models.ProjectType {
	return pa.analyzer.ClassifyProjectType(question)
}

// AskDirect answers a free-form question. transcript holds the earlier turns
// only, never the question being asked.
func (pa *ProjectAssistant) AskDirect(ctx context.Context, question string, pt models.ProjectType, transcript models.Transcript) string {
	prompt := Assemble(models.DirectRequest{
		Question:    question,
		Transcript:  transcript,
		ProjectType: pt,
	}, pa.store)
	log.Printf("direct question: project_type=%s history_turns=%d prompt_chars=%d", pt, len(transcript), len(prompt))
	return pa.sender.Send(ctx, prompt)
}

// AskGuided turns finished questionnaire answers into advice or project ideas.
func (pa *ProjectAssistant) AskGuided(ctx context.Context, answers *models.Answers, pt models.ProjectType) string {
	prompt := Assemble(models.GuidedRequest{
		Answers:     answers,
		ProjectType: pt,
	}, pa.store)
	log.Printf("guided questionnaire: project_type=%s answers=%d prompt_chars=%d", pt, answers.Len(), len(prompt))
	return pa.sender.Send(ctx, prompt)
}
