package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jamolkhon5/projassist/internal/ai/project/models"
	"github.com/Jamolkhon5/projassist/internal/ai/project/prompts"
	"github.com/Jamolkhon5/projassist/internal/llm"
)

type failingClient struct{}

func (failingClient) Generate(context.Context, string) (*llm.GenerateResponse, error) {
	return nil, &llm.ModelError{Kind: llm.KindTransport, Message: "connection refused", Err: errors.New("dial tcp")}
}

func TestAskDirect_TransportFailureReturnsApology(t *testing.T) {
	gateway := llm.NewGateway(failingClient{}, prompts.FallbackReply)
	pa := NewProjectAssistant(prompts.Default(), gateway)

	reply := pa.AskDirect(context.Background(), "كيف أدير المخاطر؟", models.ProjectManagement, nil)
	assert.Equal(t, prompts.FallbackReply, reply)
}

func TestAskGuided_UsesProjectTypeTemplate(t *testing.T) {
	sender := &fakeSender{reply: "أفكار"}
	pa := NewProjectAssistant(prompts.Default(), sender)
	answers := models.NewAnswers()
	answers.Set("experience", "متوسط")

	reply := pa.AskGuided(context.Background(), answers, models.ProjectManagement)
	assert.Equal(t, "أفكار", reply)
	require.Len(t, sender.prompts, 1)
	assert.True(t, strings.HasSuffix(sender.prompts[0], "- experience: متوسط\n"))
}

func TestClassify(t *testing.T) {
	pa := NewProjectAssistant(prompts.Default(), &fakeSender{})
	assert.Equal(t, models.GraduationProject, pa.Classify("أريد فكرة مشروع تخرجي"))
}
