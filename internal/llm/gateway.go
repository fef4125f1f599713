package llm

import (
	"context"
	"log"
)

// Gateway is what the chat front-ends talk to: it never fails. Any model
// error is logged with its kind and replaced by a fixed fallback reply.
type Gateway struct {
	client   Client
	fallback string
}

func NewGateway(client Client, fallback string) *Gateway {
	return &Gateway{client: client, fallback: fallback}
}

// Send returns the model's text, or the fallback reply on any failure.
func (g *Gateway) Send(ctx context.Context, prompt string) string {
	text, err := g.Generate(ctx, prompt)
	if err != nil {
		log.Printf("model call failed, returning fallback reply: kind=%s err=%v", KindOf(err), err)
		return g.fallback
	}
	return text
}

// Generate exposes the underlying error for callers that need to tell a
// failure apart from a real answer.
func (g *Gateway) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

