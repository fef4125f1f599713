package llm

import "time"

// Config holds what the caller may choose about the model connection.
// Generation and safety parameters are fixed, see GenerationSettings.
type Config struct {
	APIKey   string
	Endpoint string
	Model    string
	Timeout  time.Duration
}

// DefaultConfig returns a Config for the public Gemini endpoint without an API key.
func DefaultConfig() Config {
	return Config{
		Endpoint: "https://generativelanguage.googleapis.com",
		Model:    "gemini-1.5-pro",
		Timeout:  60 * time.Second,
	}
}

// GenerationSettings are sent unchanged with every request.
var GenerationSettings = generationConfig{
	Temperature:     0.7,
	TopP:            0.95,
	TopK:            40,
	MaxOutputTokens: 2048,
}

// SafetySettings block medium and higher probability content in all four harm categories.
var SafetySettings = []safetySetting{
	{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
}
