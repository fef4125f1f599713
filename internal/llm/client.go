package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// GenerateResponse holds the result of a model call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// Client sends one prompt and returns the generated text.
type Client interface {
	Generate(ctx context.Context, prompt string) (*GenerateResponse, error)
}

// geminiClient implements Client using the Gemini generateContent REST API.
type geminiClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewGeminiClient creates a Client for the configured Gemini model.
func NewGeminiClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &geminiClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	TopK            int     `json:"topK"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type safetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

// geminiRequest is the JSON body sent to POST /v1beta/models/{model}:generateContent.
type geminiRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
	SafetySettings   []safetySetting  `json:"safetySettings"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback,omitempty"`
	ModelVersion string `json:"modelVersion"`
}

type geminiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func (c *geminiClient) Generate(ctx context.Context, prompt string) (*GenerateResponse, error) {
	start := time.Now()

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	resp, err := c.doRequest(ctx, geminiRequest{
		Contents:         []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: GenerationSettings,
		SafetySettings:   SafetySettings,
	})
	var text string
	if err == nil {
		text, err = extractText(resp)
	}
	latency := time.Since(start).Milliseconds()

	event := CallEvent{Model: c.cfg.Model, LatencyMs: latency, PromptChars: len([]rune(prompt))}
	if err != nil {
		event.ErrorKind = KindOf(err)
		event.Message = err.Error()
		c.observer.OnCallComplete(event)
		return nil, err
	}
	event.Success = true
	c.observer.OnCallComplete(event)

	model := resp.ModelVersion
	if model == "" {
		model = c.cfg.Model
	}
	return &GenerateResponse{Text: text, Model: model, LatencyMs: latency}, nil
}

func (c *geminiClient) doRequest(ctx context.Context, body geminiRequest) (*geminiResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, newError(KindTransport, err, "marshaling request: %v", err)
	}

	endpoint := strings.TrimRight(c.cfg.Endpoint, "/") +
		"/v1beta/models/" + url.PathEscape(c.cfg.Model) + ":generateContent"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, newError(KindTransport, err, "creating request: %v", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.cfg.APIKey)

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil || isTimeout(err) {
			return nil, newError(KindTimeout, err, "request timed out after %s", c.cfg.Timeout)
		}
		return nil, newError(KindTransport, err, "sending request: %v", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, newError(KindTimeout, err, "reading response timed out")
		}
		return nil, newError(KindTransport, err, "reading response: %v", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		var apiErr geminiError
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, newError(KindProvider, nil, "status %d %s: %s",
				httpResp.StatusCode, apiErr.Error.Status, apiErr.Error.Message)
		}
		return nil, newError(KindProvider, nil, "status %d: %s", httpResp.StatusCode, string(respBody))
	}

	var resp geminiResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, newError(KindMalformedResponse, err, "decoding response: %v", err)
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return nil, newError(KindSafetyBlocked, nil, "prompt blocked: %s", resp.PromptFeedback.BlockReason)
	}
	return &resp, nil
}

// extractText joins the text parts of the first candidate.
func extractText(resp *geminiResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", newError(KindEmptyResponse, nil, "no candidates in response")
	}
	cand := resp.Candidates[0]

	var sb strings.Builder
	for _, p := range cand.Content.Parts {
		sb.WriteString(p.Text)
	}
	if sb.Len() == 0 {
		if cand.FinishReason == "SAFETY" || cand.FinishReason == "PROHIBITED_CONTENT" {
			return "", newError(KindSafetyBlocked, nil, "answer blocked: %s", cand.FinishReason)
		}
		return "", newError(KindEmptyResponse, nil, "empty candidate, finish reason %q", cand.FinishReason)
	}
	return sb.String(), nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
