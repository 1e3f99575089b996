package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Message is one entry of a provider message array.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider defines the interface for the external chat-completion API.
type Provider interface {
	ChatCompletion(ctx context.Context, messages []Message) (string, error)
}

// Options are the fixed, per-deployment generation parameters. They are
// never taken from the client request.
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

type deepseekProvider struct {
	client *http.Client
	url    string
	apiKey string
	opts   Options
}

// NewDeepSeekProvider returns a Provider talking to a DeepSeek-compatible
// chat-completions endpoint with a bearer credential.
func NewDeepSeekProvider(url, apiKey string, opts Options) Provider {
	return &deepseekProvider{
		client: &http.Client{Timeout: 60 * time.Second},
		url:    url,
		apiKey: apiKey,
		opts:   opts,
	}
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

// completionResponse models the provider payload with every level optional,
// so a missing or malformed shape decodes to the zero value instead of failing.
type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (p *deepseekProvider) ChatCompletion(ctx context.Context, messages []Message) (string, error) {
	body, err := json.Marshal(&completionRequest{
		Model:       p.opts.Model,
		Messages:    messages,
		Temperature: p.opts.Temperature,
		MaxTokens:   p.opts.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("could not marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("could not create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("api returned non-200 status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("could not read response body: %w", err)
	}

	return ExtractReply(bodyBytes), nil
}

// ExtractReply pulls the assistant text out of a raw provider payload.
// Any absence along the way (no choices, no message, no content, or a body
// that is not valid JSON for the expected shape) yields an empty string
// rather than an error: an empty reply from a 200 response is a valid
// outcome, not a failure.
func ExtractReply(raw []byte) string {
	var resp completionResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return ""
	}
	if len(resp.Choices) == 0 {
		return ""
	}
	return resp.Choices[0].Message.Content
}
