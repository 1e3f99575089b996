package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"hero-streets/backend/internal/model"
)

// RelayClient is the HTTP implementation of the Relay port, talking to the
// backend's /api/deepseek/chat endpoint.
type RelayClient struct {
	client  *http.Client
	baseURL string
}

// NewRelayClient creates a client for the given backend base URL. The 30s
// timeout bounds the whole round-trip including the upstream provider call.
func NewRelayClient(baseURL string) *RelayClient {
	return &RelayClient{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: baseURL,
	}
}

func (c *RelayClient) Send(ctx context.Context, message, systemContext string, history []model.HistoryEntry) (string, error) {
	body, err := json.Marshal(&model.RelayRequest{
		Message:             message,
		SystemContext:       systemContext,
		ConversationHistory: history,
	})
	if err != nil {
		return "", fmt.Errorf("could not marshal relay request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/deepseek/chat", bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("could not create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("relay request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("could not read relay response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Prefer the server's error message; fall back to the status code.
		var errResp struct {
			Error string `json:"error"`
		}
		if jsonErr := json.Unmarshal(bodyBytes, &errResp); jsonErr == nil && errResp.Error != "" {
			return "", errors.New(errResp.Error)
		}
		return "", fmt.Errorf("HTTP error! status: %d", resp.StatusCode)
	}

	var relayResp model.RelayResponse
	if err := json.Unmarshal(bodyBytes, &relayResp); err != nil {
		return "", fmt.Errorf("could not decode relay response: %w", err)
	}
	return relayResp.Response, nil
}
