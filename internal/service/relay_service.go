package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	app_errors "hero-streets/backend/internal/errors"
	"hero-streets/backend/internal/llm"
	"hero-streets/backend/internal/model"
)

// RelayService translates an incoming chat request into a provider
// completion request and extracts the reply. It holds no session state:
// every request carries its own history, so instances are safe for
// concurrent use.
type RelayService struct {
	llm        llm.Provider
	configured bool
}

// NewRelayService creates a relay backed by the given provider. The
// configured flag reflects whether the deployment holds a provider
// credential; when false every relay call fails client-side-visibly
// rather than producing confusing upstream 401s.
func NewRelayService(provider llm.Provider, configured bool) *RelayService {
	return &RelayService{llm: provider, configured: configured}
}

// Relay validates the request, assembles the provider message array and
// returns the extracted reply text. An empty reply is a valid result.
func (s *RelayService) Relay(ctx context.Context, req *model.RelayRequest) (string, error) {
	if strings.TrimSpace(req.Message) == "" {
		return "", fmt.Errorf("%w: message is required", app_errors.ErrValidation)
	}
	if !s.configured {
		return "", app_errors.ErrConfiguration
	}

	messages := assembleMessages(req)

	reply, err := s.llm.ChatCompletion(ctx, messages)
	if err != nil {
		// The provider error may carry credentials or internal detail, so it
		// is logged here and never echoed to the client.
		slog.Error("Provider call failed", "error", err)
		return "", app_errors.ErrUpstream
	}
	return reply, nil
}

// assembleMessages builds the provider message array in the order the model
// conditions on: system context first, then the history as given, then the
// new user message last. Any history role other than "user" is coerced to
// "assistant", which protects the prompt against malformed client state.
func assembleMessages(req *model.RelayRequest) []llm.Message {
	messages := make([]llm.Message, 0, len(req.ConversationHistory)+2)

	if req.SystemContext != "" {
		messages = append(messages, llm.Message{Role: "system", Content: req.SystemContext})
	}

	for _, entry := range req.ConversationHistory {
		role := model.RoleAssistant
		if entry.Role == model.RoleUser {
			role = model.RoleUser
		}
		messages = append(messages, llm.Message{Role: role, Content: entry.Content})
	}

	return append(messages, llm.Message{Role: model.RoleUser, Content: req.Message})
}
