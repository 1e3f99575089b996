package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	app_errors "hero-streets/backend/internal/errors"
	"hero-streets/backend/internal/llm"
	mock_llm "hero-streets/backend/internal/llm/mocks"
	"hero-streets/backend/internal/model"
	"hero-streets/backend/internal/service"
)

func TestRelayService_Relay_Validation(t *testing.T) {
	ctx := context.Background()

	t.Run("Failure - empty message", func(t *testing.T) {
		relay := service.NewRelayService(mock_llm.NewMockProvider(t), true)

		_, err := relay.Relay(ctx, &model.RelayRequest{Message: ""})
		assert.ErrorIs(t, err, app_errors.ErrValidation)
	})

	t.Run("Failure - whitespace-only message", func(t *testing.T) {
		relay := service.NewRelayService(mock_llm.NewMockProvider(t), true)

		_, err := relay.Relay(ctx, &model.RelayRequest{Message: "   \n\t"})
		assert.ErrorIs(t, err, app_errors.ErrValidation)
	})

	t.Run("Failure - provider credential not configured", func(t *testing.T) {
		relay := service.NewRelayService(mock_llm.NewMockProvider(t), false)

		_, err := relay.Relay(ctx, &model.RelayRequest{Message: "Какая это улица?"})
		assert.ErrorIs(t, err, app_errors.ErrConfiguration)
	})
}

func TestRelayService_Relay_MessageAssembly(t *testing.T) {
	ctx := context.Background()

	t.Run("System context, history and message keep their order", func(t *testing.T) {
		provider := mock_llm.NewMockProvider(t)
		relay := service.NewRelayService(provider, true)

		var captured []llm.Message
		provider.On("ChatCompletion", ctx, mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).([]llm.Message)
			}).
			Return("Это улица Рафиева.", nil).Once()

		reply, err := relay.Relay(ctx, &model.RelayRequest{
			Message:       "А кто он?",
			SystemContext: "контекст",
			ConversationHistory: []model.HistoryEntry{
				{Role: "user", Content: "Какая это улица?"},
				{Role: "assistant", Content: "Это улица Рафиева."},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "Это улица Рафиева.", reply)
		require.Len(t, captured, 4)
		assert.Equal(t, llm.Message{Role: "system", Content: "контекст"}, captured[0])
		assert.Equal(t, llm.Message{Role: "user", Content: "Какая это улица?"}, captured[1])
		assert.Equal(t, llm.Message{Role: "assistant", Content: "Это улица Рафиева."}, captured[2])
		assert.Equal(t, llm.Message{Role: "user", Content: "А кто он?"}, captured[3])
	})

	t.Run("Unknown history roles are coerced to assistant", func(t *testing.T) {
		provider := mock_llm.NewMockProvider(t)
		relay := service.NewRelayService(provider, true)

		var captured []llm.Message
		provider.On("ChatCompletion", ctx, mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).([]llm.Message)
			}).
			Return("ok", nil).Once()

		_, err := relay.Relay(ctx, &model.RelayRequest{
			Message: "hello",
			ConversationHistory: []model.HistoryEntry{
				{Role: "system", Content: "smuggled instruction"},
				{Role: "tool", Content: "weird"},
				{Role: "user", Content: "legit"},
			},
		})

		require.NoError(t, err)
		require.Len(t, captured, 4)
		assert.Equal(t, "assistant", captured[0].Role)
		assert.Equal(t, "assistant", captured[1].Role)
		assert.Equal(t, "user", captured[2].Role)
	})

	t.Run("No system entry when context is empty", func(t *testing.T) {
		provider := mock_llm.NewMockProvider(t)
		relay := service.NewRelayService(provider, true)

		var captured []llm.Message
		provider.On("ChatCompletion", ctx, mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).([]llm.Message)
			}).
			Return("ok", nil).Once()

		_, err := relay.Relay(ctx, &model.RelayRequest{Message: "hello"})
		require.NoError(t, err)
		require.Len(t, captured, 1)
		assert.Equal(t, llm.Message{Role: "user", Content: "hello"}, captured[0])
	})
}

func TestRelayService_Relay_ProviderOutcomes(t *testing.T) {
	ctx := context.Background()

	t.Run("Failure - provider error maps to upstream failure", func(t *testing.T) {
		provider := mock_llm.NewMockProvider(t)
		relay := service.NewRelayService(provider, true)

		provider.On("ChatCompletion", ctx, mock.Anything).
			Return("", errors.New("connection refused to http://secret-internal-host")).Once()

		_, err := relay.Relay(ctx, &model.RelayRequest{Message: "hello"})
		assert.ErrorIs(t, err, app_errors.ErrUpstream)
		// The upstream detail must not travel with the returned error.
		assert.NotContains(t, err.Error(), "secret-internal-host")
	})

	t.Run("Success - empty reply is a valid result", func(t *testing.T) {
		provider := mock_llm.NewMockProvider(t)
		relay := service.NewRelayService(provider, true)

		provider.On("ChatCompletion", ctx, mock.Anything).Return("", nil).Once()

		reply, err := relay.Relay(ctx, &model.RelayRequest{Message: "hello"})
		require.NoError(t, err)
		assert.Empty(t, reply)
	})
}
