// The `_test` suffix creates a "black box" test package: the tests can only
// reach the api package through its exported surface, which is how the rest
// of the application uses it.
package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hero-streets/backend/internal/api"
	app_errors "hero-streets/backend/internal/errors"
	"hero-streets/backend/internal/interfaces/mocks"
	"hero-streets/backend/internal/model"
)

func setupRouter(t *testing.T) (*mocks.MockRelayService, *mocks.MockExcursionService, http.Handler) {
	relaySvc := mocks.NewMockRelayService(t)
	mailSvc := mocks.NewMockExcursionService(t)
	router := api.NewRouter(api.NewChatHandler(relaySvc), api.NewMailHandler(mailSvc), []string{"*"})
	return relaySvc, mailSvc, router
}

func TestHandleChat(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		relaySvc, _, router := setupRouter(t)

		relaySvc.On("Relay", mock.Anything, mock.MatchedBy(func(req *model.RelayRequest) bool {
			return req.Message == "Какая это улица?" &&
				req.SystemContext == "контекст" &&
				len(req.ConversationHistory) == 1 &&
				req.ConversationHistory[0].Role == "user"
		})).Return("Это улица Рафиева.", nil).Once()

		body := `{
			"message": "Какая это улица?",
			"systemContext": "контекст",
			"conversationHistory": [{"role": "user", "content": "Привет"}]
		}`
		req := httptest.NewRequest(http.MethodPost, "/api/deepseek/chat", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp model.RelayResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "Это улица Рафиева.", resp.Response)
	})

	t.Run("Success - empty reply still succeeds", func(t *testing.T) {
		relaySvc, _, router := setupRouter(t)
		relaySvc.On("Relay", mock.Anything, mock.Anything).Return("", nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/deepseek/chat", strings.NewReader(`{"message":"hi"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"response":""}`, rec.Body.String())
	})

	t.Run("Failure - missing message is rejected before the service", func(t *testing.T) {
		_, _, router := setupRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/api/deepseek/chat", strings.NewReader(`{"systemContext":"x"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "error")
	})

	t.Run("Failure - malformed JSON body", func(t *testing.T) {
		_, _, router := setupRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/api/deepseek/chat", strings.NewReader(`{not json`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Failure - missing credential maps to 400", func(t *testing.T) {
		relaySvc, _, router := setupRouter(t)
		relaySvc.On("Relay", mock.Anything, mock.Anything).Return("", app_errors.ErrConfiguration).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/deepseek/chat", strings.NewReader(`{"message":"hi"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid request"}`, rec.Body.String())
	})

	t.Run("Failure - upstream failure maps to 500 with a generic body", func(t *testing.T) {
		relaySvc, _, router := setupRouter(t)
		relaySvc.On("Relay", mock.Anything, mock.Anything).Return("", app_errors.ErrUpstream).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/deepseek/chat", strings.NewReader(`{"message":"hi"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"DeepSeek error"}`, rec.Body.String())
	})
}

func TestHandleExcursionRequest(t *testing.T) {
	validBody := `{"full_name":"Иван Иванов","email":"ivan@example.com","phone":"+375291234567"}`

	t.Run("Success", func(t *testing.T) {
		_, mailSvc, router := setupRouter(t)
		mailSvc.On("Request", mock.Anything, mock.MatchedBy(func(req *model.ExcursionRequest) bool {
			return req.FullName == "Иван Иванов" && req.Email == "ivan@example.com"
		})).Return(nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/smtp/excursion-request", strings.NewReader(validBody))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"success"}`, rec.Body.String())
	})

	t.Run("Failure - invalid email", func(t *testing.T) {
		_, _, router := setupRouter(t)

		body := `{"full_name":"Иван","email":"not-an-email","phone":"123"}`
		req := httptest.NewRequest(http.MethodPost, "/smtp/excursion-request", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Email")
	})

	t.Run("Failure - delivery error maps to 500", func(t *testing.T) {
		_, mailSvc, router := setupRouter(t)
		mailSvc.On("Request", mock.Anything, mock.Anything).Return(app_errors.ErrInternal).Once()

		req := httptest.NewRequest(http.MethodPost, "/smtp/excursion-request", strings.NewReader(validBody))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestHealthz(t *testing.T) {
	_, _, router := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
