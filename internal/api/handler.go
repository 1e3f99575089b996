package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	app_errors "hero-streets/backend/internal/errors"
	"hero-streets/backend/internal/interfaces"
	"hero-streets/backend/internal/model"
)

// ChatHandler handles the chat relay endpoint.
type ChatHandler struct {
	service interfaces.RelayService
}

func NewChatHandler(svc interfaces.RelayService) *ChatHandler {
	return &ChatHandler{service: svc}
}

// HandleChat accepts a RelayRequest, forwards it to the completion provider
// and returns the extracted reply. The handler is stateless: the caller
// carries the whole conversation in every request.
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req model.RelayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	reply, err := h.service.Relay(r.Context(), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, model.RelayResponse{Success: true, Response: reply})
}

// MailHandler handles the excursion-request contact form.
type MailHandler struct {
	service interfaces.ExcursionService
}

func NewMailHandler(svc interfaces.ExcursionService) *MailHandler {
	return &MailHandler{service: svc}
}

// HandleExcursionRequest validates a contact-form submission and mails it to
// the site's contact address.
func (h *MailHandler) HandleExcursionRequest(w http.ResponseWriter, r *http.Request) {
	var req model.ExcursionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	if err := h.service.Request(r.Context(), &req); err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "success"})
}
