package service

import (
	"context"
	"fmt"
	"log/slog"

	app_errors "hero-streets/backend/internal/errors"
	"hero-streets/backend/internal/mail"
	"hero-streets/backend/internal/model"
)

// ExcursionService handles guided-tour contact-form submissions by mailing
// them to the site's fixed recipient address.
type ExcursionService struct {
	sender mail.Sender
}

// NewExcursionService creates the service. A nil sender means SMTP is not
// configured for this deployment; submissions are then accepted and dropped,
// which keeps the public form functional without credentials.
func NewExcursionService(sender mail.Sender) *ExcursionService {
	return &ExcursionService{sender: sender}
}

// Request sends the excursion request to the site contact address.
func (s *ExcursionService) Request(ctx context.Context, req *model.ExcursionRequest) error {
	if s.sender == nil {
		slog.Warn("SMTP is not configured, dropping excursion request", "name", req.FullName)
		return nil
	}

	subject := fmt.Sprintf("Запрос на экскурсию от %s", req.FullName)
	body := fmt.Sprintf("Имя и фамилия: %s\nEmail: %s\nТелефон: %s", req.FullName, req.Email, req.Phone)

	if err := s.sender.Send(ctx, subject, body); err != nil {
		slog.Error("Failed to send excursion request mail", "error", err)
		return fmt.Errorf("%w: smtp delivery failed", app_errors.ErrInternal)
	}

	slog.Info("Excursion request mailed", "name", req.FullName)
	return nil
}
