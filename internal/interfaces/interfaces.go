package interfaces

import (
	"context"

	"hero-streets/backend/internal/model"
)

// This file defines the interfaces for our core services.
// Depending on these interfaces, instead of concrete implementations, allows
// for decoupling (e.g., API layer from Service layer) and easier testing via
// mocking.

// RelayService defines the contract for forwarding chat requests to the
// external completion provider.
type RelayService interface {
	Relay(ctx context.Context, req *model.RelayRequest) (string, error)
}

// ExcursionService defines the contract for handling guided-tour
// contact-form submissions.
type ExcursionService interface {
	Request(ctx context.Context, req *model.ExcursionRequest) error
}
