package command

import (
	"context"

	"go.uber.org/zap"

	"github.com/campusbook/campusbook/internal/domain/roster"
)

// ClearRosterCommand removes every person from the roster.
type ClearRosterCommand struct{}

// ClearRosterHandler handles ClearRosterCommand.
type ClearRosterHandler struct {
	model   *roster.Model
	storage roster.Storage
	logger  *zap.Logger
}

// NewClearRosterHandler creates a ClearRosterHandler with its dependencies.
func NewClearRosterHandler(model *roster.Model, storage roster.Storage,
	logger *zap.Logger) *ClearRosterHandler {
	return &ClearRosterHandler{model: model, storage: storage, logger: logger}
}

// Handle clears the roster. Clearing an empty roster succeeds.
func (h *ClearRosterHandler) Handle(ctx context.Context, _ ClearRosterCommand) (Result, error) {
	h.model.Clear()
	h.logger.Info("roster cleared")

	warning := persistAfterMutation(ctx, h.storage, h.model, h.logger)
	return Result{Feedback: MessageClearSuccess + warning}, nil
}
