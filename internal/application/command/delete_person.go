package command

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/campusbook/campusbook/internal/domain/roster"
	"github.com/campusbook/campusbook/internal/domain/shared"
)

// DeletePersonCommand removes the person at the given 1-based position of
// the displayed list.
type DeletePersonCommand struct {
	Index int
}

// DeletePersonHandler handles DeletePersonCommand.
type DeletePersonHandler struct {
	model   *roster.Model
	storage roster.Storage
	logger  *zap.Logger
}

// NewDeletePersonHandler creates a DeletePersonHandler with its dependencies.
func NewDeletePersonHandler(model *roster.Model, storage roster.Storage,
	logger *zap.Logger) *DeletePersonHandler {
	return &DeletePersonHandler{model: model, storage: storage, logger: logger}
}

// Handle removes the targeted person. Fails with shared.ErrPersonNotFound if
// the index is out of the displayed range.
func (h *DeletePersonHandler) Handle(ctx context.Context, cmd DeletePersonCommand) (Result, error) {
	target, ok := h.model.PersonAt(cmd.Index - 1)
	if !ok {
		return Result{}, shared.ErrPersonNotFound
	}

	if err := h.model.RemovePerson(target); err != nil {
		return Result{}, err
	}

	h.logger.Info("person deleted",
		zap.String("student_id", target.StudentID.String()))

	warning := persistAfterMutation(ctx, h.storage, h.model, h.logger)
	return Result{
		Feedback: fmt.Sprintf(MessageDeleteSuccess, target) + warning,
	}, nil
}
