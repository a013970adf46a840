package command

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/campusbook/campusbook/internal/domain/person"
	"github.com/campusbook/campusbook/internal/domain/roster"
	"github.com/campusbook/campusbook/internal/domain/shared"
)

// EditPersonCommand patches the person at the given 1-based position of the
// displayed list. The descriptor is guaranteed non-empty by the parser.
type EditPersonCommand struct {
	Index      int
	Descriptor person.EditDescriptor
}

// EditPersonHandler handles EditPersonCommand.
type EditPersonHandler struct {
	model   *roster.Model
	storage roster.Storage
	logger  *zap.Logger
}

// NewEditPersonHandler creates an EditPersonHandler with its dependencies.
func NewEditPersonHandler(model *roster.Model, storage roster.Storage,
	logger *zap.Logger) *EditPersonHandler {
	return &EditPersonHandler{model: model, storage: storage, logger: logger}
}

// Handle merges the descriptor onto the targeted person and replaces it in
// the roster. Fails with shared.ErrPersonNotFound if the index is out of the
// displayed range, and shared.ErrDuplicatePerson if the edited student ID
// collides with a different entry.
func (h *EditPersonHandler) Handle(ctx context.Context, cmd EditPersonCommand) (Result, error) {
	target, ok := h.model.PersonAt(cmd.Index - 1)
	if !ok {
		return Result{}, shared.ErrPersonNotFound
	}

	edited := cmd.Descriptor.Merge(target)
	if err := h.model.SetPerson(target, edited); err != nil {
		return Result{}, err
	}

	h.logger.Info("person edited",
		zap.String("student_id", edited.StudentID.String()))

	warning := persistAfterMutation(ctx, h.storage, h.model, h.logger)
	return Result{
		Feedback: fmt.Sprintf(MessageEditSuccess, edited) + warning,
	}, nil
}
