package command

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/campusbook/campusbook/internal/domain/person"
	"github.com/campusbook/campusbook/internal/domain/roster"
)

// AddPersonCommand adds a fully-validated person to the roster.
type AddPersonCommand struct {
	Person person.Person
}

// AddPersonHandler handles AddPersonCommand.
type AddPersonHandler struct {
	model   *roster.Model
	storage roster.Storage
	logger  *zap.Logger
}

// NewAddPersonHandler creates an AddPersonHandler with its dependencies.
func NewAddPersonHandler(model *roster.Model, storage roster.Storage,
	logger *zap.Logger) *AddPersonHandler {
	return &AddPersonHandler{model: model, storage: storage, logger: logger}
}

// Handle adds the person. Fails with shared.ErrDuplicatePerson if a person
// with the same student ID already exists; the roster is left unchanged.
func (h *AddPersonHandler) Handle(ctx context.Context, cmd AddPersonCommand) (Result, error) {
	if err := h.model.AddPerson(cmd.Person); err != nil {
		return Result{}, err
	}

	h.logger.Info("person added",
		zap.String("student_id", cmd.Person.StudentID.String()))

	warning := persistAfterMutation(ctx, h.storage, h.model, h.logger)
	return Result{
		Feedback: fmt.Sprintf(MessageAddSuccess, cmd.Person) + warning,
	}, nil
}
