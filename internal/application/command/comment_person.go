package command

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/campusbook/campusbook/internal/domain/person"
	"github.com/campusbook/campusbook/internal/domain/roster"
	"github.com/campusbook/campusbook/internal/domain/shared"
)

// CommentPersonCommand replaces the comment of the person at the given
// 1-based position of the displayed list. An empty comment clears it.
// This is the only path that changes a comment: the edit command's
// descriptor never touches it.
type CommentPersonCommand struct {
	Index   int
	Comment person.Comment
}

// CommentPersonHandler handles CommentPersonCommand.
type CommentPersonHandler struct {
	model   *roster.Model
	storage roster.Storage
	logger  *zap.Logger
}

// NewCommentPersonHandler creates a CommentPersonHandler with its dependencies.
func NewCommentPersonHandler(model *roster.Model, storage roster.Storage,
	logger *zap.Logger) *CommentPersonHandler {
	return &CommentPersonHandler{model: model, storage: storage, logger: logger}
}

// Handle replaces the comment. Fails with shared.ErrPersonNotFound if the
// index is out of the displayed range.
func (h *CommentPersonHandler) Handle(ctx context.Context, cmd CommentPersonCommand) (Result, error) {
	target, ok := h.model.PersonAt(cmd.Index - 1)
	if !ok {
		return Result{}, shared.ErrPersonNotFound
	}

	commented := target
	commented.Comment = cmd.Comment
	if err := h.model.SetPerson(target, commented); err != nil {
		return Result{}, err
	}

	format := MessageCommentAdded
	if cmd.Comment.IsEmpty() {
		format = MessageCommentRemoved
	}

	h.logger.Info("comment updated",
		zap.String("student_id", target.StudentID.String()),
		zap.Bool("cleared", cmd.Comment.IsEmpty()))

	warning := persistAfterMutation(ctx, h.storage, h.model, h.logger)
	return Result{
		Feedback: fmt.Sprintf(format, commented) + warning,
	}, nil
}
