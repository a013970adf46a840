// Package application wires the parser, command handlers, and query handlers
// into a single executor the front end drives one command at a time.
package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/campusbook/campusbook/internal/application/command"
	"github.com/campusbook/campusbook/internal/application/parser"
	"github.com/campusbook/campusbook/internal/application/query"
	"github.com/campusbook/campusbook/internal/domain/roster"
	"github.com/campusbook/campusbook/internal/domain/shared"
)

// CommandResult is the uniform outcome handed back to the front end.
type CommandResult struct {
	// Feedback is the user-visible response text.
	Feedback string

	// ShowHelp asks the front end to open its help view.
	ShowHelp bool

	// Exit asks the front end to terminate the application.
	Exit bool
}

// Executor parses and executes one command at a time. Commands run to
// completion before the next one starts; the executor holds no locks and
// relies on the front end's single event loop for serialization.
type Executor struct {
	addHandler     *command.AddPersonHandler
	editHandler    *command.EditPersonHandler
	deleteHandler  *command.DeletePersonHandler
	commentHandler *command.CommentPersonHandler
	clearHandler   *command.ClearRosterHandler
	findHandler    *query.FindPersonsHandler
	listHandler    *query.ListPersonsHandler
	logger         *zap.Logger
}

// NewExecutor creates an Executor over the given model and storage.
func NewExecutor(model *roster.Model, storage roster.Storage, logger *zap.Logger) *Executor {
	return &Executor{
		addHandler:     command.NewAddPersonHandler(model, storage, logger),
		editHandler:    command.NewEditPersonHandler(model, storage, logger),
		deleteHandler:  command.NewDeletePersonHandler(model, storage, logger),
		commentHandler: command.NewCommentPersonHandler(model, storage, logger),
		clearHandler:   command.NewClearRosterHandler(model, storage, logger),
		findHandler:    query.NewFindPersonsHandler(model, logger),
		listHandler:    query.NewListPersonsHandler(model, logger),
		logger:         logger,
	}
}

// Execute parses raw command-bar input and runs the resulting request.
// Parser and handler errors are returned to the caller and surfaced to the
// user verbatim; nothing is retried or swallowed.
func (e *Executor) Execute(ctx context.Context, input string) (CommandResult, error) {
	request, err := parser.Parse(input)
	if err != nil {
		e.logger.Debug("parse rejected input", zap.Error(err))
		return CommandResult{}, err
	}

	switch req := request.(type) {
	case command.AddPersonCommand:
		return e.run(e.addHandler.Handle(ctx, req))
	case command.EditPersonCommand:
		return e.run(e.editHandler.Handle(ctx, req))
	case command.DeletePersonCommand:
		return e.run(e.deleteHandler.Handle(ctx, req))
	case command.CommentPersonCommand:
		return e.run(e.commentHandler.Handle(ctx, req))
	case command.ClearRosterCommand:
		return e.run(e.clearHandler.Handle(ctx, req))
	case query.FindPersonsQuery:
		result, err := e.findHandler.Handle(ctx, req)
		if err != nil {
			return CommandResult{}, err
		}
		return CommandResult{Feedback: result.Feedback}, nil
	case query.ListPersonsQuery:
		result, err := e.listHandler.Handle(ctx, req)
		if err != nil {
			return CommandResult{}, err
		}
		return CommandResult{Feedback: result.Feedback}, nil
	case parser.HelpRequest:
		return CommandResult{Feedback: parser.HelpMessage, ShowHelp: true}, nil
	case parser.ExitRequest:
		return CommandResult{Feedback: "Exiting...", Exit: true}, nil
	default:
		return CommandResult{}, shared.NewDomainError("application", "Execute",
			shared.ErrUnknownCommand, parser.MessageUnknownCommand)
	}
}

func (e *Executor) run(result command.Result, err error) (CommandResult, error) {
	if err != nil {
		e.logger.Debug("command rejected", zap.Error(err))
		return CommandResult{}, err
	}
	return CommandResult{Feedback: result.Feedback}, nil
}
