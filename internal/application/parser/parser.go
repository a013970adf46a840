package parser

import (
	"fmt"
	"strings"

	"github.com/campusbook/campusbook/internal/application/command"
	"github.com/campusbook/campusbook/internal/application/query"
	"github.com/campusbook/campusbook/internal/domain/shared"
)

// Command words.
const (
	CommandAdd     = "add"
	CommandEdit    = "edit"
	CommandDelete  = "delete"
	CommandComment = "comment"
	CommandFind    = "find"
	CommandList    = "list"
	CommandClear   = "clear"
	CommandHelp    = "help"
	CommandExit    = "exit"
)

// HelpRequest asks for the help text. ExitRequest asks to quit. Both are
// produced by Parse and handled by the executor directly.
type (
	HelpRequest struct{}
	ExitRequest struct{}
)

// Request is any parsed command or query request.
type Request interface{}

// Parse splits raw command-bar input into a command word and argument string
// and dispatches to the matching command parser. The argument string keeps
// its leading whitespace so the tokenizer can recognize a prefix at the
// start of the arguments.
func Parse(input string) (Request, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, usageErr(HelpMessage)
	}

	word := trimmed
	args := ""
	if i := strings.IndexFunc(trimmed, isSpace); i >= 0 {
		word = trimmed[:i]
		args = trimmed[i:] // leading whitespace retained
	}

	switch word {
	case CommandAdd:
		return ParseAdd(args)
	case CommandEdit:
		return ParseEdit(args)
	case CommandDelete:
		return ParseDelete(args)
	case CommandComment:
		return ParseComment(args)
	case CommandFind:
		return ParseFind(args)
	case CommandList:
		// trailing arguments are ignored for the argument-free commands
		return query.ListPersonsQuery{}, nil
	case CommandClear:
		return command.ClearRosterCommand{}, nil
	case CommandHelp:
		return HelpRequest{}, nil
	case CommandExit:
		return ExitRequest{}, nil
	default:
		return nil, shared.NewDomainError("parser", "Parse",
			shared.ErrUnknownCommand, MessageUnknownCommand)
	}
}

// usageErr builds the generic invalid-command-format error wrapping the
// command's usage text.
func usageErr(usage string) error {
	return shared.NewDomainError("parser", "Parse", shared.ErrInvalidFormat,
		fmt.Sprintf(MessageInvalidCommandFormat, usage))
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
