package parser

import (
	"github.com/campusbook/campusbook/internal/application/command"
	"github.com/campusbook/campusbook/internal/domain/person"
)

// ParseComment parses the arguments of a comment command. The c/ prefix is
// mandatory and single-valued; an empty value clears the comment.
func ParseComment(args string) (command.CommentPersonCommand, error) {
	var zero command.CommentPersonCommand

	mm := Tokenize(args, PrefixComment)

	index, err := ParseIndex(mm.Preamble())
	if err != nil {
		return zero, usageErr(CommentUsage)
	}
	if !mm.ArePrefixesPresent(PrefixComment) {
		return zero, usageErr(CommentUsage)
	}
	if err := mm.VerifyNoDuplicates(PrefixComment); err != nil {
		return zero, err
	}

	raw, _ := mm.Value(PrefixComment)
	return command.CommentPersonCommand{
		Index:   index.OneBased(),
		Comment: person.NewComment(raw),
	}, nil
}
