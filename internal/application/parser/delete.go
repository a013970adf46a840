package parser

import (
	"github.com/campusbook/campusbook/internal/application/command"
)

// ParseDelete parses the arguments of a delete command. The whole argument
// string must be a single valid index; any failure, including overflow, is
// masked behind the generic usage error.
func ParseDelete(args string) (command.DeletePersonCommand, error) {
	index, err := ParseIndex(args)
	if err != nil {
		return command.DeletePersonCommand{}, usageErr(DeleteUsage)
	}
	return command.DeletePersonCommand{Index: index.OneBased()}, nil
}
