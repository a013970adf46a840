package parser

import (
	"strings"

	"github.com/campusbook/campusbook/internal/application/query"
)

// ParseFind parses the arguments of a find command: one or more
// whitespace-separated name keywords.
func ParseFind(args string) (query.FindPersonsQuery, error) {
	trimmed := strings.TrimSpace(args)
	if trimmed == "" {
		return query.FindPersonsQuery{}, usageErr(FindUsage)
	}
	return query.FindPersonsQuery{Keywords: strings.Fields(trimmed)}, nil
}
