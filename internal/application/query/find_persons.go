// Package query contains read operations (CQRS - Queries). Queries never
// mutate roster contents; the find/list queries only replace the view
// predicate, which is part of presentation state.
package query

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/campusbook/campusbook/internal/domain/roster"
)

// MessagePersonsListed reports how many persons the new filter selects.
const MessagePersonsListed = "%d persons listed!"

// FindPersonsQuery filters the displayed list down to persons whose name
// contains any of the keywords as a full word, ignoring case.
type FindPersonsQuery struct {
	Keywords []string
}

// FindPersonsResult is the outcome of a find query.
type FindPersonsResult struct {
	Feedback  string
	Displayed int
}

// FindPersonsHandler handles FindPersonsQuery.
type FindPersonsHandler struct {
	model  *roster.Model
	logger *zap.Logger
}

// NewFindPersonsHandler creates a FindPersonsHandler with its dependencies.
func NewFindPersonsHandler(model *roster.Model, logger *zap.Logger) *FindPersonsHandler {
	return &FindPersonsHandler{model: model, logger: logger}
}

// Handle replaces the view predicate and reports the new displayed count.
func (h *FindPersonsHandler) Handle(_ context.Context, q FindPersonsQuery) (FindPersonsResult, error) {
	h.model.SetFilter(roster.NameContainsKeywords(q.Keywords))
	displayed := h.model.DisplayedCount()

	h.logger.Debug("filter applied",
		zap.Strings("keywords", q.Keywords),
		zap.Int("displayed", displayed))

	return FindPersonsResult{
		Feedback:  fmt.Sprintf(MessagePersonsListed, displayed),
		Displayed: displayed,
	}, nil
}
