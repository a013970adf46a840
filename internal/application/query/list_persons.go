package query

import (
	"context"

	"go.uber.org/zap"

	"github.com/campusbook/campusbook/internal/domain/roster"
)

// MessageListedAll confirms the filter was reset.
const MessageListedAll = "Listed all persons"

// ListPersonsQuery resets the view to show the whole roster.
type ListPersonsQuery struct{}

// ListPersonsResult is the outcome of a list query.
type ListPersonsResult struct {
	Feedback string
}

// ListPersonsHandler handles ListPersonsQuery.
type ListPersonsHandler struct {
	model  *roster.Model
	logger *zap.Logger
}

// NewListPersonsHandler creates a ListPersonsHandler with its dependencies.
func NewListPersonsHandler(model *roster.Model, logger *zap.Logger) *ListPersonsHandler {
	return &ListPersonsHandler{model: model, logger: logger}
}

// Handle resets the view predicate to show every person.
func (h *ListPersonsHandler) Handle(_ context.Context, _ ListPersonsQuery) (ListPersonsResult, error) {
	h.model.SetFilter(roster.ShowAll)
	h.logger.Debug("filter reset", zap.Int("total", h.model.TotalCount()))
	return ListPersonsResult{Feedback: MessageListedAll}, nil
}
