package query

import (
	"context"

	"github.com/campusbook/campusbook/internal/domain/roster"
)

// DisplayStatsQuery asks for the counts shown in the status bar.
type DisplayStatsQuery struct{}

// DisplayStatsResult carries the displayed-versus-total person counts.
type DisplayStatsResult struct {
	Displayed int
	Total     int
}

// DisplayStatsHandler handles DisplayStatsQuery.
type DisplayStatsHandler struct {
	model *roster.Model
}

// NewDisplayStatsHandler creates a DisplayStatsHandler.
func NewDisplayStatsHandler(model *roster.Model) *DisplayStatsHandler {
	return &DisplayStatsHandler{model: model}
}

// Handle returns the current displayed and total counts.
func (h *DisplayStatsHandler) Handle(_ context.Context, _ DisplayStatsQuery) (DisplayStatsResult, error) {
	return DisplayStatsResult{
		Displayed: h.model.DisplayedCount(),
		Total:     h.model.TotalCount(),
	}, nil
}
