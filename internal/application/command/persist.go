package command

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/campusbook/campusbook/internal/domain/roster"
)

// persistAfterMutation writes the current roster to storage. A failed save is
// logged and reported through the returned warning suffix, but the in-memory
// mutation is never rolled back.
func persistAfterMutation(ctx context.Context, storage roster.Storage,
	model *roster.Model, logger *zap.Logger) string {
	if storage == nil {
		return ""
	}
	if err := storage.Save(ctx, model.AllPersons()); err != nil {
		logger.Error("failed to save roster snapshot", zap.Error(err))
		return fmt.Sprintf(MessageSaveWarning, err)
	}
	return ""
}
