package roster

import (
	"context"

	"github.com/campusbook/campusbook/internal/domain/person"
)

// Storage is the persistence contract for roster snapshots. Implementations
// live in infrastructure/persistence. The model layer never encodes or
// decodes records itself; it hands over a fully-formed in-memory roster and
// receives one back.
type Storage interface {
	// Load reads the persisted snapshot. A missing file is not an error;
	// implementations return (nil, nil) so the caller can fall back to
	// sample data. Malformed records fail with MissingFieldError or a
	// constraint error naming the offending field.
	Load(ctx context.Context) ([]person.Person, error)

	// Save writes the snapshot, replacing any previous one. Save failures
	// are reported to the user but never roll back the in-memory state.
	Save(ctx context.Context, persons []person.Person) error
}
