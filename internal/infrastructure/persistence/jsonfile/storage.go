// Package jsonfile implements roster storage as a single JSON snapshot file.
// The whole roster is rewritten on every save; there is no partial update.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/campusbook/campusbook/internal/domain/person"
	"github.com/campusbook/campusbook/internal/domain/roster"
	"github.com/campusbook/campusbook/internal/domain/shared"
	"github.com/campusbook/campusbook/pkg/retry"
)

// Storage stores the roster as pretty-printed JSON at a fixed path. It
// implements roster.Storage. Saves are atomic: the snapshot is written to a
// temporary file in the same directory and renamed over the target.
type Storage struct {
	path    string
	logger  *zap.Logger
	retrier *retry.Retrier
}

// NewStorage creates a Storage writing to path.
func NewStorage(path string, logger *zap.Logger) *Storage {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Storage{
		path:    path,
		logger:  logger,
		retrier: retry.FileRetrier(),
	}
}

// Path returns the snapshot file path.
func (s *Storage) Path() string {
	return s.path
}

// Load reads and validates the snapshot. A missing file is not an error and
// yields an empty result; the caller decides how to seed the roster. A
// snapshot that is unreadable, syntactically broken, or semantically invalid
// fails as a whole: no partial roster is ever returned.
func (s *Storage) Load(_ context.Context) ([]person.Person, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.logger.Info("no snapshot file found", zap.String("path", s.path))
		return nil, nil
	}
	if err != nil {
		return nil, shared.WrapError("storage", "Load", shared.ErrConstraint,
			fmt.Sprintf("could not read roster file %s", s.path), err)
	}

	var file rosterFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, shared.WrapError("storage", "Load", shared.ErrConstraint,
			fmt.Sprintf("roster file %s is not valid JSON", s.path), err)
	}

	persons := make([]person.Person, 0, len(file.Persons))
	for i, rec := range file.Persons {
		p, err := rec.toPerson()
		if err != nil {
			return nil, shared.WrapError("storage", "Load", shared.ErrConstraint,
				fmt.Sprintf("roster file %s: record %d: %v", s.path, i, err), err)
		}
		persons = append(persons, p)
	}

	s.logger.Info("roster snapshot loaded",
		zap.String("path", s.path),
		zap.Int("persons", len(persons)))
	return persons, nil
}

// Save writes the full roster snapshot. The parent directory is created when
// absent. Transient write failures are retried a few times before giving up.
func (s *Storage) Save(ctx context.Context, persons []person.Person) error {
	records := make([]personRecord, len(persons))
	for i, p := range persons {
		records[i] = toRecord(p)
	}

	data, err := json.MarshalIndent(rosterFile{Persons: records}, "", "  ")
	if err != nil {
		return shared.WrapError("storage", "Save", shared.ErrConstraint,
			"could not encode roster snapshot", err)
	}

	err = s.retrier.Do(ctx, func(context.Context) error {
		if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
			return retry.Permanent(err)
		}
		return retry.Retryable(writeAtomic(s.path, data))
	})
	if err != nil {
		return shared.WrapError("storage", "Save", shared.ErrConstraint,
			fmt.Sprintf("could not write roster file %s", s.path), err)
	}

	s.logger.Debug("roster snapshot saved",
		zap.String("path", s.path),
		zap.Int("persons", len(persons)))
	return nil
}

// writeAtomic writes data next to path and renames it into place, so readers
// never observe a half-written snapshot.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

var _ roster.Storage = (*Storage)(nil)
