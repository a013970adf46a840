package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusbook/campusbook/internal/domain/person"
	"github.com/campusbook/campusbook/internal/domain/roster"
	"github.com/campusbook/campusbook/internal/domain/shared"
)

func tempStorage(t *testing.T) *Storage {
	t.Helper()
	return NewStorage(filepath.Join(t.TempDir(), "campusbook.json"), nil)
}

func TestStorage_LoadMissingFile(t *testing.T) {
	s := tempStorage(t)

	persons, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, persons)
}

func TestStorage_SaveThenLoadRoundTrip(t *testing.T) {
	s := tempStorage(t)
	original := roster.SamplePersons()

	require.NoError(t, s.Save(context.Background(), original))

	loaded, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestStorage_SaveEmptyRoster(t *testing.T) {
	s := tempStorage(t)

	require.NoError(t, s.Save(context.Background(), nil))

	loaded, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

// Saving a loaded snapshot reproduces the file byte for byte.
func TestStorage_SaveIsIdempotent(t *testing.T) {
	s := tempStorage(t)
	require.NoError(t, s.Save(context.Background(), roster.SamplePersons()))

	first, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	loaded, err := s.Load(context.Background())
	require.NoError(t, err)
	require.NoError(t, s.Save(context.Background(), loaded))

	second, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestStorage_SaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "campusbook.json")
	s := NewStorage(path, nil)

	require.NoError(t, s.Save(context.Background(), roster.SamplePersons()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestStorage_LoadMalformedJSON(t *testing.T) {
	s := tempStorage(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0o644))

	_, err := s.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrConstraint)
}

// A record missing a required key fails the whole load; no partial roster
// is returned.
func TestStorage_LoadMissingField(t *testing.T) {
	s := tempStorage(t)
	snapshot := `{
  "persons": [
    {
      "name": "Alex Yeoh",
      "email": "e1234567@u.nus.edu",
      "major": "",
      "year": "",
      "group": "",
      "comment": ""
    }
  ]
}`
	require.NoError(t, os.WriteFile(s.Path(), []byte(snapshot), 0o644))

	_, err := s.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrConstraint)
	assert.Contains(t, err.Error(), "Person's StudentId field is missing!")
}

func TestStorage_LoadInvalidFieldValue(t *testing.T) {
	s := tempStorage(t)
	snapshot := `{
  "persons": [
    {
      "name": "Alex Yeoh",
      "studentId": "not-an-id",
      "email": "",
      "major": "",
      "year": "",
      "group": "",
      "comment": ""
    }
  ]
}`
	require.NoError(t, os.WriteFile(s.Path(), []byte(snapshot), 0o644))

	_, err := s.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrConstraint)
	assert.Contains(t, err.Error(), person.StudentIDConstraints)
}

// The stored email carries the full domain suffix and is validated in that
// form on load.
func TestStorage_LoadRejectsBareNetID(t *testing.T) {
	s := tempStorage(t)
	snapshot := `{
  "persons": [
    {
      "name": "Alex Yeoh",
      "studentId": "A8743880E",
      "email": "e1234567",
      "major": "",
      "year": "",
      "group": "",
      "comment": ""
    }
  ]
}`
	require.NoError(t, os.WriteFile(s.Path(), []byte(snapshot), 0o644))

	_, err := s.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrConstraint)
}

// Group and comment are free-form at the storage boundary: values the
// command surface would reject still load, exactly as stored.
func TestStorage_GroupAndCommentLoadVerbatim(t *testing.T) {
	s := tempStorage(t)
	snapshot := `{
  "persons": [
    {
      "name": "Alex Yeoh",
      "studentId": "A8743880E",
      "email": "",
      "major": "",
      "year": "",
      "group": "team#1",
      "comment": "  padded comment  "
    }
  ]
}`
	require.NoError(t, os.WriteFile(s.Path(), []byte(snapshot), 0o644))

	loaded, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, person.Group("team#1"), loaded[0].Group)
	assert.Equal(t, person.Comment("  padded comment  "), loaded[0].Comment)
}

// Loading and re-saving an unmutated snapshot reproduces it byte for byte,
// including whitespace the command surface would have trimmed away.
func TestStorage_UnmutatedSnapshotRoundTripsBytes(t *testing.T) {
	s := tempStorage(t)
	snapshot := `{
  "persons": [
    {
      "name": "Alex Yeoh",
      "studentId": "A8743880E",
      "email": "e1234567@u.nus.edu",
      "major": "Computer Science",
      "year": "2",
      "group": "group 1",
      "comment": "  padded comment  "
    }
  ]
}`
	require.NoError(t, os.WriteFile(s.Path(), []byte(snapshot), 0o644))

	loaded, err := s.Load(context.Background())
	require.NoError(t, err)
	require.NoError(t, s.Save(context.Background(), loaded))

	written, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, snapshot, string(written))
}

// Stored values are checked verbatim: whitespace padding on a constrained
// field is a rejection, never a silent rewrite.
func TestStorage_LoadRejectsUntrimmedStoredName(t *testing.T) {
	s := tempStorage(t)
	snapshot := `{
  "persons": [
    {
      "name": " Alex Yeoh",
      "studentId": "A8743880E",
      "email": "",
      "major": "",
      "year": "",
      "group": "",
      "comment": ""
    }
  ]
}`
	require.NoError(t, os.WriteFile(s.Path(), []byte(snapshot), 0o644))

	_, err := s.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrConstraint)
	assert.Contains(t, err.Error(), person.NameConstraints)
}

func TestStorage_EmptyOptionalFieldsSurvive(t *testing.T) {
	s := tempStorage(t)
	name, err := person.NewName("Alex Yeoh")
	require.NoError(t, err)
	id, err := person.NewStudentID("A8743880E")
	require.NoError(t, err)
	p := person.New(name, id, person.Email(""), person.Major(""),
		person.NoGroup, person.Year(""), person.NewComment(""))

	require.NoError(t, s.Save(context.Background(), []person.Person{p}))

	loaded, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, p, loaded[0])
}
