package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campusbook/campusbook/internal/application/parser"
	"github.com/campusbook/campusbook/internal/domain/person"
	"github.com/campusbook/campusbook/internal/domain/roster"
	"github.com/campusbook/campusbook/internal/domain/shared"
)

// memoryStorage keeps the last saved snapshot in memory. saveErr, when set,
// makes every Save fail.
type memoryStorage struct {
	saved   []person.Person
	saves   int
	saveErr error
}

func (s *memoryStorage) Load(context.Context) ([]person.Person, error) {
	return append([]person.Person(nil), s.saved...), nil
}

func (s *memoryStorage) Save(_ context.Context, persons []person.Person) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append([]person.Person(nil), persons...)
	s.saves++
	return nil
}

func newTestExecutor(t *testing.T) (*Executor, *roster.Model, *memoryStorage) {
	t.Helper()
	model := roster.NewModel(nil)
	storage := &memoryStorage{}
	return NewExecutor(model, storage, zap.NewNop()), model, storage
}

func mustExecute(t *testing.T, e *Executor, input string) CommandResult {
	t.Helper()
	result, err := e.Execute(context.Background(), input)
	require.NoError(t, err, "input: %s", input)
	return result
}

func TestExecutor_AddThenList(t *testing.T) {
	e, model, storage := newTestExecutor(t)

	result := mustExecute(t, e, "add n/Alex Yeoh id/A8743880E e/e1234567 m/Computer Science y/2 g/group 1")
	assert.Contains(t, result.Feedback, "New person added: ")
	assert.Contains(t, result.Feedback, "Alex Yeoh")
	assert.Equal(t, 1, model.TotalCount())
	assert.Equal(t, 1, storage.saves)

	result = mustExecute(t, e, "list")
	assert.Equal(t, "Listed all persons", result.Feedback)
}

func TestExecutor_AddDuplicateRejected(t *testing.T) {
	e, model, _ := newTestExecutor(t)

	mustExecute(t, e, "add n/Alex Yeoh id/A8743880E")

	_, err := e.Execute(context.Background(), "add n/Different Name id/A8743880E")
	require.Error(t, err)
	assert.EqualError(t, err, "This person already exists in the roster")
	assert.Equal(t, 1, model.TotalCount())
}

// Editing with a single field only touches that field.
func TestExecutor_EditSingleField(t *testing.T) {
	e, model, _ := newTestExecutor(t)

	mustExecute(t, e, "add n/Alex Yeoh id/A8743880E m/Computer Science y/2")
	mustExecute(t, e, "edit 1 n/John Tan")

	p := model.FilteredPersons()[0]
	assert.Equal(t, person.Name("John Tan"), p.Name)
	assert.Equal(t, person.StudentID("A8743880E"), p.StudentID)
	assert.Equal(t, person.Major("Computer Science"), p.Major)
	assert.Equal(t, person.Year("2"), p.Year)
}

func TestExecutor_EditGroupReset(t *testing.T) {
	e, model, _ := newTestExecutor(t)

	mustExecute(t, e, "add n/Alex Yeoh id/A8743880E g/group 1")
	result := mustExecute(t, e, "edit 1 g/")

	assert.Contains(t, result.Feedback, "Edited Person: ")
	assert.Equal(t, person.NoGroup, model.FilteredPersons()[0].Group)
}

func TestExecutor_EditIndexOutOfRange(t *testing.T) {
	e, _, _ := newTestExecutor(t)

	mustExecute(t, e, "add n/Alex Yeoh id/A8743880E")

	_, err := e.Execute(context.Background(), "edit 2 n/John Tan")
	require.Error(t, err)
	assert.EqualError(t, err, "The person index provided is invalid")
}

// The index refers to the displayed list, so a filtered view changes which
// person a given index resolves to.
func TestExecutor_DeleteUsesDisplayedIndex(t *testing.T) {
	e, model, _ := newTestExecutor(t)

	mustExecute(t, e, "add n/Alex Yeoh id/A8743880E")
	mustExecute(t, e, "add n/Bernice Yu id/A9272758F")

	result := mustExecute(t, e, "find bernice")
	assert.Equal(t, "1 persons listed!", result.Feedback)

	mustExecute(t, e, "delete 1")
	assert.Equal(t, 1, model.TotalCount())
	assert.Equal(t, person.Name("Alex Yeoh"), model.AllPersons()[0].Name)
}

func TestExecutor_FindThenListRestoresView(t *testing.T) {
	e, model, _ := newTestExecutor(t)

	mustExecute(t, e, "add n/Alex Yeoh id/A8743880E")
	mustExecute(t, e, "add n/Bernice Yu id/A9272758F")

	mustExecute(t, e, "find alex")
	assert.Equal(t, 1, model.DisplayedCount())

	mustExecute(t, e, "list")
	assert.Equal(t, 2, model.DisplayedCount())
}

func TestExecutor_CommentAddAndRemove(t *testing.T) {
	e, model, _ := newTestExecutor(t)

	mustExecute(t, e, "add n/Alex Yeoh id/A8743880E")

	result := mustExecute(t, e, "comment 1 c/Needs help with MA1521")
	assert.Contains(t, result.Feedback, "Added comment to Person: ")
	assert.Equal(t, person.Comment("Needs help with MA1521"), model.FilteredPersons()[0].Comment)

	result = mustExecute(t, e, "comment 1 c/")
	assert.Contains(t, result.Feedback, "Removed comment from Person: ")
	assert.Empty(t, model.FilteredPersons()[0].Comment)
}

func TestExecutor_Clear(t *testing.T) {
	e, model, storage := newTestExecutor(t)

	mustExecute(t, e, "add n/Alex Yeoh id/A8743880E")
	mustExecute(t, e, "add n/Bernice Yu id/A9272758F")

	result := mustExecute(t, e, "clear")
	assert.Equal(t, "Roster has been cleared!", result.Feedback)
	assert.Equal(t, 0, model.TotalCount())
	assert.Empty(t, storage.saved)
}

// A failed save never rolls back the in-memory change; the feedback carries
// a warning instead.
func TestExecutor_SaveFailureKeepsMutation(t *testing.T) {
	e, model, storage := newTestExecutor(t)
	storage.saveErr = errors.New("disk full")

	result := mustExecute(t, e, "add n/Alex Yeoh id/A8743880E")
	assert.Contains(t, result.Feedback, "New person added: ")
	assert.Contains(t, result.Feedback, "Warning: changes could not be saved: disk full")
	assert.Equal(t, 1, model.TotalCount())
}

func TestExecutor_HelpAndExit(t *testing.T) {
	e, _, _ := newTestExecutor(t)

	result := mustExecute(t, e, "help")
	assert.True(t, result.ShowHelp)
	assert.Equal(t, parser.HelpMessage, result.Feedback)
	assert.False(t, result.Exit)

	result = mustExecute(t, e, "exit")
	assert.True(t, result.Exit)
	assert.False(t, result.ShowHelp)
}

func TestExecutor_ParseErrorsSurfaceVerbatim(t *testing.T) {
	e, _, _ := newTestExecutor(t)

	_, err := e.Execute(context.Background(), "bogus 1")
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrUnknownCommand)

	_, err = e.Execute(context.Background(), "delete abc")
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrInvalidFormat)
}
