package roster

import (
	"github.com/campusbook/campusbook/internal/domain/person"
	"github.com/campusbook/campusbook/internal/domain/shared"
)

// Model is the facade the rest of the application talks to. It owns the
// roster and its filtered view, and publishes exactly one domain event per
// successful mutation or predicate change, in mutation order. Events are
// published synchronously, so by the time a mutating call returns every
// subscriber has observed the change.
type Model struct {
	roster *Roster
	view   *FilteredView
	bus    shared.EventBus
}

// NewModel creates a Model over an empty roster. bus may be nil, in which
// case no events are published (useful in tests).
func NewModel(bus shared.EventBus) *Model {
	r := New()
	return &Model{
		roster: r,
		view:   NewFilteredView(r),
		bus:    bus,
	}
}

// AddPerson adds a person to the roster. Fails with ErrDuplicatePerson if a
// person with the same student ID already exists; the roster is unchanged.
func (m *Model) AddPerson(p person.Person) error {
	if err := m.roster.Add(p); err != nil {
		return err
	}
	m.publish(NewPersonAddedEvent(p))
	return nil
}

// SetPerson replaces target with edited. Fails with ErrPersonNotFound if
// target is absent, and ErrDuplicatePerson if edited collides by student ID
// with a different entry.
func (m *Model) SetPerson(target, edited person.Person) error {
	if err := m.roster.Set(target, edited); err != nil {
		return err
	}
	m.publish(NewPersonEditedEvent(target, edited))
	return nil
}

// RemovePerson removes the person with the same student ID. Fails with
// ErrPersonNotFound if absent.
func (m *Model) RemovePerson(p person.Person) error {
	if err := m.roster.Remove(p); err != nil {
		return err
	}
	m.publish(NewPersonRemovedEvent(p))
	return nil
}

// Clear removes every person from the roster.
func (m *Model) Clear() {
	removed := m.roster.Clear()
	m.publish(NewRosterClearedEvent(removed))
}

// Reset replaces the whole roster, e.g. with a loaded snapshot or sample
// data. Fails with ErrDuplicatePerson on duplicate student IDs in persons.
func (m *Model) Reset(persons []person.Person) error {
	if err := m.roster.SetAll(persons); err != nil {
		return err
	}
	m.publish(NewRosterResetEvent(len(persons)))
	return nil
}

// SetFilter replaces the view predicate. The view re-derives immediately;
// there is no staleness window between mutation and visibility.
func (m *Model) SetFilter(p Predicate) {
	m.view.SetPredicate(p)
	m.publish(NewFilterChangedEvent(m.view.Len(), m.roster.Len()))
}

// FilteredPersons returns the persons currently selected for display.
func (m *Model) FilteredPersons() []person.Person {
	return m.view.Persons()
}

// PersonAt returns the person at the given zero-based position of the
// filtered sequence.
func (m *Model) PersonAt(i int) (person.Person, bool) {
	return m.view.Get(i)
}

// AllPersons returns every person in the roster, in insertion order.
func (m *Model) AllPersons() []person.Person {
	return m.roster.Persons()
}

// DisplayedCount returns the number of persons selected by the current filter.
func (m *Model) DisplayedCount() int {
	return m.view.Len()
}

// TotalCount returns the total number of persons in the roster.
func (m *Model) TotalCount() int {
	return m.roster.Len()
}

// publish sends the event if a bus is attached. Publish errors are
// deliberately ignored here: the mutation has already happened and must not
// be rolled back because a subscriber failed.
func (m *Model) publish(event shared.Event) {
	if m.bus == nil {
		return
	}
	_ = m.bus.Publish(event)
}
