package roster

import (
	"github.com/campusbook/campusbook/internal/domain/person"
	"github.com/campusbook/campusbook/internal/domain/shared"
)

// rosterAggregateID is the aggregate ID for roster-level events.
const rosterAggregateID = "roster"

// PersonAddedEvent is published after a person is added.
type PersonAddedEvent struct {
	shared.BaseEvent
	Person person.Person
}

// Payload returns the event data for logging.
func (e PersonAddedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"student_id": e.Person.StudentID.String(),
		"name":       e.Person.Name.String(),
	}
}

// NewPersonAddedEvent creates a PersonAddedEvent.
func NewPersonAddedEvent(p person.Person) PersonAddedEvent {
	return PersonAddedEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventPersonAdded, p.StudentID.String()),
		Person:    p,
	}
}

// PersonEditedEvent is published after a person is replaced with an edited
// version. Before and After may differ in student ID.
type PersonEditedEvent struct {
	shared.BaseEvent
	Before person.Person
	After  person.Person
}

// Payload returns the event data for logging.
func (e PersonEditedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"student_id_before": e.Before.StudentID.String(),
		"student_id_after":  e.After.StudentID.String(),
	}
}

// NewPersonEditedEvent creates a PersonEditedEvent.
func NewPersonEditedEvent(before, after person.Person) PersonEditedEvent {
	return PersonEditedEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventPersonEdited, after.StudentID.String()),
		Before:    before,
		After:     after,
	}
}

// PersonRemovedEvent is published after a person is removed.
type PersonRemovedEvent struct {
	shared.BaseEvent
	Person person.Person
}

// Payload returns the event data for logging.
func (e PersonRemovedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"student_id": e.Person.StudentID.String(),
	}
}

// NewPersonRemovedEvent creates a PersonRemovedEvent.
func NewPersonRemovedEvent(p person.Person) PersonRemovedEvent {
	return PersonRemovedEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventPersonRemoved, p.StudentID.String()),
		Person:    p,
	}
}

// RosterClearedEvent is published after the roster is cleared.
type RosterClearedEvent struct {
	shared.BaseEvent
	Removed int
}

// Payload returns the event data for logging.
func (e RosterClearedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{"removed": e.Removed}
}

// NewRosterClearedEvent creates a RosterClearedEvent.
func NewRosterClearedEvent(removed int) RosterClearedEvent {
	return RosterClearedEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventRosterCleared, rosterAggregateID),
		Removed:   removed,
	}
}

// RosterResetEvent is published after the entire roster is replaced, e.g.
// when a snapshot is loaded from disk at startup.
type RosterResetEvent struct {
	shared.BaseEvent
	Count int
}

// Payload returns the event data for logging.
func (e RosterResetEvent) Payload() map[string]interface{} {
	return map[string]interface{}{"count": e.Count}
}

// NewRosterResetEvent creates a RosterResetEvent.
func NewRosterResetEvent(count int) RosterResetEvent {
	return RosterResetEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventRosterReset, rosterAggregateID),
		Count:     count,
	}
}

// FilterChangedEvent is published after the view's predicate is replaced.
type FilterChangedEvent struct {
	shared.BaseEvent
	Displayed int
	Total     int
}

// Payload returns the event data for logging.
func (e FilterChangedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"displayed": e.Displayed,
		"total":     e.Total,
	}
}

// NewFilterChangedEvent creates a FilterChangedEvent.
func NewFilterChangedEvent(displayed, total int) FilterChangedEvent {
	return FilterChangedEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventFilterChanged, rosterAggregateID),
		Displayed: displayed,
		Total:     total,
	}
}
