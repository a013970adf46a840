// Package roster contains the in-memory roster aggregate: an ordered list of
// persons unique by student ID, a predicate-filtered view derived from it,
// and the model facade that publishes a domain event after every successful
// mutation.
package roster

import (
	"github.com/campusbook/campusbook/internal/domain/person"
	"github.com/campusbook/campusbook/internal/domain/shared"
)

// Roster is an ordered sequence of persons, unique by student ID. It is owned
// exclusively by the Model and mutated only through the operations below.
type Roster struct {
	persons []person.Person
}

// New creates an empty roster.
func New() *Roster {
	return &Roster{persons: make([]person.Person, 0)}
}

// Len returns the number of persons in the roster.
func (r *Roster) Len() int {
	return len(r.persons)
}

// Persons returns a copy of the roster contents in insertion order.
func (r *Roster) Persons() []person.Person {
	out := make([]person.Person, len(r.persons))
	copy(out, r.persons)
	return out
}

// Contains reports whether the roster holds a person with the same student ID.
func (r *Roster) Contains(p person.Person) bool {
	return r.indexOf(p) >= 0
}

// Add appends a person. Returns ErrDuplicatePerson if a person with the same
// student ID is already present; the roster is left unchanged.
func (r *Roster) Add(p person.Person) error {
	if r.Contains(p) {
		return shared.ErrDuplicatePerson
	}
	r.persons = append(r.persons, p)
	return nil
}

// Set replaces target with edited in place. Returns ErrPersonNotFound if
// target is absent, and ErrDuplicatePerson if edited collides by student ID
// with a different existing entry.
func (r *Roster) Set(target, edited person.Person) error {
	idx := r.indexOf(target)
	if idx < 0 {
		return shared.ErrPersonNotFound
	}
	if !target.IsSamePerson(edited) && r.Contains(edited) {
		return shared.ErrDuplicatePerson
	}
	r.persons[idx] = edited
	return nil
}

// Remove deletes the person with the same student ID. Returns
// ErrPersonNotFound if absent.
func (r *Roster) Remove(p person.Person) error {
	idx := r.indexOf(p)
	if idx < 0 {
		return shared.ErrPersonNotFound
	}
	r.persons = append(r.persons[:idx], r.persons[idx+1:]...)
	return nil
}

// SetAll replaces the entire contents. Returns ErrDuplicatePerson if the
// replacement list contains two persons with the same student ID.
func (r *Roster) SetAll(persons []person.Person) error {
	seen := make(map[person.StudentID]struct{}, len(persons))
	for _, p := range persons {
		if _, dup := seen[p.StudentID]; dup {
			return shared.ErrDuplicatePerson
		}
		seen[p.StudentID] = struct{}{}
	}
	r.persons = make([]person.Person, len(persons))
	copy(r.persons, persons)
	return nil
}

// Clear removes every person and returns how many were removed.
func (r *Roster) Clear() int {
	n := len(r.persons)
	r.persons = r.persons[:0]
	return n
}

// indexOf locates a person by student ID, the sole identity key.
func (r *Roster) indexOf(p person.Person) int {
	for i, existing := range r.persons {
		if existing.IsSamePerson(p) {
			return i
		}
	}
	return -1
}
