package roster

import (
	"strings"

	"github.com/campusbook/campusbook/internal/domain/person"
)

// Predicate selects persons for display.
type Predicate func(person.Person) bool

// ShowAll is the predicate that selects every person.
var ShowAll Predicate = func(person.Person) bool { return true }

// NameContainsKeywords builds a predicate that matches persons whose name
// contains any of the keywords as a full word, ignoring case. Mirrors the
// find command's matching rules: "find alex yu" matches "Alex Yeoh" and
// "Bernice Yu" but not "Alexander Tan".
func NameContainsKeywords(keywords []string) Predicate {
	return func(p person.Person) bool {
		for _, kw := range keywords {
			if containsWordIgnoreCase(p.Name.String(), kw) {
				return true
			}
		}
		return false
	}
}

// containsWordIgnoreCase reports whether sentence contains word as a complete
// whitespace-delimited word, ignoring case.
func containsWordIgnoreCase(sentence, word string) bool {
	word = strings.TrimSpace(word)
	if word == "" {
		return false
	}
	for _, w := range strings.Fields(sentence) {
		if strings.EqualFold(w, word) {
			return true
		}
	}
	return false
}

// FilteredView is a derived, predicate-selected subsequence of the roster.
// It never owns data: every read re-derives from the backing roster, so the
// view can never be stale relative to a completed mutation.
type FilteredView struct {
	source    *Roster
	predicate Predicate
}

// NewFilteredView creates a view over source showing all persons.
func NewFilteredView(source *Roster) *FilteredView {
	return &FilteredView{source: source, predicate: ShowAll}
}

// SetPredicate replaces the view's predicate. Takes effect immediately.
func (v *FilteredView) SetPredicate(p Predicate) {
	if p == nil {
		p = ShowAll
	}
	v.predicate = p
}

// Persons returns the persons currently selected by the predicate, in roster
// order.
func (v *FilteredView) Persons() []person.Person {
	all := v.source.Persons()
	out := make([]person.Person, 0, len(all))
	for _, p := range all {
		if v.predicate(p) {
			out = append(out, p)
		}
	}
	return out
}

// Len returns the number of persons currently displayed.
func (v *FilteredView) Len() int {
	return len(v.Persons())
}

// Get returns the person at the given zero-based position of the filtered
// sequence, and whether the position is in range.
func (v *FilteredView) Get(i int) (person.Person, bool) {
	persons := v.Persons()
	if i < 0 || i >= len(persons) {
		return person.Person{}, false
	}
	return persons[i], true
}
