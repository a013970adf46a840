package parser

import (
	"strings"

	"github.com/campusbook/campusbook/internal/domain/shared"
)

// ArgumentMultimap maps each recognized prefix to the ordered list of raw
// values supplied for it, plus the preamble text found before the first
// prefix. Values stay raw until a validator runs.
type ArgumentMultimap struct {
	preamble string
	values   map[Prefix][]string
}

func newArgumentMultimap() *ArgumentMultimap {
	return &ArgumentMultimap{values: make(map[Prefix][]string)}
}

func (m *ArgumentMultimap) put(p Prefix, value string) {
	m.values[p] = append(m.values[p], value)
}

// Preamble returns the trimmed text preceding the first recognized prefix.
func (m *ArgumentMultimap) Preamble() string {
	return m.preamble
}

// Value returns the last raw value supplied for the prefix, and whether the
// prefix occurred at all.
func (m *ArgumentMultimap) Value(p Prefix) (string, bool) {
	vs := m.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// AllValues returns every raw value supplied for the prefix, in input order.
func (m *ArgumentMultimap) AllValues(p Prefix) []string {
	return append([]string(nil), m.values[p]...)
}

// ArePrefixesPresent reports whether every given prefix occurs at least once.
func (m *ArgumentMultimap) ArePrefixesPresent(prefixes ...Prefix) bool {
	for _, p := range prefixes {
		if len(m.values[p]) == 0 {
			return false
		}
	}
	return true
}

// VerifyNoDuplicates fails with a DuplicatePrefixError if any of the given
// non-repeatable prefixes occurs more than once. The offenders are reported
// in the order of the prefix table passed in, never in input order, and all
// offenders are named at once.
func (m *ArgumentMultimap) VerifyNoDuplicates(prefixes ...Prefix) error {
	duplicated := make([]Prefix, 0)
	for _, p := range prefixes {
		if len(m.values[p]) > 1 {
			duplicated = append(duplicated, p)
		}
	}
	if len(duplicated) > 0 {
		return &DuplicatePrefixError{Prefixes: duplicated}
	}
	return nil
}

// DuplicatePrefixError names every non-repeatable prefix that occurred more
// than once in a single command.
type DuplicatePrefixError struct {
	Prefixes []Prefix
}

// Error implements the error interface.
func (e *DuplicatePrefixError) Error() string {
	tokens := make([]string, len(e.Prefixes))
	for i, p := range e.Prefixes {
		tokens[i] = p.String()
	}
	return MessageDuplicateFields + strings.Join(tokens, " ")
}

// Is matches DuplicatePrefixError against shared.ErrDuplicatePrefix.
func (e *DuplicatePrefixError) Is(target error) bool {
	return target == shared.ErrDuplicatePrefix
}
