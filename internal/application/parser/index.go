package parser

import (
	"strconv"
	"strings"

	"github.com/campusbook/campusbook/internal/domain/shared"
)

// Index is a 1-based position into the displayed person list.
type Index int

// OneBased returns the 1-based value.
func (i Index) OneBased() int { return int(i) }

// ZeroBased returns the 0-based value.
func (i Index) ZeroBased() int { return int(i) - 1 }

// maxIndexDigits bounds the accepted index length; "2147483647" has ten.
const (
	maxIndexDigits = 10
	maxIndexText   = "2147483647"
)

// ParseIndex parses a 1-based index. Leading and trailing whitespace is
// trimmed first. Failures are deterministic and distinguish two kinds:
//
//   - invalid (shared.ErrInvalidIndex): empty, any non-digit rune (which
//     covers signs like "+1" and "-5"), a leading zero, or the value zero;
//   - overflow (shared.ErrIndexOverflow): more than ten digits, or exactly
//     ten digits lexicographically above "2147483647".
//
// Command parsers that require an index mask both kinds behind a generic
// usage-format error; the distinction is still observable here.
func ParseIndex(s string) (Index, error) {
	trimmed := strings.TrimSpace(s)

	if !isAllDigits(trimmed) {
		return 0, invalidIndexErr()
	}
	if len(trimmed) > 1 && trimmed[0] == '0' {
		return 0, invalidIndexErr()
	}
	if len(trimmed) > maxIndexDigits ||
		(len(trimmed) == maxIndexDigits && trimmed > maxIndexText) {
		return 0, shared.NewDomainError("parser", "ParseIndex",
			shared.ErrIndexOverflow, MessageOverflowIndex)
	}

	value, err := strconv.Atoi(trimmed)
	if err != nil || value == 0 {
		return 0, invalidIndexErr()
	}
	return Index(value), nil
}

func invalidIndexErr() error {
	return shared.NewDomainError("parser", "ParseIndex",
		shared.ErrInvalidIndex, MessageInvalidIndex)
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
