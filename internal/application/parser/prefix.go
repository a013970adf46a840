// Package parser turns raw command-bar input into validated command and
// query requests. It owns the argument tokenizer, the prefix grammar, index
// parsing, and one parse function per command word.
package parser

// Prefix is a short marker identifying which field a following raw value
// belongs to, e.g. "n/" for the name.
type Prefix string

// String returns the prefix token itself.
func (p Prefix) String() string { return string(p) }

// Recognized prefixes. PersonPrefixes fixes the declared order used for
// duplicate-prefix reporting and for field validation scanning; it is never
// the input order.
const (
	PrefixName      Prefix = "n/"
	PrefixStudentID Prefix = "id/"
	PrefixNetID     Prefix = "e/"
	PrefixMajor     Prefix = "m/"
	PrefixYear      Prefix = "y/"
	PrefixGroup     Prefix = "g/"
	PrefixComment   Prefix = "c/"
)

// PersonPrefixes is the declared prefix table for add and edit.
var PersonPrefixes = []Prefix{
	PrefixName, PrefixStudentID, PrefixNetID, PrefixMajor, PrefixYear, PrefixGroup,
}
