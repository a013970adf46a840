// Package person contains the person entity and its field value objects.
// This is the core of the business logic - field values are validated at
// construction and immutable afterwards.
package person

import (
	"regexp"
	"strings"

	"github.com/campusbook/campusbook/internal/domain/shared"
)

// Constraint messages surfaced verbatim when a field value is rejected.
const (
	NameConstraints = "Names should only contain alphanumeric characters and spaces, " +
		"and it should not be blank"
	StudentIDConstraints = "Student IDs should start with 'A', followed by 7 digits " +
		"and an uppercase letter, e.g. A1234567X"
	NetIDConstraints = "Net IDs should be 'e' followed by 7 digits, e.g. e1234567"
	MajorConstraints = "Majors should only contain alphanumeric characters and spaces, " +
		"and it should not be blank"
	YearConstraints  = "Years should be a single digit from 1 to 5"
	GroupConstraints = "Group names should only contain alphanumeric characters and spaces, " +
		"and it should not be blank"
)

// EmailDomain is appended to a validated net ID to form the stored email.
const EmailDomain = "@u.nus.edu"

var (
	nameRegex  = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ]*$`)
	idRegex    = regexp.MustCompile(`^A\d{7}[A-Z]$`)
	netIDRegex = regexp.MustCompile(`^[eE]\d{7}$`)
	emailRegex = regexp.MustCompile(`^[eE]\d{7}@u\.nus\.edu$`)
	majorRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ]*$`)
	yearRegex  = regexp.MustCompile(`^[1-5]$`)
	groupRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ]*$`)
)

// ─────────────────────────────────────────────────────────────────────────────
// Name
// ─────────────────────────────────────────────────────────────────────────────

// Name represents a person's name. Always non-empty.
type Name string

// IsValidName reports whether s is a valid name.
func IsValidName(s string) bool {
	return nameRegex.MatchString(s)
}

// NewName creates a Name after trimming surrounding whitespace.
func NewName(s string) (Name, error) {
	trimmed := strings.TrimSpace(s)
	if !IsValidName(trimmed) {
		return "", shared.NewValidationError("Name", NameConstraints)
	}
	return Name(trimmed), nil
}

// String returns the string representation.
func (n Name) String() string { return string(n) }

// ─────────────────────────────────────────────────────────────────────────────
// StudentID
// ─────────────────────────────────────────────────────────────────────────────

// StudentID is the sole identity key for a person.
type StudentID string

// IsValidStudentID reports whether s is a valid student ID.
func IsValidStudentID(s string) bool {
	return idRegex.MatchString(s)
}

// NewStudentID creates a StudentID after trimming surrounding whitespace.
func NewStudentID(s string) (StudentID, error) {
	trimmed := strings.TrimSpace(s)
	if !IsValidStudentID(trimmed) {
		return "", shared.NewValidationError("StudentId", StudentIDConstraints)
	}
	return StudentID(trimmed), nil
}

// String returns the string representation.
func (s StudentID) String() string { return string(s) }

// ─────────────────────────────────────────────────────────────────────────────
// Email
// ─────────────────────────────────────────────────────────────────────────────

// Email is either empty (unset) or a net ID with the fixed campus domain.
// User input supplies only the net ID; the domain is appended on construction.
type Email string

// IsValidNetID reports whether s is a valid net ID (the local part).
func IsValidNetID(s string) bool {
	return netIDRegex.MatchString(s)
}

// IsValidEmail reports whether s is a valid full stored email.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// NewEmailFromNetID validates the net ID and returns the full email with
// EmailDomain appended.
func NewEmailFromNetID(netID string) (Email, error) {
	trimmed := strings.TrimSpace(netID)
	if !IsValidNetID(trimmed) {
		return "", shared.NewValidationError("Email", NetIDConstraints)
	}
	return Email(trimmed + EmailDomain), nil
}

// NewOptionalEmailFromNetID accepts the empty string as "unset"; any other
// value goes through NewEmailFromNetID.
func NewOptionalEmailFromNetID(netID string) (Email, error) {
	trimmed := strings.TrimSpace(netID)
	if trimmed == "" {
		return Email(""), nil
	}
	return NewEmailFromNetID(trimmed)
}

// NewEmail creates an Email from an already-complete stored value. Used at
// the persistence boundary where the domain suffix is already present.
func NewEmail(s string) (Email, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Email(""), nil
	}
	if !IsValidEmail(trimmed) {
		return "", shared.NewValidationError("Email", NetIDConstraints)
	}
	return Email(trimmed), nil
}

// IsEmpty reports whether the email is unset.
func (e Email) IsEmpty() bool { return e == "" }

// String returns the string representation.
func (e Email) String() string { return string(e) }

// ─────────────────────────────────────────────────────────────────────────────
// Major
// ─────────────────────────────────────────────────────────────────────────────

// Major is a free-form constrained string; empty means unset.
type Major string

// IsValidMajor reports whether s is a valid non-empty major.
func IsValidMajor(s string) bool {
	return majorRegex.MatchString(s)
}

// NewMajor creates a Major after trimming surrounding whitespace.
func NewMajor(s string) (Major, error) {
	trimmed := strings.TrimSpace(s)
	if !IsValidMajor(trimmed) {
		return "", shared.NewValidationError("Major", MajorConstraints)
	}
	return Major(trimmed), nil
}

// NewOptionalMajor accepts the empty string as "unset".
func NewOptionalMajor(s string) (Major, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Major(""), nil
	}
	return NewMajor(trimmed)
}

// IsEmpty reports whether the major is unset.
func (m Major) IsEmpty() bool { return m == "" }

// String returns the string representation.
func (m Major) String() string { return string(m) }

// ─────────────────────────────────────────────────────────────────────────────
// Year
// ─────────────────────────────────────────────────────────────────────────────

// Year is the year of study; empty means unset.
type Year string

// IsValidYear reports whether s is a valid non-empty year.
func IsValidYear(s string) bool {
	return yearRegex.MatchString(s)
}

// NewYear creates a Year after trimming surrounding whitespace.
func NewYear(s string) (Year, error) {
	trimmed := strings.TrimSpace(s)
	if !IsValidYear(trimmed) {
		return "", shared.NewValidationError("Year", YearConstraints)
	}
	return Year(trimmed), nil
}

// NewOptionalYear accepts the empty string as "unset".
func NewOptionalYear(s string) (Year, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Year(""), nil
	}
	return NewYear(trimmed)
}

// IsEmpty reports whether the year is unset.
func (y Year) IsEmpty() bool { return y == "" }

// String returns the string representation.
func (y Year) String() string { return string(y) }

// ─────────────────────────────────────────────────────────────────────────────
// Group
// ─────────────────────────────────────────────────────────────────────────────

// Group is a zero-or-one tag-like label. The empty value is the explicit
// "no group" sentinel.
type Group string

// NoGroup is the sentinel for a person without a group.
const NoGroup = Group("")

// IsValidGroupName reports whether s is a valid non-empty group name.
func IsValidGroupName(s string) bool {
	return groupRegex.MatchString(s)
}

// NewGroup creates a Group after trimming surrounding whitespace.
func NewGroup(s string) (Group, error) {
	trimmed := strings.TrimSpace(s)
	if !IsValidGroupName(trimmed) {
		return NoGroup, shared.NewValidationError("Group", GroupConstraints)
	}
	return Group(trimmed), nil
}

// NewOptionalGroup accepts the empty string as the NoGroup sentinel. An
// empty-valued group prefix in an edit means "reset to no group".
func NewOptionalGroup(s string) (Group, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return NoGroup, nil
	}
	return NewGroup(trimmed)
}

// IsEmpty reports whether the group is the NoGroup sentinel.
func (g Group) IsEmpty() bool { return g == NoGroup }

// String returns the string representation.
func (g Group) String() string { return string(g) }

// ─────────────────────────────────────────────────────────────────────────────
// Comment
// ─────────────────────────────────────────────────────────────────────────────

// Comment is free text attached to a person. Any value is valid.
type Comment string

// NewComment creates a Comment; no constraint applies.
func NewComment(s string) Comment {
	return Comment(strings.TrimSpace(s))
}

// IsEmpty reports whether the comment is empty.
func (c Comment) IsEmpty() bool { return c == "" }

// String returns the string representation.
func (c Comment) String() string { return string(c) }
