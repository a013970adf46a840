package person

import "fmt"

// Person represents a student record in the roster.
// Guarantees: all fields are present, validated at construction, immutable.
// Person is a value type; mutation always produces a new value.
type Person struct {
	// Identity fields
	Name      Name
	StudentID StudentID
	Email     Email

	// Data fields
	Major   Major
	Year    Year
	Group   Group
	Comment Comment
}

// New assembles a Person from already-validated field values.
func New(name Name, studentID StudentID, email Email, major Major,
	group Group, year Year, comment Comment) Person {
	return Person{
		Name:      name,
		StudentID: studentID,
		Email:     email,
		Major:     major,
		Year:      year,
		Group:     group,
		Comment:   comment,
	}
}

// IsSamePerson reports whether both persons have the same student ID.
// This is the weaker notion of equality used for duplicate detection.
func (p Person) IsSamePerson(other Person) bool {
	return p.StudentID == other.StudentID
}

// Equals reports whether both persons have the same identity and data fields.
// This is the stronger notion of equality. Group and Comment are excluded:
// two records describing the same student in different groups, or with
// different notes, still count as equal.
func (p Person) Equals(other Person) bool {
	return p.Name == other.Name &&
		p.StudentID == other.StudentID &&
		p.Email == other.Email &&
		p.Major == other.Major &&
		p.Year == other.Year
}

// String returns a single-line rendering of every field.
func (p Person) String() string {
	return fmt.Sprintf("person{name=%s, studentId=%s, email=%s, major=%s, year=%s, group=%s, comment=%s}",
		p.Name, p.StudentID, p.Email, p.Major, p.Year, p.Group, p.Comment)
}
