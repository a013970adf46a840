package jsonfile

import (
	"github.com/campusbook/campusbook/internal/domain/person"
	"github.com/campusbook/campusbook/internal/domain/shared"
)

// rosterFile is the top-level snapshot layout.
type rosterFile struct {
	Persons []personRecord `json:"persons"`
}

// personRecord is the stored form of one person. Every field is a pointer so
// an absent key is distinguishable from an empty value: a missing key is a
// corrupt record, while empty strings are legal for the optional fields.
type personRecord struct {
	Name      *string `json:"name"`
	StudentID *string `json:"studentId"`
	Email     *string `json:"email"`
	Major     *string `json:"major"`
	Year      *string `json:"year"`
	Group     *string `json:"group"`
	Comment   *string `json:"comment"`
}

// toRecord converts a person to its stored form.
func toRecord(p person.Person) personRecord {
	return personRecord{
		Name:      ptr(p.Name.String()),
		StudentID: ptr(p.StudentID.String()),
		Email:     ptr(p.Email.String()),
		Major:     ptr(p.Major.String()),
		Year:      ptr(p.Year.String()),
		Group:     ptr(p.Group.String()),
		Comment:   ptr(p.Comment.String()),
	}
}

// toPerson validates the stored record and rebuilds the domain person.
// Stored values are checked verbatim: an untrimmed value that the command
// surface would have normalized is rejected here, never silently rewritten,
// so an unmutated snapshot always round-trips byte for byte. Group and
// comment are free-form at this boundary and load exactly as stored. The
// email is stored in its full form and checked as such.
func (r personRecord) toPerson() (person.Person, error) {
	var zero person.Person

	if r.Name == nil {
		return zero, &shared.MissingFieldError{Field: "Name"}
	}
	if r.StudentID == nil {
		return zero, &shared.MissingFieldError{Field: "StudentId"}
	}
	if r.Email == nil {
		return zero, &shared.MissingFieldError{Field: "Email"}
	}
	if r.Major == nil {
		return zero, &shared.MissingFieldError{Field: "Major"}
	}
	if r.Year == nil {
		return zero, &shared.MissingFieldError{Field: "Year"}
	}
	if r.Group == nil {
		return zero, &shared.MissingFieldError{Field: "Group"}
	}
	if r.Comment == nil {
		return zero, &shared.MissingFieldError{Field: "Comment"}
	}

	if !person.IsValidName(*r.Name) {
		return zero, shared.NewValidationError("Name", person.NameConstraints)
	}
	if !person.IsValidStudentID(*r.StudentID) {
		return zero, shared.NewValidationError("StudentId", person.StudentIDConstraints)
	}
	if *r.Email != "" && !person.IsValidEmail(*r.Email) {
		return zero, shared.NewValidationError("Email", person.NetIDConstraints)
	}
	if *r.Major != "" && !person.IsValidMajor(*r.Major) {
		return zero, shared.NewValidationError("Major", person.MajorConstraints)
	}
	if *r.Year != "" && !person.IsValidYear(*r.Year) {
		return zero, shared.NewValidationError("Year", person.YearConstraints)
	}

	return person.New(
		person.Name(*r.Name),
		person.StudentID(*r.StudentID),
		person.Email(*r.Email),
		person.Major(*r.Major),
		person.Group(*r.Group),
		person.Year(*r.Year),
		person.Comment(*r.Comment),
	), nil
}

func ptr(s string) *string { return &s }
