package parser

import (
	"github.com/campusbook/campusbook/internal/application/command"
	"github.com/campusbook/campusbook/internal/domain/person"
)

// ParseAdd parses the arguments of an add command into an AddPersonCommand.
//
// Grammar: n/NAME id/STUDENT_ID [e/NET_ID] [m/MAJOR] [y/YEAR] [g/GROUP].
// The preamble must be empty and every prefix is single-valued. Field values
// are validated in declared prefix-table order; the first failure surfaces.
func ParseAdd(args string) (command.AddPersonCommand, error) {
	var zero command.AddPersonCommand

	mm := Tokenize(args, PersonPrefixes...)
	if !mm.ArePrefixesPresent(PrefixName, PrefixStudentID) || mm.Preamble() != "" {
		return zero, usageErr(AddUsage)
	}
	if err := mm.VerifyNoDuplicates(PersonPrefixes...); err != nil {
		return zero, err
	}

	nameRaw, _ := mm.Value(PrefixName)
	name, err := person.NewName(nameRaw)
	if err != nil {
		return zero, err
	}

	idRaw, _ := mm.Value(PrefixStudentID)
	studentID, err := person.NewStudentID(idRaw)
	if err != nil {
		return zero, err
	}

	email := person.Email("")
	if v, ok := mm.Value(PrefixNetID); ok {
		if email, err = person.NewOptionalEmailFromNetID(v); err != nil {
			return zero, err
		}
	}

	major := person.Major("")
	if v, ok := mm.Value(PrefixMajor); ok {
		if major, err = person.NewOptionalMajor(v); err != nil {
			return zero, err
		}
	}

	year := person.Year("")
	if v, ok := mm.Value(PrefixYear); ok {
		if year, err = person.NewOptionalYear(v); err != nil {
			return zero, err
		}
	}

	group := person.NoGroup
	if v, ok := mm.Value(PrefixGroup); ok {
		if group, err = person.NewOptionalGroup(v); err != nil {
			return zero, err
		}
	}

	// comments are only settable through the comment command
	p := person.New(name, studentID, email, major, group, year, person.NewComment(""))
	return command.AddPersonCommand{Person: p}, nil
}
