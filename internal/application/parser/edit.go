package parser

import (
	"github.com/campusbook/campusbook/internal/application/command"
	"github.com/campusbook/campusbook/internal/domain/person"
	"github.com/campusbook/campusbook/internal/domain/shared"
)

// ParseEdit parses the arguments of an edit command into an
// EditPersonCommand.
//
// Checks run in a fixed priority order: preamble index shape (both invalid
// and overflowing indexes are masked behind the generic usage error),
// duplicate prefixes (all offenders reported at once, in table order), field
// validation (table order, first failure wins), and finally the
// at-least-one-field rule. An empty g/ value is the explicit group reset and
// counts as an edited field.
func ParseEdit(args string) (command.EditPersonCommand, error) {
	var zero command.EditPersonCommand

	mm := Tokenize(args, PersonPrefixes...)

	index, err := ParseIndex(mm.Preamble())
	if err != nil {
		return zero, usageErr(EditUsage)
	}

	if err := mm.VerifyNoDuplicates(PersonPrefixes...); err != nil {
		return zero, err
	}

	var descriptor person.EditDescriptor

	if v, ok := mm.Value(PrefixName); ok {
		name, err := person.NewName(v)
		if err != nil {
			return zero, err
		}
		descriptor.Name = &name
	}
	if v, ok := mm.Value(PrefixStudentID); ok {
		studentID, err := person.NewStudentID(v)
		if err != nil {
			return zero, err
		}
		descriptor.StudentID = &studentID
	}
	if v, ok := mm.Value(PrefixNetID); ok {
		email, err := person.NewOptionalEmailFromNetID(v)
		if err != nil {
			return zero, err
		}
		descriptor.Email = &email
	}
	if v, ok := mm.Value(PrefixMajor); ok {
		major, err := person.NewOptionalMajor(v)
		if err != nil {
			return zero, err
		}
		descriptor.Major = &major
	}
	if v, ok := mm.Value(PrefixYear); ok {
		year, err := person.NewOptionalYear(v)
		if err != nil {
			return zero, err
		}
		descriptor.Year = &year
	}
	if v, ok := mm.Value(PrefixGroup); ok {
		group, err := person.NewOptionalGroup(v)
		if err != nil {
			return zero, err
		}
		descriptor.Group = &group
	}

	if !descriptor.IsAnyFieldEdited() {
		return zero, shared.NewDomainError("parser", "ParseEdit",
			shared.ErrNotEdited, MessageNotEdited)
	}

	return command.EditPersonCommand{
		Index:      index.OneBased(),
		Descriptor: descriptor,
	}, nil
}
