package person

// EditDescriptor is a sparse patch over a person's editable fields. A nil
// field means "leave unchanged"; a non-nil field replaces the existing value,
// including the explicit NoGroup sentinel which resets the group. Comment is
// deliberately absent - it is never settable through the edit path and is
// always carried over from the existing person.
type EditDescriptor struct {
	Name      *Name
	StudentID *StudentID
	Email     *Email
	Major     *Major
	Year      *Year
	Group     *Group
}

// IsAnyFieldEdited reports whether at least one field is set. An edit request
// with an all-nil descriptor is rejected before it ever reaches the model.
func (d EditDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.StudentID != nil || d.Email != nil ||
		d.Major != nil || d.Year != nil || d.Group != nil
}

// Merge applies the patch onto an existing person and returns the result.
// Every field follows the same rule: take the patch value if present, else
// keep the existing one. The existing person is never mutated.
func (d EditDescriptor) Merge(existing Person) Person {
	edited := existing
	if d.Name != nil {
		edited.Name = *d.Name
	}
	if d.StudentID != nil {
		edited.StudentID = *d.StudentID
	}
	if d.Email != nil {
		edited.Email = *d.Email
	}
	if d.Major != nil {
		edited.Major = *d.Major
	}
	if d.Year != nil {
		edited.Year = *d.Year
	}
	if d.Group != nil {
		edited.Group = *d.Group
	}
	return edited
}

// Equals reports whether two descriptors patch the same fields to the same
// values. Used by parser tests to compare expected command requests.
func (d EditDescriptor) Equals(other EditDescriptor) bool {
	return eq(d.Name, other.Name) &&
		eq(d.StudentID, other.StudentID) &&
		eq(d.Email, other.Email) &&
		eq(d.Major, other.Major) &&
		eq(d.Year, other.Year) &&
		eq(d.Group, other.Group)
}

func eq[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
