package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusbook/campusbook/internal/domain/person"
	"github.com/campusbook/campusbook/internal/domain/shared"
)

func TestParseAdd_AllFields(t *testing.T) {
	cmd, err := ParseAdd(" n/Alex Yeoh id/A8743880E e/e1234567 m/Computer Science y/2 g/group 1")
	require.NoError(t, err)

	p := cmd.Person
	assert.Equal(t, person.Name("Alex Yeoh"), p.Name)
	assert.Equal(t, person.StudentID("A8743880E"), p.StudentID)
	assert.Equal(t, person.Email("e1234567@u.nus.edu"), p.Email)
	assert.Equal(t, person.Major("Computer Science"), p.Major)
	assert.Equal(t, person.Year("2"), p.Year)
	assert.Equal(t, person.Group("group 1"), p.Group)
	assert.Equal(t, person.Comment(""), p.Comment)
}

func TestParseAdd_MandatoryFieldsOnly(t *testing.T) {
	cmd, err := ParseAdd(" n/Alex Yeoh id/A8743880E")
	require.NoError(t, err)

	p := cmd.Person
	assert.Equal(t, person.Name("Alex Yeoh"), p.Name)
	assert.Equal(t, person.StudentID("A8743880E"), p.StudentID)
	assert.Empty(t, p.Email)
	assert.Empty(t, p.Major)
	assert.Empty(t, p.Year)
	assert.Equal(t, person.NoGroup, p.Group)
}

func TestParseAdd_ValuesTrimmed(t *testing.T) {
	cmd, err := ParseAdd(" n/  Alex Yeoh   id/ A8743880E ")
	require.NoError(t, err)

	assert.Equal(t, person.Name("Alex Yeoh"), cmd.Person.Name)
	assert.Equal(t, person.StudentID("A8743880E"), cmd.Person.StudentID)
}

func TestParseAdd_MissingMandatoryField(t *testing.T) {
	wantErr := fmt.Sprintf(MessageInvalidCommandFormat, AddUsage)

	tests := []struct {
		name string
		args string
	}{
		{"missing name", " id/A8743880E"},
		{"missing student id", " n/Alex Yeoh"},
		{"no fields at all", " Alex Yeoh A8743880E"},
		{"empty args", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAdd(tt.args)
			require.Error(t, err)
			assert.ErrorIs(t, err, shared.ErrInvalidFormat)
			assert.EqualError(t, err, wantErr)
		})
	}
}

func TestParseAdd_NonEmptyPreamble(t *testing.T) {
	_, err := ParseAdd(" some preamble n/Alex Yeoh id/A8743880E")
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrInvalidFormat)
}

func TestParseAdd_InvalidFieldValues(t *testing.T) {
	tests := []struct {
		name  string
		args  string
		field string
	}{
		{"invalid name", " n/James& id/A8743880E", "Name"},
		{"invalid student id", " n/Alex Yeoh id/8743880E", "StudentId"},
		{"invalid net id", " n/Alex Yeoh id/A8743880E e/alex@example.com", "Email"},
		{"invalid major", " n/Alex Yeoh id/A8743880E m/C#", "Major"},
		{"year out of range", " n/Alex Yeoh id/A8743880E y/6", "Year"},
		{"invalid group", " n/Alex Yeoh id/A8743880E g/team#1", "Group"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAdd(tt.args)
			require.Error(t, err)
			assert.True(t, shared.IsValidation(err))

			var vErr *shared.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

// Field validation runs in declared prefix-table order, so the name failure
// surfaces even though the id value is broken too.
func TestParseAdd_FirstInvalidFieldInTableOrderWins(t *testing.T) {
	_, err := ParseAdd(" id/not an id n/James&")
	require.Error(t, err)

	var vErr *shared.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Name", vErr.Field)
}

func TestParseAdd_DuplicatePrefixes(t *testing.T) {
	_, err := ParseAdd(" n/Alex Yeoh n/Bernice Yu id/A8743880E id/A9272758F")
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrDuplicatePrefix)
	assert.EqualError(t, err, MessageDuplicateFields+"n/ id/")
}

// Duplicates are checked before field validation, so broken values in the
// duplicated fields never surface.
func TestParseAdd_DuplicatesReportedBeforeValidation(t *testing.T) {
	_, err := ParseAdd(" n/James& n/Alex Yeoh id/A8743880E")
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrDuplicatePrefix)
}
