package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusbook/campusbook/internal/domain/shared"
)

func TestArgumentMultimap_ValueMissingPrefix(t *testing.T) {
	mm := Tokenize(" n/Alex", PersonPrefixes...)

	v, ok := mm.Value(PrefixMajor)
	assert.False(t, ok)
	assert.Empty(t, v)
	assert.Empty(t, mm.AllValues(PrefixMajor))
}

func TestArgumentMultimap_ArePrefixesPresent(t *testing.T) {
	mm := Tokenize(" n/Alex id/A8743880E", PersonPrefixes...)

	assert.True(t, mm.ArePrefixesPresent(PrefixName))
	assert.True(t, mm.ArePrefixesPresent(PrefixName, PrefixStudentID))
	assert.False(t, mm.ArePrefixesPresent(PrefixName, PrefixNetID))
}

func TestVerifyNoDuplicates_NoDuplicates(t *testing.T) {
	mm := Tokenize(" n/Alex id/A8743880E", PersonPrefixes...)

	assert.NoError(t, mm.VerifyNoDuplicates(PersonPrefixes...))
}

func TestVerifyNoDuplicates_SingleOffender(t *testing.T) {
	mm := Tokenize(" n/Alex n/Bernice", PersonPrefixes...)

	err := mm.VerifyNoDuplicates(PersonPrefixes...)
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrDuplicatePrefix)
	assert.EqualError(t, err, MessageDuplicateFields+"n/")
}

// All offenders are reported at once, ordered by the prefix table passed
// in, never by input order.
func TestVerifyNoDuplicates_MultipleOffendersInTableOrder(t *testing.T) {
	mm := Tokenize(" y/2 y/3 n/Alex n/Bernice m/CS m/EE", PersonPrefixes...)

	err := mm.VerifyNoDuplicates(PersonPrefixes...)
	require.Error(t, err)
	assert.EqualError(t, err, MessageDuplicateFields+"n/ m/ y/")
}

// An empty occurrence still counts toward duplication.
func TestVerifyNoDuplicates_EmptyAndNonEmptyOccurrences(t *testing.T) {
	mm := Tokenize(" 1 g/ g/group 2", PersonPrefixes...)

	err := mm.VerifyNoDuplicates(PersonPrefixes...)
	require.Error(t, err)
	assert.EqualError(t, err, MessageDuplicateFields+"g/")
}

func TestVerifyNoDuplicates_OnlyChecksGivenPrefixes(t *testing.T) {
	mm := Tokenize(" n/Alex n/Bernice", PersonPrefixes...)

	assert.NoError(t, mm.VerifyNoDuplicates(PrefixStudentID, PrefixNetID))
}
