package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusbook/campusbook/internal/domain/shared"
)

func TestParseIndex_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  Index
	}{
		{"1", 1},
		{"5", 5},
		{"  3  ", 3},
		{"42", 42},
		{"2147483647", 2147483647},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseIndex(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseIndex_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"zero", "0"},
		{"negative", "-5"},
		{"explicit plus sign", "+1"},
		{"not a number", "abc"},
		{"trailing garbage", "1 abc"},
		{"decimal", "1.5"},
		{"leading zero", "01"},
		{"leading zeros", "007"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseIndex(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, shared.ErrInvalidIndex)
			assert.NotErrorIs(t, err, shared.ErrIndexOverflow)
			assert.EqualError(t, err, MessageInvalidIndex)
		})
	}
}

// Overflow is a distinct failure kind from a plain invalid index.
func TestParseIndex_Overflow(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"one above max", "2147483648"},
		{"eleven digits", "99999999999"},
		{"far too long", "123456789012345678901234567890"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseIndex(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, shared.ErrIndexOverflow)
			assert.NotErrorIs(t, err, shared.ErrInvalidIndex)
			assert.EqualError(t, err, MessageOverflowIndex)
		})
	}
}

func TestIndex_Conversions(t *testing.T) {
	idx, err := ParseIndex("3")
	require.NoError(t, err)

	assert.Equal(t, 3, idx.OneBased())
	assert.Equal(t, 2, idx.ZeroBased())
}
