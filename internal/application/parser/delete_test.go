package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusbook/campusbook/internal/domain/shared"
)

func TestParseDelete_ValidIndex(t *testing.T) {
	cmd, err := ParseDelete(" 1")
	require.NoError(t, err)
	assert.Equal(t, 1, cmd.Index)
}

// Every index failure, overflow included, collapses into the generic usage
// error for delete.
func TestParseDelete_BadIndexMasked(t *testing.T) {
	wantErr := fmt.Sprintf(MessageInvalidCommandFormat, DeleteUsage)

	tests := []struct {
		name string
		args string
	}{
		{"empty", ""},
		{"not a number", " abc"},
		{"zero", " 0"},
		{"negative", " -1"},
		{"leading zero", " 01"},
		{"multiple indexes", " 1 2"},
		{"overflow", " 99999999999"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDelete(tt.args)
			require.Error(t, err)
			assert.ErrorIs(t, err, shared.ErrInvalidFormat)
			assert.EqualError(t, err, wantErr)
		})
	}
}
