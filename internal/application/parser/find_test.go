package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusbook/campusbook/internal/domain/shared"
)

func TestParseFind_SingleKeyword(t *testing.T) {
	q, err := ParseFind(" alex")
	require.NoError(t, err)
	assert.Equal(t, []string{"alex"}, q.Keywords)
}

func TestParseFind_MultipleKeywords(t *testing.T) {
	q, err := ParseFind("  alex   david  ")
	require.NoError(t, err)
	assert.Equal(t, []string{"alex", "david"}, q.Keywords)
}

func TestParseFind_EmptyArgs(t *testing.T) {
	wantErr := fmt.Sprintf(MessageInvalidCommandFormat, FindUsage)

	for _, args := range []string{"", "   "} {
		_, err := ParseFind(args)
		require.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrInvalidFormat)
		assert.EqualError(t, err, wantErr)
	}
}
