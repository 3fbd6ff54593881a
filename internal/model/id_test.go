package model

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, ID(42), id)

	tests := []struct {
		in   string
		want error
	}{
		{"", strconv.ErrSyntax},
		{"-1", strconv.ErrSyntax},
		{"x1", strconv.ErrSyntax},
		{"18446744073709551616", strconv.ErrRange},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseID(tt.in)
			require.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "parse id "+strconv.Quote(tt.in))
		})
	}
}

func TestID_String(t *testing.T) {
	assert.Equal(t, "7", ID(7).String())
	assert.Equal(t, "none", NoParent.String())
}
