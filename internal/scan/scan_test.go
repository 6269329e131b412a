package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanced(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		open    int
		wantEnd int
		wantOK  bool
	}{
		{
			name:    "simple list",
			input:   "x = [1, 2]",
			open:    4,
			wantEnd: 10,
			wantOK:  true,
		},
		{
			name:    "nested lists",
			input:   "[[1], [2]]",
			open:    0,
			wantEnd: 10,
			wantOK:  true,
		},
		{
			name:    "close bracket inside double quoted string",
			input:   `["a]b", "c"]`,
			open:    0,
			wantEnd: 12,
			wantOK:  true,
		},
		{
			name:    "close bracket inside single quoted string",
			input:   `['x]']`,
			open:    0,
			wantEnd: 6,
			wantOK:  true,
		},
		{
			name:    "escaped quote does not end string",
			input:   `["a\"]b"]`,
			open:    0,
			wantEnd: 9,
			wantOK:  true,
		},
		{
			name:    "close bracket inside triple quoted string",
			input:   `["""a]b"""]`,
			open:    0,
			wantEnd: 11,
			wantOK:  true,
		},
		{
			name:    "close bracket inside single triple quoted string",
			input:   `['''x]''']`,
			open:    0,
			wantEnd: 10,
			wantOK:  true,
		},
		{
			name:    "empty triple quoted string",
			input:   `["""""", 1]`,
			open:    0,
			wantEnd: 11,
			wantOK:  true,
		},
		{
			name:   "never closes",
			input:  `[1, 2`,
			open:   0,
			wantOK: false,
		},
		{
			name:   "unterminated string swallows close",
			input:  `["a]`,
			open:   0,
			wantOK: false,
		},
		{
			name:   "open is not a bracket",
			input:  "abc",
			open:   0,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			end, ok := Balanced(tt.input, tt.open)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantEnd, end)
			}
		})
	}
}

func TestNextOpenNextClose(t *testing.T) {
	t.Parallel()

	s := "items = [1] + [2]"

	assert.Equal(t, 8, NextOpen(s, 0))
	assert.Equal(t, 14, NextOpen(s, 9))
	assert.Equal(t, -1, NextOpen(s, 15))

	assert.Equal(t, 10, NextClose(s, 0))
	assert.Equal(t, 16, NextClose(s, 11))
	assert.Equal(t, -1, NextClose(s, 17))

	// past the end of input
	assert.Equal(t, -1, NextOpen(s, len(s)+1))
	assert.Equal(t, -1, NextClose(s, len(s)+1))
}
