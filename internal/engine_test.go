package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/listex/listex/internal/types"
)

func TestRunSource(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		source   string
		variable string
		expected []any
	}{
		{
			name:     "variable absent yields empty result",
			source:   "other = [1, 2, 3]",
			variable: "missing",
			expected: []any{},
		},
		{
			name:     "single well-formed list",
			source:   `fruits = ["apple", "banana", "cherry"]`,
			variable: "fruits",
			expected: []any{"apple", "banana", "cherry"},
		},
		{
			name:     "close bracket inside string element",
			source:   `names = ["a]b", "c"]`,
			variable: "names",
			expected: []any{"a]b", "c"},
		},
		{
			name: "two occurrences concatenate in file order",
			source: `hosts = ["alpha", "beta"]
other = 1
hosts = ["gamma"]`,
			variable: "hosts",
			expected: []any{"alpha", "beta", "gamma"},
		},
		{
			name: "multi-line list with comments",
			source: `entries = [
    "one",  # first
    "two",
]`,
			variable: "entries",
			expected: []any{"one", "two"},
		},
		{
			name:     "nested lists flatten one level only",
			source:   `pairs = [[1, 2], [3, 4]]`,
			variable: "pairs",
			expected: []any{[]any{int64(1), int64(2)}, []any{int64(3), int64(4)}},
		},
		{
			name:     "occurrence without any bracket stops cleanly",
			source:   "count = 3",
			variable: "count",
			expected: []any{},
		},
		{
			name:     "occurrence as the final token keeps earlier results",
			source:   "items = [1]\nitems",
			variable: "items",
			expected: []any{int64(1)},
		},
		{
			name:     "adjacent string fragments concatenate",
			source:   `x = ["a" "b"]`,
			variable: "x",
			expected: []any{"ab"},
		},
		{
			name:     "triple quoted element with bracket inside",
			source:   `x = ["""a]b"""]`,
			variable: "x",
			expected: []any{"a]b"},
		},
		{
			name:     "radix and dotted numbers",
			source:   "flags = [0x10, .5]",
			variable: "flags",
			expected: []any{int64(16), 0.5},
		},
		{
			name:     "mixed value types",
			source:   `config = [1, "two", 3.5, True, None]`,
			variable: "config",
			expected: []any{int64(1), "two", 3.5, true, nil},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			engine := NewEngine()
			items, err := engine.RunSource([]byte(tc.source), tc.variable)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, items)
		})
	}
}

func TestRunSourceUnmatchedBracket(t *testing.T) {
	t.Parallel()

	engine := NewEngine()
	_, err := engine.RunSource([]byte("broken = [1, 2"), "broken")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnmatchedBracket)
}

func TestRunSourceBracketInsideString(t *testing.T) {
	t.Parallel()

	// The first plain ']' sits inside a string, so a naive lexical cut
	// would truncate the region. The full element set must come back.
	source := `paths = ["usr/lib]", "etc"]`
	engine := NewEngine()

	var seen []tt.Candidate
	engine.OnCandidate = func(c tt.Candidate) { seen = append(seen, c) }

	items, err := engine.RunSource([]byte(source), "paths")
	require.NoError(t, err)
	assert.Equal(t, []any{"usr/lib]", "etc"}, items)

	// The balanced scanner got it in one candidate; diagnostics observed it.
	require.NotEmpty(t, seen)
	assert.Equal(t, `["usr/lib]", "etc"]`, seen[0].Text)
}

func TestRunSourceFallbackWidening(t *testing.T) {
	t.Parallel()

	// The apostrophe in the comment looks like an unterminated string to the
	// quote-tracking scanner, so the lexical fallback has to find the close
	// bracket on its own. The literal parser skips comments, so it parses.
	source := "nums = [1, 2, # don't touch\n    3]\n"
	engine := NewEngine()

	items, err := engine.RunSource([]byte(source), "nums")
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), int64(2), int64(3)}, items)
}

func TestRunReadsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.py")
	content := "ADMINS = ['alice', 'bob']\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	engine := NewEngine()
	items, err := engine.Run(path, "ADMINS")
	require.NoError(t, err)
	assert.Equal(t, []any{"alice", "bob"}, items)
}

func TestRunMissingFile(t *testing.T) {
	t.Parallel()

	engine := NewEngine()
	_, err := engine.Run(filepath.Join(t.TempDir(), "nope.py"), "x")
	assert.Error(t, err)
}
