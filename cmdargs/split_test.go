package cmdargs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		commandLine string
		expected    []string
	}{
		{
			name:        "empty",
			commandLine: "",
			expected:    nil,
		},
		{
			name:        "only spaces",
			commandLine: "   \t ",
			expected:    nil,
		},
		{
			name:        "simple",
			commandLine: "--rows 10  --fleet 1 2",
			expected:    []string{"--rows", "10", "--fleet", "1", "2"},
		},
		{
			name:        "quoted with spaces",
			commandLine: `--I ..\foo\bar c:\a\b\c\baz "c:\Program Files\blah"`,
			expected:    []string{"--I", `..\foo\bar`, `c:\a\b\c\baz`, `c:\Program Files\blah`},
		},
		{
			name:        "quotes inside token",
			commandLine: `a"b c"d e`,
			expected:    []string{"ab cd", "e"},
		},
		{
			name:        "empty quotes",
			commandLine: `a "" b`,
			expected:    []string{"a", "b"},
		},
		{
			name:        "unterminated quote",
			commandLine: `--s "a b`,
			expected:    []string{"--s", "a b"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, Split(tc.commandLine))
		})
	}
}
