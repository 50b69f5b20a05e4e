package cmdargs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArgs_FindKey(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		args := Args{}
		index, ok := args.FindKey("x")
		require.False(t, ok)
		require.Equal(t, -1, index)
	})

	t.Run("first match", func(t *testing.T) {
		args := NewArgs([]string{"--rows", "10", "--cols", "9", "--rows"})
		index, ok := args.FindKey("rows")
		require.True(t, ok)
		require.Equal(t, 0, index)

		index, ok = args.FindKey("cols")
		require.True(t, ok)
		require.Equal(t, 2, index)
	})

	t.Run("exact match only", func(t *testing.T) {
		args := NewArgs([]string{"--foobar", "--ro", "rows"})
		_, ok := args.FindKey("foo")
		require.False(t, ok)
		_, ok = args.FindKey("row")
		require.False(t, ok)
		_, ok = args.FindKey("rows")
		require.False(t, ok)
	})

	t.Run("empty key name", func(t *testing.T) {
		args := NewArgs([]string{"--", "1"})
		_, ok := args.FindKey("")
		require.False(t, ok)
		require.False(t, args.HasKey(""))
	})
}

func TestArgs_ValueAt(t *testing.T) {
	t.Parallel()
	args := NewArgs([]string{"--a", "1", "--", "--b", "-2"})

	testCases := []struct {
		index    int
		expected string
		ok       bool
	}{
		{index: -1},
		{index: 0},
		{index: 1, expected: "1", ok: true},
		{index: 2, expected: "--", ok: true},
		{index: 3},
		{index: 4, expected: "-2", ok: true},
		{index: 5},
	}
	for _, tc := range testCases {
		value, ok := args.ValueAt(tc.index)
		require.Equal(t, tc.ok, ok, "index %d", tc.index)
		require.Equal(t, tc.expected, value, "index %d", tc.index)
	}
}

func TestArgs_IterateKeyValues(t *testing.T) {
	t.Parallel()

	collect := func(args Args, keyName string) (values []string, occurrences int) {
		occurrences = args.IterateKeyValues(keyName, func(value string) bool {
			values = append(values, value)
			return true
		})
		return values, occurrences
	}

	t.Run("repeated key", func(t *testing.T) {
		values, occurrences := collect(
			NewArgs([]string{"--X", "1", "2", "--Y", "0", "--X", "3", "--X", "--X", "4", "5"}),
			"X",
		)
		require.Equal(t, []string{"1", "2", "3", "4", "5"}, values)
		require.Equal(t, 4, occurrences)
	})

	t.Run("key as value of same key", func(t *testing.T) {
		// prefix "-" makes "-X" too short to be a key token, it's consumed as a value
		values, occurrences := collect(
			NewArgs([]string{"-X", "1", "-X", "2"}).WithKeyPrefix("-"),
			"X",
		)
		require.Equal(t, []string{"1", "-X", "2"}, values)
		require.Equal(t, 1, occurrences)
	})

	t.Run("missing", func(t *testing.T) {
		values, occurrences := collect(NewArgs([]string{"--Y", "1"}), "X")
		require.Nil(t, values)
		require.Zero(t, occurrences)
	})

	t.Run("stop", func(t *testing.T) {
		var values []string
		NewArgs([]string{"--X", "1", "2", "--X", "3"}).IterateKeyValues("X", func(value string) bool {
			values = append(values, value)
			return false
		})
		require.Equal(t, []string{"1"}, values)
	})
}

func TestArgs_Keys(t *testing.T) {
	t.Parallel()
	args := NewArgs([]string{"in", "--rows", "10", "--Q", "--rows", "--", "--I", "x"})
	require.Equal(t, []string{"rows", "Q", "I"}, args.Keys())
	require.Nil(t, NewArgs([]string{"a", "--"}).Keys())
}
