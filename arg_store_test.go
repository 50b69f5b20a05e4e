package cmdopt

import (
	"testing"

	"github.com/cardinalby/go-cmd-opt/cmdargs"
	"github.com/stretchr/testify/require"
)

func newTestStore(commandLine string, options ...Option) ArgStore {
	return NewFromArgs(cmdargs.Split(commandLine), options...)
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("drops program name", func(t *testing.T) {
		s := New([]string{"/bin/app", "--rows", "10"})
		require.Equal(t, []string{"--rows", "10"}, s.Args())
		require.Equal(t, "--", s.KeyPrefix())
	})

	t.Run("empty argv", func(t *testing.T) {
		require.Empty(t, New(nil).Args())
		require.Empty(t, New([]string{"app"}).Args())
	})

	t.Run("copies arguments", func(t *testing.T) {
		argv := []string{"app", "--s", "a"}
		s := New(argv)
		argv[2] = "b"
		res, ok := s.GetString("s", "")
		require.True(t, ok)
		require.Equal(t, "a", res)
	})

	t.Run("key prefix", func(t *testing.T) {
		require.Equal(t, "#$", NewFromArgs(nil, WithKeyPrefix("#$")).KeyPrefix())
		require.Equal(t, "--", NewFromArgs(nil, WithKeyPrefix("")).KeyPrefix())
	})

	t.Run("zero value", func(t *testing.T) {
		s := ArgStore{}
		require.Equal(t, "--", s.KeyPrefix())
		require.False(t, s.KeyExists("a"))
		_, ok := s.GetInt("a", 1)
		require.False(t, ok)
	})
}

func TestArgStore_FullOptionList(t *testing.T) {
	t.Parallel()
	s := newTestStore(
		`--rows 10 --fleet 1 2 3 4 --cols 9 --Q --n --foobar --foo --rows --I ..\foo\bar c:\a\b\c\baz ` +
			`"c:\Program Files\blah" --ratio 12.34 --height 1.2 3.4 5.6 777.888999`,
	)

	rows, ok := s.GetInt("rows", 0)
	require.True(t, ok)
	require.Equal(t, 10, rows)

	for i := 0; i < 3; i++ {
		cols, ok := s.GetInt("cols", 0)
		require.True(t, ok)
		require.Equal(t, 9, cols)
	}

	ratio, ok := s.GetNumber("ratio", 0)
	require.True(t, ok)
	require.Equal(t, 12.34, ratio)

	fleet, ok := s.GetIntVector("fleet")
	require.True(t, ok)
	require.Equal(t, []int{1, 2, 3, 4}, fleet)

	height, ok := s.GetNumberVector("height")
	require.True(t, ok)
	require.Equal(t, []float64{1.2, 3.4, 5.6, 777.888999}, height)

	includeDirs, ok := s.GetStringVector("I")
	require.True(t, ok)
	require.Equal(t, []string{`..\foo\bar`, `c:\a\b\c\baz`, `c:\Program Files\blah`}, includeDirs)

	for _, key := range []string{"Q", "n", "foobar", "foo", "fleet"} {
		value, ok := s.GetBool(key, false)
		require.True(t, ok, key)
		require.True(t, value, key)
	}
	value, ok := s.GetBool("book", false)
	require.False(t, ok)
	require.False(t, value)

	require.Equal(t, []string{"rows", "fleet", "cols", "Q", "n", "foobar", "foo", "I", "ratio", "height"}, s.Keys())
}

func TestArgStore_NoOptions(t *testing.T) {
	t.Parallel()
	s := newTestStore("")

	rows, ok := s.GetInt("rows", 5)
	require.False(t, ok)
	require.Equal(t, 5, rows)

	fleet, ok := s.GetIntVector("fleet")
	require.False(t, ok)
	require.Empty(t, fleet)

	require.Nil(t, s.Keys())
	require.Nil(t, s.Entries())
}

func TestArgStore_KeyExists(t *testing.T) {
	t.Parallel()
	s := newTestStore("--a 0 --bb --c")

	require.True(t, s.KeyExists("a"))
	require.True(t, s.KeyExists("bb"))
	require.True(t, s.KeyExists("c"))
	require.False(t, s.KeyExists("b"))
	require.False(t, s.KeyExists(""))
}

func TestArgStore_Entries(t *testing.T) {
	t.Parallel()
	s := newTestStore("in --a 1 2 --b")
	require.Equal(t, []cmdargs.Entry{
		cmdargs.UnnamedArgsEntry{"in"},
		cmdargs.NewKeyEntry("a", "1", "2"),
		cmdargs.NewKeyEntry("b"),
	}, s.Entries())
}
