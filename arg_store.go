package cmdopt

import (
	"fmt"

	"github.com/cardinalby/go-cmd-opt/cmdargs"
)

// ArgStore answers typed queries about values following keys in a list of arguments
// without declaring the expected keys upfront.
// A key is matched by a token equal to the key prefix (default "--") followed by the key name.
// Values are the tokens following the key up to the next key token or the end of the list.
// ArgStore is immutable and safe for concurrent use. Zero value is an empty store.
type ArgStore struct {
	args cmdargs.Args
}

// Option configures ArgStore at construction
type Option func(args cmdargs.Args) cmdargs.Args

// WithKeyPrefix sets the prefix that marks key tokens. Empty prefix keeps the default "--"
func WithKeyPrefix(keyPrefix string) Option {
	return func(args cmdargs.Args) cmdargs.Args {
		return args.WithKeyPrefix(keyPrefix)
	}
}

// New creates ArgStore from the process arguments: `argv[0]` is the program name and is dropped.
// The remaining arguments are copied
func New(argv []string, options ...Option) ArgStore {
	if len(argv) > 0 {
		argv = argv[1:]
	}
	return NewFromArgs(argv, options...)
}

// NewFromArgs creates ArgStore from the arguments without program name, copying them
func NewFromArgs(args []string, options ...Option) ArgStore {
	res := ArgStore{
		args: cmdargs.NewArgs(args),
	}
	for _, option := range options {
		res.args = option(res.args)
	}
	return res
}

// Args returns a copy of the stored arguments
func (s ArgStore) Args() []string {
	return s.args.Tokens()
}

// KeyPrefix returns the prefix that marks key tokens
func (s ArgStore) KeyPrefix() string {
	return s.args.KeyPrefix()
}

// KeyExists reports whether the key is present. Values following it don't matter
func (s ArgStore) KeyExists(key string) bool {
	return s.args.HasKey(key)
}

// Keys returns distinct names of the present keys in the order of their first occurrence
func (s ArgStore) Keys() []string {
	return s.args.Keys()
}

// Entries returns the arguments grouped into keys with their values
// (cmdargs.KeyEntry) and values preceding the first key (cmdargs.UnnamedArgsEntry)
func (s ArgStore) Entries() []cmdargs.Entry {
	return s.args.Entries()
}

func checkKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty key name", ErrInvalidArgument)
	}
	return nil
}

// lookupValue returns the value token following the first occurrence of the key
func (s ArgStore) lookupValue(key string) (string, error) {
	if err := checkKey(key); err != nil {
		return "", err
	}
	index, found := s.args.FindKey(key)
	if !found {
		return "", fmt.Errorf(`%w: "%s"`, ErrKeyNotFound, s.args.KeyToken(key))
	}
	value, ok := s.args.ValueAt(index + 1)
	if !ok {
		return "", fmt.Errorf(`%w: "%s"`, ErrNoValueForKey, s.args.KeyToken(key))
	}
	return value, nil
}
