package cmdargs

import "strings"

// DefaultKeyPrefix is the prefix marking the start of a key token unless another one is configured
const DefaultKeyPrefix = "--"

// minKeyTokenLen is the shortest token that can be a key token. Shorter tokens starting with
// the prefix (a bare "--" for instance) are values
const minKeyTokenLen = 3

// Args is an immutable ordered list of argument tokens together with the key prefix used to
// tell key tokens from value tokens
type Args struct {
	tokens    []string
	keyPrefix string
}

// NewArgs copies `args` and uses DefaultKeyPrefix
func NewArgs(args []string) Args {
	tokens := make([]string, len(args))
	copy(tokens, args)
	return Args{
		tokens:    tokens,
		keyPrefix: DefaultKeyPrefix,
	}
}

// WithKeyPrefix returns Args sharing the same tokens but matching keys by `keyPrefix`.
// Empty prefix keeps DefaultKeyPrefix
func (args Args) WithKeyPrefix(keyPrefix string) Args {
	args.keyPrefix = keyPrefix
	return args
}

func (args Args) KeyPrefix() string {
	if args.keyPrefix == "" {
		return DefaultKeyPrefix
	}
	return args.keyPrefix
}

// Tokens returns a copy of the stored tokens
func (args Args) Tokens() []string {
	res := make([]string, len(args.tokens))
	copy(res, args.tokens)
	return res
}

func (args Args) Len() int {
	return len(args.tokens)
}

// IsKeyToken reports whether `token` starts a key: it begins with the key prefix and is
// at least 3 characters long
func (args Args) IsKeyToken(token string) bool {
	return len(token) >= minKeyTokenLen && strings.HasPrefix(token, args.KeyPrefix())
}

// KeyToken returns the token that is matched for the key `name`
func (args Args) KeyToken(name string) string {
	return args.KeyPrefix() + name
}
