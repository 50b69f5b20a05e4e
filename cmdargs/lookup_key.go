package cmdargs

// FindKey returns the index of the first token equal to the key prefix followed by `keyName`.
// Empty `keyName` is never found
func (args Args) FindKey(keyName string) (index int, found bool) {
	if keyName == "" {
		return -1, false
	}
	keyToken := args.KeyToken(keyName)
	for i, token := range args.tokens {
		if token == keyToken {
			return i, true
		}
	}
	return -1, false
}

// HasKey reports whether `keyName` is present at least once
func (args Args) HasKey(keyName string) bool {
	_, found := args.FindKey(keyName)
	return found
}

// ValueAt returns the token at `index` if it exists and is not a key token
func (args Args) ValueAt(index int) (value string, ok bool) {
	if index < 0 || index >= len(args.tokens) || args.IsKeyToken(args.tokens[index]) {
		return "", false
	}
	return args.tokens[index], true
}

// IterateKeyValues calls `yield` for every value token following every occurrence of `keyName`,
// in order of appearance, until it returns false. `occurrences` is the number of
// matched key tokens seen before the iteration finished
func (args Args) IterateKeyValues(
	keyName string,
	yield func(value string) (getNext bool),
) (occurrences int) {
	if keyName == "" {
		return 0
	}
	keyToken := args.KeyToken(keyName)
	for i := 0; i < len(args.tokens); i++ {
		if args.tokens[i] != keyToken {
			continue
		}
		occurrences++
		for {
			value, ok := args.ValueAt(i + 1)
			if !ok {
				break
			}
			i++
			if !yield(value) {
				return occurrences
			}
		}
	}
	return occurrences
}

// Keys returns distinct key names in the order of their first occurrence
func (args Args) Keys() []string {
	var res []string
	seen := make(map[string]struct{})
	args.IterateTokens(func(token Token) bool {
		if token.Role.Has(RoleKey) {
			if _, has := seen[token.KeyName]; !has {
				seen[token.KeyName] = struct{}{}
				res = append(res, token.KeyName)
			}
		}
		return true
	})
	return res
}
