package cmdargs

// IterateEntries groups tokens into entries and calls `yield` for each of them until it returns false.
// Value tokens preceding the first key are yielded first as a single UnnamedArgsEntry,
// then every key token is yielded as a KeyEntry with the values following it
func (args Args) IterateEntries(yield func(entry Entry) (getNext bool)) {
	var unnamedArgs UnnamedArgsEntry
	var curKey *KeyEntry
	stopped := false

	flush := func() bool {
		if len(unnamedArgs) > 0 {
			entry := unnamedArgs
			unnamedArgs = nil
			if !yield(entry) {
				return false
			}
		}
		if curKey != nil {
			entry := *curKey
			curKey = nil
			if !yield(entry) {
				return false
			}
		}
		return true
	}

	args.IterateTokens(func(token Token) bool {
		switch {
		case token.Role.Has(RoleKey):
			if !flush() {
				stopped = true
				return false
			}
			curKey = &KeyEntry{
				name:      token.KeyName,
				keyPrefix: args.KeyPrefix(),
			}
		case token.Role.Has(RoleUnnamed):
			unnamedArgs = append(unnamedArgs, token.Arg)
		default:
			curKey.values = append(curKey.values, token.Arg)
		}
		return true
	})
	if !stopped {
		flush()
	}
}

// Entries returns all entries, see IterateEntries
func (args Args) Entries() []Entry {
	var res []Entry
	args.IterateEntries(func(entry Entry) bool {
		res = append(res, entry)
		return true
	})
	return res
}
