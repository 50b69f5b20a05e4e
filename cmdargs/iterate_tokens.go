package cmdargs

// IterateTokens calls `yield` for each token in order until it returns false
func (args Args) IterateTokens(yield func(token Token) bool) {
	prefixLen := len(args.KeyPrefix())
	curKeyName := ""
	seenKey := false

	for i, arg := range args.tokens {
		token := Token{
			Arg:   arg,
			Index: i,
		}

		if args.IsKeyToken(arg) {
			curKeyName = arg[prefixLen:]
			seenKey = true
			token.KeyName = curKeyName
			token.Role = RoleKey
		} else {
			token.Role = RoleValue
			if seenKey {
				token.KeyName = curKeyName
			} else {
				token.Role |= RoleUnnamed
			}
		}

		if !yield(token) {
			return
		}
	}
}
