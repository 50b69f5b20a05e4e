package cmdargs

import "strings"

// Split breaks a command line into tokens the way a shell would for simple cases:
// tokens are separated by spaces or tabs, double quotes group characters (including spaces)
// into a token and are stripped. An unterminated quote runs to the end of the input.
// There is no escaping: backslashes are kept as is.
// An empty quoted string doesn't produce a token
func Split(commandLine string) []string {
	var res []string
	var token strings.Builder

	for i := 0; i < len(commandLine); i++ {
		switch c := commandLine[i]; c {
		case ' ', '\t':
			if token.Len() > 0 {
				res = append(res, token.String())
				token.Reset()
			}
		case '"':
			closing := strings.IndexByte(commandLine[i+1:], '"')
			if closing < 0 {
				token.WriteString(commandLine[i+1:])
				i = len(commandLine)
			} else {
				token.WriteString(commandLine[i+1 : i+1+closing])
				i += closing + 1
			}
		default:
			token.WriteByte(c)
		}
	}
	if token.Len() > 0 {
		res = append(res, token.String())
	}
	return res
}
