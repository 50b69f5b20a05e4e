// Package cli implements the cmdopt command: it answers a single typed query about
// the arguments passed after "--" and translates the result into output lines
// and a process exit code, so that shell scripts can read options without a parser.
package cli
