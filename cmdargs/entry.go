package cmdargs

type EntryKind int

const (
	EntryKindKey EntryKind = iota
	EntryKindUnnamedArgs
)

type Entry interface {
	String() string
	TokenStrings() []string
	TokensCount() int
	Kind() EntryKind
}
