package cmdargs

import (
	"strings"
)

// KeyEntry is a key token together with the value tokens following it
type KeyEntry struct {
	name      string
	keyPrefix string
	values    []string
}

func NewKeyEntry(keyName string, values ...string) KeyEntry {
	return KeyEntry{
		name:      keyName,
		keyPrefix: DefaultKeyPrefix,
		values:    values,
	}
}

func (k KeyEntry) TokenStrings() []string {
	res := make([]string, 0, 1+len(k.values))
	res = append(res, k.keyPrefix+k.name)
	return append(res, k.values...)
}

func (k KeyEntry) TokensCount() int {
	return 1 + len(k.values)
}

func (k KeyEntry) Kind() EntryKind {
	return EntryKindKey
}

func (k KeyEntry) String() string {
	return strings.Join(k.TokenStrings(), " ")
}

func (k KeyEntry) Name() string {
	return k.name
}

func (k KeyEntry) KeyPrefix() string {
	return k.keyPrefix
}

// Values returns the value tokens following the key. A key followed by another key has no values
func (k KeyEntry) Values() []string {
	return k.values
}

func (k KeyEntry) HasValues() bool {
	return len(k.values) > 0
}

func (k KeyEntry) Equals(other KeyEntry) bool {
	if k.name != other.name || k.keyPrefix != other.keyPrefix || len(k.values) != len(other.values) {
		return false
	}
	for i, v := range k.values {
		if other.values[i] != v {
			return false
		}
	}
	return true
}

func (k KeyEntry) WithKeyPrefix(keyPrefix string) KeyEntry {
	k.keyPrefix = keyPrefix
	return k
}
