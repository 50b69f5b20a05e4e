package cmdopt

import (
	"fmt"

	"github.com/cardinalby/go-cmd-opt/cmdargs"
)

// lookupVector collects converted values following all occurrences of the key into a new slice
func lookupVector[T any](args cmdargs.Args, key string, convert func(string) T) ([]T, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}
	var res []T
	occurrences := args.IterateKeyValues(key, func(value string) bool {
		res = append(res, convert(value))
		return true
	})
	if len(res) > 0 {
		return res, nil
	}
	if occurrences == 0 {
		return nil, fmt.Errorf(`%w: "%s"`, ErrKeyNotFound, args.KeyToken(key))
	}
	return nil, fmt.Errorf(`%w: "%s"`, ErrNoValueForKey, args.KeyToken(key))
}

func leadingFloatOrZero(value string) float64 {
	res, _ := parseLeadingFloat(value)
	return res
}

func identity(value string) string {
	return value
}

// LookupIntVector returns integers following every occurrence of the key in order of appearance.
// Values are not validated: each one is its leading decimal number, 0 if there is none.
// Returns ErrKeyNotFound or ErrNoValueForKey if there are no values
func (s ArgStore) LookupIntVector(key string) ([]int, error) {
	return lookupVector(s.args, key, parseLeadingInt)
}

// LookupDoubleVector returns numbers following every occurrence of the key in order of appearance.
// Values are not validated: each one is its leading number, 0 if there is none
func (s ArgStore) LookupDoubleVector(key string) ([]float64, error) {
	return lookupVector(s.args, key, leadingFloatOrZero)
}

// LookupNumberVector is an alias of LookupDoubleVector
func (s ArgStore) LookupNumberVector(key string) ([]float64, error) {
	return s.LookupDoubleVector(key)
}

// LookupStringVector returns values following every occurrence of the key in order of appearance
func (s ArgStore) LookupStringVector(key string) ([]string, error) {
	return lookupVector(s.args, key, identity)
}

// GetIntVector is LookupIntVector reporting whether any value was found.
// Each call returns a new slice
func (s ArgStore) GetIntVector(key string) ([]int, bool) {
	res, err := s.LookupIntVector(key)
	return res, err == nil
}

// GetDoubleVector is LookupDoubleVector reporting whether any value was found
func (s ArgStore) GetDoubleVector(key string) ([]float64, bool) {
	res, err := s.LookupDoubleVector(key)
	return res, err == nil
}

// GetNumberVector is an alias of GetDoubleVector
func (s ArgStore) GetNumberVector(key string) ([]float64, bool) {
	return s.GetDoubleVector(key)
}

// GetStringVector is LookupStringVector reporting whether any value was found
func (s ArgStore) GetStringVector(key string) ([]string, bool) {
	res, err := s.LookupStringVector(key)
	return res, err == nil
}
