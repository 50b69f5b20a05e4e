package cmdopt

import (
	"errors"
	"fmt"
)

// LookupInt returns the integer following the first occurrence of the key.
// The base is detected from the value: "0x" prefix for hex, leading "0" for octal, decimal otherwise.
// Trailing characters after the number are ignored ("12abc" is 12).
// Returns ErrConversion if the value has no leading number or it's out of 32-bit signed integer range
func (s ArgStore) LookupInt(key string) (int, error) {
	value, err := s.lookupValue(key)
	if err != nil {
		return 0, err
	}
	res, ok := parseStrictInt(value)
	if !ok {
		return 0, fmt.Errorf(
			`%w: "%s" value "%s" is not a 32-bit integer`,
			ErrConversion, s.args.KeyToken(key), value,
		)
	}
	return res, nil
}

// LookupDouble returns the floating point number following the first occurrence of the key.
// Trailing characters after the number are ignored.
// Returns ErrConversion if the value doesn't start with a number
func (s ArgStore) LookupDouble(key string) (float64, error) {
	value, err := s.lookupValue(key)
	if err != nil {
		return 0, err
	}
	res, ok := parseLeadingFloat(value)
	if !ok {
		return 0, fmt.Errorf(
			`%w: "%s" value "%s" is not a number`,
			ErrConversion, s.args.KeyToken(key), value,
		)
	}
	return res, nil
}

// LookupNumber is an alias of LookupDouble
func (s ArgStore) LookupNumber(key string) (float64, error) {
	return s.LookupDouble(key)
}

// LookupString returns the value following the first occurrence of the key as is
func (s ArgStore) LookupString(key string) (string, error) {
	return s.lookupValue(key)
}

// LookupBool returns true if the key is present and is not followed by the "0" value.
// Only the exact "0" token is false: "00", "0.0" and "false" are true.
// Returns ErrKeyNotFound if the key is absent
func (s ArgStore) LookupBool(key string) (bool, error) {
	value, err := s.lookupValue(key)
	if errors.Is(err, ErrNoValueForKey) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return value != "0", nil
}

// GetInt is LookupInt returning `defaultVal` if the key is not found.
// The second result is true only if the value was found and converted.
// If the key is found but has no valid value, zero is returned
func (s ArgStore) GetInt(key string, defaultVal int) (int, bool) {
	res, err := s.LookupInt(key)
	return valueOrDefault(res, err, defaultVal)
}

// GetDouble is LookupDouble returning `defaultVal` if the key is not found. See GetInt
func (s ArgStore) GetDouble(key string, defaultVal float64) (float64, bool) {
	res, err := s.LookupDouble(key)
	return valueOrDefault(res, err, defaultVal)
}

// GetNumber is an alias of GetDouble
func (s ArgStore) GetNumber(key string, defaultVal float64) (float64, bool) {
	return s.GetDouble(key, defaultVal)
}

// GetString is LookupString returning `defaultVal` if the key is not found. See GetInt
func (s ArgStore) GetString(key string, defaultVal string) (string, bool) {
	res, err := s.LookupString(key)
	return valueOrDefault(res, err, defaultVal)
}

// GetBool is LookupBool returning `defaultVal` if the key is not found.
// The second result is true if the key is found
func (s ArgStore) GetBool(key string, defaultVal bool) (bool, bool) {
	res, err := s.LookupBool(key)
	return valueOrDefault(res, err, defaultVal)
}

// valueOrDefault uses `defaultVal` only for ErrKeyNotFound, other errors give zero value
func valueOrDefault[T any](value T, err error, defaultVal T) (T, bool) {
	if err == nil {
		return value, true
	}
	if errors.Is(err, ErrKeyNotFound) {
		return defaultVal, false
	}
	var zero T
	return zero, false
}
