package cmdopt

import (
	"os"
)

// CommandLine is a default ArgStore that is used by the package functions.
// It's built from os.Args to follow the same pattern as flag.CommandLine in the stdlib.
var CommandLine = New(os.Args)

// SetKeyPrefix rebuilds CommandLine from os.Args using the given key prefix.
// It's meant to be called before any lookups, like flag.Parse()
func SetKeyPrefix(keyPrefix string) {
	CommandLine = New(os.Args, WithKeyPrefix(keyPrefix))
}

// KeyExists reports whether the key is present in the command line.
// See ArgStore.KeyExists
func KeyExists(key string) bool {
	return CommandLine.KeyExists(key)
}

// GetInt returns the integer following the key in the command line or `defaultVal` if the key is absent.
// See ArgStore.GetInt
func GetInt(key string, defaultVal int) (int, bool) {
	return CommandLine.GetInt(key, defaultVal)
}

// GetDouble returns the number following the key in the command line or `defaultVal` if the key is absent.
// See ArgStore.GetDouble
func GetDouble(key string, defaultVal float64) (float64, bool) {
	return CommandLine.GetDouble(key, defaultVal)
}

// GetNumber is an alias of GetDouble
func GetNumber(key string, defaultVal float64) (float64, bool) {
	return CommandLine.GetNumber(key, defaultVal)
}

// GetString returns the value following the key in the command line or `defaultVal` if the key is absent.
// See ArgStore.GetString
func GetString(key string, defaultVal string) (string, bool) {
	return CommandLine.GetString(key, defaultVal)
}

// GetBool returns true if the key is present in the command line and is not followed by "0".
// Returns `defaultVal` if the key is absent.
// See ArgStore.GetBool
func GetBool(key string, defaultVal bool) (bool, bool) {
	return CommandLine.GetBool(key, defaultVal)
}

// GetIntVector returns integers following all occurrences of the key in the command line.
// See ArgStore.GetIntVector
func GetIntVector(key string) ([]int, bool) {
	return CommandLine.GetIntVector(key)
}

// GetDoubleVector returns numbers following all occurrences of the key in the command line.
// See ArgStore.GetDoubleVector
func GetDoubleVector(key string) ([]float64, bool) {
	return CommandLine.GetDoubleVector(key)
}

// GetNumberVector is an alias of GetDoubleVector
func GetNumberVector(key string) ([]float64, bool) {
	return CommandLine.GetNumberVector(key)
}

// GetStringVector returns values following all occurrences of the key in the command line.
// See ArgStore.GetStringVector
func GetStringVector(key string) ([]string, bool) {
	return CommandLine.GetStringVector(key)
}
