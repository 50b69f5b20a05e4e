package cmdopt

import "errors"

var ErrInvalidArgument = errors.New("invalid argument")
var ErrKeyNotFound = errors.New("key not found")
var ErrNoValueForKey = errors.New("no value for key")
var ErrConversion = errors.New("conversion error")
