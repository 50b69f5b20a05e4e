package cli

const (
	// ExitCodeQueryFailed is returned when the key is absent, has no value or the value can't be converted
	ExitCodeQueryFailed = 1
	// ExitCodeUsage is returned for invalid command line of cmdopt itself
	ExitCodeUsage = 2
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func queryFailed(err error) *ExitError {
	return &ExitError{Code: ExitCodeQueryFailed, Message: err.Error()}
}

func usageError(msg string) *ExitError {
	return &ExitError{Code: ExitCodeUsage, Message: msg}
}
