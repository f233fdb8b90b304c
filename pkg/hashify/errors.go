package hashify

import "errors"

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := transcoder.Run(input, output)
//	if errors.Is(err, hashify.ErrColumnNotFound) {
//	    // Handle unknown column
//	}
var (
	// ErrInputNotFound indicates the input file does not exist or is unreadable.
	ErrInputNotFound = errors.New("input file not found")

	// ErrColumnNotFound indicates the requested column is absent from the CSV header.
	ErrColumnNotFound = errors.New("column not found")

	// ErrUnsupportedAlgorithm indicates the requested hash algorithm is not
	// in the supported set.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrUsage indicates the command line was invoked incorrectly
	// (wrong number of positional arguments).
	ErrUsage = errors.New("usage error")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil, ExitUsageError (2) for command-line
// misuse, and ExitGeneralError (1) for everything else: every validation
// or runtime failure of a run exits 1.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, ErrUsage) {
		return ExitUsageError
	}
	return ExitGeneralError
}
