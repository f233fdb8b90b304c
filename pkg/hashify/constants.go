package hashify

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3: Panic or unexpected crash
const (
	ExitSuccess      = 0 // Transcoding completed successfully
	ExitGeneralError = 1 // Any validation or runtime error
	ExitUsageError   = 2 // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3 // Internal panic (unexpected crash)
)

const (
	// DefaultAlgorithm is used when -a/--algorithm is not provided.
	DefaultAlgorithm = "sha256"

	// ProgressRowInterval is how often the transcoder logs progress
	// in verbose mode, measured in data rows.
	ProgressRowInterval = 100000

	// GzipSuffix marks file paths whose payload is gzip-compressed CSV.
	// Both input and output paths are checked against it.
	GzipSuffix = ".gz"
)
