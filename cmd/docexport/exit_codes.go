package main

import (
	"errors"
	"os"

	docexport "github.com/RizzoG99/trammarise-sub001"
	"github.com/RizzoG99/trammarise-sub001/internal/dateutil"
)

// Exit codes for the docexport CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage.
const (
	ExitSuccess = 0 // Successful export
	ExitGeneral = 1 // General/unexpected error (includes measurement failures)
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must wrap with
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage errors (exit 2)
	if errors.Is(err, ErrMissingInput) ||
		errors.Is(err, ErrConfigParse) ||
		errors.Is(err, docexport.ErrInvalidStyle) ||
		errors.Is(err, docexport.ErrInvalidAlignment) ||
		errors.Is(err, dateutil.ErrInvalidFormat) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrConfigNotFound) ||
		errors.Is(err, ErrReadSummary) ||
		errors.Is(err, ErrReadTranscript) ||
		errors.Is(err, ErrWriteDocument) {
		return ExitIO
	}

	return ExitGeneral
}
