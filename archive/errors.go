package archive

import "errors"

// Sentinel errors for package archive.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Path resolution errors
	ErrPathNotFound = errors.New("archive path does not exist")

	// Per-file errors
	ErrMalformedJSON = errors.New("file is not valid JSON")
)
