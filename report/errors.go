package report

import "errors"

// Sentinel errors for package report.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Aggregation errors
	ErrNoHashtags = errors.New("no hashtags found in archive")

	// Export errors
	ErrUnknownEncoding = errors.New("unknown output encoding")
	ErrEncoding        = errors.New("hashtag cannot be encoded in the selected charset")
)
