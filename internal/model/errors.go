package model

import "errors"

var (
	// ErrInvalidPath is returned when an input path does not exist or has the wrong kind.
	ErrInvalidPath = errors.New("invalid path")
	// ErrUnsupportedFile is returned for files without a configured source extension.
	ErrUnsupportedFile = errors.New("unsupported source file")
	// ErrProjectRootNotFound is returned when no project marker is found above a path.
	ErrProjectRootNotFound = errors.New("project root not found")
	// ErrMalformedStats is returned when a stored statistics payload cannot be decoded.
	ErrMalformedStats = errors.New("malformed statistics payload")
)
