package repository

import "errors"

var (
	// ErrDocumentNotFound indicates the checklist document does not exist.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrLogCorrupt indicates the log file exists but is not a JSON object of arrays.
	ErrLogCorrupt = errors.New("session log is corrupt")
)
