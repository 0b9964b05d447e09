package recommendation

import "errors"

// Extraction failures. They classify a fallback and are never returned to
// callers of UseCase.
var (
	ErrNoArrayFound   = errors.New("no bracketed array in response")
	ErrMalformedArray = errors.New("bracketed span is not a valid JSON array")
	ErrNoValidRecords = errors.New("array has no valid recommendation records")
	ErrEmptyResponse  = errors.New("empty response text")
)
