package services

import "fmt"

// ExtractionError means an uploaded file was missing or unreadable. It is
// fatal to that document's processing and is surfaced to the user; LLM and
// parsing failures are not.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract %s: %v", e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// BackendUnavailable means an LLM backend could not produce a completion
// (network, auth, rate limit, malformed API response). The gateway reports
// it as a typed error; the caller decides the fallback, not the gateway.
type BackendUnavailable struct {
	Backend string
	Err     error
}

func (e *BackendUnavailable) Error() string {
	return fmt.Sprintf("backend %s unavailable: %v", e.Backend, e.Err)
}

func (e *BackendUnavailable) Unwrap() error {
	return e.Err
}
