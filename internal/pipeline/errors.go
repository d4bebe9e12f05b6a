package pipeline

import "errors"

// Stage failures surfaced to callers. HTTP handlers map these to statuses and
// the CLI prints them. Every failure is terminal for the action that caused
// it, never for the session; any stage can be re-run immediately.
var (
	ErrNoFile             = errors.New("no resume file provided")
	ErrEmptyExtraction    = errors.New("could not extract text from the uploaded file")
	ErrModelCall          = errors.New("model call failed")
	ErrNoSpecification    = errors.New("no website specification available")
	ErrEmptySpecification = errors.New("website specification is empty")
)
