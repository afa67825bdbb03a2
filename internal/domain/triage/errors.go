package triage

import (
	"errors"
	"fmt"
)

// ErrModelCall indicates a transport/auth failure talking to an external model or search service.
var ErrModelCall = errors.New("model call failed")

// ErrMalformedPayload indicates a reply that could not be parsed into the expected JSON shape.
var ErrMalformedPayload = errors.New("malformed model payload")

// ErrVideoParse is the video-stage specialization of ErrMalformedPayload;
// errors.Is(err, ErrMalformedPayload) holds for it.
var ErrVideoParse = fmt.Errorf("video payload: %w", ErrMalformedPayload)

// ErrDependencyUnavailable indicates an optional client that was never configured.
// Absence of a credential is a valid configuration, not a crash.
var ErrDependencyUnavailable = errors.New("dependency not configured")
