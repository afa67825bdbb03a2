package triage

import "context"

// Classifier port (vision model). Fatal stage: errors abort the analysis.
type Classifier interface {
	Classify(ctx context.Context, image []byte) (Classification, error)
}

// Summarizer port (text model). Optional dependency.
type Summarizer interface {
	Summarize(ctx context.Context, label string) (string, error)
}

// SpecialistFinder port (deep search). Returns whatever shape the service
// produced; the caller only needs something renderable.
type SpecialistFinder interface {
	FindSpecialists(ctx context.Context, label, location string) (any, error)
}

// VideoFinder port (deep search). Entries come back already normalized.
type VideoFinder interface {
	FindVideos(ctx context.Context, label string) ([]VideoEntry, error)
}
