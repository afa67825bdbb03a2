package triage

import (
	"strings"
	"time"
)

// ID tipe untuk Analysis
type AnalysisID string

// Label enum: closed set yang dipakai system prompt
type Label string

const (
	LabelAcne      Label = "Acne"
	LabelEczema    Label = "Eczema (Atopic Dermatitis)"
	LabelPsoriasis Label = "Psoriasis"
	LabelRosacea   Label = "Rosacea"
	LabelNormal    Label = "Normal Skin"

	// LabelUnknown is the sentinel used when the model payload carries no label.
	LabelUnknown Label = "Unknown"
)

// Labels is the closed condition set committed to by the classifier prompt.
var Labels = []Label{LabelAcne, LabelEczema, LabelPsoriasis, LabelRosacea, LabelNormal}

// IsHealthy reports whether a label is the "no disease" sentinel.
// Matches the full label or the short "normal" alias, case-insensitively.
func IsHealthy(label string) bool {
	l := strings.ToLower(strings.TrimSpace(label))
	return l == strings.ToLower(string(LabelNormal)) || l == "normal"
}

// Classification is the normalized vision-model verdict.
// Label is always present; Confidence stays nil when the payload omits it.
type Classification struct {
	Label       string   `json:"label"`
	Confidence  *float64 `json:"confidence,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
}

// VideoEntry is one normalized instructional-video card.
// All fields are optional strings; URL is preferred but not required.
type VideoEntry struct {
	Title     string `json:"title,omitempty"`
	URL       string `json:"url,omitempty"`
	Doctor    string `json:"doctor,omitempty"`
	Channel   string `json:"channel,omitempty"`
	Summary   string `json:"summary,omitempty"`
	Published string `json:"published,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// MaxVideos caps the video gallery, source order preserved.
const MaxVideos = 6

// Aggregate Root: AnalysisResult, hasil satu kali analyze.
// Built fresh per request, no cross-request persistence.
type AnalysisResult struct {
	ID             AnalysisID     `json:"id"`
	AnalyzedAt     time.Time      `json:"analyzed_at"`
	Classification Classification `json:"classification"`
	Healthy        bool           `json:"healthy"`

	// Enrichment stages: each carries its value or its own absence reason,
	// never both. A stage error never fails the whole analysis.
	Summary          string       `json:"summary,omitempty"`
	SummaryError     string       `json:"summary_error,omitempty"`
	Specialists      any          `json:"specialists,omitempty"`
	SpecialistsError string       `json:"specialists_error,omitempty"`
	Videos           []VideoEntry `json:"videos,omitempty"`
	VideosError      string       `json:"videos_error,omitempty"`

	DurationMS int64 `json:"duration_ms"`
}
