package prompt

import (
	"fmt"
	"strings"
)

// SummarySystemPrompt fixes the markdown shape of the educational snippet.
// The shape is asserted by instruction only; downstream does not re-validate it.
func SummarySystemPrompt() string {
	return `You are a medical educator writing for patients. Respond in markdown with ` +
		`exactly this shape: a "## Understanding <condition>" heading, two or three short ` +
		`paragraphs covering what the condition is, common triggers, and everyday care, ` +
		`and a closing italic line reminding the reader this is general education, not ` +
		`medical advice. No code fences, no lists of medications.`
}

// SummaryUserPrompt asks for the snippet for one condition label.
func SummaryUserPrompt(label string) string {
	return fmt.Sprintf("Write the educational snippet for the skin condition: %s.", label)
}

// SpecialistQuery builds the deep-search query for practitioners.
// Location is an optional free-text qualifier.
func SpecialistQuery(label, location string) string {
	queryLocation := ""
	if loc := strings.TrimSpace(location); loc != "" {
		queryLocation = fmt.Sprintf("in %s", loc)
	}
	return fmt.Sprintf(
		"Find dermatologists or clinics specializing in %s %s. "+
			"Return actionable contact details if possible.",
		label, queryLocation,
	)
}

// VideosQuery instructs the search service to answer as a JSON object with
// a "videos" array. Real responses still drift from this shape; the video
// adapter normalizes whatever comes back.
func VideosQuery(label string) string {
	return fmt.Sprintf(
		"Find up to 6 educational YouTube videos where dermatologists explain %s. "+
			`Respond ONLY as a JSON object: {"videos": [{"title": "...", "url": "...", `+
			`"doctor": "...", "channel": "...", "summary": "...", "published": "...", `+
			`"thumbnail": "..."}]}. Prefer videos by board-certified dermatologists.`,
		label,
	)
}

// CannedAcneSummary is served verbatim when the text model is unavailable
// and the diagnosed condition is acne. Keep it in sync with the markdown
// shape promised by SummarySystemPrompt.
const CannedAcneSummary = `## Understanding Acne

Acne is one of the most common skin conditions, caused by hair follicles becoming clogged with oil and dead skin cells. It most often appears on the face, chest, and back, and can show up as blackheads, whiteheads, or inflamed pimples.

Common triggers include hormonal changes, stress, certain cosmetics, and friction from masks or helmets. Everyday care that helps: wash the area twice a day with a gentle cleanser, avoid picking or squeezing lesions, and choose non-comedogenic skin products.

Most acne responds well to consistent over-the-counter care with benzoyl peroxide or salicylic acid, but persistent or scarring acne deserves professional attention.

*This snippet is general education, not medical advice. Consult a board-certified dermatologist for diagnosis and treatment.*`
