package prompt

import (
	"fmt"
	"strings"

	domain "github.com/bryanwahyu/skin-triage/internal/domain/triage"
)

// ClassifySystemPrompt pins the model to the closed condition set.
// Exactly one of the five labels is present in each image.
func ClassifySystemPrompt() string {
	names := make([]string, len(domain.Labels))
	for i, l := range domain.Labels {
		names[i] = string(l)
	}
	return fmt.Sprintf(
		"You are a dermatology assistant. Exactly one of the following conditions is present "+
			"in each image: %s, or %s. Identify the most likely condition.",
		strings.Join(names[:len(names)-1], ", "), names[len(names)-1],
	)
}

// ClassifyUserPrompt demands a bare JSON object so the reply survives Extract.
func ClassifyUserPrompt() string {
	return `Classify this skin condition. Respond ONLY in JSON with keys: ` +
		`"label" (one of: Acne, Eczema (Atopic Dermatitis), Psoriasis, Rosacea, Normal Skin), ` +
		`"confidence" (0-1 float), and "explanation" (short text).`
}
