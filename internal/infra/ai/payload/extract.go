package payload

import (
	"encoding/json"
	"fmt"
	"strings"

	domain "github.com/bryanwahyu/skin-triage/internal/domain/triage"
)

// Generative models routinely wrap their JSON object in prose or markdown
// fencing. Extract tries the whole string first, then the span from the
// first '{' to the last '}'. Anything beyond that is ErrMalformedPayload.

// Extract parses raw into a JSON object.
func Extract(raw string) (map[string]any, error) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err == nil {
		return obj, nil
	}
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start != -1 && end != -1 && start < end {
		var obj map[string]any
		if err := json.Unmarshal([]byte(raw[start:end+1]), &obj); err == nil {
			return obj, nil
		}
	}
	return nil, fmt.Errorf("%w: response was not valid JSON", domain.ErrMalformedPayload)
}

// ExtractAny is like Extract but tolerates payloads whose outer value is an
// array (the video stage sees both shapes in the wild).
func ExtractAny(raw string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err == nil {
		switch v.(type) {
		case map[string]any, []any:
			return v, nil
		}
	}
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start != -1 && end != -1 && start < end {
		var obj map[string]any
		if err := json.Unmarshal([]byte(raw[start:end+1]), &obj); err == nil {
			return obj, nil
		}
	}
	return nil, fmt.Errorf("%w: response was not valid JSON", domain.ErrMalformedPayload)
}
