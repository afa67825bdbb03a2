package linkup

import (
	"context"
	"encoding/json"
	"fmt"

	domain "github.com/bryanwahyu/skin-triage/internal/domain/triage"
	"github.com/bryanwahyu/skin-triage/internal/infra/ai/payload"
	"github.com/bryanwahyu/skin-triage/internal/infra/ai/prompt"
)

// Ordered capability probe for pulling a text answer out of a search reply.
// The service has returned plain strings, sourcedAnswer objects, and other
// wrappers depending on query; this list covers the shapes seen so far.
var answerFields = []string{"output_text", "answer", "content", "text", "output"}

// Top-level aliases under which the videos array has been observed.
var collectionKeys = []string{"videos", "results", "items"}

// FindVideos searches for instructional videos and normalizes the reply
// into at most MaxVideos entries, source order preserved.
func (c *Client) FindVideos(ctx context.Context, label string) ([]domain.VideoEntry, error) {
	resp, err := c.search(ctx, prompt.VideosQuery(label))
	if err != nil {
		return nil, err
	}

	parsed, err := payload.ExtractAny(responseText(resp))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrVideoParse, err)
	}

	entries := videosArray(parsed)
	out := make([]domain.VideoEntry, 0, len(entries))
	for _, raw := range entries {
		obj, ok := raw.(map[string]any)
		if !ok {
			// Non-object entries are dropped silently.
			continue
		}
		out = append(out, normalizeEntry(obj))
		if len(out) == domain.MaxVideos {
			break
		}
	}
	return out, nil
}

// responseText coerces the search reply into text: a string as-is, a mapping
// via the answer-field probe, anything else via JSON serialization.
func responseText(resp any) string {
	switch v := resp.(type) {
	case string:
		return v
	case map[string]any:
		for _, field := range answerFields {
			if s, ok := v[field].(string); ok && s != "" {
				return s
			}
		}
	}
	if b, err := json.Marshal(resp); err == nil {
		return string(b)
	}
	return fmt.Sprintf("%v", resp)
}

// videosArray accepts the array under any known alias, or the payload itself
// when the outer value is already an array.
func videosArray(parsed any) []any {
	switch v := parsed.(type) {
	case []any:
		return v
	case map[string]any:
		for _, key := range collectionKeys {
			if arr, ok := v[key].([]any); ok {
				return arr
			}
		}
	}
	return nil
}

// normalizeEntry maps field aliases onto the canonical VideoEntry and fills
// the derived thumbnail. A supplied thumbnail always wins over derivation.
func normalizeEntry(obj map[string]any) domain.VideoEntry {
	entry := domain.VideoEntry{
		Title:     firstString(obj, "title", "name"),
		URL:       firstString(obj, "url", "link"),
		Doctor:    firstString(obj, "doctor", "doctorName", "doctor_name"),
		Channel:   firstString(obj, "channel", "channelName", "channel_name"),
		Summary:   firstString(obj, "summary", "description"),
		Published: firstString(obj, "published", "publishedAt", "published_at", "date"),
		Thumbnail: firstString(obj, "thumbnail", "thumbnailUrl", "thumbnail_url"),
	}
	if entry.Thumbnail == "" {
		entry.Thumbnail = domain.ThumbnailFor(entry.URL)
	}
	return entry
}

func firstString(obj map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := obj[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
