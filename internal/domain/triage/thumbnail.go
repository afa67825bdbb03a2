package triage

import (
	"fmt"
	"net/url"
	"strings"
)

// PlaceholderThumbnail is shown when no video ID can be derived from a URL.
const PlaceholderThumbnail = "https://placehold.co/480x360?text=Video"

const youtubeThumbTemplate = "https://img.youtube.com/vi/%s/hqdefault.jpg"

// YouTubeID extracts a video ID from the common YouTube URL forms:
// youtu.be/<id>, youtube.com/shorts/<id>, and ?v=<id>.
// Returns "" when no ID can be derived.
func YouTubeID(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	path := strings.TrimPrefix(u.Path, "/")

	if strings.Contains(host, "youtu.be") {
		return path
	}
	if strings.Contains(host, "youtube.com") {
		if rest, ok := strings.CutPrefix(path, "shorts/"); ok {
			return rest
		}
	}
	if v := u.Query().Get("v"); v != "" {
		return v
	}
	return ""
}

// ThumbnailFor derives a deterministic thumbnail URL for a video URL.
func ThumbnailFor(videoURL string) string {
	if id := YouTubeID(videoURL); id != "" {
		return fmt.Sprintf(youtubeThumbTemplate, id)
	}
	return PlaceholderThumbnail
}
