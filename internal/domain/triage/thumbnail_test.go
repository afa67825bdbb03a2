package triage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYouTubeID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"short link", "https://youtu.be/abc123", "abc123"},
		{"watch param", "https://youtube.com/watch?v=xyz789", "xyz789"},
		{"www watch param", "https://www.youtube.com/watch?v=xyz789&t=42", "xyz789"},
		{"shorts", "https://youtube.com/shorts/sh0rt1d", "sh0rt1d"},
		{"unrelated host", "https://vimeo.com/12345", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, YouTubeID(tt.url))
		})
	}
}

func TestThumbnailFor(t *testing.T) {
	assert.Equal(t, "https://img.youtube.com/vi/abc123/hqdefault.jpg", ThumbnailFor("https://youtu.be/abc123"))
	assert.Equal(t, "https://img.youtube.com/vi/xyz789/hqdefault.jpg", ThumbnailFor("https://youtube.com/watch?v=xyz789"))
	assert.Equal(t, PlaceholderThumbnail, ThumbnailFor("https://example.com/clip"))
	assert.Equal(t, PlaceholderThumbnail, ThumbnailFor(""))
}

func TestIsHealthy(t *testing.T) {
	assert.True(t, IsHealthy("Normal Skin"))
	assert.True(t, IsHealthy("normal skin"))
	assert.True(t, IsHealthy("NORMAL"))
	assert.True(t, IsHealthy(" normal "))
	assert.False(t, IsHealthy("Acne"))
	assert.False(t, IsHealthy("Unknown"))
	assert.False(t, IsHealthy(""))
}
