package middleware

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
)

// Input validation for the analyze endpoint.

// MaxImageBytes caps uploads; close-up phone photos stay well under this.
const MaxImageBytes = 8 << 20

// MaxLocationLen caps the optional free-text location qualifier.
const MaxLocationLen = 120

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

var allowedImageMime = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// ValidateImage checks extension, sniffed content type, and size.
func ValidateImage(filename string, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("image is empty")
	}
	if len(data) > MaxImageBytes {
		return fmt.Errorf("image exceeds %d bytes", MaxImageBytes)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext != "" && !allowedImageExt[ext] {
		return fmt.Errorf("invalid image extension: %s (allowed: jpg, jpeg, png)", ext)
	}

	// Sniff the actual bytes; extensions lie.
	mime := http.DetectContentType(data)
	if !allowedImageMime[mime] {
		return fmt.Errorf("invalid image content type: %s (allowed: image/jpeg, image/png)", mime)
	}
	return nil
}

// ValidateLocation sanitizes the location qualifier before it is embedded
// in a search query.
func ValidateLocation(location string) error {
	if len(location) > MaxLocationLen {
		return fmt.Errorf("location exceeds %d characters", MaxLocationLen)
	}
	for _, r := range location {
		if r < 0x20 && r != '\t' {
			return fmt.Errorf("location contains control characters")
		}
	}
	return nil
}
