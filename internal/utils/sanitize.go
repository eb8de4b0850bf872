package utils

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Latin-1 Supplement + Latin Extended-A/B stay intact so archived filenames
// keep their diacritics.
var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._\-\x{00C0}-\x{024F}]+`)

// SanitizeFilename strips any directory components and replaces characters
// that are unsafe in archive keys with underscores.
func SanitizeFilename(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "." || base == string(filepath.Separator) {
		return "file"
	}
	clean := unsafeFilenameChars.ReplaceAllString(base, "_")
	if clean == "" {
		return "file"
	}
	return clean
}

// BaseWithoutExt returns the sanitized filename with its extension removed.
func BaseWithoutExt(name string) string {
	clean := SanitizeFilename(name)
	return strings.TrimSuffix(clean, filepath.Ext(clean))
}

func FormatFileSize(bytes int64) string {
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%d B", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	}
}
