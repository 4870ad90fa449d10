package utils

import (
	"regexp"
	"strings"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// SanitizeFilename keeps only characters that are safe in an object key
// and in a URL path segment. Everything else becomes an underscore,
// matching the upload key convention {prefix}{timestamp}_{name}.
func SanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "file"
	}

	// strip any client-supplied directory components
	if idx := strings.LastIndexAny(name, `/\`); idx >= 0 {
		name = name[idx+1:]
	}
	if name == "" {
		return "file"
	}

	return unsafeFilenameChars.ReplaceAllString(name, "_")
}

// NormalizePrefix forces a usable object-key prefix: no leading
// slashes, exactly one trailing slash.
func NormalizePrefix(prefix, fallback string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return fallback
	}
	prefix = strings.TrimLeft(prefix, "/")
	if prefix == "" {
		return fallback
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix
}
