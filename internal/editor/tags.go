package editor

import "strings"

// ParseTags splits a comma-separated tag field and trims each segment.
// Empty segments are kept, so "a,,b" yields ["a", "", "b"].
func ParseTags(s string) []string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// FormatTags is the inverse used to fill the tag input.
func FormatTags(tags []string) string {
	return strings.Join(tags, ", ")
}
