package utils

import (
	"regexp"
	"strings"
)

// MaxProfileNameLen is the longest profile identifier the store accepts.
const MaxProfileNameLen = 64

var (
	profileInvalidChars = regexp.MustCompile(`[^a-z0-9._-]`)
	repeatedHyphens     = regexp.MustCompile(`-+`)
)

// ParseTags splits a comma separated tag list. Tags are trimmed and empty
// entries dropped; duplicates and order are kept.
func ParseTags(raw string) []string {
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// SanitizeProfileName turns a free-form name into a profile identifier:
// lowercase, spaces to hyphens, anything outside [a-z0-9._-] removed, and
// at most MaxProfileNameLen characters.
func SanitizeProfileName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "-")
	name = profileInvalidChars.ReplaceAllString(name, "")
	name = repeatedHyphens.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-.")
	if len(name) > MaxProfileNameLen {
		// Only ASCII is left, so slicing bytes is safe.
		name = strings.TrimRight(name[:MaxProfileNameLen], "-.")
	}

	if name == "" {
		name = "default"
	}

	return name
}
