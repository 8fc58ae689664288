package utils

import (
	"regexp"
	"strings"
)

var (
	disallowedChars = regexp.MustCompile(`[^\w\p{Han}\s-]`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
	hyphenRuns      = regexp.MustCompile(`-+`)
	fileExtSuffix   = regexp.MustCompile(`\.mdx?$`)
)

// Slugify maps an arbitrary raw string to its canonical slug: lowercased,
// trimmed, stripped of everything outside word characters, CJK ideographs,
// whitespace and hyphens, with whitespace and hyphen runs collapsed to a
// single hyphen. It never fails and is idempotent; empty in, empty out.
func Slugify(value string) string {
	s := strings.ToLower(strings.TrimSpace(value))
	s = disallowedChars.ReplaceAllString(s, "")
	s = whitespaceRuns.ReplaceAllString(s, "-")
	return hyphenRuns.ReplaceAllString(s, "-")
}

// SanitizeSlug normalizes a user-supplied slug, first stripping a trailing
// .md/.mdx extension so file names pasted as slugs still resolve.
func SanitizeSlug(slug string) string {
	return Slugify(fileExtSuffix.ReplaceAllString(strings.TrimSpace(slug), ""))
}

// SlugFromFileName derives the canonical slug for a content file name.
func SlugFromFileName(fileName string) string {
	return fileExtSuffix.ReplaceAllString(fileName, "")
}
