package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	codeFences    = regexp.MustCompile("(?s)```.*?```")
	inlineCode    = regexp.MustCompile("`[^`]+`")
	imageLinks    = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	markdownLinks = regexp.MustCompile(`\[([^\]]+)\]\([^)]*\)`)
	headingMarks  = regexp.MustCompile(`(?m)^#+\s+`)
	inlineMarks   = regexp.MustCompile(`[>*_~\-]`)

	markdownHints = []*regexp.Regexp{
		regexp.MustCompile(`(?m)^#\s+`),
		regexp.MustCompile(`(?m)^##\s+`),
		regexp.MustCompile("(?s)```.*```"),
		regexp.MustCompile(`\[[^\]]+\]\([^)]*\)`),
		regexp.MustCompile(`(?m)^-\s+`),
		regexp.MustCompile(`(?m)^\d+\.\s+`),
	}
)

// StripMarkdown reduces markdown to plain text for excerpts, search
// documents and reading-time estimates.
func StripMarkdown(markdown string) string {
	s := codeFences.ReplaceAllString(markdown, " ")
	s = inlineCode.ReplaceAllString(s, " ")
	s = imageLinks.ReplaceAllString(s, " ")
	s = markdownLinks.ReplaceAllString(s, "$1")
	s = headingMarks.ReplaceAllString(s, "")
	s = inlineMarks.ReplaceAllString(s, " ")
	s = whitespaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// EstimateReadingTime returns a human-readable reading time for plain text,
// assuming 220 words per minute and at least one minute.
func EstimateReadingTime(content string) string {
	words := len(strings.Fields(strings.TrimSpace(content)))
	minutes := (words + 219) / 220
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

// IsLikelyMarkdown reports whether uploaded content looks like a markdown
// document rather than arbitrary text.
func IsLikelyMarkdown(content string) bool {
	trimmed := strings.TrimSpace(content)
	if len(trimmed) < 8 {
		return false
	}
	for _, pattern := range markdownHints {
		if pattern.MatchString(trimmed) {
			return true
		}
	}
	return false
}
