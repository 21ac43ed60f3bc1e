package utils

import (
	"math"
	"regexp"
	"strings"
)

var (
	htmlTagRe    = regexp.MustCompile(`<[^>]*>`)
	slugStripRe  = regexp.MustCompile(`[^\w\s-]`)
	slugDashRe   = regexp.MustCompile(`[\s_-]+`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

const wordsPerMinute = 200

// Slugify derives a URL-safe identifier from a display name: lower-case,
// non-alphanumeric runs collapsed to single hyphens, no leading or trailing
// hyphens. Idempotent: Slugify(Slugify(s)) == Slugify(s).
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = slugStripRe.ReplaceAllString(s, "")
	s = slugDashRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// StripHTML removes markup tags, leaving only text content.
func StripHTML(html string) string {
	return htmlTagRe.ReplaceAllString(html, "")
}

// Truncate shortens text to at most length characters plus the "..." marker.
// Input at or under the limit is returned unchanged.
func Truncate(text string, length int) string {
	runes := []rune(text)
	if len(runes) <= length {
		return text
	}
	return strings.TrimSpace(string(runes[:length])) + "..."
}

// GenerateExcerpt strips markup from content and truncates it to length.
func GenerateExcerpt(content string, length int) string {
	return Truncate(StripHTML(content), length)
}

// ReadingTime estimates reading minutes for HTML content at 200 words/minute,
// rounded up.
func ReadingTime(content string) int {
	plain := strings.TrimSpace(StripHTML(content))
	if plain == "" {
		return 0
	}
	words := len(whitespaceRe.Split(plain, -1))
	return int(math.Ceil(float64(words) / wordsPerMinute))
}
