// Package infer builds field definition trees from parsed content documents.
// It assigns the most specific field type it can to each value and recurses
// into objects and arrays, producing one tree per source document. Merging
// trees across documents is the consolidate package's job.
package infer

import (
	"regexp"
	"strings"
	"time"

	"github.com/goliatone/go-siteschema/pkg/schema"
)

var (
	colorPattern    = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}){1,2}$`)
	htmlTagPattern  = regexp.MustCompile(`</?[a-zA-Z][a-zA-Z0-9-]*(?:\s[^>]*)?>`)
	imagePattern    = regexp.MustCompile(`(?i)\.(?:svg|png|jpg|jpeg)$`)
	datePrefixCheck = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

	markdownPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?m)^#{1,6}\s`),            // ATX headers
		regexp.MustCompile(`(?m)^>\s`),                 // blockquotes
		regexp.MustCompile(`(?m)^\s*[-*+]\s+\S`),       // list bullets
		regexp.MustCompile("(?m)^```"),                 // fenced code
		regexp.MustCompile(`\*\*[^*\n]+\*\*`),          // bold
		regexp.MustCompile(`__[^_\n]+__`),              // bold (underscore)
		regexp.MustCompile(`\*[^*\s][^*\n]*\*`),        // emphasis
		regexp.MustCompile(`\[[^\]\n]+\]\([^)\s]+\)`),  // links
	}

	dateLayouts = []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
)

// ScalarType infers the most specific field type for a single string value.
// The checks run in a deliberate precedence order and the first match wins;
// ambiguous values are never reclassified once matched.
func ScalarType(value string) schema.FieldType {
	switch {
	case colorPattern.MatchString(value):
		return schema.FieldTypeColor
	case looksLikeMarkdown(value):
		return schema.FieldTypeMarkdown
	case strings.Contains(value, "\n"):
		return schema.FieldTypeText
	case imagePattern.MatchString(value):
		return schema.FieldTypeImage
	}

	if fieldType, ok := temporalType(value); ok {
		return fieldType
	}
	return schema.FieldTypeString
}

func looksLikeMarkdown(value string) bool {
	if htmlTagPattern.MatchString(value) {
		return true
	}
	for _, pattern := range markdownPatterns {
		if pattern.MatchString(value) {
			return true
		}
	}
	return false
}

// temporalType classifies ISO-8601 instants. An instant that normalizes to
// exactly midnight UTC is a date; anything else on the clock is a datetime.
func temporalType(value string) (schema.FieldType, bool) {
	trimmed := strings.TrimSpace(value)
	if !datePrefixCheck.MatchString(trimmed) {
		return "", false
	}
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, trimmed)
		if err != nil {
			continue
		}
		utc := parsed.UTC()
		if utc.Hour() == 0 && utc.Minute() == 0 && utc.Second() == 0 && utc.Nanosecond() == 0 {
			return schema.FieldTypeDate, true
		}
		return schema.FieldTypeDatetime, true
	}
	return "", false
}
