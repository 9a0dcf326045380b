// ABOUTME: YAML frontmatter parser with CRLF normalization for markdown tour scripts
// ABOUTME: The frontmatter holds the tour definition; the body becomes its introduction

package config

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

// ErrUnterminatedFrontmatter is returned when the closing --- is missing.
var ErrUnterminatedFrontmatter = errors.New("unterminated frontmatter: missing closing ---")

// splitFrontmatter separates a leading --- block from the rest of content.
// ok is false when content has no frontmatter.
func splitFrontmatter(content string) (head, body string, ok bool, err error) {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(normalized, frontmatterDelimiter+"\n") {
		return "", content, false, nil
	}
	rest := normalized[len(frontmatterDelimiter)+1:]

	if rest == frontmatterDelimiter || strings.HasPrefix(rest, frontmatterDelimiter+"\n") {
		return "", strings.TrimPrefix(rest[len(frontmatterDelimiter):], "\n"), true, nil
	}
	head, after, found := strings.Cut(rest, "\n"+frontmatterDelimiter)
	if !found {
		return "", "", true, ErrUnterminatedFrontmatter
	}
	// the closing line may carry nothing but the delimiter
	after = strings.TrimPrefix(after, "\n")
	return head, after, true, nil
}

// ParseFrontmatter decodes the YAML frontmatter of content into T and
// returns the remaining body. Without frontmatter it returns the zero T
// and the original content.
func ParseFrontmatter[T any](content string) (T, string, error) {
	var zero T
	head, body, ok, err := splitFrontmatter(content)
	if err != nil || !ok {
		return zero, body, err
	}

	var result T
	if err := yaml.Unmarshal([]byte(head), &result); err != nil {
		return zero, "", fmt.Errorf("parse frontmatter YAML: %w", err)
	}
	return result, body, nil
}
