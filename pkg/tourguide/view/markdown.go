// ABOUTME: Markdown renderer wrapper around glamour for tooltip descriptions
// ABOUTME: Caches rendered results keyed by content hash, width, and style

package view

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer wraps glamour to render markdown with caching. It is
// safe for concurrent use.
type MarkdownRenderer struct {
	style string

	mu    sync.Mutex
	cache map[string]string // "hash:width" -> rendered
}

// NewMarkdownRenderer creates a renderer for a glamour standard style
// ("dark", "light", "notty", ...). An empty style means "dark".
func NewMarkdownRenderer(style string) *MarkdownRenderer {
	if style == "" {
		style = "dark"
	}
	return &MarkdownRenderer{
		style: style,
		cache: make(map[string]string),
	}
}

// Render returns the terminal-styled rendering of md wrapped at width.
// On any glamour failure the raw markdown is returned.
func (r *MarkdownRenderer) Render(md string, width int) string {
	if md == "" {
		return ""
	}

	key := cacheKey(md, width)
	r.mu.Lock()
	cached, ok := r.cache[key]
	r.mu.Unlock()
	if ok {
		return cached
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}

	// glamour pads with blank lines on both ends
	rendered = strings.Trim(rendered, "\n")
	rendered = strings.TrimRight(rendered, "\n ")

	r.mu.Lock()
	r.cache[key] = rendered
	r.mu.Unlock()
	return rendered
}

// cacheKey produces a string key from content hash and width.
func cacheKey(content string, width int) string {
	h := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%x:%d", h[:8], width)
}
