package render

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Cache Glamour renderers by width to avoid expensive re-creation
var (
	rendererCache sync.Map // map[int]*glamour.TermRenderer
)

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	// Check cache first
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	// Create new renderer
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	// Store in cache
	rendererCache.Store(width, renderer)
	return renderer, nil
}

// Markdown renders note content for the terminal, falling back to the raw
// text when glamour fails
func Markdown(content string, width int) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}
	renderer, err := getRenderer(width)
	if err == nil {
		rendered, err := renderer.Render(content)
		if err == nil {
			return strings.TrimSpace(rendered)
		}
	}
	return content
}
