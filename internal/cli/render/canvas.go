// Package render draws workspace structures for the terminal
package render

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/orion/internal/cli/styles"
	"github.com/thenoetrevino/orion/internal/models"
	"github.com/thenoetrevino/orion/internal/types"
)

// CanvasPainter renders each element as one line, in z-order
type CanvasPainter struct {
	labels map[types.ElementID]string
	lines  []string
}

var _ models.Painter = (*CanvasPainter)(nil)

// NewCanvasPainter builds a painter for c. Connections are labelled with
// the short ids of the elements they join.
func NewCanvasPainter(c *models.Canvas) *CanvasPainter {
	labels := make(map[types.ElementID]string, len(c.Elements))
	for _, e := range c.Elements {
		labels[e.Base().ID] = shortID(string(e.Base().ID))
	}
	return &CanvasPainter{labels: labels}
}

func (p *CanvasPainter) add(e models.Element, body string) {
	b := e.Base()
	swatch := styles.ColoredText("■", b.Color.Hex())
	line := fmt.Sprintf("%s %s %s %s",
		swatch,
		styles.SubtitleStyle.Render(shortID(string(b.ID))),
		styles.LabelStyle.Render(fmt.Sprintf("%-10s", e.Kind())),
		body)
	if e.Kind() != models.KindConnection {
		line += styles.SubtitleStyle.Render(fmt.Sprintf("  at %s size %s", b.Position, b.Size))
	}
	p.lines = append(p.lines, line)
}

func (p *CanvasPainter) PaintText(e *models.TextElement) {
	p.add(e, styles.ValueStyle.Render(fmt.Sprintf("%q", e.Text)))
}

func (p *CanvasPainter) PaintImage(e *models.ImageElement) {
	p.add(e, styles.ValueStyle.Render(e.ImagePath))
}

func (p *CanvasPainter) PaintNote(e *models.NoteElement) {
	body := styles.TitleStyle.Render(e.Title)
	if e.Content != "" {
		body += " " + styles.ValueStyle.Render(firstLine(e.Content))
	}
	p.add(e, body)
}

func (p *CanvasPainter) PaintShape(e *models.ShapeElement) {
	fill := "outline"
	if e.Filled {
		fill = "filled"
	}
	p.add(e, styles.ValueStyle.Render(fmt.Sprintf("%s (%s)", e.Shape, fill)))
}

func (p *CanvasPainter) PaintConnection(e *models.ConnectionElement) {
	arrow := "──"
	if e.HasArrow {
		arrow = "─▶"
	}
	p.add(e, styles.ValueStyle.Render(fmt.Sprintf("%s %s %s (%s)",
		p.label(e.SourceID), arrow, p.label(e.TargetID), e.LineStyle)))
}

func (p *CanvasPainter) label(id types.ElementID) string {
	if l, ok := p.labels[id]; ok {
		return l
	}
	return "?" + shortID(string(id))
}

// String returns everything painted so far
func (p *CanvasPainter) String() string {
	return strings.Join(p.lines, "\n")
}

// Canvas renders a canvas header followed by its elements
func Canvas(c *models.Canvas) string {
	var sb strings.Builder
	sb.WriteString(styles.TitleStyle.Render(c.Title))
	sb.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("  %s  %s  %d elements", c.ID, c.Size, len(c.Elements))))
	sb.WriteString("\n")

	if len(c.Elements) == 0 {
		sb.WriteString(styles.SubtitleStyle.Render("  (empty)"))
		return sb.String()
	}

	p := NewCanvasPainter(c)
	for _, e := range c.Elements {
		e.Render(p)
	}
	sb.WriteString(p.String())
	return sb.String()
}

func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
