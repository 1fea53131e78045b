package render

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/orion/internal/cli/styles"
	"github.com/thenoetrevino/orion/internal/models"
	"github.com/thenoetrevino/orion/internal/types"
)

// DefaultWidth wraps note content when the terminal size is unknown
const DefaultWidth = 80

// Note renders a note with its content, outbound links and backlinks
func Note(n *models.Note, links, backlinks []*models.Note, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}

	var sb strings.Builder
	sb.WriteString(styles.TitleStyle.Render(n.Title))
	sb.WriteString("\n")
	sb.WriteString(styles.Field("ID", string(n.ID)))
	sb.WriteString("\n")
	sb.WriteString(styles.Field("Modified", n.ModifiedAt.Format("2006-01-02 15:04")))
	if len(n.Tags) > 0 {
		sb.WriteString("\n")
		sb.WriteString(styles.LabelStyle.Render("Tags:") + " " + styles.RenderTags(n.Tags))
	}

	if body := Markdown(n.Content, width); body != "" {
		sb.WriteString("\n\n")
		sb.WriteString(body)
	}

	writeNoteList(&sb, "Links", links)
	writeNoteList(&sb, "Backlinks", backlinks)
	return sb.String()
}

func writeNoteList(sb *strings.Builder, title string, notes []*models.Note) {
	if len(notes) == 0 {
		return
	}
	sb.WriteString("\n")
	sb.WriteString(styles.SectionStyle.Render(title))
	for _, n := range notes {
		sb.WriteString("\n  • ")
		sb.WriteString(styles.ValueStyle.Render(n.Title))
		sb.WriteString(styles.SubtitleStyle.Render("  " + string(n.ID)))
	}
}

// Graph renders one line per note with the titles it links to. Edges whose
// target no longer exists are shown by id.
func Graph(notes []*models.Note, graph map[types.NoteID][]types.NoteID) string {
	titles := make(map[types.NoteID]string, len(notes))
	for _, n := range notes {
		titles[n.ID] = n.Title
	}

	lines := make([]string, 0, len(notes))
	for _, n := range notes {
		targets := graph[n.ID]
		names := make([]string, len(targets))
		for i, id := range targets {
			if title, ok := titles[id]; ok {
				names[i] = title
			} else {
				names[i] = styles.DeleteStyle.Render("missing:" + shortID(string(id)))
			}
		}
		line := styles.TitleStyle.Render(n.Title)
		if len(names) > 0 {
			line += " → " + styles.ValueStyle.Render(strings.Join(names, ", "))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// Summary renders the one-line list form of a note
func Summary(n *models.Note) string {
	line := fmt.Sprintf("  [%s] %s", n.ID, styles.ValueStyle.Render(n.Title))
	if len(n.Tags) > 0 {
		line += " " + styles.RenderTags(n.Tags)
	}
	if len(n.LinkedNoteIDs) > 0 {
		line += styles.SubtitleStyle.Render(fmt.Sprintf(" (%d links)", len(n.LinkedNoteIDs)))
	}
	return line
}
