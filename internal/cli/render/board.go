package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/orion/internal/cli/styles"
	"github.com/thenoetrevino/orion/internal/models"
)

// Board renders the columns of b side by side
func Board(b *models.KanbanBoard) string {
	header := styles.TitleStyle.Render(b.Title) +
		styles.SubtitleStyle.Render(fmt.Sprintf("  %s  %d cards", b.ID, b.CardCount()))
	if len(b.MemberIDs) > 0 {
		header += "\n" + styles.Field("Members", strings.Join(b.MemberIDs, ", "))
	}
	if len(b.Columns) == 0 {
		return header + "\n" + styles.SubtitleStyle.Render("  (no columns)")
	}

	cols := make([]string, len(b.Columns))
	for i, col := range b.Columns {
		cols[i] = Column(col)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, lipgloss.JoinHorizontal(lipgloss.Top, cols...))
}

// Column renders a column box with its cards top to bottom
func Column(col *models.Column) string {
	parts := []string{
		styles.TitleStyle.Render(col.Title) + styles.SubtitleStyle.Render(fmt.Sprintf(" (%d)", len(col.Cards))),
		styles.SubtitleStyle.Render(string(col.ID)),
	}
	for _, card := range col.Cards {
		parts = append(parts, Card(card))
	}
	return styles.ColumnStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// Card renders a single card box
func Card(card *models.Card) string {
	lines := []string{
		styles.ValueStyle.Render(card.Title),
		styles.SubtitleStyle.Render(string(card.ID)),
	}
	if len(card.Tags) > 0 {
		lines = append(lines, styles.RenderTags(card.Tags))
	}
	if len(card.AssigneeIDs) > 0 {
		lines = append(lines, styles.SubtitleStyle.Render("@"+strings.Join(card.AssigneeIDs, " @")))
	}
	if card.DueDate != nil {
		lines = append(lines, styles.WarningStyle.Render("due "+card.DueDate.Format("2006-01-02")))
	}
	return styles.CardStyle.Render(strings.Join(lines, "\n"))
}
