package notes

import (
	"strings"

	"github.com/thenoetrevino/orion/internal/models"
	"github.com/thenoetrevino/orion/internal/types"
)

// ListByGroup returns the notes recorded against groupID
func (s *Store) ListByGroup(groupID types.GroupID) []*models.Note {
	return s.filter(func(n *models.Note) bool { return n.GroupID == groupID })
}

// FindByTags returns the notes carrying every one of tags. No tags matches
// nothing.
func (s *Store) FindByTags(tags []string) []*models.Note {
	if len(tags) == 0 {
		return nil
	}
	return s.filter(func(n *models.Note) bool {
		for _, tag := range tags {
			if !n.HasTag(tag) {
				return false
			}
		}
		return true
	})
}

// Search is a case-insensitive literal substring match over title and
// content. An empty query matches nothing.
func (s *Store) Search(text string) []*models.Note {
	if text == "" {
		return nil
	}
	needle := foldTitle(text)
	return s.filter(func(n *models.Note) bool {
		return strings.Contains(foldTitle(n.Title), needle) ||
			strings.Contains(foldTitle(n.Content), needle)
	})
}

// FindByTitle returns the note a [[title]] reference would resolve to
func (s *Store) FindByTitle(title string) *models.Note {
	id, ok := newTitleIndex(s.notes)[foldTitle(title)]
	if !ok {
		return nil
	}
	return s.byID[id]
}

func (s *Store) filter(keep func(*models.Note) bool) []*models.Note {
	var out []*models.Note
	for _, n := range s.notes {
		if keep(n) {
			out = append(out, n)
		}
	}
	return out
}
