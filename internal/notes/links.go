package notes

import (
	"iter"
	"regexp"

	"golang.org/x/text/cases"

	"github.com/thenoetrevino/orion/internal/models"
	"github.com/thenoetrevino/orion/internal/types"
)

// linkPattern matches [[Title]]. The lazy group means the first ]] closes a
// span, and like any regexp dot it does not cross a newline.
var linkPattern = regexp.MustCompile(`\[\[(.*?)\]\]`)

// ExtractLinkTitles yields the inner text of every [[...]] span in content,
// verbatim and in order. The sequence is pure and can be ranged over any
// number of times.
func ExtractLinkTitles(content string) iter.Seq[string] {
	return func(yield func(string) bool) {
		rest := content
		for {
			loc := linkPattern.FindStringSubmatchIndex(rest)
			if loc == nil {
				return
			}
			if !yield(rest[loc[2]:loc[3]]) {
				return
			}
			rest = rest[loc[1]:]
		}
	}
}

// titleIndex maps a case-folded title to the first note carrying it, in
// store order
type titleIndex map[string]types.NoteID

func newTitleIndex(notes []*models.Note) titleIndex {
	idx := make(titleIndex, len(notes))
	for _, n := range notes {
		key := foldTitle(n.Title)
		if _, taken := idx[key]; !taken {
			idx[key] = n.ID
		}
	}
	return idx
}

// resolve turns the titles referenced by content into note ids. Unknown
// titles are dropped and each id appears once, at its first reference.
func (idx titleIndex) resolve(content string) []types.NoteID {
	var ids []types.NoteID
	seen := make(map[types.NoteID]bool)
	for title := range ExtractLinkTitles(content) {
		id, ok := idx[foldTitle(title)]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// foldTitle applies Unicode full case folding, so "Straße" and "STRASSE"
// name the same note.
func foldTitle(title string) string {
	return cases.Fold().String(title)
}
