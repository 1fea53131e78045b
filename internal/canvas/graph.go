package canvas

import (
	"slices"

	"github.com/thenoetrevino/orion/internal/models"
	"github.com/thenoetrevino/orion/internal/types"
)

// removeWithCascade computes the removal set for id first (every element
// carrying id plus every connection referencing it), then builds the
// surviving slice in one pass. The input slice is never modified.
//
// Connections are never the endpoint of another connection, so a single
// sweep is enough.
func removeWithCascade(elements []models.Element, id types.ElementID) (kept []models.Element, cascaded []types.ElementID, found bool) {
	doomed := make([]bool, len(elements))
	for i, e := range elements {
		if e.Base().ID == id {
			doomed[i] = true
			found = true
		}
	}
	if !found {
		return elements, nil, false
	}

	for i, e := range elements {
		if doomed[i] {
			continue
		}
		if conn, ok := e.(*models.ConnectionElement); ok && conn.References(id) {
			doomed[i] = true
			cascaded = append(cascaded, conn.ID)
		}
	}

	kept = make([]models.Element, 0, len(elements))
	for i, e := range elements {
		if !doomed[i] {
			kept = append(kept, e)
		}
	}
	return kept, cascaded, true
}

func findElement(elements []models.Element, id types.ElementID) models.Element {
	for _, e := range elements {
		if e.Base().ID == id {
			return e
		}
	}
	return nil
}

func connections(elements []models.Element) []*models.ConnectionElement {
	var out []*models.ConnectionElement
	for _, e := range elements {
		if conn, ok := e.(*models.ConnectionElement); ok {
			out = append(out, conn)
		}
	}
	return out
}

// Dangling reports connections whose source or target is not on the canvas.
// The store never produces one; restored data from outside might.
func Dangling(c *models.Canvas) []*models.ConnectionElement {
	present := make(map[types.ElementID]bool, len(c.Elements))
	for _, e := range c.Elements {
		present[e.Base().ID] = true
	}

	var out []*models.ConnectionElement
	for _, conn := range connections(c.Elements) {
		if !present[conn.SourceID] || !present[conn.TargetID] {
			out = append(out, conn)
		}
	}
	return out
}

// pruneDangling removes every connection Dangling reports from c
func pruneDangling(c *models.Canvas) []types.ElementID {
	dangling := Dangling(c)
	if len(dangling) == 0 {
		return nil
	}
	drop := make(map[types.ElementID]bool, len(dangling))
	ids := make([]types.ElementID, len(dangling))
	for i, conn := range dangling {
		drop[conn.ID] = true
		ids[i] = conn.ID
	}
	c.Elements = slices.DeleteFunc(c.Elements, func(e models.Element) bool {
		return drop[e.Base().ID]
	})
	return ids
}
