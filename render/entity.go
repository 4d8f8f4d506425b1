package render

// Entity ties a hit rectangle back to the dataset cell that drew it,
// for hover and click interaction.
type Entity struct {
	Rect        Rect
	Dataset     Dataset
	Row, Column int
}

// EntityCollection accumulates the interactive regions registered
// during a render pass. The zero value is ready to use.
type EntityCollection struct {
	entities []Entity
}

func (c *EntityCollection) Add(e Entity) {
	c.entities = append(c.entities, e)
}

// At returns the entity under (x, y). Later registrations win, so the
// topmost drawn item is reported.
func (c *EntityCollection) At(x, y float64) (Entity, bool) {
	for i := len(c.entities) - 1; i >= 0; i-- {
		if c.entities[i].Rect.Contains(x, y) {
			return c.entities[i], true
		}
	}
	return Entity{}, false
}

func (c *EntityCollection) Len() int { return len(c.entities) }

// Reset empties the collection, retaining storage for the next pass.
func (c *EntityCollection) Reset() {
	c.entities = c.entities[:0]
}
