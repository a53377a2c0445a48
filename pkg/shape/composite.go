package shape

// Composite groups several solids so that their faces can be depth
// sorted together. It is a rendering aggregate, not a solid: no closure
// is checked across components.
type Composite struct {
	components []*Solid
	faces      []*Face
}

// NewComposite flattens the faces of components, in order. Nil
// components are skipped.
func NewComposite(components ...*Solid) *Composite {
	c := &Composite{}
	for _, s := range components {
		if s == nil {
			continue
		}
		c.components = append(c.components, s)
		c.faces = append(c.faces, s.faces...)
	}
	return c
}

func (c *Composite) drawable() {}

// Components returns the member solids.
func (c *Composite) Components() []*Solid {
	return append([]*Solid(nil), c.components...)
}

// AllFaces returns the faces of every component in one list.
func (c *Composite) AllFaces() []*Face {
	return append([]*Face(nil), c.faces...)
}

// Add appends a solid and its faces.
func (c *Composite) Add(s *Solid) {
	if s == nil {
		return
	}
	c.components = append(c.components, s)
	c.faces = append(c.faces, s.faces...)
}
