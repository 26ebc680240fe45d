package continuum

// Element is a single (point, member-name) pair, as returned by All for
// introspection and cross-node verification.
type Element struct {
	Point  uint32
	Member string
}

// All returns a snapshot of every element on the ring in ascending point
// order. The ring itself remains owned by the Continuum; mutating the
// returned slice has no effect on subsequent lookups.
func (c *Continuum) All() []Element {
	out := make([]Element, len(c.r.elements))
	for i, e := range c.r.elements {
		out[i] = Element{Point: e.point, Member: e.name}
	}
	return out
}
