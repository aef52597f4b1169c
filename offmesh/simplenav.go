package offmesh

import "github.com/arl/mnm/navtile"

// SimpleNavigation is a minimal in-memory Navigation backed by a flat
// link table, suitable for tests and the CLI demo tool. Production
// hosts typically back Navigation with their own entity/link
// management system instead.
type SimpleNavigation struct {
	links []Link
}

// NewSimpleNavigation creates an empty link table.
func NewSimpleNavigation() *SimpleNavigation {
	return &SimpleNavigation{}
}

// AddLink appends a link and returns its ID.
func (n *SimpleNavigation) AddLink(l Link) LinkID {
	n.links = append(n.links, l)
	return LinkID(len(n.links) - 1)
}

// LinksFrom implements Navigation. offMeshIndex is interpreted as the
// LinkID directly, the layout SimpleNavigation's AddLink produces.
func (n *SimpleNavigation) LinksFrom(fromTri navtile.TriangleID, offMeshIndex uint16) []Target {
	id := LinkID(offMeshIndex)
	if int(id) >= len(n.links) {
		return nil
	}
	l := n.links[id]

	var out []Target
	if l.Start == fromTri {
		out = append(out, Target{Triangle: l.End, Link: id})
	}
	if l.Bidir && l.End == fromTri {
		out = append(out, Target{Triangle: l.Start, Link: id})
	}
	return out
}

// LinkInfo implements Navigation.
func (n *SimpleNavigation) LinkInfo(id LinkID) (Link, bool) {
	if int(id) >= len(n.links) {
		return Link{}, false
	}
	return n.links[id], true
}
