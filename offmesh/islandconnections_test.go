package offmesh

import (
	"testing"

	"github.com/arl/mnm/navtile"
	"github.com/google/uuid"
)

func TestIslandConnectionsReachable(t *testing.T) {
	c := NewIslandConnections()

	a := navtile.GlobalIslandID{Tile: 1, Static: 1}
	b := navtile.GlobalIslandID{Tile: 2, Static: 1}
	x := navtile.GlobalIslandID{Tile: 3, Static: 1}

	if err := c.AddLink(a, b, 0, uuid.New()); err != nil {
		t.Fatalf("AddLink: %v", err)
	}

	if !c.Reachable(a, b) {
		t.Errorf("expected a to reach b")
	}
	if c.Reachable(b, a) {
		t.Errorf("did not expect b to reach a (link is one-way)")
	}
	if c.Reachable(a, x) {
		t.Errorf("did not expect a to reach unconnected island x")
	}
}

func TestIslandConnectionsRemoveIsland(t *testing.T) {
	c := NewIslandConnections()
	a := navtile.GlobalIslandID{Tile: 1, Static: 1}
	b := navtile.GlobalIslandID{Tile: 2, Static: 1}

	if err := c.AddLink(a, b, 0, uuid.New()); err != nil {
		t.Fatalf("AddLink: %v", err)
	}
	c.RemoveIsland(b)

	if c.Reachable(a, b) {
		t.Errorf("expected b to be gone from the graph")
	}
}
