// Package offmesh holds the interfaces and small data types MeshGrid
// consumes but never owns: the off-mesh link graph, the hosting
// application's per-agent navigation policy, and the inter-island
// connectivity graph off-mesh links induce.
package offmesh

import (
	"github.com/arl/mnm/fixed"
	"github.com/arl/mnm/navtile"
	"github.com/google/uuid"
)

// LinkID identifies one off-mesh link within an OffMeshNavigation.
type LinkID uint32

// AgentID identifies the agent a navigation query is being run for, so a
// NavigationContext can apply per-agent policy (radius, traversable
// flags, link permissions). Call sites outside this package mint these
// with uuid.New(); the zero value names no agent.
type AgentID = uuid.UUID

// Link describes one off-mesh connection: the triangle it starts from,
// the triangle it ends at, whether it can be traversed in both
// directions, and the entity that registered it (used by
// IslandConnections to let policy objects reject a connection by its
// owner rather than by link ID alone).
type Link struct {
	Start, End navtile.TriangleID
	EntityID   uuid.UUID
	Bidir      bool
}

// Target is one destination an off-mesh link can deliver a query to.
type Target struct {
	Triangle navtile.TriangleID
	Link     LinkID
}

// Navigation is the read-only view of the off-mesh link graph the A*
// pathfinder and raycaster consult. Ownership of the underlying link
// table lives with the hosting application; MeshGrid only ever reads it
// through this interface.
type Navigation interface {
	// LinksFrom returns every destination reachable from fromTri through
	// the off-mesh link whose index in the off-mesh link table (the
	// Triangle field of fromTri's OffMesh navtile.Link) is offMeshIndex.
	LinksFrom(fromTri navtile.TriangleID, offMeshIndex uint16) []Target

	// LinkInfo returns the full record for a link, or ok=false if id is
	// unknown (the link was removed since the query started).
	LinkInfo(id LinkID) (Link, bool)
}

// NavigationContext is the callback surface into the hosting AI system:
// per-agent permission to use a specific off-mesh link, and whether a
// candidate position is valid ground for a given agent (radius,
// clearance, custom flags — all owned by the caller).
type NavigationContext interface {
	// CanUseOffMeshLink reports whether agent may take link, and if so
	// the cost multiplier to apply to the link's traversal cost.
	CanUseOffMeshLink(agent AgentID, link LinkID) (allowed bool, costMultiplier fixed.Real)

	// IsPointValidForAgent reports whether pos is usable ground for
	// agent, subject to caller-defined flags (clearance, traversable
	// surface types, etc).
	IsPointValidForAgent(agent AgentID, pos fixed.Vector3, flags uint32) bool
}
