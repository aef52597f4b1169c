package navtile

// TileID identifies a tile within a MeshGrid. 0 is never a valid tile;
// IDs are assigned by the grid (free-list recycled) and fit in 22 bits,
// leaving 10 bits per TriangleID for the in-tile triangle index.
type TileID uint32

// Valid reports whether id was ever handed out by a MeshGrid.
func (id TileID) Valid() bool { return id != 0 }

// triangleIndexBits is the number of low bits of a TriangleID reserved
// for the in-tile triangle index (so at most 1024 triangles per tile,
// matching the 4-bit linkCount/12-bit firstLink triangle record).
const triangleIndexBits = 10

// MaxTrianglesPerTile is the number of triangles a single tile can
// address (indices 0 to MaxTrianglesPerTile-1).
const MaxTrianglesPerTile = 1 << triangleIndexBits

// TriangleID globally identifies a triangle: its tile and its index
// within that tile's Triangle array, packed so TileID occupies the high
// bits and the in-tile index the low bits.
type TriangleID uint32

// MakeTriangleID packs a tile ID and in-tile triangle index into a
// TriangleID.
func MakeTriangleID(tile TileID, index uint16) TriangleID {
	return TriangleID(uint32(tile)<<triangleIndexBits | uint32(index)&(MaxTrianglesPerTile-1))
}

// Tile returns the tile component of id.
func (id TriangleID) Tile() TileID { return TileID(uint32(id) >> triangleIndexBits) }

// Index returns the in-tile triangle index component of id.
func (id TriangleID) Index() uint16 { return uint16(uint32(id) & (MaxTrianglesPerTile - 1)) }

// Valid reports whether id refers to a real triangle slot.
func (id TriangleID) Valid() bool { return id.Tile().Valid() }
