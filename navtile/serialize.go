package navtile

import (
	"bytes"
	"encoding/binary"
	"io"
)

// Encode writes t as four length-prefixed arrays (triangles, vertices,
// nodes, links) followed by its hash, all little-endian, mirroring the
// teacher's SerializeTile/Decode shape (detour/tile.go) one level up:
// this codec carries a single self-contained Tile record rather than a
// whole NavMesh file.
func (t *Tile) Encode(w io.Writer) error {
	var buf bytes.Buffer
	for _, arr := range []interface{}{t.Triangles, t.Vertices, t.Nodes, t.Links} {
		n := reflectLen(arr)
		if err := binary.Write(&buf, binary.LittleEndian, uint32(n)); err != nil {
			return err
		}
		if err := binary.Write(&buf, binary.LittleEndian, arr); err != nil {
			return err
		}
	}
	if err := binary.Write(&buf, binary.LittleEndian, t.HashValue); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Decode reads a Tile previously written by Encode. HashValue is the
// generator's content fingerprint (§4.2: seeded from boundary/exclusion
// data, then mixed with voxelisation content) — Decode cannot recompute
// it from the serialised arrays alone, since that requires the original
// generation inputs. A caller that needs to validate a loaded tile
// against expected content re-runs Generate with NoHashTest=false and
// checks for HashMatch, the same mechanism used for incremental
// regeneration.
func Decode(r io.Reader) (*Tile, error) {
	var t Tile

	var triCount uint32
	if err := binary.Read(r, binary.LittleEndian, &triCount); err != nil {
		return nil, err
	}
	t.Triangles = make([]Triangle, triCount)
	if err := binary.Read(r, binary.LittleEndian, t.Triangles); err != nil {
		return nil, err
	}

	var vertCount uint32
	if err := binary.Read(r, binary.LittleEndian, &vertCount); err != nil {
		return nil, err
	}
	t.Vertices = make([]Vertex, vertCount)
	if err := binary.Read(r, binary.LittleEndian, t.Vertices); err != nil {
		return nil, err
	}

	var nodeCount uint32
	if err := binary.Read(r, binary.LittleEndian, &nodeCount); err != nil {
		return nil, err
	}
	t.Nodes = make([]BVNode, nodeCount)
	if err := binary.Read(r, binary.LittleEndian, t.Nodes); err != nil {
		return nil, err
	}

	var linkCount uint32
	if err := binary.Read(r, binary.LittleEndian, &linkCount); err != nil {
		return nil, err
	}
	t.Links = make([]Link, linkCount)
	if err := binary.Read(r, binary.LittleEndian, t.Links); err != nil {
		return nil, err
	}

	if err := binary.Read(r, binary.LittleEndian, &t.HashValue); err != nil {
		return nil, err
	}
	return &t, nil
}

func reflectLen(arr interface{}) int {
	switch a := arr.(type) {
	case []Triangle:
		return len(a)
	case []Vertex:
		return len(a)
	case []BVNode:
		return len(a)
	case []Link:
		return len(a)
	}
	return 0
}
