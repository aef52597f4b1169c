package fixed

import "math"

// Hash is a stream-style MurmurHash3-32 mixer, fed one uint32 (or
// bit-reinterpreted float32) at a time. Tile generation seeds it from
// boundary/exclusion volume data, then mixes in voxelisation content;
// the resulting value is the tile's content fingerprint (hashSeed,
// then hashValue once voxelisation content has been folded in).
//
// Mixing constants match MurmurHash3-32 verbatim (ported from
// MNM::HashComputer in the original source).
type Hash struct {
	hash uint32
	len  uint32
}

// NewHash creates a hash mixer seeded with seed (0 for a fresh hash).
func NewHash(seed uint32) *Hash {
	return &Hash{hash: seed}
}

func rotl32(x uint32, r uint32) uint32 {
	return (x << r) | (x >> (32 - r))
}

// Add mixes a raw uint32 key into the hash.
func (h *Hash) Add(key uint32) {
	key *= 0xcc9e2d51
	key = rotl32(key, 15)
	key *= 0x1b873593

	h.hash ^= key
	h.hash = rotl32(h.hash, 13)
	h.hash = h.hash*5 + 0xe6546b64

	h.len += 4
}

// AddFloat32 mixes the bit pattern of a float32 key into the hash.
func (h *Hash) AddFloat32(key float32) {
	h.Add(math.Float32bits(key))
}

// AddReal mixes a fixed-point Real into the hash, treating its raw
// int32 representation as the key (deterministic, no float involved).
func (h *Hash) AddReal(key Real) {
	h.Add(uint32(key))
}

// AddVector3 mixes all three components of a fixed-point vector.
func (h *Hash) AddVector3(v Vector3) {
	h.AddReal(v.X)
	h.AddReal(v.Y)
	h.AddReal(v.Z)
}

// Complete finalises the hash (MurmurHash3 avalanche) and returns the
// resulting 32-bit value. The mixer may continue to be used afterwards;
// Complete does not reset internal state other than what avalanching
// implies, matching the reference implementation which exposes
// GetValue() as a read of the post-Complete hash field.
func (h *Hash) Complete() uint32 {
	h.hash ^= h.len

	h.hash ^= h.hash >> 16
	h.hash *= 0x85ebca6b
	h.hash ^= h.hash >> 13
	h.hash *= 0xc2b2ae35
	h.hash ^= h.hash >> 16

	return h.hash
}

// Value returns the current hash value without finalising it.
func (h *Hash) Value() uint32 { return h.hash }
