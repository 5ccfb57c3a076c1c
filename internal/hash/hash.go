// Package hash maps keys onto the Chord identifier ring and provides the
// modular interval arithmetic used for ownership and routing decisions.
package hash

import (
	"fmt"
	"hash/adler32"
)

const (
	// DefaultM is the identifier width of the deployed ring (32 positions).
	DefaultM = 5

	// MaxM keeps identifiers representable in the int32 wire fields.
	MaxM = 31
)

// Space is an identifier space [0, 2^M) of M bits.
type Space struct {
	m    int
	size uint64
}

// NewSpace returns the identifier space for m bits.
func NewSpace(m int) (Space, error) {
	if m < 1 || m > MaxM {
		return Space{}, fmt.Errorf("M must be between 1 and %d, got %d", MaxM, m)
	}
	return Space{m: m, size: uint64(1) << uint(m)}, nil
}

// MustSpace is like NewSpace but panics on an invalid width.
func MustSpace(m int) Space {
	s, err := NewSpace(m)
	if err != nil {
		panic(err)
	}
	return s
}

// Bits returns M.
func (s Space) Bits() int {
	return s.m
}

// Size returns 2^M, the number of positions on the ring.
func (s Space) Size() uint64 {
	return s.size
}

// MaxID returns 2^M - 1.
func (s Space) MaxID() uint64 {
	return s.size - 1
}

// Mod reduces id onto the ring.
func (s Space) Mod(id uint64) uint64 {
	return id & (s.size - 1)
}

// IsValidID reports whether id lies in [0, 2^M).
func (s Space) IsValidID(id uint64) bool {
	return id < s.size
}

// HashKey returns the Adler-32 checksum of key reduced modulo 2^M.
// The checksum is not cryptographic; colliding keys share an owner.
func (s Space) HashKey(key string) uint64 {
	return s.Mod(uint64(adler32.Checksum([]byte(key))))
}

// AddPowerOfTwo returns (id + 2^i) mod 2^M.
func (s Space) AddPowerOfTwo(id uint64, i int) uint64 {
	return s.Mod(id + (uint64(1) << uint(i)))
}

// InRange checks if id is in the circular interval (start, end].
// The interval wraps around zero when end <= start. When start == end the
// interval covers the whole ring, which is what a single-member ring owns.
//
// Examples:
//   - InRange(20, 16, 24) = true   // 20 is in (16, 24]
//   - InRange(16, 16, 24) = false  // exclusive start
//   - InRange(0, 31, 2)   = true   // wraps past 2^M - 1
//   - InRange(7, 7, 7)    = true   // whole ring
func InRange(id, start, end uint64) bool {
	switch {
	case start < end:
		return id > start && id <= end
	case start > end:
		return id > start || id <= end
	default:
		return true
	}
}

// Between checks if id is in the open circular interval (start, end).
// When start == end it covers every id except start.
func Between(id, start, end uint64) bool {
	switch {
	case start < end:
		return id > start && id < end
	case start > end:
		return id > start || id < end
	default:
		return id != start
	}
}
