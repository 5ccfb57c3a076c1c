package chord

import "fmt"

// FingerEntry represents an entry in the Chord finger table.
// Entry i tracks the successor of (n + 2^i) mod 2^M.
type FingerEntry struct {
	Start uint64      // (n + 2^i) mod 2^M
	Node  NodeAddress // First member that succeeds or equals Start
}

// String returns a human-readable representation of the finger entry.
func (f FingerEntry) String() string {
	return fmt.Sprintf("FingerEntry{Start: %d, Node: %d}", f.Start, f.Node.ID)
}

// FingerTable is a node's M routing shortcuts. It is computed once and never mutated.
type FingerTable []FingerEntry

// BuildFingerTable computes the finger table of self over ring.
func BuildFingerTable(ring *Ring, self uint64) FingerTable {
	space := ring.Space()
	table := make(FingerTable, space.Bits())
	for i := range table {
		start := space.AddPowerOfTwo(self, i)
		table[i] = FingerEntry{Start: start, Node: ring.FindSuccessor(start)}
	}
	return table
}

// IDs returns the node id of every entry, in finger order.
func (ft FingerTable) IDs() []uint64 {
	ids := make([]uint64, len(ft))
	for i, f := range ft {
		ids[i] = f.Node.ID
	}
	return ids
}
