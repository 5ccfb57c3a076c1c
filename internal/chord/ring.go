package chord

import (
	"fmt"
	"sort"

	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/internal/hash"
)

// Ring is the fixed, sorted membership of the identifier ring.
// It never changes after construction.
type Ring struct {
	space   hash.Space
	members []NodeAddress
}

// NewRing builds a ring from members in any order.
func NewRing(space hash.Space, members []NodeAddress) (*Ring, error) {
	if len(members) == 0 {
		return nil, fmt.Errorf("ring must have at least one member")
	}

	sorted := append([]NodeAddress(nil), members...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	for i, m := range sorted {
		if !space.IsValidID(m.ID) {
			return nil, fmt.Errorf("node id %d outside identifier space of %d bits", m.ID, space.Bits())
		}
		if i > 0 && m.ID == sorted[i-1].ID {
			return nil, fmt.Errorf("duplicate node id %d", m.ID)
		}
	}

	return &Ring{space: space, members: sorted}, nil
}

// Space returns the ring's identifier space.
func (r *Ring) Space() hash.Space {
	return r.space
}

// Members returns the members in ascending id order.
func (r *Ring) Members() []NodeAddress {
	return append([]NodeAddress(nil), r.members...)
}

// Len returns the number of members.
func (r *Ring) Len() int {
	return len(r.members)
}

// Lookup returns the member with the given id.
func (r *Ring) Lookup(id uint64) (NodeAddress, bool) {
	i := sort.Search(len(r.members), func(i int) bool { return r.members[i].ID >= id })
	if i < len(r.members) && r.members[i].ID == id {
		return r.members[i], true
	}
	return NodeAddress{}, false
}

// FindSuccessor returns the first member with id >= t, wrapping to the smallest.
func (r *Ring) FindSuccessor(t uint64) NodeAddress {
	i := sort.Search(len(r.members), func(i int) bool { return r.members[i].ID >= t })
	if i == len(r.members) {
		return r.members[0]
	}
	return r.members[i]
}

// FindPredecessor returns the last member with id < t, wrapping to the largest.
func (r *Ring) FindPredecessor(t uint64) NodeAddress {
	i := sort.Search(len(r.members), func(i int) bool { return r.members[i].ID >= t })
	if i == 0 {
		return r.members[len(r.members)-1]
	}
	return r.members[i-1]
}

// Owner returns the member whose interval (pred, id] contains t.
func (r *Ring) Owner(t uint64) NodeAddress {
	return r.FindSuccessor(t)
}
