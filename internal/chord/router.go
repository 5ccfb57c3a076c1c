package chord

import (
	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/internal/hash"
)

// Router makes the greedy forward-or-serve decision for one node.
type Router struct {
	self        NodeAddress
	predecessor NodeAddress
	successor   NodeAddress
	fingers     FingerTable
}

// NewRouter derives self's neighbours and finger table from ring.
func NewRouter(ring *Ring, self NodeAddress) *Router {
	return &Router{
		self:        self,
		predecessor: ring.FindPredecessor(self.ID),
		successor:   ring.FindSuccessor(ring.Space().AddPowerOfTwo(self.ID, 0)),
		fingers:     BuildFingerTable(ring, self.ID),
	}
}

// Self returns the routing node.
func (r *Router) Self() NodeAddress { return r.self }

// Predecessor returns the previous member on the ring.
func (r *Router) Predecessor() NodeAddress { return r.predecessor }

// Successor returns the next member on the ring.
func (r *Router) Successor() NodeAddress { return r.successor }

// Fingers returns the finger table.
func (r *Router) Fingers() FingerTable {
	return append(FingerTable(nil), r.fingers...)
}

// Owns reports whether target falls in (predecessor, self].
func (r *Router) Owns(target uint64) bool {
	return hash.InRange(target, r.predecessor.ID, r.self.ID)
}

// Locate decides what to do with target:
//  1. target in (pred, self]  -> RouteLocal
//  2. target in (self, succ]  -> RouteSuccessor
//  3. otherwise               -> RouteFinger to the closest preceding finger
func (r *Router) Locate(target uint64) Decision {
	if r.Owns(target) {
		return Decision{Kind: RouteLocal, Next: r.self}
	}
	if hash.InRange(target, r.self.ID, r.successor.ID) {
		return Decision{Kind: RouteSuccessor, Next: r.successor}
	}
	return Decision{Kind: RouteFinger, Next: r.closestPrecedingFinger(target)}
}

// closestPrecedingFinger scans from the farthest finger down for one strictly
// between self and target. The successor is the fallback.
func (r *Router) closestPrecedingFinger(target uint64) NodeAddress {
	for i := len(r.fingers) - 1; i >= 0; i-- {
		node := r.fingers[i].Node
		if hash.Between(node.ID, r.self.ID, target) {
			return node
		}
	}
	return r.successor
}
