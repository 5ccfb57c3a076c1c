package chord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/internal/hash"
)

var testIDs = []uint64{2, 16, 24, 25, 26, 31}

func createTestRing(t *testing.T) *Ring {
	t.Helper()

	// deliberately unsorted
	members := []NodeAddress{
		NewNodeAddress(26, "127.0.0.1", 5004),
		NewNodeAddress(2, "127.0.0.1", 5000),
		NewNodeAddress(31, "127.0.0.1", 5005),
		NewNodeAddress(16, "127.0.0.1", 5001),
		NewNodeAddress(25, "127.0.0.1", 5003),
		NewNodeAddress(24, "127.0.0.1", 5002),
	}

	ring, err := NewRing(hash.MustSpace(hash.DefaultM), members)
	require.NoError(t, err)
	return ring
}

func TestNewRing(t *testing.T) {
	ring := createTestRing(t)

	ids := make([]uint64, 0, ring.Len())
	for _, m := range ring.Members() {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, testIDs, ids, "members must be sorted")

	space := hash.MustSpace(hash.DefaultM)

	_, err := NewRing(space, nil)
	assert.Error(t, err, "empty ring")

	_, err = NewRing(space, []NodeAddress{{ID: 3}, {ID: 3}})
	assert.Error(t, err, "duplicate ids")

	_, err = NewRing(space, []NodeAddress{{ID: 32}})
	assert.Error(t, err, "id outside space")
}

func TestRingFindSuccessor(t *testing.T) {
	ring := createTestRing(t)

	tests := []struct {
		target uint64
		want   uint64
	}{
		{target: 0, want: 2},
		{target: 2, want: 2},
		{target: 3, want: 16},
		{target: 16, want: 16},
		{target: 20, want: 24},
		{target: 25, want: 25},
		{target: 27, want: 31},
		{target: 31, want: 31},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ring.FindSuccessor(tt.target).ID, "successor of %d", tt.target)
		assert.Equal(t, tt.want, ring.Owner(tt.target).ID, "owner of %d", tt.target)
	}
}

func TestRingFindPredecessor(t *testing.T) {
	ring := createTestRing(t)

	tests := []struct {
		target uint64
		want   uint64
	}{
		{target: 0, want: 31},
		{target: 2, want: 31},
		{target: 3, want: 2},
		{target: 16, want: 2},
		{target: 17, want: 16},
		{target: 25, want: 24},
		{target: 31, want: 26},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ring.FindPredecessor(tt.target).ID, "predecessor of %d", tt.target)
	}
}

func TestRingLookup(t *testing.T) {
	ring := createTestRing(t)

	node, ok := ring.Lookup(24)
	require.True(t, ok)
	assert.Equal(t, "127.0.0.1:5002", node.Address())

	_, ok = ring.Lookup(20)
	assert.False(t, ok)
}

func TestBuildFingerTable(t *testing.T) {
	ring := createTestRing(t)

	want := map[uint64][]uint64{
		2:  {16, 16, 16, 16, 24},
		16: {24, 24, 24, 24, 2},
		24: {25, 26, 31, 2, 16},
		25: {26, 31, 31, 2, 16},
		26: {31, 31, 31, 2, 16},
		31: {2, 2, 16, 16, 16},
	}

	for id, fingers := range want {
		table := BuildFingerTable(ring, id)
		require.Len(t, table, hash.DefaultM)
		assert.Equal(t, fingers, table.IDs(), "finger table of %d", id)

		// entry i starts at (id + 2^i) mod 2^M
		for i, f := range table {
			assert.Equal(t, ring.Space().AddPowerOfTwo(id, i), f.Start)
		}

		// rebuilding must give the identical table
		assert.Equal(t, table, BuildFingerTable(ring, id))
	}
}

func TestRouterNeighbours(t *testing.T) {
	ring := createTestRing(t)

	tests := []struct {
		self, pred, succ uint64
	}{
		{self: 2, pred: 31, succ: 16},
		{self: 16, pred: 2, succ: 24},
		{self: 26, pred: 25, succ: 31},
		{self: 31, pred: 26, succ: 2},
	}

	for _, tt := range tests {
		node, _ := ring.Lookup(tt.self)
		r := NewRouter(ring, node)
		assert.Equal(t, tt.pred, r.Predecessor().ID)
		assert.Equal(t, tt.succ, r.Successor().ID)
		assert.Equal(t, tt.self, r.Self().ID)
	}
}

func TestRouterLocate(t *testing.T) {
	ring := createTestRing(t)

	tests := []struct {
		name     string
		self     uint64
		target   uint64
		wantKind RouteKind
		wantNext uint64
	}{
		{name: "owner serves", self: 24, target: 20, wantKind: RouteLocal, wantNext: 24},
		{name: "successor owns", self: 16, target: 20, wantKind: RouteSuccessor, wantNext: 24},
		{name: "closest preceding finger", self: 2, target: 20, wantKind: RouteFinger, wantNext: 16},
		{name: "finger across zero", self: 31, target: 20, wantKind: RouteFinger, wantNext: 16},
		{name: "wrapped ownership", self: 2, target: 0, wantKind: RouteLocal, wantNext: 2},
		{name: "wrapped successor", self: 31, target: 0, wantKind: RouteSuccessor, wantNext: 2},
		{name: "own id", self: 31, target: 31, wantKind: RouteLocal, wantNext: 31},
		{name: "finger towards wrap", self: 26, target: 0, wantKind: RouteFinger, wantNext: 31},
		{name: "finger long way round", self: 24, target: 12, wantKind: RouteFinger, wantNext: 2},
		{name: "adjacent successor", self: 25, target: 26, wantKind: RouteSuccessor, wantNext: 26},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, ok := ring.Lookup(tt.self)
			require.True(t, ok)

			d := NewRouter(ring, node).Locate(tt.target)
			assert.Equal(t, tt.wantKind, d.Kind)
			assert.Equal(t, tt.wantNext, d.Next.ID)
		})
	}
}

func TestRouterClosestPrecedingFallback(t *testing.T) {
	space := hash.MustSpace(3)
	ring, err := NewRing(space, []NodeAddress{{ID: 1}, {ID: 2}, {ID: 6}})
	require.NoError(t, err)

	// fingers of 1 are [2, 6, 6]; nothing lies strictly in (1, 2)
	node, _ := ring.Lookup(1)
	r := NewRouter(ring, node)
	assert.Equal(t, uint64(2), r.closestPrecedingFinger(2).ID)
}

func TestPartitionInvariant(t *testing.T) {
	ring := createTestRing(t)

	routers := make([]*Router, 0, ring.Len())
	for _, m := range ring.Members() {
		routers = append(routers, NewRouter(ring, m))
	}

	for target := uint64(0); target < ring.Space().Size(); target++ {
		var owners []uint64
		for _, r := range routers {
			if r.Owns(target) {
				owners = append(owners, r.Self().ID)
			}
		}
		require.Len(t, owners, 1, "target %d must have exactly one owner", target)
		assert.Equal(t, ring.Owner(target).ID, owners[0])
	}
}

func TestSingleMemberRingOwnsEverything(t *testing.T) {
	space := hash.MustSpace(hash.DefaultM)
	ring, err := NewRing(space, []NodeAddress{{ID: 9, Host: "h", Port: 1}})
	require.NoError(t, err)

	r := NewRouter(ring, ring.Members()[0])
	for target := uint64(0); target < space.Size(); target++ {
		d := r.Locate(target)
		assert.Equal(t, RouteLocal, d.Kind, "target %d", target)
	}
	assert.Equal(t, []uint64{9, 9, 9, 9, 9}, r.Fingers().IDs())
}

func TestRouteKindString(t *testing.T) {
	assert.Equal(t, "local", RouteLocal.String())
	assert.Equal(t, "successor", RouteSuccessor.String())
	assert.Equal(t, "finger", RouteFinger.String())
	assert.Equal(t, "RouteKind(7)", RouteKind(7).String())
}
