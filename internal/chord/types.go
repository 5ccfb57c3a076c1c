package chord

import "fmt"

// NodeAddress represents a node in the Chord ring with its identifier and network address.
type NodeAddress struct {
	ID   uint64 // Node identifier in the Chord ring (0 to 2^M - 1)
	Host string // Network host (IP address or hostname)
	Port int    // Network port
}

// NewNodeAddress creates a new NodeAddress with the given parameters.
func NewNodeAddress(id uint64, host string, port int) NodeAddress {
	return NodeAddress{ID: id, Host: host, Port: port}
}

// String returns a human-readable representation of the node address.
func (n NodeAddress) String() string {
	return fmt.Sprintf("NodeAddress{ID: %d, Addr: %s:%d}", n.ID, n.Host, n.Port)
}

// Address returns the network address in "host:port" format.
func (n NodeAddress) Address() string {
	return fmt.Sprintf("%s:%d", n.Host, n.Port)
}

// RouteKind is the outcome of a single routing decision.
type RouteKind int

const (
	// RouteLocal means the deciding node owns the target.
	RouteLocal RouteKind = iota
	// RouteSuccessor means the immediate successor owns the target.
	RouteSuccessor
	// RouteFinger means the target is further away; continue at a finger.
	RouteFinger
)

func (k RouteKind) String() string {
	switch k {
	case RouteLocal:
		return "local"
	case RouteSuccessor:
		return "successor"
	case RouteFinger:
		return "finger"
	default:
		return fmt.Sprintf("RouteKind(%d)", int(k))
	}
}

// Decision is what one node says about a target identifier.
// For RouteLocal, Next is the deciding node itself.
type Decision struct {
	Kind RouteKind
	Next NodeAddress
}

// Reply is the result of a Save, Remove or Find.
//
// NodeID is the owner that served the request, or the resolving node when
// the request could not reach the owner. Reason is empty on success and
// one of the Reason* constants otherwise.
type Reply struct {
	NodeID  uint64
	Success bool
	Data    string
	Reason  string
}
