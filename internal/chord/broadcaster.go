package chord

// Routing event types
const (
	EventStored    = "stored"
	EventRemoved   = "removed"
	EventFound     = "found"
	EventForwarded = "forwarded"
	EventFailed    = "failed"
)

// EventBroadcaster receives routing events from a ChordNode.
// This lets external systems (like WebSocket clients) watch requests flow
// without the node depending on them.
type EventBroadcaster interface {
	BroadcastRoutingEvent(event RoutingEvent) error
}

// RoutingEvent describes one request handled by a node.
type RoutingEvent struct {
	Type      string   `json:"type"`
	NodeID    uint64   `json:"node_id"`
	Op        string   `json:"op"`
	Key       string   `json:"key"`
	Target    uint64   `json:"target"`
	Owner     uint64   `json:"owner"`
	Path      []uint64 `json:"path,omitempty"`
	Reason    string   `json:"reason,omitempty"`
	RequestID string   `json:"request_id,omitempty"`
	Timestamp int64    `json:"timestamp"`
}
