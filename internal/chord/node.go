package chord

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/internal/config"
	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/internal/hash"
	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/pkg"
)

// Operation names used in logs and events.
const (
	OpSave   = "save"
	OpRemove = "remove"
	OpFind   = "find"
)

// NodeInfo is a snapshot of a node's place on the ring.
type NodeInfo struct {
	Self        NodeAddress
	Predecessor NodeAddress
	Successor   NodeAddress
	KeyCount    int
	Stats       pkg.Stats
}

// ChordNode represents a node in the static Chord ring.
type ChordNode struct {
	self   NodeAddress
	space  hash.Space
	ring   *Ring
	router *Router

	config *config.Config
	store  *LocalStore
	logger *pkg.Logger

	// Remote client and event sink, set after construction
	remote RemoteClient
	events EventBroadcaster
	mu     sync.RWMutex

	shutdown atomic.Bool
}

// operation binds one of Save/Remove/Find to its local and remote forms.
type operation struct {
	name   string
	key    string
	local  func(ctx context.Context) (*Reply, error)
	remote func(ctx context.Context, client RemoteClient, address string) (*Reply, error)
}

// NewChordNode creates a new Chord node with the given configuration.
func NewChordNode(cfg *config.Config, logger *pkg.Logger) (*ChordNode, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	space, err := hash.NewSpace(cfg.M)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	members := make([]NodeAddress, len(cfg.Members))
	for i, m := range cfg.Members {
		members[i] = NewNodeAddress(m.ID, m.Host, m.Port)
	}

	ring, err := NewRing(space, members)
	if err != nil {
		return nil, fmt.Errorf("failed to build ring: %w", err)
	}

	self, _ := ring.Lookup(cfg.Self().ID)
	router := NewRouter(ring, self)

	node := &ChordNode{
		self:   self,
		space:  space,
		ring:   ring,
		router: router,
		config: cfg,
		store:  NewDefaultLocalStore(),
		logger: logger.WithFields(pkg.Fields{"node_id": self.ID}),
	}

	node.logger.Info().
		Str("address", self.Address()).
		Uint64("predecessor", router.Predecessor().ID).
		Uint64("successor", router.Successor().ID).
		Interface("finger_table", router.Fingers().IDs()).
		Msg("ChordNode created")

	return node, nil
}

// ID returns the node's identifier.
func (n *ChordNode) ID() uint64 {
	return n.self.ID
}

// Address returns the node's network address.
func (n *ChordNode) Address() NodeAddress {
	return n.self
}

// Ring returns the static ring membership.
func (n *ChordNode) Ring() *Ring {
	return n.ring
}

// SetRemote sets the remote client for making RPC calls to other nodes.
func (n *ChordNode) SetRemote(remote RemoteClient) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.remote = remote
}

// SetBroadcaster sets where routing events are published. nil disables events.
func (n *ChordNode) SetBroadcaster(b EventBroadcaster) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = b
}

func (n *ChordNode) getRemote() RemoteClient {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.remote
}

// Save stores text under key on the key's owner.
func (n *ChordNode) Save(ctx context.Context, key, text string) (*Reply, error) {
	return n.execute(ctx, n.saveOp(key, text))
}

// Remove deletes key from its owner. Removing an absent key fails with pkg.ErrKeyNotFound.
func (n *ChordNode) Remove(ctx context.Context, key string) (*Reply, error) {
	return n.execute(ctx, n.removeOp(key))
}

// Find looks key up on its owner. A missing key fails with pkg.ErrKeyNotFound and empty Data.
func (n *ChordNode) Find(ctx context.Context, key string) (*Reply, error) {
	return n.execute(ctx, n.findOp(key))
}

// ServeSave handles a Save delivered by another node. It never forwards.
func (n *ChordNode) ServeSave(ctx context.Context, key, text string) (*Reply, error) {
	return n.serveDelivered(ctx, n.saveOp(key, text))
}

// ServeRemove handles a Remove delivered by another node. It never forwards.
func (n *ChordNode) ServeRemove(ctx context.Context, key string) (*Reply, error) {
	return n.serveDelivered(ctx, n.removeOp(key))
}

// ServeFind handles a Find delivered by another node. It never forwards.
func (n *ChordNode) ServeFind(ctx context.Context, key string) (*Reply, error) {
	return n.serveDelivered(ctx, n.findOp(key))
}

// Route returns this node's one-step routing decision for target.
func (n *ChordNode) Route(target uint64) Decision {
	return n.router.Locate(n.space.Mod(target))
}

// FingerTable returns the node ids of the finger table, in finger order.
func (n *ChordNode) FingerTable() []uint64 {
	return n.router.Fingers().IDs()
}

// Info returns the node's neighbours and local key count.
func (n *ChordNode) Info() NodeInfo {
	return NodeInfo{
		Self:        n.self,
		Predecessor: n.router.Predecessor(),
		Successor:   n.router.Successor(),
		KeyCount:    n.store.Len(),
		Stats:       n.store.Stats(),
	}
}

// Stats returns the counters of the local store.
func (n *ChordNode) Stats() pkg.Stats {
	return n.store.Stats()
}

// Owns reports whether the node is responsible for key.
func (n *ChordNode) Owns(key string) bool {
	return n.router.Owns(n.space.HashKey(key))
}

// Lookup resolves the owner of key without touching any store.
// The returned path starts with this node and ends with the owner.
func (n *ChordNode) Lookup(ctx context.Context, key string) (NodeAddress, []NodeAddress, error) {
	if key == "" {
		return NodeAddress{}, nil, ErrInvalidKey
	}
	return n.resolve(ctx, n.space.HashKey(key))
}

// IsShutdown reports whether Shutdown has been called.
func (n *ChordNode) IsShutdown() bool {
	return n.shutdown.Load()
}

// Shutdown releases the node's store. Later requests fail with pkg.ErrStorageUnavailable.
func (n *ChordNode) Shutdown() error {
	if !n.shutdown.CompareAndSwap(false, true) {
		return nil
	}

	n.logger.Info().Int("keys", n.store.Len()).Msg("Shutting down ChordNode")
	return n.store.Close()
}

func (n *ChordNode) saveOp(key, text string) operation {
	return operation{
		name: OpSave,
		key:  key,
		local: func(ctx context.Context) (*Reply, error) {
			replaced, err := n.store.Save(ctx, key, text)
			if err != nil {
				return n.failure(err), err
			}
			n.logger.WithContext(ctx).Debug().
				Str("key", key).
				Bool("replaced", replaced).
				Msg("Key saved")
			return &Reply{NodeID: n.self.ID, Success: true}, nil
		},
		remote: func(ctx context.Context, client RemoteClient, address string) (*Reply, error) {
			return client.SaveData(ctx, address, key, text)
		},
	}
}

func (n *ChordNode) removeOp(key string) operation {
	return operation{
		name: OpRemove,
		key:  key,
		local: func(ctx context.Context) (*Reply, error) {
			if err := n.store.Remove(ctx, key); err != nil {
				return n.failure(err), err
			}
			return &Reply{NodeID: n.self.ID, Success: true}, nil
		},
		remote: func(ctx context.Context, client RemoteClient, address string) (*Reply, error) {
			return client.RemoveData(ctx, address, key)
		},
	}
}

func (n *ChordNode) findOp(key string) operation {
	return operation{
		name: OpFind,
		key:  key,
		local: func(ctx context.Context) (*Reply, error) {
			data, err := n.store.Find(ctx, key)
			if err != nil {
				return n.failure(err), err
			}
			return &Reply{NodeID: n.self.ID, Success: true, Data: data}, nil
		},
		remote: func(ctx context.Context, client RemoteClient, address string) (*Reply, error) {
			return client.FindData(ctx, address, key)
		},
	}
}

// execute resolves the owner of op.key and runs op there.
func (n *ChordNode) execute(ctx context.Context, op operation) (*Reply, error) {
	if op.key == "" {
		return n.failure(ErrInvalidKey), ErrInvalidKey
	}
	if n.IsShutdown() {
		return n.failure(pkg.ErrStorageUnavailable), pkg.ErrStorageUnavailable
	}

	target := n.space.HashKey(op.key)
	logger := n.logger.WithContext(ctx)

	owner, path, err := n.Lookup(ctx, op.key)
	if err != nil {
		logger.Warn().
			Err(err).
			Str("op", op.name).
			Str("key", op.key).
			Uint64("target", target).
			Interface("path", pathIDs(path)).
			Msg("Failed to resolve owner")
		n.emit(ctx, EventFailed, op, target, n.self.ID, path, err)
		return n.failure(err), err
	}

	if owner.ID == n.self.ID {
		return n.serve(ctx, op, target)
	}

	remote := n.getRemote()
	if remote == nil {
		err := fmt.Errorf("%w: remote client not set", ErrUnreachable)
		n.emit(ctx, EventFailed, op, target, owner.ID, path, err)
		return n.failure(err), err
	}

	logger.Debug().
		Str("op", op.name).
		Str("key", op.key).
		Uint64("target", target).
		Uint64("from", n.self.ID).
		Uint64("to", owner.ID).
		Interface("path", pathIDs(path)).
		Msg("Forwarding to owner")

	hopCtx, cancel := context.WithTimeout(ctx, n.config.RPCTimeout)
	defer cancel()

	reply, err := op.remote(hopCtx, remote, owner.Address())
	if err != nil {
		err = fmt.Errorf("%w: %s at %s: %v", ErrUnreachable, op.name, owner.Address(), err)
		logger.Warn().
			Err(err).
			Str("op", op.name).
			Uint64("owner", owner.ID).
			Msg("Owner did not answer")
		n.emit(ctx, EventFailed, op, target, owner.ID, path, err)
		return n.failure(err), err
	}

	replyErr := ErrorForReason(reply.Reason)
	if !reply.Success && replyErr == nil {
		replyErr = fmt.Errorf("%s failed at node %d", op.name, reply.NodeID)
	}
	n.emit(ctx, EventForwarded, op, target, owner.ID, path, replyErr)
	return reply, replyErr
}

// serveDelivered runs op only if this node owns op.key.
func (n *ChordNode) serveDelivered(ctx context.Context, op operation) (*Reply, error) {
	if op.key == "" {
		return n.failure(ErrInvalidKey), ErrInvalidKey
	}

	target := n.space.HashKey(op.key)
	if !n.Owns(op.key) {
		err := fmt.Errorf("%w: target %d belongs to (%d, %d]", ErrMisrouted, target,
			n.router.Predecessor().ID, n.self.ID)
		n.logger.WithContext(ctx).Warn().
			Str("op", op.name).
			Str("key", op.key).
			Uint64("target", target).
			Msg("Rejected misrouted request")
		n.emit(ctx, EventFailed, op, target, n.self.ID, nil, err)
		return n.failure(err), err
	}

	return n.serve(ctx, op, target)
}

// serve applies op to the local store and publishes the outcome.
func (n *ChordNode) serve(ctx context.Context, op operation, target uint64) (*Reply, error) {
	reply, err := op.local(ctx)

	eventType := EventFailed
	if err == nil {
		switch op.name {
		case OpSave:
			eventType = EventStored
		case OpRemove:
			eventType = EventRemoved
		case OpFind:
			eventType = EventFound
		}
	}

	n.logger.WithContext(ctx).Debug().
		Str("op", op.name).
		Str("key", op.key).
		Uint64("target", target).
		Bool("success", reply.Success).
		Msg("Served locally")

	n.emit(ctx, eventType, op, target, n.self.ID, []NodeAddress{n.self}, err)
	return reply, err
}

// resolve follows routing decisions from this node until one names the owner.
// Each remote hop is bounded by RPCTimeout; at most MaxHops finger hops are taken.
func (n *ChordNode) resolve(ctx context.Context, target uint64) (NodeAddress, []NodeAddress, error) {
	path := []NodeAddress{n.self}
	decision := n.router.Locate(target)

	for hops := 0; ; {
		switch decision.Kind {
		case RouteLocal:
			return decision.Next, path, nil
		case RouteSuccessor:
			return decision.Next, append(path, decision.Next), nil
		}

		hops++
		if hops > n.config.MaxHops {
			return NodeAddress{}, path, fmt.Errorf("%w: gave up after %d hops towards %d",
				ErrHopLimitExceeded, n.config.MaxHops, target)
		}

		next := decision.Next
		path = append(path, next)

		remote := n.getRemote()
		if remote == nil {
			return NodeAddress{}, path, fmt.Errorf("%w: remote client not set", ErrUnreachable)
		}

		n.logger.WithContext(ctx).Debug().
			Uint64("target", target).
			Uint64("hop", next.ID).
			Int("hops", hops).
			Msg("Following finger")

		hopCtx, cancel := context.WithTimeout(ctx, n.config.RPCTimeout)
		d, err := remote.Route(hopCtx, next.Address(), target)
		cancel()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return NodeAddress{}, path, fmt.Errorf("%w: %w", ErrUnreachable, ctxErr)
			}
			return NodeAddress{}, path, fmt.Errorf("%w: route via %s: %v", ErrUnreachable, next.Address(), err)
		}
		decision = d
	}
}

// failure is the reply shape for a request this node could not complete.
func (n *ChordNode) failure(err error) *Reply {
	return &Reply{
		NodeID:  n.self.ID,
		Success: false,
		Reason:  ReasonFor(err),
	}
}

func (n *ChordNode) emit(ctx context.Context, eventType string, op operation, target, owner uint64, path []NodeAddress, err error) {
	n.mu.RLock()
	events := n.events
	n.mu.RUnlock()

	if events == nil {
		return
	}

	event := RoutingEvent{
		Type:      eventType,
		NodeID:    n.self.ID,
		Op:        op.name,
		Key:       op.key,
		Target:    target,
		Owner:     owner,
		Path:      pathIDs(path),
		Reason:    ReasonFor(err),
		RequestID: pkg.RequestIDFromContext(ctx),
		Timestamp: time.Now().Unix(),
	}

	if err := events.BroadcastRoutingEvent(event); err != nil {
		n.logger.Debug().Err(err).Str("event", eventType).Msg("Failed to broadcast routing event")
	}
}

func pathIDs(path []NodeAddress) []uint64 {
	ids := make([]uint64, len(path))
	for i, p := range path {
		ids[i] = p.ID
	}
	return ids
}
