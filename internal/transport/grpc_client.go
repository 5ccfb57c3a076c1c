package transport

import (
	"context"
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/internal/chord"
	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/pkg"
	pb "github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/protobuf/protogen"
)

// Compile-time check to ensure GRPCClient implements chord.RemoteClient
var _ chord.RemoteClient = (*GRPCClient)(nil)

// GRPCClient manages connections to remote Chord nodes.
//
// The Route, SaveData, RemoveData and FindData methods are the peer calls a
// ChordNode makes while resolving a request; deliveries are marked forwarded.
// Save, Remove, Find, FingerTable and NodeInfo are the client-facing calls used
// by the shell, which let the receiving node do the routing.
type GRPCClient struct {
	logger *pkg.Logger

	// Connection pool
	connections map[string]*grpc.ClientConn
	connMu      sync.RWMutex

	// Default timeout for RPC calls whose context carries no deadline
	timeout time.Duration
}

// NewGRPCClient creates a new gRPC client.
func NewGRPCClient(logger *pkg.Logger, timeout time.Duration) *GRPCClient {
	if logger == nil {
		logger = pkg.Nop()
	}

	return &GRPCClient{
		logger:      logger.WithFields(pkg.Fields{"component": "grpc_client"}),
		connections: make(map[string]*grpc.ClientConn),
		timeout:     timeout,
	}
}

// getConnection returns a connection to the given address, creating one if needed.
func (c *GRPCClient) getConnection(address string) (*grpc.ClientConn, error) {
	c.connMu.RLock()
	conn, exists := c.connections[address]
	c.connMu.RUnlock()

	if exists && conn.GetState() != connectivity.Shutdown {
		return conn, nil
	}

	c.connMu.Lock()
	defer c.connMu.Unlock()

	// Double-check after acquiring write lock
	conn, exists = c.connections[address]
	if exists && conn.GetState() != connectivity.Shutdown {
		return conn, nil
	}

	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithChainUnaryInterceptor(RequestIDClientInterceptor()),
	}

	newConn, err := grpc.NewClient(address, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", address, err)
	}

	c.connections[address] = newConn
	c.logger.Debug().Str("address", address).Msg("Created new gRPC connection")

	return newConn, nil
}

func (c *GRPCClient) service(ctx context.Context, address string) (pb.ChordServiceClient, context.Context, context.CancelFunc, error) {
	conn, err := c.getConnection(address)
	if err != nil {
		return nil, nil, nil, err
	}

	if _, ok := ctx.Deadline(); ok || c.timeout <= 0 {
		ctx, cancel := context.WithCancel(ctx)
		return pb.NewChordServiceClient(conn), ctx, cancel, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	return pb.NewChordServiceClient(conn), ctx, cancel, nil
}

// Route asks the node at address for its routing decision about target.
func (c *GRPCClient) Route(ctx context.Context, address string, target uint64) (chord.Decision, error) {
	client, ctx, cancel, err := c.service(ctx, address)
	if err != nil {
		return chord.Decision{}, err
	}
	defer cancel()

	resp, err := client.Route(ctx, &pb.RouteRequest{Target: int32(target)})
	if err != nil {
		return chord.Decision{}, fmt.Errorf("Route RPC failed: %w", err)
	}

	kind, err := protoToRouteKind(resp.Kind)
	if err != nil {
		return chord.Decision{}, fmt.Errorf("Route RPC failed: %w", err)
	}
	next, err := protoToNodeAddress(resp.Next)
	if err != nil {
		return chord.Decision{}, fmt.Errorf("Route RPC failed: %w", err)
	}

	return chord.Decision{Kind: kind, Next: next}, nil
}

// SaveData delivers a Save to the owner at address.
func (c *GRPCClient) SaveData(ctx context.Context, address, key, text string) (*chord.Reply, error) {
	return c.save(ctx, address, key, text, true)
}

// RemoveData delivers a Remove to the owner at address.
func (c *GRPCClient) RemoveData(ctx context.Context, address, key string) (*chord.Reply, error) {
	return c.remove(ctx, address, key, true)
}

// FindData delivers a Find to the owner at address.
func (c *GRPCClient) FindData(ctx context.Context, address, key string) (*chord.Reply, error) {
	return c.find(ctx, address, key, true)
}

// Save asks the node at address to store text under key wherever it belongs.
func (c *GRPCClient) Save(ctx context.Context, address, key, text string) (*chord.Reply, error) {
	return c.save(ctx, address, key, text, false)
}

// Remove asks the node at address to delete key wherever it belongs.
func (c *GRPCClient) Remove(ctx context.Context, address, key string) (*chord.Reply, error) {
	return c.remove(ctx, address, key, false)
}

// Find asks the node at address to look key up wherever it belongs.
func (c *GRPCClient) Find(ctx context.Context, address, key string) (*chord.Reply, error) {
	return c.find(ctx, address, key, false)
}

func (c *GRPCClient) save(ctx context.Context, address, key, text string, forwarded bool) (*chord.Reply, error) {
	client, ctx, cancel, err := c.service(ctx, address)
	if err != nil {
		return nil, err
	}
	defer cancel()

	resp, err := client.SaveData(ctx, &pb.SaveDataRequest{Key: key, Text: text, Forwarded: forwarded})
	if err != nil {
		return nil, fmt.Errorf("SaveData RPC failed: %w", err)
	}

	return &chord.Reply{
		NodeID:  uint64(resp.NodeId),
		Success: resp.Status,
		Reason:  resp.Reason,
	}, nil
}

func (c *GRPCClient) remove(ctx context.Context, address, key string, forwarded bool) (*chord.Reply, error) {
	client, ctx, cancel, err := c.service(ctx, address)
	if err != nil {
		return nil, err
	}
	defer cancel()

	resp, err := client.RemoveData(ctx, &pb.RemoveDataRequest{Key: key, Forwarded: forwarded})
	if err != nil {
		return nil, fmt.Errorf("RemoveData RPC failed: %w", err)
	}

	return &chord.Reply{
		NodeID:  uint64(resp.NodeId),
		Success: resp.Status,
		Reason:  resp.Reason,
	}, nil
}

func (c *GRPCClient) find(ctx context.Context, address, key string, forwarded bool) (*chord.Reply, error) {
	client, ctx, cancel, err := c.service(ctx, address)
	if err != nil {
		return nil, err
	}
	defer cancel()

	resp, err := client.FindData(ctx, &pb.FindDataRequest{Key: key, Forwarded: forwarded})
	if err != nil {
		return nil, fmt.Errorf("FindData RPC failed: %w", err)
	}

	// A found key may hold empty text, so success is the absence of a reason
	return &chord.Reply{
		NodeID:  uint64(resp.NodeId),
		Success: resp.Reason == "",
		Data:    resp.Data,
		Reason:  resp.Reason,
	}, nil
}

// FingerTable returns the finger table node ids of the node at address.
func (c *GRPCClient) FingerTable(ctx context.Context, address string) ([]uint64, error) {
	client, ctx, cancel, err := c.service(ctx, address)
	if err != nil {
		return nil, err
	}
	defer cancel()

	resp, err := client.GetFingerTable(ctx, &pb.GetFingerTableRequest{})
	if err != nil {
		return nil, fmt.Errorf("GetFingerTable RPC failed: %w", err)
	}

	ids := make([]uint64, len(resp.FingerTable))
	for i, id := range resp.FingerTable {
		ids[i] = uint64(id)
	}
	return ids, nil
}

// NodeInfo returns the neighbours, key count and store counters of the node at address.
func (c *GRPCClient) NodeInfo(ctx context.Context, address string) (chord.NodeInfo, error) {
	client, ctx, cancel, err := c.service(ctx, address)
	if err != nil {
		return chord.NodeInfo{}, err
	}
	defer cancel()

	resp, err := client.GetNodeInfo(ctx, &pb.GetNodeInfoRequest{})
	if err != nil {
		return chord.NodeInfo{}, fmt.Errorf("GetNodeInfo RPC failed: %w", err)
	}

	info := chord.NodeInfo{
		KeyCount: int(resp.KeyCount),
		Stats: pkg.Stats{
			Entries: int(resp.KeyCount),
			Hits:    resp.Hits,
			Misses:  resp.Misses,
			Sets:    resp.Sets,
			Deletes: resp.Deletes,
		},
	}
	if info.Self, err = protoToNodeAddress(resp.Node); err != nil {
		return chord.NodeInfo{}, fmt.Errorf("GetNodeInfo RPC failed: %w", err)
	}
	if info.Predecessor, err = protoToNodeAddress(resp.Predecessor); err != nil {
		return chord.NodeInfo{}, fmt.Errorf("GetNodeInfo RPC failed: %w", err)
	}
	if info.Successor, err = protoToNodeAddress(resp.Successor); err != nil {
		return chord.NodeInfo{}, fmt.Errorf("GetNodeInfo RPC failed: %w", err)
	}
	return info, nil
}

// Close closes all connections in the pool.
func (c *GRPCClient) Close() error {
	c.connMu.Lock()
	defer c.connMu.Unlock()

	var firstErr error
	for address, conn := range c.connections {
		if err := conn.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to close connection to %s: %w", address, err)
		}
		delete(c.connections, address)
	}

	return firstErr
}
