package transport

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/internal/chord"
	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/internal/config"
	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/pkg"
)

// testCluster is the default six-member ring served over loopback gRPC.
type testCluster struct {
	nodes     map[uint64]*chord.ChordNode
	servers   map[uint64]*GRPCServer
	addresses map[uint64]string
	client    *GRPCClient
}

// startCluster binds one loopback listener per default member, rewrites the
// membership to those ports and serves every node.
func startCluster(t *testing.T, mutate func(*config.Config)) *testCluster {
	t.Helper()

	members := config.DefaultMembers()
	listeners := make([]net.Listener, len(members))
	for i := range members {
		lis, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		listeners[i] = lis
		members[i].Port = lis.Addr().(*net.TCPAddr).Port
	}

	c := &testCluster{
		nodes:     make(map[uint64]*chord.ChordNode),
		servers:   make(map[uint64]*GRPCServer),
		addresses: make(map[uint64]string),
		client:    NewGRPCClient(pkg.Nop(), 2*time.Second),
	}
	t.Cleanup(func() { c.client.Close() })

	for i, m := range members {
		cfg := config.DefaultConfig()
		cfg.Index = i
		cfg.Members = members
		cfg.RPCTimeout = 2 * time.Second
		if mutate != nil {
			mutate(cfg)
		}

		node, err := chord.NewChordNode(cfg, pkg.Nop())
		require.NoError(t, err)
		node.SetRemote(c.client)

		server, err := NewGRPCServer(node, m.Address(), cfg.MaxWorkers, pkg.Nop())
		require.NoError(t, err)
		require.NoError(t, server.Serve(listeners[i]))

		t.Cleanup(func() {
			server.Stop()
			node.Shutdown()
		})

		c.nodes[m.ID] = node
		c.servers[m.ID] = server
		c.addresses[m.ID] = m.Address()
	}

	return c
}
