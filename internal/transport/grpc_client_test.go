package transport

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/internal/chord"
	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/internal/config"
	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/pkg"
)

func TestNewGRPCClient(t *testing.T) {
	client := NewGRPCClient(pkg.Nop(), 5*time.Second)

	assert.NotNil(t, client)
	assert.NotNil(t, client.logger)
	assert.Equal(t, 5*time.Second, client.timeout)
	assert.Empty(t, client.connections)
}

func TestNewGRPCClient_NilLogger(t *testing.T) {
	client := NewGRPCClient(nil, time.Second)

	assert.NotNil(t, client)
	assert.NotNil(t, client.logger)
}

func TestGRPCClient_ConnectionReuse(t *testing.T) {
	cluster := startCluster(t, nil)
	client := NewGRPCClient(pkg.Nop(), time.Second)
	defer client.Close()

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := client.FingerTable(ctx, cluster.addresses[2])
		require.NoError(t, err)
	}
	assert.Len(t, client.connections, 1)

	require.NoError(t, client.Close())
	assert.Empty(t, client.connections)

	// a closed pool dials again on demand
	_, err := client.FingerTable(ctx, cluster.addresses[2])
	assert.NoError(t, err)
}

func TestGRPCClient_Route(t *testing.T) {
	cluster := startCluster(t, nil)

	decision, err := cluster.client.Route(context.Background(), cluster.addresses[2], 20)
	require.NoError(t, err)
	assert.Equal(t, chord.RouteFinger, decision.Kind)
	assert.Equal(t, uint64(16), decision.Next.ID)
	assert.Equal(t, cluster.addresses[16], decision.Next.Address())
}

func TestGRPCClient_DeliveriesAreForwarded(t *testing.T) {
	cluster := startCluster(t, nil)
	ctx := context.Background()

	// delivering to the owner stores locally
	reply, err := cluster.client.SaveData(ctx, cluster.addresses[24], "s", "v")
	require.NoError(t, err)
	assert.Equal(t, &chord.Reply{NodeID: 24, Success: true}, reply)

	// delivering to any other node is rejected rather than routed
	reply, err = cluster.client.FindData(ctx, cluster.addresses[2], "s")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), reply.NodeID)
	assert.False(t, reply.Success)
	assert.Equal(t, chord.ReasonMisrouted, reply.Reason)

	reply, err = cluster.client.RemoveData(ctx, cluster.addresses[24], "s")
	require.NoError(t, err)
	assert.True(t, reply.Success)
}

func TestGRPCClient_ClientFacingCalls(t *testing.T) {
	cluster := startCluster(t, nil)
	ctx := context.Background()

	reply, err := cluster.client.Save(ctx, cluster.addresses[31], "hello", "big  world")
	require.NoError(t, err)
	assert.Equal(t, uint64(24), reply.NodeID)
	assert.True(t, reply.Success)

	reply, err = cluster.client.Find(ctx, cluster.addresses[2], "hello")
	require.NoError(t, err)
	assert.Equal(t, &chord.Reply{NodeID: 24, Success: true, Data: "big  world"}, reply)

	reply, err = cluster.client.Remove(ctx, cluster.addresses[25], "hello")
	require.NoError(t, err)
	assert.True(t, reply.Success)

	reply, err = cluster.client.Find(ctx, cluster.addresses[2], "hello")
	require.NoError(t, err)
	assert.False(t, reply.Success)
	assert.Empty(t, reply.Data)
	assert.Equal(t, chord.ReasonNotFound, reply.Reason)
}

func TestGRPCClient_FindEmptyText(t *testing.T) {
	cluster := startCluster(t, nil)
	ctx := context.Background()

	_, err := cluster.client.Save(ctx, cluster.addresses[2], "k", "")
	require.NoError(t, err)

	reply, err := cluster.client.Find(ctx, cluster.addresses[2], "k")
	require.NoError(t, err)
	assert.True(t, reply.Success, "a key holding empty text is still found")
	assert.Equal(t, uint64(16), reply.NodeID)
}

func TestGRPCClient_FingerTableAndInfo(t *testing.T) {
	cluster := startCluster(t, nil)
	ctx := context.Background()

	want := map[uint64][]uint64{
		2:  {16, 16, 16, 16, 24},
		16: {24, 24, 24, 24, 2},
		24: {25, 26, 31, 2, 16},
		25: {26, 31, 31, 2, 16},
		26: {31, 31, 31, 2, 16},
		31: {2, 2, 16, 16, 16},
	}
	for id, fingers := range want {
		got, err := cluster.client.FingerTable(ctx, cluster.addresses[id])
		require.NoError(t, err)
		assert.Equal(t, fingers, got, "node %d", id)
	}

	_, err := cluster.nodes[2].Save(ctx, "ez", "v")
	require.NoError(t, err)
	_, err = cluster.nodes[2].Remove(ctx, "ez")
	require.NoError(t, err)
	_, err = cluster.nodes[2].Find(ctx, "a")
	require.ErrorIs(t, err, pkg.ErrKeyNotFound)

	info, err := cluster.client.NodeInfo(ctx, cluster.addresses[2])
	require.NoError(t, err)
	assert.Equal(t, uint64(2), info.Self.ID)
	assert.Equal(t, uint64(31), info.Predecessor.ID)
	assert.Equal(t, uint64(16), info.Successor.ID)
	assert.Equal(t, pkg.Stats{Misses: 1, Sets: 1, Deletes: 1}, info.Stats)
}

func TestGRPCClient_Unreachable(t *testing.T) {
	client := NewGRPCClient(pkg.Nop(), 200*time.Millisecond)
	defer client.Close()

	// nothing listens on port 1
	_, err := client.Route(context.Background(), "127.0.0.1:1", 3)
	assert.Error(t, err)

	_, err = client.Save(context.Background(), "127.0.0.1:1", "k", "v")
	assert.Error(t, err)
}

func TestGRPCClient_UnreachablePeerFailsResolution(t *testing.T) {
	cluster := startCluster(t, func(cfg *config.Config) {
		cfg.RPCTimeout = 300 * time.Millisecond
	})
	require.NoError(t, cluster.servers[16].Stop())

	reply, err := cluster.client.Save(context.Background(), cluster.addresses[2], "s", "v")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), reply.NodeID)
	assert.False(t, reply.Success)
	assert.Equal(t, chord.ReasonUnreachable, reply.Reason)
}

func TestGRPCClient_Concurrent(t *testing.T) {
	cluster := startCluster(t, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 60)
	for i := 0; i < 60; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			start := cluster.addresses[config.DefaultMembers()[i%6].ID]
			reply, err := cluster.client.Save(ctx, start, fmt.Sprintf("key-%d", i), "v")
			if err == nil && !reply.Success {
				err = fmt.Errorf("save key-%d failed: %s", i, reply.Reason)
			}
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	total := 0
	for _, node := range cluster.nodes {
		total += node.Info().KeyCount
	}
	assert.Equal(t, 60, total)
}
