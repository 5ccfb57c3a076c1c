package transport

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/internal/chord"
	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/internal/config"
	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/pkg"
	pb "github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/protobuf/protogen"
)

func dial(t *testing.T, address string) pb.ChordServiceClient {
	t.Helper()

	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return pb.NewChordServiceClient(conn)
}

func TestNewGRPCServer(t *testing.T) {
	node, err := chord.NewChordNode(config.DefaultConfig(), pkg.Nop())
	require.NoError(t, err)
	defer node.Shutdown()

	t.Run("valid", func(t *testing.T) {
		server, err := NewGRPCServer(node, "127.0.0.1:0", 4, pkg.Nop())
		require.NoError(t, err)
		assert.Equal(t, 4, server.maxWorkers)
	})

	t.Run("nil node", func(t *testing.T) {
		_, err := NewGRPCServer(nil, "127.0.0.1:0", 4, pkg.Nop())
		assert.ErrorContains(t, err, "node cannot be nil")
	})

	t.Run("nil logger", func(t *testing.T) {
		_, err := NewGRPCServer(node, "127.0.0.1:0", 4, nil)
		assert.ErrorContains(t, err, "logger cannot be nil")
	})

	t.Run("no workers", func(t *testing.T) {
		_, err := NewGRPCServer(node, "127.0.0.1:0", 0, pkg.Nop())
		assert.Error(t, err)
	})
}

func TestGRPCServer_StartStop(t *testing.T) {
	node, err := chord.NewChordNode(config.DefaultConfig(), pkg.Nop())
	require.NoError(t, err)
	defer node.Shutdown()

	server, err := NewGRPCServer(node, "127.0.0.1:0", 2, pkg.Nop())
	require.NoError(t, err)
	require.NoError(t, server.Start())
	assert.NotEqual(t, "127.0.0.1:0", server.Address(), "address should name the bound port")

	resp, err := dial(t, server.Address()).GetFingerTable(context.Background(), &pb.GetFingerTableRequest{})
	require.NoError(t, err)
	assert.Equal(t, []int32{16, 16, 16, 16, 24}, resp.FingerTable)

	assert.NoError(t, server.Stop())
}

func TestGRPCServer_Scenario(t *testing.T) {
	cluster := startCluster(t, nil)
	ctx := context.Background()

	save, err := dial(t, cluster.addresses[2]).SaveData(ctx, &pb.SaveDataRequest{Key: "s", Text: "v"})
	require.NoError(t, err)
	assert.Equal(t, int32(24), save.NodeId)
	assert.True(t, save.Status)
	assert.Empty(t, save.Reason)

	find, err := dial(t, cluster.addresses[31]).FindData(ctx, &pb.FindDataRequest{Key: "s"})
	require.NoError(t, err)
	assert.Equal(t, int32(24), find.NodeId)
	assert.Equal(t, "v", find.Data)

	remove, err := dial(t, cluster.addresses[16]).RemoveData(ctx, &pb.RemoveDataRequest{Key: "s"})
	require.NoError(t, err)
	assert.Equal(t, int32(24), remove.NodeId)
	assert.True(t, remove.Status)

	remove, err = dial(t, cluster.addresses[16]).RemoveData(ctx, &pb.RemoveDataRequest{Key: "s"})
	require.NoError(t, err)
	assert.Equal(t, int32(24), remove.NodeId)
	assert.False(t, remove.Status)
	assert.Equal(t, chord.ReasonNotFound, remove.Reason)

	find, err = dial(t, cluster.addresses[31]).FindData(ctx, &pb.FindDataRequest{Key: "s"})
	require.NoError(t, err)
	assert.Equal(t, int32(24), find.NodeId)
	assert.Empty(t, find.Data)
	assert.Equal(t, chord.ReasonNotFound, find.Reason)
}

func TestGRPCServer_EmptyKey(t *testing.T) {
	cluster := startCluster(t, nil)
	client := dial(t, cluster.addresses[2])
	ctx := context.Background()

	_, err := client.SaveData(ctx, &pb.SaveDataRequest{Key: "", Text: "v"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.RemoveData(ctx, &pb.RemoveDataRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.FindData(ctx, &pb.FindDataRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGRPCServer_ForwardedMisrouted(t *testing.T) {
	cluster := startCluster(t, nil)

	// node 2 does not own "s", so a delivery there must not be re-forwarded
	resp, err := dial(t, cluster.addresses[2]).SaveData(context.Background(),
		&pb.SaveDataRequest{Key: "s", Text: "v", Forwarded: true})
	require.NoError(t, err)
	assert.Equal(t, int32(2), resp.NodeId)
	assert.False(t, resp.Status)
	assert.Equal(t, chord.ReasonMisrouted, resp.Reason)

	assert.Equal(t, 0, cluster.nodes[24].Info().KeyCount)
}

func TestGRPCServer_Route(t *testing.T) {
	cluster := startCluster(t, nil)
	ctx := context.Background()

	tests := []struct {
		name   string
		node   uint64
		target int32
		kind   pb.RouteKind
		next   int32
	}{
		{name: "owned", node: 24, target: 20, kind: pb.RouteKind_ROUTE_KIND_LOCAL, next: 24},
		{name: "successor owns", node: 16, target: 20, kind: pb.RouteKind_ROUTE_KIND_SUCCESSOR, next: 24},
		{name: "finger hop", node: 2, target: 20, kind: pb.RouteKind_ROUTE_KIND_FINGER, next: 16},
		{name: "wraps past zero", node: 26, target: 0, kind: pb.RouteKind_ROUTE_KIND_FINGER, next: 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := dial(t, cluster.addresses[tt.node]).Route(ctx, &pb.RouteRequest{Target: tt.target})
			require.NoError(t, err)
			assert.Equal(t, int32(tt.node), resp.NodeId)
			assert.Equal(t, tt.kind, resp.Kind)
			assert.Equal(t, tt.next, resp.Next.Id)
		})
	}

	_, err := dial(t, cluster.addresses[2]).Route(ctx, &pb.RouteRequest{Target: -1})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGRPCServer_GetNodeInfo(t *testing.T) {
	cluster := startCluster(t, nil)

	_, err := cluster.nodes[24].Save(context.Background(), "hello", "world")
	require.NoError(t, err)
	_, err = cluster.nodes[24].Find(context.Background(), "hello")
	require.NoError(t, err)

	resp, err := dial(t, cluster.addresses[24]).GetNodeInfo(context.Background(), &pb.GetNodeInfoRequest{})
	require.NoError(t, err)
	assert.Equal(t, int32(24), resp.Node.Id)
	assert.Equal(t, int32(16), resp.Predecessor.Id)
	assert.Equal(t, int32(25), resp.Successor.Id)
	assert.Equal(t, int32(1), resp.KeyCount)
	assert.Equal(t, int64(1), resp.Sets)
	assert.Equal(t, int64(1), resp.Hits)
	assert.Zero(t, resp.Misses)
	assert.Zero(t, resp.Deletes)
}

func TestGRPCServer_EchoesRequestID(t *testing.T) {
	cluster := startCluster(t, nil)

	ctx := metadata.AppendToOutgoingContext(context.Background(), pkg.RequestIDHeader, "req-abc")
	var header metadata.MD
	_, err := dial(t, cluster.addresses[2]).GetFingerTable(ctx, &pb.GetFingerTableRequest{}, grpc.Header(&header))
	require.NoError(t, err)
	assert.Equal(t, []string{"req-abc"}, header.Get(pkg.RequestIDHeader))

	header = nil
	_, err = dial(t, cluster.addresses[2]).GetFingerTable(context.Background(), &pb.GetFingerTableRequest{}, grpc.Header(&header))
	require.NoError(t, err)
	require.Len(t, header.Get(pkg.RequestIDHeader), 1)
	assert.NotEmpty(t, header.Get(pkg.RequestIDHeader)[0], "a missing id should be generated")
}

func TestRouteKindConversion(t *testing.T) {
	for _, kind := range []chord.RouteKind{chord.RouteLocal, chord.RouteSuccessor, chord.RouteFinger} {
		got, err := protoToRouteKind(routeKindToProto(kind))
		require.NoError(t, err)
		assert.Equal(t, kind, got)
	}

	_, err := protoToRouteKind(pb.RouteKind(7))
	assert.Error(t, err)
}

func TestProtoToNodeAddress(t *testing.T) {
	addr, err := protoToNodeAddress(&pb.Node{Id: 25, Host: "10.0.0.1", Port: 5003})
	require.NoError(t, err)
	assert.Equal(t, chord.NewNodeAddress(25, "10.0.0.1", 5003), addr)

	_, err = protoToNodeAddress(nil)
	assert.Error(t, err)

	_, err = protoToNodeAddress(&pb.Node{Id: -1})
	assert.Error(t, err)
}
