package transport

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/internal/chord"
	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/pkg"
	pb "github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/protobuf/protogen"
)

const maxMsgSize = 4 * 1024 * 1024 // 4MB

// GRPCServer wraps a ChordNode and implements the gRPC ChordService.
type GRPCServer struct {
	pb.UnimplementedChordServiceServer

	node       *chord.ChordNode
	server     *grpc.Server
	logger     *pkg.Logger
	maxWorkers int

	// Server address
	address  string
	listener net.Listener
}

// NewGRPCServer creates a new gRPC server for the given ChordNode.
// At most maxWorkers requests are handled concurrently.
func NewGRPCServer(node *chord.ChordNode, address string, maxWorkers int, logger *pkg.Logger) (*GRPCServer, error) {
	if node == nil {
		return nil, fmt.Errorf("node cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	if maxWorkers < 1 {
		return nil, fmt.Errorf("max workers must be positive, got %d", maxWorkers)
	}

	s := &GRPCServer{
		node:       node,
		address:    address,
		maxWorkers: maxWorkers,
		logger:     logger.WithFields(pkg.Fields{"component": "grpc_server", "node_id": node.ID()}),
	}

	return s, nil
}

// Start listens on the server address and starts serving.
func (s *GRPCServer) Start() error {
	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	return s.Serve(listener)
}

// Serve starts serving on an existing listener. It returns immediately.
func (s *GRPCServer) Serve(listener net.Listener) error {
	s.listener = listener
	s.address = listener.Addr().String()

	opts := []grpc.ServerOption{
		grpc.MaxRecvMsgSize(maxMsgSize),
		grpc.MaxSendMsgSize(maxMsgSize),
		grpc.NumStreamWorkers(uint32(s.maxWorkers)),
		grpc.ChainUnaryInterceptor(
			RequestIDInterceptor(),
			WorkerPoolInterceptor(s.maxWorkers),
			LoggingInterceptor(s.logger),
		),
	}

	s.server = grpc.NewServer(opts...)
	pb.RegisterChordServiceServer(s.server, s)
	reflection.Register(s.server) // self-documentation for the server

	s.logger.Info().
		Str("address", s.address).
		Int("max_workers", s.maxWorkers).
		Msg("Starting gRPC server")

	go func() {
		if err := s.server.Serve(listener); err != nil {
			s.logger.Error().Err(err).Msg("gRPC server error")
		}
	}()

	return nil
}

// Address returns the address the server listens on.
func (s *GRPCServer) Address() string {
	return s.address
}

// Stop gracefully stops the gRPC server.
func (s *GRPCServer) Stop() error {
	s.logger.Info().Msg("Stopping gRPC server")

	if s.server != nil {
		s.server.GracefulStop()
	}

	if s.listener != nil {
		s.listener.Close()
	}

	return nil
}

// SaveData implements the SaveData RPC.
// A forwarded request is served locally or rejected as misrouted; any other
// request is routed to the key's owner first.
func (s *GRPCServer) SaveData(ctx context.Context, req *pb.SaveDataRequest) (*pb.SaveDataResponse, error) {
	s.logger.WithContext(ctx).Debug().
		Str("key", req.Key).
		Bool("forwarded", req.Forwarded).
		Msg("SaveData called")

	if req.Key == "" {
		return nil, status.Error(codes.InvalidArgument, "key cannot be empty")
	}

	var reply *chord.Reply
	if req.Forwarded {
		reply, _ = s.node.ServeSave(ctx, req.Key, req.Text)
	} else {
		reply, _ = s.node.Save(ctx, req.Key, req.Text)
	}

	return &pb.SaveDataResponse{
		NodeId: int32(reply.NodeID),
		Status: reply.Success,
		Reason: reply.Reason,
	}, nil
}

// RemoveData implements the RemoveData RPC.
func (s *GRPCServer) RemoveData(ctx context.Context, req *pb.RemoveDataRequest) (*pb.RemoveDataResponse, error) {
	s.logger.WithContext(ctx).Debug().
		Str("key", req.Key).
		Bool("forwarded", req.Forwarded).
		Msg("RemoveData called")

	if req.Key == "" {
		return nil, status.Error(codes.InvalidArgument, "key cannot be empty")
	}

	var reply *chord.Reply
	if req.Forwarded {
		reply, _ = s.node.ServeRemove(ctx, req.Key)
	} else {
		reply, _ = s.node.Remove(ctx, req.Key)
	}

	return &pb.RemoveDataResponse{
		NodeId: int32(reply.NodeID),
		Status: reply.Success,
		Reason: reply.Reason,
	}, nil
}

// FindData implements the FindData RPC. A miss answers with empty data and a reason.
func (s *GRPCServer) FindData(ctx context.Context, req *pb.FindDataRequest) (*pb.FindDataResponse, error) {
	s.logger.WithContext(ctx).Debug().
		Str("key", req.Key).
		Bool("forwarded", req.Forwarded).
		Msg("FindData called")

	if req.Key == "" {
		return nil, status.Error(codes.InvalidArgument, "key cannot be empty")
	}

	var reply *chord.Reply
	if req.Forwarded {
		reply, _ = s.node.ServeFind(ctx, req.Key)
	} else {
		reply, _ = s.node.Find(ctx, req.Key)
	}

	return &pb.FindDataResponse{
		NodeId: int32(reply.NodeID),
		Data:   reply.Data,
		Reason: reply.Reason,
	}, nil
}

// GetFingerTable implements the GetFingerTable RPC.
func (s *GRPCServer) GetFingerTable(ctx context.Context, req *pb.GetFingerTableRequest) (*pb.GetFingerTableResponse, error) {
	s.logger.WithContext(ctx).Debug().Msg("GetFingerTable called")

	ids := s.node.FingerTable()
	table := make([]int32, len(ids))
	for i, id := range ids {
		table[i] = int32(id)
	}

	return &pb.GetFingerTableResponse{
		FingerTable: table,
	}, nil
}

// Route implements the Route RPC. It never forwards.
func (s *GRPCServer) Route(ctx context.Context, req *pb.RouteRequest) (*pb.RouteResponse, error) {
	if req.Target < 0 {
		return nil, status.Errorf(codes.InvalidArgument, "target must not be negative, got %d", req.Target)
	}

	decision := s.node.Route(uint64(req.Target))

	s.logger.WithContext(ctx).Debug().
		Int32("target", req.Target).
		Str("kind", decision.Kind.String()).
		Uint64("next", decision.Next.ID).
		Msg("Route called")

	return &pb.RouteResponse{
		NodeId: int32(s.node.ID()),
		Kind:   routeKindToProto(decision.Kind),
		Next:   nodeAddressToProto(decision.Next),
	}, nil
}

// GetNodeInfo implements the GetNodeInfo RPC.
func (s *GRPCServer) GetNodeInfo(ctx context.Context, req *pb.GetNodeInfoRequest) (*pb.GetNodeInfoResponse, error) {
	s.logger.WithContext(ctx).Debug().Msg("GetNodeInfo called")

	info := s.node.Info()

	return &pb.GetNodeInfoResponse{
		Node:        nodeAddressToProto(info.Self),
		Predecessor: nodeAddressToProto(info.Predecessor),
		Successor:   nodeAddressToProto(info.Successor),
		KeyCount:    int32(info.KeyCount),
		Hits:        info.Stats.Hits,
		Misses:      info.Stats.Misses,
		Sets:        info.Stats.Sets,
		Deletes:     info.Stats.Deletes,
	}, nil
}

// Helper functions for type conversion

// nodeAddressToProto converts a NodeAddress to protobuf Node.
func nodeAddressToProto(addr chord.NodeAddress) *pb.Node {
	return &pb.Node{
		Id:   int32(addr.ID),
		Host: addr.Host,
		Port: int32(addr.Port),
	}
}

// protoToNodeAddress converts a protobuf Node to NodeAddress.
func protoToNodeAddress(node *pb.Node) (chord.NodeAddress, error) {
	if node == nil {
		return chord.NodeAddress{}, fmt.Errorf("node cannot be nil")
	}
	if node.Id < 0 {
		return chord.NodeAddress{}, fmt.Errorf("invalid node id %d", node.Id)
	}
	return chord.NewNodeAddress(uint64(node.Id), node.Host, int(node.Port)), nil
}

func routeKindToProto(kind chord.RouteKind) pb.RouteKind {
	switch kind {
	case chord.RouteSuccessor:
		return pb.RouteKind_ROUTE_KIND_SUCCESSOR
	case chord.RouteFinger:
		return pb.RouteKind_ROUTE_KIND_FINGER
	default:
		return pb.RouteKind_ROUTE_KIND_LOCAL
	}
}

func protoToRouteKind(kind pb.RouteKind) (chord.RouteKind, error) {
	switch kind {
	case pb.RouteKind_ROUTE_KIND_LOCAL:
		return chord.RouteLocal, nil
	case pb.RouteKind_ROUTE_KIND_SUCCESSOR:
		return chord.RouteSuccessor, nil
	case pb.RouteKind_ROUTE_KIND_FINGER:
		return chord.RouteFinger, nil
	default:
		return 0, fmt.Errorf("unknown route kind %d", kind)
	}
}
