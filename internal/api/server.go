package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/pkg"
	pb "github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/protobuf/protogen"
)

// Server represents the HTTP API gateway server.
type Server struct {
	httpServer *http.Server
	listener   net.Listener
	wsHub      *WebSocketHub
	logger     *pkg.Logger
	grpcAddr   string
	nodeID     uint64
	stats      func() pkg.Stats
	ctx        context.Context
	cancel     context.CancelFunc
}

// Config holds the HTTP server configuration.
type Config struct {
	HTTPPort int
	GRPCAddr string
	NodeID   uint64

	// Stats, when set, adds the node's store counters to /health.
	Stats func() pkg.Stats
}

// NewServer creates a new HTTP API gateway server.
func NewServer(cfg *Config, logger *pkg.Logger) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	if cfg.GRPCAddr == "" {
		return nil, fmt.Errorf("grpc address cannot be empty")
	}

	return &Server{
		logger:   logger.WithFields(pkg.Fields{"component": "http_api"}),
		grpcAddr: cfg.GRPCAddr,
		nodeID:   cfg.NodeID,
		stats:    cfg.Stats,
		wsHub:    NewWebSocketHub(logger),
	}, nil
}

// Hub returns the routing-event hub; pass it to ChordNode.SetBroadcaster.
func (s *Server) Hub() *WebSocketHub {
	return s.wsHub
}

// Start starts the HTTP server on port. Port 0 picks a free port; see Address.
func (s *Server) Start(port int) error {
	s.ctx, s.cancel = context.WithCancel(context.Background())

	handler, err := s.routes()
	if err != nil {
		s.cancel()
		return err
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		s.cancel()
		return fmt.Errorf("failed to listen: %w", err)
	}
	s.listener = listener

	s.wsHub.Start()

	s.httpServer = &http.Server{
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info().
		Str("address", listener.Addr().String()).
		Str("grpc_addr", s.grpcAddr).
		Msg("Starting HTTP API server")

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.logger.Error().Err(err).Msg("HTTP server error")
		}
	}()

	return nil
}

// routes builds the gateway, WebSocket and health handlers.
func (s *Server) routes() (http.Handler, error) {
	gateway := runtime.NewServeMux(
		runtime.WithMarshalerOption(runtime.MIMEWildcard, &runtime.JSONPb{
			MarshalOptions:   runtime.JSONPb{}.MarshalOptions,
			UnmarshalOptions: runtime.JSONPb{}.UnmarshalOptions,
		}),
		runtime.WithIncomingHeaderMatcher(headerMatcher),
	)

	opts := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	if err := pb.RegisterChordServiceHandlerFromEndpoint(s.ctx, gateway, s.grpcAddr, opts); err != nil {
		return nil, fmt.Errorf("failed to register gateway: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/v1/", corsMiddleware(gateway))
	mux.HandleFunc("/api/ws", s.wsHub.HandleWebSocket)
	mux.HandleFunc("/health", s.healthHandler)

	return mux, nil
}

// Address returns the address the server listens on, or "" before Start.
func (s *Server) Address() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop gracefully stops the HTTP server.
func (s *Server) Stop() error {
	s.logger.Info().Msg("Stopping HTTP API server")

	// Cancel the grpc-gateway context first
	if s.cancel != nil {
		s.cancel()
	}

	if s.wsHub != nil {
		s.wsHub.Stop()
	}

	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown HTTP server: %w", err)
		}
	}

	s.logger.Info().Msg("HTTP API server stopped")
	return nil
}

// healthHandler handles health check requests.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{
		"status":  "ok",
		"node_id": s.nodeID,
	}
	if s.stats != nil {
		stats := s.stats()
		body["keys"] = stats.Entries
		body["hits"] = stats.Hits
		body["misses"] = stats.Misses
		body["sets"] = stats.Sets
		body["deletes"] = stats.Deletes
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(body)
}

// headerMatcher passes the request id header through to gRPC metadata.
func headerMatcher(key string) (string, bool) {
	if strings.EqualFold(key, pkg.RequestIDHeader) {
		return pkg.RequestIDHeader, true
	}
	return runtime.DefaultHeaderMatcher(key)
}

// corsMiddleware adds CORS headers to responses.
func corsMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-Id")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		h.ServeHTTP(w, r)
	})
}
