package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/internal/api"
	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/internal/chord"
	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/internal/config"
	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/internal/transport"
	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/pkg"
)

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}

	// Initialize logger
	loggerConfig := pkg.DefaultConfig()
	loggerConfig.Level = cfg.LogLevel
	loggerConfig.Format = cfg.LogFormat
	if cfg.LogFile != "" {
		loggerConfig.File.Enable = true
		loggerConfig.File.Path = cfg.LogFile
	}

	logger, err := pkg.New(loggerConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	self := cfg.Self()
	logger.Info().
		Int("index", cfg.Index).
		Uint64("node_id", self.ID).
		Str("address", self.Address()).
		Uints64("ring", cfg.IDs()).
		Int("http_port", cfg.HTTPPort).
		Msg("Starting Chord node")

	node, err := chord.NewChordNode(cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create Chord node")
		os.Exit(1)
	}

	// Create and set gRPC client for inter-node communication
	grpcClient := transport.NewGRPCClient(logger, cfg.RPCTimeout)
	node.SetRemote(grpcClient)

	grpcServer, err := transport.NewGRPCServer(node, self.Address(), cfg.MaxWorkers, logger)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create gRPC server")
		os.Exit(1)
	}

	if err := grpcServer.Start(); err != nil {
		logger.Error().Err(err).Msg("Failed to start gRPC server")
		cleanup(node, nil, grpcClient, nil, logger)
		os.Exit(1)
	}

	var httpServer *api.Server
	if cfg.HTTPPort > 0 {
		httpServer, err = api.NewServer(&api.Config{
			HTTPPort: cfg.HTTPPort,
			GRPCAddr: self.Address(),
			NodeID:   node.ID(),
			Stats:    node.Stats,
		}, logger)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to create HTTP API server")
			cleanup(node, grpcServer, grpcClient, nil, logger)
			os.Exit(1)
		}

		if err := httpServer.Start(cfg.HTTPPort); err != nil {
			logger.Error().Err(err).Msg("Failed to start HTTP API server")
			cleanup(node, grpcServer, grpcClient, nil, logger)
			os.Exit(1)
		}
		node.SetBroadcaster(httpServer.Hub())
	}

	logger.Info().Msg("Chord node is ready")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	sig := <-sigChan
	logger.Info().
		Str("signal", sig.String()).
		Msg("Received shutdown signal")

	cleanup(node, grpcServer, grpcClient, httpServer, logger)

	logger.Info().Msg("Chord node shutdown complete")
}

// parseConfig builds the node configuration from the command line:
// one positional member index plus optional flags, in either order.
func parseConfig(args []string, output io.Writer) (*config.Config, error) {
	cfg := config.DefaultConfig()

	fs := flag.NewFlagSet("chord-node", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintln(output, "Usage: chord-node [flags] <index>")
		fs.PrintDefaults()
	}

	ringFile := fs.String("config", "", "YAML file with the ring membership (m, members)")
	fs.IntVar(&cfg.HTTPPort, "http-port", cfg.HTTPPort, "Port for the HTTP gateway, 0 disables it")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (trace, debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (json, console)")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Also write logs to this rotated file")
	fs.DurationVar(&cfg.RPCTimeout, "rpc-timeout", cfg.RPCTimeout, "Timeout for each outbound hop")
	fs.IntVar(&cfg.MaxHops, "max-hops", cfg.MaxHops, "Maximum finger hops per request")
	fs.IntVar(&cfg.MaxWorkers, "workers", cfg.MaxWorkers, "Maximum concurrently routed requests")

	// Accept the index before the flags as well as after them
	var positional []string
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		positional = append(positional, args[0])
		args = args[1:]
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	positional = append(positional, fs.Args()...)

	if len(positional) != 1 {
		fs.Usage()
		return nil, fmt.Errorf("expected exactly one member index, got %d arguments", len(positional))
	}

	index, err := strconv.Atoi(positional[0])
	if err != nil {
		return nil, fmt.Errorf("invalid member index %q", positional[0])
	}
	cfg.Index = index

	if *ringFile != "" {
		rf, err := config.LoadRing(*ringFile)
		if err != nil {
			return nil, err
		}
		rf.Apply(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// cleanup performs graceful shutdown of all components
func cleanup(node *chord.ChordNode, grpcServer *transport.GRPCServer, grpcClient *transport.GRPCClient, httpServer *api.Server, logger *pkg.Logger) {
	logger.Info().Msg("Starting graceful shutdown")

	if httpServer != nil {
		if err := httpServer.Stop(); err != nil {
			logger.Error().Err(err).Msg("Error stopping HTTP server")
		}
	}

	if grpcServer != nil {
		if err := grpcServer.Stop(); err != nil {
			logger.Error().Err(err).Msg("Error stopping gRPC server")
		}
	}

	if err := node.Shutdown(); err != nil {
		logger.Error().Err(err).Msg("Error shutting down Chord node")
	}

	if err := grpcClient.Close(); err != nil {
		logger.Error().Err(err).Msg("Error closing gRPC client")
	}
}
