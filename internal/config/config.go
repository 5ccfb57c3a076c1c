package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/internal/hash"
)

// Member is one entry of the static ring membership.
type Member struct {
	ID   uint64 `yaml:"id"`
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Address returns the member's network address in "host:port" form.
func (m Member) Address() string {
	return fmt.Sprintf("%s:%d", m.Host, m.Port)
}

// Config holds all configuration for a Chord node
type Config struct {
	// Index selects this process's entry in Members
	Index int

	// Ring membership, sorted by ID and shared by every node and the client
	Members []Member

	// Chord parameters
	M          int           // Identifier space size in bits
	RPCTimeout time.Duration // Timeout for each outbound hop
	MaxHops    int           // Upper bound on routing hops per request
	MaxWorkers int           // Concurrent request handlers

	// HTTP gateway, 0 disables it
	HTTPPort int

	// Logging
	LogLevel  string // trace, debug, info, warn, error
	LogFormat string // json, console
	LogFile   string // rotated log file, empty for stderr only
}

// DefaultMembers returns the compiled-in ring.
func DefaultMembers() []Member {
	return []Member{
		{ID: 2, Host: "127.0.0.1", Port: 5000},
		{ID: 16, Host: "127.0.0.1", Port: 5001},
		{ID: 24, Host: "127.0.0.1", Port: 5002},
		{ID: 25, Host: "127.0.0.1", Port: 5003},
		{ID: 26, Host: "127.0.0.1", Port: 5004},
		{ID: 31, Host: "127.0.0.1", Port: 5005},
	}
}

// DefaultConfig returns the configuration of the first compiled-in member.
func DefaultConfig() *Config {
	return &Config{
		Index:      0,
		Members:    DefaultMembers(),
		M:          hash.DefaultM, // 32 ring positions
		RPCTimeout: 5 * time.Second,
		MaxHops:    32,
		MaxWorkers: 10,
		HTTPPort:   0,
		LogLevel:   "info",
		LogFormat:  "console",
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := ValidateRing(c.M, c.Members); err != nil {
		return err
	}
	if c.Index < 0 || c.Index >= len(c.Members) {
		return fmt.Errorf("index must be between 0 and %d, got %d", len(c.Members)-1, c.Index)
	}
	if c.RPCTimeout <= 0 {
		return fmt.Errorf("RPC timeout must be positive, got %s", c.RPCTimeout)
	}
	if c.MaxHops <= 0 {
		return fmt.Errorf("max hops must be positive, got %d", c.MaxHops)
	}
	if c.MaxWorkers <= 0 {
		return fmt.Errorf("max workers must be positive, got %d", c.MaxWorkers)
	}
	if c.HTTPPort < 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}
	return nil
}

// ValidateRing checks that members form a usable ring in an M-bit space:
// at least one member, ids strictly increasing and inside [0, 2^M), valid ports.
func ValidateRing(m int, members []Member) error {
	space, err := hash.NewSpace(m)
	if err != nil {
		return err
	}
	if len(members) == 0 {
		return fmt.Errorf("ring must have at least one member")
	}
	for i, member := range members {
		if !space.IsValidID(member.ID) {
			return fmt.Errorf("member %d: id %d outside [0, %d]", i, member.ID, space.MaxID())
		}
		if i > 0 && member.ID <= members[i-1].ID {
			return fmt.Errorf("member ids must be sorted and unique: %d follows %d", member.ID, members[i-1].ID)
		}
		if member.Host == "" {
			return fmt.Errorf("member %d: host cannot be empty", i)
		}
		if member.Port <= 0 || member.Port > 65535 {
			return fmt.Errorf("member %d: invalid port: %d", i, member.Port)
		}
	}
	return nil
}

// Self returns this node's membership entry. Call Validate first.
func (c *Config) Self() Member {
	return c.Members[c.Index]
}

// IDs returns the member ids in ring order.
func (c *Config) IDs() []uint64 {
	ids := make([]uint64, len(c.Members))
	for i, m := range c.Members {
		ids[i] = m.ID
	}
	return ids
}

// RingFile is the on-disk membership description.
type RingFile struct {
	M       int      `yaml:"m"`
	Members []Member `yaml:"members"`
}

// LoadRing reads and validates a YAML membership file.
func LoadRing(path string) (*RingFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ring file: %w", err)
	}

	var rf RingFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("failed to parse ring file %s: %w", path, err)
	}
	if rf.M == 0 {
		rf.M = hash.DefaultM
	}

	if err := ValidateRing(rf.M, rf.Members); err != nil {
		return nil, fmt.Errorf("invalid ring file %s: %w", path, err)
	}
	return &rf, nil
}

// Apply overrides the ring parameters of c with the file's.
func (rf *RingFile) Apply(c *Config) {
	c.M = rf.M
	c.Members = append([]Member(nil), rf.Members...)
}
