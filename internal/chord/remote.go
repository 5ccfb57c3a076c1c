package chord

import "context"

// RemoteClient defines the calls a ChordNode makes to its peers.
// Keeping it an interface lets the node route without importing the transport layer.
type RemoteClient interface {
	// Route asks the node at address for its one-step decision about target.
	Route(ctx context.Context, address string, target uint64) (Decision, error)

	// SaveData delivers a Save to the owner at address.
	SaveData(ctx context.Context, address, key, text string) (*Reply, error)

	// RemoveData delivers a Remove to the owner at address.
	RemoveData(ctx context.Context, address, key string) (*Reply, error)

	// FindData delivers a Find to the owner at address.
	FindData(ctx context.Context, address, key string) (*Reply, error)
}
