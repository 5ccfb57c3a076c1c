package chord

import (
	"errors"

	"github.com/saleemasekrea000/Simplified-Chord-algorithm-using-gRPC/pkg"
)

var (
	// ErrUnreachable is returned when a hop or the owner did not answer.
	ErrUnreachable = errors.New("peer unreachable")

	// ErrHopLimitExceeded is returned when routing takes more than MaxHops hops.
	ErrHopLimitExceeded = errors.New("hop limit exceeded")

	// ErrMisrouted is returned by a node asked to serve a key it does not own.
	ErrMisrouted = errors.New("key is not owned by this node")

	// ErrInvalidKey is returned for empty keys.
	ErrInvalidKey = pkg.ErrEmptyKey
)

// Failure reasons carried in replies and on the wire.
const (
	ReasonNotFound    = "not_found"
	ReasonUnreachable = "unreachable"
	ReasonHopLimit    = "hop_limit"
	ReasonMisrouted   = "misrouted"
	ReasonInvalidKey  = "invalid_key"
	ReasonUnavailable = "unavailable"
)

// ReasonFor maps an error to its wire reason.
func ReasonFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, pkg.ErrKeyNotFound):
		return ReasonNotFound
	case errors.Is(err, ErrHopLimitExceeded):
		return ReasonHopLimit
	case errors.Is(err, ErrMisrouted):
		return ReasonMisrouted
	case errors.Is(err, ErrInvalidKey):
		return ReasonInvalidKey
	case errors.Is(err, pkg.ErrStorageUnavailable), errors.Is(err, pkg.ErrContextCanceled):
		return ReasonUnavailable
	default:
		return ReasonUnreachable
	}
}

// ErrorForReason is the inverse of ReasonFor. Unknown reasons map to ErrUnreachable.
func ErrorForReason(reason string) error {
	switch reason {
	case "":
		return nil
	case ReasonNotFound:
		return pkg.ErrKeyNotFound
	case ReasonHopLimit:
		return ErrHopLimitExceeded
	case ReasonMisrouted:
		return ErrMisrouted
	case ReasonInvalidKey:
		return ErrInvalidKey
	case ReasonUnavailable:
		return pkg.ErrStorageUnavailable
	default:
		return ErrUnreachable
	}
}
