// Package cache provides byte-oriented caching for solved tours.
//
// Exact TSP solves are expensive (the configuration space has 6^n nodes),
// while their inputs are fully deterministic: the same scheme, qubit count,
// scale factor and solver always produce the same tour. The pipeline
// therefore caches solved tours keyed by a hash of the serialized problem,
// and skips the external solver entirely on a hit.
//
// Backends: file (CLI default, XDG cache dir), Redis and MongoDB (shared
// lab deployments), and a null cache that disables caching. All backends
// store opaque bytes with a TTL and are safe for concurrent use to the
// extent their underlying store is.
package cache

import (
	"context"
	"time"
)

// TTL values for cached entries.
const (
	// TTLTour is the lifetime of a cached solver tour. Tours are pure
	// functions of their problem hash, so the TTL exists only to bound
	// disk usage, not for freshness.
	TTLTour = 30 * 24 * time.Hour
)

// Cache stores opaque bytes by string key.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A non-positive TTL means the
	// entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// TourKeyOpts carries everything besides the problem bytes that influences
// which tour a solve produces.
type TourKeyOpts struct {
	Solver string // solver executable identity
	Scale  int    // integer scaling factor applied when serializing
}

// Keyer generates cache keys.
type Keyer interface {
	// TourKey generates a key for a solved tour. problemHash is the SHA-256
	// of the serialized TSPLIB problem, which already pins the scheme,
	// qubit count and cost matrix.
	TourKey(problemHash string, opts TourKeyOpts) string
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key generator.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// TourKey generates a key of the form "tour:<sha256>".
func (k *DefaultKeyer) TourKey(problemHash string, opts TourKeyOpts) string {
	return hashKey("tour", problemHash, opts.Solver, opts.Scale)
}
