package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// Useful when several experiments share one Redis or MongoDB instance and
// want separate cache namespaces per setup.
//
// Example usage:
//
//	labKeyer := NewScopedKeyer(NewDefaultKeyer(), "lab-olomouc:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// TourKey generates a prefixed key for tour caching.
func (k *ScopedKeyer) TourKey(problemHash string, opts TourKeyOpts) string {
	return k.prefix + k.inner.TourKey(problemHash, opts)
}
