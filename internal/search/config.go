package search

import "time"

// Default connection window. The original product material leaves the
// constants unspecified, so they are explicit configuration here and
// overridable from the environment at the edge.
const (
	DefaultMinConnection = 45 * time.Minute
	DefaultMaxConnection = 12 * time.Hour
)

// Config carries the connection-window policy for one search. It is passed
// into every call; the engine never reads process-wide state.
type Config struct {
	// MinConnection is the smallest acceptable layover between legs.
	MinConnection time.Duration
	// MaxConnection is the largest acceptable layover, excluding
	// impractical day-long waits.
	MaxConnection time.Duration
}

// DefaultConfig returns the stock connection window.
func DefaultConfig() Config {
	return Config{
		MinConnection: DefaultMinConnection,
		MaxConnection: DefaultMaxConnection,
	}
}
