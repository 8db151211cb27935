package flags

import (
	"context"
	"log/slog"
	"sync"
)

// Provider fetches the full flag set from a remote source. Implementations
// are queried exactly once, at startup, with an anonymous context.
type Provider interface {
	Fetch(ctx context.Context) (Set, error)
}

// Gate answers flag queries. Reads are always safe: before Init resolves they
// see the defaults, afterwards they see whichever set Init froze.
type Gate struct {
	mu       sync.RWMutex
	set      Set
	initOnce sync.Once
	remote   bool

	logger *slog.Logger
}

// Option configures the Gate.
type Option func(*Gate)

// WithLogger sets a logger for init outcome reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Gate) {
		g.logger = logger
	}
}

// NewGate creates a gate seeded with the compiled-in defaults.
func NewGate(opts ...Option) *Gate {
	g := &Gate{set: Defaults()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Init performs the one-shot provider fetch. Subsequent calls are no-ops.
// A nil provider freezes the defaults immediately. Failure is not an error
// to the caller: the gate falls back to defaults and the process continues.
func (g *Gate) Init(ctx context.Context, provider Provider) {
	g.initOnce.Do(func() {
		if provider == nil {
			return
		}

		set, err := provider.Fetch(ctx)
		if err != nil {
			if g.logger != nil {
				g.logger.Warn("flag provider fetch failed, keeping defaults",
					"error", err,
				)
			}
			return
		}

		g.mu.Lock()
		g.set = clone(set)
		g.remote = true
		g.mu.Unlock()

		if g.logger != nil {
			g.logger.Info("flag set initialized from provider",
				"flags", len(set),
			)
		}
	})
}

// RemoteLoaded reports whether the frozen set came from the provider rather
// than the compiled-in defaults.
func (g *Gate) RemoteLoaded() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.remote
}

// Get returns the raw flag value, or nil for an unknown name. Never fails.
// A nil gate answers every query as unknown, so the typed accessors degrade
// to their zero values instead of panicking.
func (g *Gate) Get(name string) any {
	if g == nil {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.set[name]
}

// Bool returns a boolean flag; unknown names and non-boolean values are false.
func (g *Gate) Bool(name string) bool {
	v, _ := g.Get(name).(bool)
	return v
}

// String returns a string flag; unknown names and non-string values are "".
func (g *Gate) String(name string) string {
	v, _ := g.Get(name).(string)
	return v
}

// List returns a string-list flag. JSON decoding yields []any, so both
// representations are accepted; anything else is nil.
func (g *Gate) List(name string) []string {
	switch v := g.Get(name).(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// ListContains reports whether a string-list flag contains the given value.
func (g *Gate) ListContains(name, value string) bool {
	for _, item := range g.List(name) {
		if item == value {
			return true
		}
	}
	return false
}
