package ship

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/shipwright/prim_kruskal"
)

// Option customizes a Generator. Option constructors panic on meaningless
// input; generation itself never panics.
type Option func(*Generator)

// WithLogger routes generation logs to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("ship: WithLogger(nil)")
	}
	return func(g *Generator) {
		g.log = l
	}
}

// WithMaxAttempts bounds the number of placement passes; 0 restores
// placement.DefaultMaxAttempts. Panics on a negative n.
func WithMaxAttempts(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("ship: WithMaxAttempts(%d)", n))
	}
	return func(g *Generator) {
		g.maxAttempts = n
	}
}

// WithMSTMethod selects the spanning forest algorithm. Both methods yield
// the same corridors; the choice only affects their order. Panics on an
// unknown method.
func WithMSTMethod(method string) Option {
	if !prim_kruskal.ValidMethod(method) {
		panic(fmt.Sprintf("ship: WithMSTMethod(%q)", method))
	}
	return func(g *Generator) {
		g.method = method
	}
}
