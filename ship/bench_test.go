package ship_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/katalvlaran/shipwright/prim_kruskal"
	"github.com/katalvlaran/shipwright/ship"
)

func benchmarkGenerate(b *testing.B, method string) {
	g := ship.NewGenerator(
		ship.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		ship.WithMSTMethod(method),
	)
	p := ship.DefaultParameters()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Generate(p.WithSeed(uint64(i))); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerate_Kruskal(b *testing.B) { benchmarkGenerate(b, prim_kruskal.MethodKruskal) }
func BenchmarkGenerate_Prim(b *testing.B)    { benchmarkGenerate(b, prim_kruskal.MethodPrim) }
