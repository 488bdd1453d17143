package fnbench_test

import (
	"testing"

	"github.com/on-the-ground/inline_fn_go/fnbench"
	"github.com/on-the-ground/inline_fn_go/inlinefn"
)

const benchSize = 100

func runVariant(b *testing.B, v fnbench.Variant) {
	out := make([]int, v.Size)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Run(out)
	}
	b.StopTimer()
	if err := fnbench.Verify(out); err != nil {
		b.Fatal(err)
	}
}

func BenchmarkDirect(b *testing.B) {
	runVariant(b, fnbench.DirectVariant(benchSize))
}

func BenchmarkInline32(b *testing.B) {
	runVariant(b, fnbench.InlineVariant[inlinefn.Cap32](benchSize))
}

func BenchmarkInline64(b *testing.B) {
	runVariant(b, fnbench.InlineVariant[inlinefn.Cap64](benchSize))
}

func BenchmarkInline128(b *testing.B) {
	runVariant(b, fnbench.InlineVariant[inlinefn.Cap128](benchSize))
}

func BenchmarkInline256(b *testing.B) {
	runVariant(b, fnbench.InlineVariant[inlinefn.Cap256](benchSize))
}

func BenchmarkInline512(b *testing.B) {
	runVariant(b, fnbench.InlineVariant[inlinefn.Cap512](benchSize))
}

func BenchmarkInline1024(b *testing.B) {
	runVariant(b, fnbench.InlineVariant[inlinefn.Cap1024](benchSize))
}

func BenchmarkInline2048(b *testing.B) {
	runVariant(b, fnbench.InlineVariant[inlinefn.Cap2048](benchSize))
}

func BenchmarkHeapFn(b *testing.B) {
	runVariant(b, fnbench.HeapFnVariant(benchSize))
}
