package fnbench

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/on-the-ground/inline_fn_go/inlinefn"
)

// MulAdd is the canonical workload capture: two integers folded into
// every call's result.
type MulAdd struct {
	I int
	N int
}

func (m MulAdd) Call(j int) int { return m.I*j + m.N }

// ErrInvariant reports a workload output that no longer matches the
// closed form: either a variant miscomputed or the loop was elided.
var ErrInvariant = errors.New("workload invariant violated")

// Variant is one way of running the canonical workload: build Size
// callables capturing (i, Size), invoke callable i with argument i,
// and write the results into out (length Size). Run is reentrant over
// the variant's own preallocated state and must not allocate per pass
// beyond what the strategy itself requires.
type Variant struct {
	Name string
	Size int
	Run  func(out []int)
}

// DirectVariant calls the capture type directly, no erasure.
func DirectVariant(size int) Variant {
	fs := make([]MulAdd, size)
	return Variant{
		Name: "direct",
		Size: size,
		Run: func(out []int) {
			for i := 0; i < size; i++ {
				fs[i] = MulAdd{I: i, N: size}
			}
			for j := 0; j < size; j++ {
				out[j] = fs[j].Call(j)
			}
		},
	}
}

// InlineVariant runs the workload through containers of capacity C.
func InlineVariant[C inlinefn.Capacity](size int) Variant {
	fs := make([]inlinefn.Fn1[C, int, int], size)
	return Variant{
		Name: fmt.Sprintf("inline/%d", reflect.TypeFor[C]().Size()),
		Size: size,
		Run: func(out []int) {
			for i := 0; i < size; i++ {
				inlinefn.Bind1(&fs[i], MulAdd{I: i, N: size})
			}
			for j := 0; j < size; j++ {
				out[j] = fs[j].Call(j)
			}
		},
	}
}

// HeapFnVariant is the status quo: closures as heap func values.
func HeapFnVariant(size int) Variant {
	fs := make([]func(int) int, size)
	return Variant{
		Name: "heapfn",
		Size: size,
		Run: func(out []int) {
			for i := 0; i < size; i++ {
				fs[i] = func(j int) int { return i*j + size }
			}
			for j := 0; j < size; j++ {
				out[j] = fs[j](j)
			}
		},
	}
}

// Variants is the full comparison set: direct calls, the container
// capacity sweep, and heap funcs.
func Variants(size int) []Variant {
	return []Variant{
		DirectVariant(size),
		InlineVariant[inlinefn.Cap32](size),
		InlineVariant[inlinefn.Cap64](size),
		InlineVariant[inlinefn.Cap128](size),
		InlineVariant[inlinefn.Cap256](size),
		InlineVariant[inlinefn.Cap512](size),
		InlineVariant[inlinefn.Cap1024](size),
		InlineVariant[inlinefn.Cap2048](size),
		HeapFnVariant(size),
	}
}

// Verify checks the anti-elision invariant of the canonical workload:
// out[size-1] - out[0] == (size-1)^2.
func Verify(out []int) error {
	if len(out) == 0 {
		return fmt.Errorf("%w: empty output", ErrInvariant)
	}
	want := (len(out) - 1) * (len(out) - 1)
	if got := out[len(out)-1] - out[0]; got != want {
		return fmt.Errorf("%w: got delta %d, want %d", ErrInvariant, got, want)
	}
	return nil
}
