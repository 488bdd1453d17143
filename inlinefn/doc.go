// Package inlinefn provides a fixed-capacity, type-erased callable value.
//
// A container such as Fn1 holds any callable whose adapter fits a
// declared byte bound, stores it inline inside the container itself,
// and invokes it through one uniform call surface regardless of the
// captured type. It answers the same need as a heap-backed generic
// function value, with one defining difference: binding, calling,
// copying, and clearing never touch the heap.
//
// # Why inline storage?
//
// Go closures are heap values: capturing state allocates, and a hot
// loop that rebinds callables per iteration pays the allocator and the
// garbage collector on every pass. An inlinefn container keeps the
// capture in its own slot instead, so rebinding is a fixed-size copy
// and invocation is a single indirect call. See package fnbench for
// the comparison against direct struct calls and heap func values.
//
// # Callables
//
// A callable is any value with a Call method of the container's shape;
// its captures are ordinary fields:
//
//	type MulAdd struct{ I, N int }
//
//	func (m MulAdd) Call(j int) int { return m.I*j + m.N }
//
//	var f inlinefn.Fn1[inlinefn.Cap64, int, int]
//	inlinefn.Bind1(&f, MulAdd{I: 3, N: 100})
//	f.Call(5) // 115
//
// Bind1 accepts value-receiver callables; BindMut1 accepts
// pointer-receiver callables and lets Call mutate the stored capture
// in place. Fn0 through Fn3 cover zero to three arguments.
//
// # Capacity
//
// The byte bound is part of the container's type, chosen from the
// closed Capacity set (Cap8 … Cap2048). A capture that does not fit is
// rejected when bound, never spilled to the heap. Containers of the
// same signature interoperate through Copy1/Move1 as long as the
// source's declared capacity does not exceed the destination's.
//
// # Rules of use
//
//   - The zero value is an empty container; calling it panics.
//   - Captures must be pointer-free (no pointers, slices, maps,
//     strings, channels, funcs, or interfaces in their layout): the
//     slot is opaque to the garbage collector.
//   - Containers must not be copied by assignment once bound; use
//     Copy1 or Move1, which run the adapter's copy protocol.
//   - A capture may implement Disposer to observe its destruction;
//     clear such containers explicitly when done with them.
//   - A container is an ordinary non-atomic value: concurrent use of
//     one instance requires external synchronization.
package inlinefn
