// Package fnbench exercises inlinefn containers in the hot loop they
// were built for, and compares them against the two obvious
// alternatives: calling the capture type directly (no erasure at all)
// and heap-allocated func values (erasure the usual Go way).
//
// The canonical workload builds size callables, each capturing its
// index i and the workload size, invokes callable i with argument i,
// and writes the results into an output slice. The output obeys a
// closed-form invariant (Verify) and is folded through a checksum
// (Checksum) so the work cannot be optimized away.
//
// Compare measures every variant and reports run id, timing quantiles
// from a bounded sample reservoir, allocation counts, and the output
// checksum through structured logs.
package fnbench
