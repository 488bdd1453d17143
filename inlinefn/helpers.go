package inlinefn

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/on-the-ground/inline_fn_go/inlinefn/internal/footprint"
)

// mustFit verifies, before any placement, that adapter type T can
// legally occupy a slot of capacity C: its footprint must be within
// the declared bound and its layout must be pointer-free.
func mustFit[T any, C Capacity]() {
	if need, have := footprint.Of[T](), footprint.Of[C](); need > have {
		panic(fmt.Errorf("%w: %s needs %d bytes, slot holds %d",
			ErrCapacityExceeded, reflect.TypeFor[T](), need, have))
	}
	if !footprint.PointerFree[T]() {
		panic(fmt.Errorf("%w: %s", ErrReferenceCapture, reflect.TypeFor[T]()))
	}
}

// mustHold rejects copies from a larger-declared-capacity source:
// only a source capacity S <= destination capacity D interoperates.
func mustHold[S, D Capacity]() {
	if src, dst := footprint.Of[S](), footprint.Of[D](); src > dst {
		panic(fmt.Errorf("%w: source capacity %d exceeds destination capacity %d",
			ErrCapacityExceeded, src, dst))
	}
}

// place constructs v directly inside the slot. Callers guarantee the
// mustFit precondition; alignment holds structurally because slots are
// word arrays.
func place[T any, C Capacity](slot *C, v T) {
	*(*T)(unsafe.Pointer(slot)) = v
}

// noCopy makes `go vet` flag containers copied by assignment.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
