package inlinefn

import "unsafe"

// adapter1 owns one capture by value inside a container slot. It is
// the only concrete occupant a slot ever has: one adapter type per
// capture type, placed, copied, and disposed in place.
type adapter1[F, I1, O1 any] struct {
	fn F
}

// copyInto places a functionally equivalent adapter at dst. The caller
// guarantees dst points at a slot of sufficient capacity.
func (a *adapter1[F, I1, O1]) copyInto(dst unsafe.Pointer) {
	*(*adapter1[F, I1, O1])(dst) = *a
}

func (a *adapter1[F, I1, O1]) dispose() {
	if d, ok := any(&a.fn).(Disposer); ok {
		d.Dispose()
	}
}

// vtable1 is the erased dispatch surface for one-argument signatures.
// Every adapter type instantiates the same three entry points over its
// own layout; a container is occupied iff invoke is non-nil.
type vtable1[I1, O1 any] struct {
	invoke  func(slot unsafe.Pointer, i1 I1) O1
	copy    func(src, dst unsafe.Pointer)
	dispose func(slot unsafe.Pointer)
}

func invoke1[F Callable1[I1, O1], I1, O1 any](slot unsafe.Pointer, i1 I1) O1 {
	return (*adapter1[F, I1, O1])(slot).fn.Call(i1)
}

func invokeMut1[PF CallableMut1[F, I1, O1], F, I1, O1 any](slot unsafe.Pointer, i1 I1) O1 {
	return PF(&(*adapter1[F, I1, O1])(slot).fn).Call(i1)
}

func copy1[F, I1, O1 any](src, dst unsafe.Pointer) {
	(*adapter1[F, I1, O1])(src).copyInto(dst)
}

func dispose1[F, I1, O1 any](slot unsafe.Pointer) {
	(*adapter1[F, I1, O1])(slot).dispose()
}

// Fn1 is a fixed-capacity container for a callable taking I1 and
// returning O1. The zero value is an empty container. Binding,
// calling, copying, and clearing never allocate.
//
// A bound Fn1 must not be copied by assignment: use Copy1 or Move1,
// which run the adapter's copy protocol into the destination's slot.
type Fn1[C Capacity, I1, O1 any] struct {
	noCopy noCopy
	slot   C
	vt     vtable1[I1, O1]
}

// Bind1 places a copy of f into fn's slot, disposing any previous
// payload first. It panics with ErrCapacityExceeded when the adapter
// for F exceeds the declared capacity, and with ErrReferenceCapture
// when F's layout contains pointer words; there is no heap fallback.
func Bind1[C Capacity, I1, O1 any, F Callable1[I1, O1]](fn *Fn1[C, I1, O1], f F) {
	mustFit[adapter1[F, I1, O1], C]()
	fn.Clear()
	place(&fn.slot, adapter1[F, I1, O1]{fn: f})
	fn.vt = vtable1[I1, O1]{
		invoke:  invoke1[F, I1, O1],
		copy:    copy1[F, I1, O1],
		dispose: dispose1[F, I1, O1],
	}
}

// BindMut1 is Bind1 for callables whose Call has a pointer receiver:
// invocation goes through a pointer to the stored copy, so Call may
// mutate captured state in place.
func BindMut1[C Capacity, I1, O1, F any, PF CallableMut1[F, I1, O1]](fn *Fn1[C, I1, O1], f F) {
	mustFit[adapter1[F, I1, O1], C]()
	fn.Clear()
	place(&fn.slot, adapter1[F, I1, O1]{fn: f})
	fn.vt = vtable1[I1, O1]{
		invoke:  invokeMut1[PF, F, I1, O1],
		copy:    copy1[F, I1, O1],
		dispose: dispose1[F, I1, O1],
	}
}

// Call invokes the stored callable. Calling an empty container panics.
func (fn *Fn1[C, I1, O1]) Call(i1 I1) O1 {
	return fn.vt.invoke(unsafe.Pointer(&fn.slot), i1)
}

// Clear disposes the current payload, if any, and leaves the container
// empty. Clearing an empty container is a no-op.
func (fn *Fn1[C, I1, O1]) Clear() {
	if fn.vt.invoke == nil {
		return
	}
	fn.vt.dispose(unsafe.Pointer(&fn.slot))
	fn.vt = vtable1[I1, O1]{}
}

// Copy1 clears dst, then has src's adapter place an equivalent copy of
// itself into dst's slot. Occupancy follows the source: copying an
// empty container empties dst. It panics with ErrCapacityExceeded when
// src's declared capacity exceeds dst's.
func Copy1[D, S Capacity, I1, O1 any](dst *Fn1[D, I1, O1], src *Fn1[S, I1, O1]) {
	mustHold[S, D]()
	if unsafe.Pointer(dst) == unsafe.Pointer(src) {
		return
	}
	dst.Clear()
	if src.vt.invoke == nil {
		return
	}
	src.vt.copy(unsafe.Pointer(&src.slot), unsafe.Pointer(&dst.slot))
	dst.vt = src.vt
}

// Move1 relocates src's payload into dst and leaves src empty. The
// source forgets its payload rather than disposing it, so the payload
// is still disposed exactly once, by its new home.
func Move1[D, S Capacity, I1, O1 any](dst *Fn1[D, I1, O1], src *Fn1[S, I1, O1]) {
	mustHold[S, D]()
	if unsafe.Pointer(dst) == unsafe.Pointer(src) {
		return
	}
	dst.Clear()
	if src.vt.invoke == nil {
		return
	}
	src.vt.copy(unsafe.Pointer(&src.slot), unsafe.Pointer(&dst.slot))
	dst.vt = src.vt
	src.vt = vtable1[I1, O1]{}
}
