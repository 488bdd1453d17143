package inlinefn

import "unsafe"

type adapter3[F, I1, I2, I3, O1 any] struct {
	fn F
}

func (a *adapter3[F, I1, I2, I3, O1]) copyInto(dst unsafe.Pointer) {
	*(*adapter3[F, I1, I2, I3, O1])(dst) = *a
}

func (a *adapter3[F, I1, I2, I3, O1]) dispose() {
	if d, ok := any(&a.fn).(Disposer); ok {
		d.Dispose()
	}
}

type vtable3[I1, I2, I3, O1 any] struct {
	invoke  func(slot unsafe.Pointer, i1 I1, i2 I2, i3 I3) O1
	copy    func(src, dst unsafe.Pointer)
	dispose func(slot unsafe.Pointer)
}

func invoke3[F Callable3[I1, I2, I3, O1], I1, I2, I3, O1 any](slot unsafe.Pointer, i1 I1, i2 I2, i3 I3) O1 {
	return (*adapter3[F, I1, I2, I3, O1])(slot).fn.Call(i1, i2, i3)
}

func invokeMut3[PF CallableMut3[F, I1, I2, I3, O1], F, I1, I2, I3, O1 any](slot unsafe.Pointer, i1 I1, i2 I2, i3 I3) O1 {
	return PF(&(*adapter3[F, I1, I2, I3, O1])(slot).fn).Call(i1, i2, i3)
}

func copy3[F, I1, I2, I3, O1 any](src, dst unsafe.Pointer) {
	(*adapter3[F, I1, I2, I3, O1])(src).copyInto(dst)
}

func dispose3[F, I1, I2, I3, O1 any](slot unsafe.Pointer) {
	(*adapter3[F, I1, I2, I3, O1])(slot).dispose()
}

// Fn3 is the three-argument sibling of Fn1; see Fn1 for the contract.
type Fn3[C Capacity, I1, I2, I3, O1 any] struct {
	noCopy noCopy
	slot   C
	vt     vtable3[I1, I2, I3, O1]
}

func Bind3[C Capacity, I1, I2, I3, O1 any, F Callable3[I1, I2, I3, O1]](fn *Fn3[C, I1, I2, I3, O1], f F) {
	mustFit[adapter3[F, I1, I2, I3, O1], C]()
	fn.Clear()
	place(&fn.slot, adapter3[F, I1, I2, I3, O1]{fn: f})
	fn.vt = vtable3[I1, I2, I3, O1]{
		invoke:  invoke3[F, I1, I2, I3, O1],
		copy:    copy3[F, I1, I2, I3, O1],
		dispose: dispose3[F, I1, I2, I3, O1],
	}
}

func BindMut3[C Capacity, I1, I2, I3, O1, F any, PF CallableMut3[F, I1, I2, I3, O1]](fn *Fn3[C, I1, I2, I3, O1], f F) {
	mustFit[adapter3[F, I1, I2, I3, O1], C]()
	fn.Clear()
	place(&fn.slot, adapter3[F, I1, I2, I3, O1]{fn: f})
	fn.vt = vtable3[I1, I2, I3, O1]{
		invoke:  invokeMut3[PF, F, I1, I2, I3, O1],
		copy:    copy3[F, I1, I2, I3, O1],
		dispose: dispose3[F, I1, I2, I3, O1],
	}
}

func (fn *Fn3[C, I1, I2, I3, O1]) Call(i1 I1, i2 I2, i3 I3) O1 {
	return fn.vt.invoke(unsafe.Pointer(&fn.slot), i1, i2, i3)
}

func (fn *Fn3[C, I1, I2, I3, O1]) Clear() {
	if fn.vt.invoke == nil {
		return
	}
	fn.vt.dispose(unsafe.Pointer(&fn.slot))
	fn.vt = vtable3[I1, I2, I3, O1]{}
}

func Copy3[D, S Capacity, I1, I2, I3, O1 any](dst *Fn3[D, I1, I2, I3, O1], src *Fn3[S, I1, I2, I3, O1]) {
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

func Move3[D, S Capacity, I1, I2, I3, O1 any](dst *Fn3[D, I1, I2, I3, O1], src *Fn3[S, I1, I2, I3, O1]) {
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
	src.vt = vtable3[I1, I2, I3, O1]{}
}
