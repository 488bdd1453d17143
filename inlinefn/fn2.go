package inlinefn

import "unsafe"

type adapter2[F, I1, I2, O1 any] struct {
	fn F
}

func (a *adapter2[F, I1, I2, O1]) copyInto(dst unsafe.Pointer) {
	*(*adapter2[F, I1, I2, O1])(dst) = *a
}

func (a *adapter2[F, I1, I2, O1]) dispose() {
	if d, ok := any(&a.fn).(Disposer); ok {
		d.Dispose()
	}
}

type vtable2[I1, I2, O1 any] struct {
	invoke  func(slot unsafe.Pointer, i1 I1, i2 I2) O1
	copy    func(src, dst unsafe.Pointer)
	dispose func(slot unsafe.Pointer)
}

func invoke2[F Callable2[I1, I2, O1], I1, I2, O1 any](slot unsafe.Pointer, i1 I1, i2 I2) O1 {
	return (*adapter2[F, I1, I2, O1])(slot).fn.Call(i1, i2)
}

func invokeMut2[PF CallableMut2[F, I1, I2, O1], F, I1, I2, O1 any](slot unsafe.Pointer, i1 I1, i2 I2) O1 {
	return PF(&(*adapter2[F, I1, I2, O1])(slot).fn).Call(i1, i2)
}

func copy2[F, I1, I2, O1 any](src, dst unsafe.Pointer) {
	(*adapter2[F, I1, I2, O1])(src).copyInto(dst)
}

func dispose2[F, I1, I2, O1 any](slot unsafe.Pointer) {
	(*adapter2[F, I1, I2, O1])(slot).dispose()
}

// Fn2 is the two-argument sibling of Fn1; see Fn1 for the contract.
type Fn2[C Capacity, I1, I2, O1 any] struct {
	noCopy noCopy
	slot   C
	vt     vtable2[I1, I2, O1]
}

func Bind2[C Capacity, I1, I2, O1 any, F Callable2[I1, I2, O1]](fn *Fn2[C, I1, I2, O1], f F) {
	mustFit[adapter2[F, I1, I2, O1], C]()
	fn.Clear()
	place(&fn.slot, adapter2[F, I1, I2, O1]{fn: f})
	fn.vt = vtable2[I1, I2, O1]{
		invoke:  invoke2[F, I1, I2, O1],
		copy:    copy2[F, I1, I2, O1],
		dispose: dispose2[F, I1, I2, O1],
	}
}

func BindMut2[C Capacity, I1, I2, O1, F any, PF CallableMut2[F, I1, I2, O1]](fn *Fn2[C, I1, I2, O1], f F) {
	mustFit[adapter2[F, I1, I2, O1], C]()
	fn.Clear()
	place(&fn.slot, adapter2[F, I1, I2, O1]{fn: f})
	fn.vt = vtable2[I1, I2, O1]{
		invoke:  invokeMut2[PF, F, I1, I2, O1],
		copy:    copy2[F, I1, I2, O1],
		dispose: dispose2[F, I1, I2, O1],
	}
}

func (fn *Fn2[C, I1, I2, O1]) Call(i1 I1, i2 I2) O1 {
	return fn.vt.invoke(unsafe.Pointer(&fn.slot), i1, i2)
}

func (fn *Fn2[C, I1, I2, O1]) Clear() {
	if fn.vt.invoke == nil {
		return
	}
	fn.vt.dispose(unsafe.Pointer(&fn.slot))
	fn.vt = vtable2[I1, I2, O1]{}
}

func Copy2[D, S Capacity, I1, I2, O1 any](dst *Fn2[D, I1, I2, O1], src *Fn2[S, I1, I2, O1]) {
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

func Move2[D, S Capacity, I1, I2, O1 any](dst *Fn2[D, I1, I2, O1], src *Fn2[S, I1, I2, O1]) {
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
	src.vt = vtable2[I1, I2, O1]{}
}
