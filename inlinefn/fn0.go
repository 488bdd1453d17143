package inlinefn

import "unsafe"

type adapter0[F, O1 any] struct {
	fn F
}

func (a *adapter0[F, O1]) copyInto(dst unsafe.Pointer) {
	*(*adapter0[F, O1])(dst) = *a
}

func (a *adapter0[F, O1]) dispose() {
	if d, ok := any(&a.fn).(Disposer); ok {
		d.Dispose()
	}
}

type vtable0[O1 any] struct {
	invoke  func(slot unsafe.Pointer) O1
	copy    func(src, dst unsafe.Pointer)
	dispose func(slot unsafe.Pointer)
}

func invoke0[F Callable0[O1], O1 any](slot unsafe.Pointer) O1 {
	return (*adapter0[F, O1])(slot).fn.Call()
}

func invokeMut0[PF CallableMut0[F, O1], F, O1 any](slot unsafe.Pointer) O1 {
	return PF(&(*adapter0[F, O1])(slot).fn).Call()
}

func copy0[F, O1 any](src, dst unsafe.Pointer) {
	(*adapter0[F, O1])(src).copyInto(dst)
}

func dispose0[F, O1 any](slot unsafe.Pointer) {
	(*adapter0[F, O1])(slot).dispose()
}

// Fn0 is the zero-argument sibling of Fn1; see Fn1 for the contract.
type Fn0[C Capacity, O1 any] struct {
	noCopy noCopy
	slot   C
	vt     vtable0[O1]
}

func Bind0[C Capacity, O1 any, F Callable0[O1]](fn *Fn0[C, O1], f F) {
	mustFit[adapter0[F, O1], C]()
	fn.Clear()
	place(&fn.slot, adapter0[F, O1]{fn: f})
	fn.vt = vtable0[O1]{
		invoke:  invoke0[F, O1],
		copy:    copy0[F, O1],
		dispose: dispose0[F, O1],
	}
}

func BindMut0[C Capacity, O1, F any, PF CallableMut0[F, O1]](fn *Fn0[C, O1], f F) {
	mustFit[adapter0[F, O1], C]()
	fn.Clear()
	place(&fn.slot, adapter0[F, O1]{fn: f})
	fn.vt = vtable0[O1]{
		invoke:  invokeMut0[PF, F, O1],
		copy:    copy0[F, O1],
		dispose: dispose0[F, O1],
	}
}

func (fn *Fn0[C, O1]) Call() O1 {
	return fn.vt.invoke(unsafe.Pointer(&fn.slot))
}

func (fn *Fn0[C, O1]) Clear() {
	if fn.vt.invoke == nil {
		return
	}
	fn.vt.dispose(unsafe.Pointer(&fn.slot))
	fn.vt = vtable0[O1]{}
}

func Copy0[D, S Capacity, O1 any](dst *Fn0[D, O1], src *Fn0[S, O1]) {
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

func Move0[D, S Capacity, O1 any](dst *Fn0[D, O1], src *Fn0[S, O1]) {
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
	src.vt = vtable0[O1]{}
}
