package inlinefn

// Callable0 through Callable3 describe values invocable with zero to
// three arguments and one result. Captures are the value's fields.
type Callable0[O1 any] interface {
	Call() O1
}

type Callable1[I1, O1 any] interface {
	Call(I1) O1
}

type Callable2[I1, I2, O1 any] interface {
	Call(I1, I2) O1
}

type Callable3[I1, I2, I3, O1 any] interface {
	Call(I1, I2, I3) O1
}

// CallableMut0 through CallableMut3 constrain *F instead of F, so the
// BindMut family can invoke the stored copy through a pointer and Call
// may mutate captured state in place.
type CallableMut0[F, O1 any] interface {
	*F
	Call() O1
}

type CallableMut1[F, I1, O1 any] interface {
	*F
	Call(I1) O1
}

type CallableMut2[F, I1, I2, O1 any] interface {
	*F
	Call(I1, I2) O1
}

type CallableMut3[F, I1, I2, I3, O1 any] interface {
	*F
	Call(I1, I2, I3) O1
}

// Disposer lets a capture observe its own destruction. Clear, rebind,
// copy-over-occupied, and the copy half of a move each dispose exactly
// one placed copy; a moved payload is disposed only at its final home.
type Disposer interface {
	Dispose()
}
