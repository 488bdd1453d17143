package inlinefn_test

import (
	"sync/atomic"
	"testing"

	"github.com/on-the-ground/inline_fn_go/inlinefn"

	"github.com/stretchr/testify/assert"
)

// trackedDisposals counts every Dispose of a tracked capture. The
// capture itself stays pointer-free by reaching the counter through
// the package variable.
var trackedDisposals atomic.Int64

type tracked struct {
	id int
}

func (tr tracked) Call(j int) int { return tr.id + j }

func (tr tracked) Dispose() { trackedDisposals.Add(1) }

func TestSingleDisposalAcrossLifecycle(t *testing.T) {
	trackedDisposals.Store(0)
	placements := 0

	var a inlinefn.Fn1[inlinefn.Cap32, int, int]
	var b inlinefn.Fn1[inlinefn.Cap64, int, int]
	var c inlinefn.Fn1[inlinefn.Cap128, int, int]

	inlinefn.Bind1(&a, tracked{id: 1})
	placements++
	inlinefn.Bind1(&a, tracked{id: 2}) // rebinding disposes the first payload
	placements++
	assert.Equal(t, int64(1), trackedDisposals.Load())

	inlinefn.Copy1(&b, &a)
	placements++
	inlinefn.Move1(&c, &b) // relocation: no new logical instance, no disposal
	assert.Equal(t, int64(1), trackedDisposals.Load())

	assert.Equal(t, 7, c.Call(5))
	assert.Panics(t, func() { b.Call(5) })

	a.Clear()
	b.Clear() // already empty
	c.Clear()
	c.Clear()

	assert.Equal(t, int64(placements), trackedDisposals.Load())
}

func TestRepeatedRebindBalances(t *testing.T) {
	trackedDisposals.Store(0)

	var f inlinefn.Fn1[inlinefn.Cap32, int, int]
	const rounds = 1000
	for i := 0; i < rounds; i++ {
		inlinefn.Bind1(&f, tracked{id: i})
	}
	f.Clear()

	assert.Equal(t, int64(rounds), trackedDisposals.Load())
}

func TestCopyOverOccupiedDisposesOldPayload(t *testing.T) {
	trackedDisposals.Store(0)

	var a, b inlinefn.Fn1[inlinefn.Cap64, int, int]
	inlinefn.Bind1(&a, tracked{id: 1})
	inlinefn.Bind1(&b, tracked{id: 2})

	inlinefn.Copy1(&b, &a) // b's payload goes first
	assert.Equal(t, int64(1), trackedDisposals.Load())

	a.Clear()
	b.Clear()
	assert.Equal(t, int64(3), trackedDisposals.Load())
}
