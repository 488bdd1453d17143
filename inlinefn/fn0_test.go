package inlinefn_test

import (
	"testing"

	"github.com/on-the-ground/inline_fn_go/inlinefn"

	"github.com/stretchr/testify/assert"
)

type constant struct {
	v int
}

func (c constant) Call() int { return c.v }

func TestFn0(t *testing.T) {
	var f inlinefn.Fn0[inlinefn.Cap16, int]
	inlinefn.Bind0(&f, constant{v: 42})
	assert.Equal(t, 42, f.Call())

	var g inlinefn.Fn0[inlinefn.Cap64, int]
	inlinefn.Copy0(&g, &f)
	assert.Equal(t, 42, g.Call())

	inlinefn.Move0(&g, &f)
	assert.Equal(t, 42, g.Call())
	assert.Panics(t, func() { f.Call() })
}

type tick struct {
	n int
}

func (tk *tick) Call() int {
	tk.n++
	return tk.n
}

func TestFn0Mut(t *testing.T) {
	var f inlinefn.Fn0[inlinefn.Cap16, int]
	inlinefn.BindMut0(&f, tick{})
	assert.Equal(t, 1, f.Call())
	assert.Equal(t, 2, f.Call())

	f.Clear()
	assert.Panics(t, func() { f.Call() })
}
