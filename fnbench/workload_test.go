package fnbench_test

import (
	"testing"

	"github.com/on-the-ground/inline_fn_go/fnbench"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectVariantScenario(t *testing.T) {
	const size = 100
	out := make([]int, size)
	fnbench.DirectVariant(size).Run(out)

	assert.Equal(t, 100, out[0])
	assert.Equal(t, 9901, out[size-1])
	assert.NoError(t, fnbench.Verify(out))
}

func TestVariantsAgree(t *testing.T) {
	const size = 100
	want := make([]int, size)
	fnbench.DirectVariant(size).Run(want)
	require.NoError(t, fnbench.Verify(want))
	wantSum := fnbench.Checksum(want)

	for _, v := range fnbench.Variants(size) {
		out := make([]int, size)
		v.Run(out)
		assert.NoError(t, fnbench.Verify(out), v.Name)
		assert.Equal(t, want, out, v.Name)
		assert.Equal(t, wantSum, fnbench.Checksum(out), v.Name)
	}
}

func TestVerifyRejectsEmptyAndFlat(t *testing.T) {
	assert.ErrorIs(t, fnbench.Verify(nil), fnbench.ErrInvariant)
	assert.ErrorIs(t, fnbench.Verify(make([]int, 100)), fnbench.ErrInvariant)
}

func TestChecksumDistinguishesOutputs(t *testing.T) {
	a := []int{1, 2, 3}
	b := []int{1, 2, 4}
	assert.Equal(t, fnbench.Checksum(a), fnbench.Checksum([]int{1, 2, 3}))
	assert.NotEqual(t, fnbench.Checksum(a), fnbench.Checksum(b))
}
