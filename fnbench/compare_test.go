package fnbench_test

import (
	"testing"

	"github.com/on-the-ground/inline_fn_go/fnbench"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMeasureReportsRun(t *testing.T) {
	rep, err := fnbench.Measure(fnbench.DirectVariant(100), 20)
	require.NoError(t, err)

	assert.NotEmpty(t, rep.RunID)
	assert.Equal(t, "direct", rep.Name)
	assert.Equal(t, 20, rep.Iterations)
	assert.NotZero(t, rep.Checksum)
	assert.GreaterOrEqual(t, rep.Median, rep.Fastest)
}

func TestMeasureRejectsBrokenVariant(t *testing.T) {
	broken := fnbench.Variant{
		Name: "broken",
		Size: 100,
		Run:  func(out []int) {},
	}
	_, err := fnbench.Measure(broken, 10)
	assert.ErrorIs(t, err, fnbench.ErrInvariant)
}

func TestMeasureRejectsBadArguments(t *testing.T) {
	empty := fnbench.Variant{Name: "empty", Run: func(out []int) {}}
	_, err := fnbench.Measure(empty, 10)
	assert.Error(t, err)
	_, err = fnbench.Measure(fnbench.DirectVariant(1), 0)
	assert.Error(t, err)
}

func TestCompareAllVariants(t *testing.T) {
	reports, err := fnbench.Compare(zap.NewNop(), 100, 20)
	require.NoError(t, err)
	require.Len(t, reports, 9)

	sum := reports[0].Checksum
	for _, rep := range reports {
		assert.Equal(t, sum, rep.Checksum, rep.Name)
		assert.NotEmpty(t, rep.RunID, rep.Name)
	}
}
