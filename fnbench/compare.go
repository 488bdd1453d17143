package fnbench

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

// Report is the outcome of measuring one variant.
type Report struct {
	RunID       string
	Name        string
	Span        timespan.TimeSpan
	Iterations  int
	Fastest     time.Duration
	Median      time.Duration
	AllocsPerOp float64
	Checksum    uint64
}

const repetitions = 10

// Measure runs v for iters workload passes split across timed
// repetitions, and verifies the output invariant after every
// repetition.
func Measure(v Variant, iters int) (Report, error) {
	if v.Size <= 0 || iters <= 0 {
		return Report{}, errors.New("workload size and iters should be greater than 0")
	}

	out := make([]int, v.Size)
	reps := repetitions
	if iters < reps {
		reps = iters
	}
	perRep := iters / reps
	samples := NewReservoir(reps)

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	start := time.Now()
	for r := 0; r < reps; r++ {
		repStart := time.Now()
		for i := 0; i < perRep; i++ {
			v.Run(out)
		}
		samples.Insert(time.Since(repStart) / time.Duration(perRep))
		if err := Verify(out); err != nil {
			return Report{}, fmt.Errorf("%s: %w", v.Name, err)
		}
	}
	end := time.Now()
	runtime.ReadMemStats(&after)

	totalOps := reps * perRep
	return Report{
		RunID:       uuid.New().String(),
		Name:        v.Name,
		Span:        timespan.BetweenTimes(start, end),
		Iterations:  totalOps,
		Fastest:     samples.Min(),
		Median:      samples.Quantile(0.5),
		AllocsPerOp: float64(after.Mallocs-before.Mallocs) / float64(totalOps),
		Checksum:    Checksum(out),
	}, nil
}

// Compare measures every variant of the canonical workload and logs
// one structured line per report.
func Compare(logger *zap.Logger, size, iters int) ([]Report, error) {
	variants := Variants(size)
	reports := make([]Report, 0, len(variants))
	for _, v := range variants {
		rep, err := Measure(v, iters)
		if err != nil {
			logger.Error("variant failed", zap.String("variant", v.Name), zap.Error(err))
			return nil, err
		}
		logger.Info("variant measured",
			zap.String("run_id", rep.RunID),
			zap.String("variant", rep.Name),
			zap.Int("iterations", rep.Iterations),
			zap.Duration("fastest", rep.Fastest),
			zap.Duration("median", rep.Median),
			zap.Float64("allocs_per_op", rep.AllocsPerOp),
			zap.Uint64("checksum", rep.Checksum),
			zap.Duration("wall", rep.Span.Duration()),
		)
		reports = append(reports, rep)
	}
	return reports, nil
}
