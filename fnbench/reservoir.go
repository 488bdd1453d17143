package fnbench

import (
	"sort"
	"time"
)

// Reservoir keeps the fastest timing samples of a run in ascending
// order. Once full, slow outliers are dropped: in benchmark timing the
// fastest repetitions carry the least scheduler noise.
type Reservoir struct {
	data []time.Duration
	max  int
}

func NewReservoir(max int) *Reservoir {
	if max <= 0 {
		panic("reservoir size should be greater than 0")
	}
	return &Reservoir{
		data: make([]time.Duration, 0, max),
		max:  max,
	}
}

// Insert places d at its sorted position. When the reservoir is full,
// the slowest kept sample makes room, or d itself is rejected if it is
// slower than everything kept. Reports whether d was kept.
func (r *Reservoir) Insert(d time.Duration) bool {
	idx := sort.Search(len(r.data), func(i int) bool {
		return d < r.data[i]
	})

	if len(r.data) == r.max {
		if idx == len(r.data) {
			return false
		}
		copy(r.data[idx+1:], r.data[idx:])
		r.data[idx] = d
		return true
	}

	r.data = append(r.data, d)
	copy(r.data[idx+1:], r.data[idx:])
	r.data[idx] = d
	return true
}

func (r *Reservoir) Len() int { return len(r.data) }

// Min returns the fastest kept sample, 0 when empty.
func (r *Reservoir) Min() time.Duration {
	if len(r.data) == 0 {
		return 0
	}
	return r.data[0]
}

// Quantile returns the kept sample at quantile q, clamped to [0, 1].
func (r *Reservoir) Quantile(q float64) time.Duration {
	if len(r.data) == 0 {
		return 0
	}
	if q < 0 {
		q = 0
	}
	if q > 1 {
		q = 1
	}
	return r.data[int(q*float64(len(r.data)-1))]
}
