package clock

import (
	"math"
	"time"
)

// Clock is a monotonic time source. Now returns the elapsed time since
// an arbitrary but fixed origin; readings never decrease.
type Clock interface {
	Now() time.Duration
}

// Monotonic reads the wall clock's monotonic component.
type Monotonic struct {
	start time.Time
}

// NewMonotonic creates a monotonic clock anchored at the current time.
func NewMonotonic() *Monotonic {
	return &Monotonic{start: time.Now()}
}

// Now returns the time elapsed since the clock was created.
func (m *Monotonic) Now() time.Duration {
	return time.Since(m.start)
}

// Estimate is a summary of repeated measurements of one quantity.
type Estimate struct {
	Mean    time.Duration `json:"mean"`
	StdDev  time.Duration `json:"stdDev"`
	Samples int           `json:"samples"`
}

// Environment is the calibration data shared across a run: how fine
// the clock ticks, and what a single read of it costs.
type Environment struct {
	Resolution Estimate `json:"resolution"`
	Cost       Estimate `json:"cost"`
}

const (
	warmupStartIterations = 1 << 10
	warmupMaxIterations   = 1 << 22
	warmupTarget          = 10 * time.Millisecond

	costStartBatch = 1000
	costMaxBatch   = 1 << 24
	costTrials     = 10
)

// Warmup exercises the clock until a resolution pass takes long enough
// to give a stable baseline, and returns the iteration count that got
// there. The count doubles each pass and is capped, so a frozen or
// very coarse clock cannot stall the caller.
func Warmup(c Clock) int {
	iters := warmupStartIterations
	for iters < warmupMaxIterations {
		start := c.Now()
		EstimateResolution(c, iters)
		if c.Now()-start >= warmupTarget {
			break
		}
		iters *= 2
	}
	return iters
}

// EstimateResolution measures the smallest observable clock advance by
// taking iters back-to-back readings and averaging the nonzero deltas
// between consecutive ones.
func EstimateResolution(c Clock, iters int) Estimate {
	reads := make([]time.Duration, iters+1)
	for i := range reads {
		reads[i] = c.Now()
	}
	deltas := make([]time.Duration, 0, iters)
	for i := 1; i < len(reads); i++ {
		if d := reads[i] - reads[i-1]; d > 0 {
			deltas = append(deltas, d)
		}
	}
	return estimateOf(deltas)
}

// EstimateCost measures the fixed overhead of a single clock read.
// Reads are timed in batches sized so that one batch spans well above
// the target precision (normally the estimated clock resolution).
func EstimateCost(c Clock, precision time.Duration) Estimate {
	batch := costStartBatch
	for batch < costMaxBatch {
		if timeReads(c, batch) >= 100*precision {
			break
		}
		batch *= 2
	}
	trials := make([]time.Duration, costTrials)
	for i := range trials {
		trials[i] = timeReads(c, batch) / time.Duration(batch)
	}
	return estimateOf(trials)
}

func timeReads(c Clock, n int) time.Duration {
	start := c.Now()
	for i := 0; i < n; i++ {
		_ = c.Now()
	}
	return c.Now() - start
}

func estimateOf(samples []time.Duration) Estimate {
	if len(samples) == 0 {
		return Estimate{}
	}
	var sum float64
	for _, s := range samples {
		sum += float64(s)
	}
	mean := sum / float64(len(samples))
	var sq float64
	for _, s := range samples {
		d := float64(s) - mean
		sq += d * d
	}
	stddev := math.Sqrt(sq / float64(len(samples)))
	return Estimate{
		Mean:    time.Duration(mean),
		StdDev:  time.Duration(stddev),
		Samples: len(samples),
	}
}
