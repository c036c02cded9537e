package analysis

import (
	"math"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"

	"github.com/wesleyorama2/cadence/bench"
)

// Histogram bounds: 1 nanosecond to 1 hour, 3 significant figures.
// Microbenchmark trials routinely land in the sub-microsecond range,
// so values are recorded in nanoseconds.
const (
	histogramMin     = 1
	histogramMax     = int64(time.Hour)
	histogramSigFigs = 3
)

// Result summarizes a benchmark's timing samples.
//
// Mean, standard deviation, minimum and maximum are exact, computed
// from the raw samples. Percentiles come from an HDR histogram and are
// accurate to the histogram's significant figures.
type Result struct {
	Count  int           `json:"count"`
	Mean   time.Duration `json:"mean"`
	StdDev time.Duration `json:"stdDev"`
	Min    time.Duration `json:"min"`
	Max    time.Duration `json:"max"`
	P50    time.Duration `json:"p50"`
	P90    time.Duration `json:"p90"`
	P95    time.Duration `json:"p95"`
	P99    time.Duration `json:"p99"`
}

// Analyse computes summary statistics over a benchmark's samples. An
// empty sample set yields a zero Result.
func Analyse(samples bench.Samples) Result {
	if len(samples) == 0 {
		return Result{}
	}

	hist := hdrhistogram.New(histogramMin, histogramMax, histogramSigFigs)
	min, max := samples[0], samples[0]
	var sum float64
	for _, s := range samples {
		hist.RecordValue(int64(s))
		sum += float64(s)
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}

	mean := sum / float64(len(samples))
	var sq float64
	for _, s := range samples {
		d := float64(s) - mean
		sq += d * d
	}

	return Result{
		Count:  len(samples),
		Mean:   time.Duration(mean),
		StdDev: time.Duration(math.Sqrt(sq / float64(len(samples)))),
		Min:    min,
		Max:    max,
		P50:    time.Duration(hist.ValueAtQuantile(50)),
		P90:    time.Duration(hist.ValueAtQuantile(90)),
		P95:    time.Duration(hist.ValueAtQuantile(95)),
		P99:    time.Duration(hist.ValueAtQuantile(99)),
	}
}
