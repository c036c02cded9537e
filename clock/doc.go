// Package clock provides the monotonic time source used for benchmark
// measurement, plus the calibration routines that characterize it.
//
// Calibration answers two questions about the ambient timing
// environment before any benchmark runs:
//
//   - Resolution: the smallest advance the clock can observe
//     (EstimateResolution)
//   - Cost: the fixed overhead of issuing one clock read
//     (EstimateCost)
//
// Both are returned as an Estimate (mean, standard deviation, sample
// count) and combined into an Environment that the rest of a run
// shares read-only.
//
// The Clock interface lets tests substitute a deterministic fake; the
// harness itself uses NewMonotonic, which reads the monotonic
// component of the system clock.
package clock
