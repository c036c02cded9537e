// Package analysis turns raw timing samples into summary statistics.
//
// It uses an HDR histogram for percentile calculation (p50, p90, p95,
// p99) and exact arithmetic over the raw samples for mean, standard
// deviation, minimum, and maximum.
package analysis
