package conformance

import "fmt"

// Stats summarizes a RunAll result set, the flint-scoped analogue of the
// teacher's SummaryStats minus the Skipped count -- this corpus has no
// setup-driven skip mechanism.
type Stats struct {
	Total  int
	Passed int
	Failed int
}

// ComputeStats tallies a result slice into a Stats.
func ComputeStats(results []TestResult) Stats {
	stats := Stats{Total: len(results)}
	for _, r := range results {
		if r.Passed {
			stats.Passed++
		} else {
			stats.Failed++
		}
	}
	return stats
}

// FormatStats renders a Stats as a one-line human-readable summary.
func FormatStats(stats Stats) string {
	return fmt.Sprintf("%d passed, %d failed (%d total)", stats.Passed, stats.Failed, stats.Total)
}
