package scoring

import "github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/domain"

// AggregateEngagement folds the raw engagement counters into a single rank
// magnitude. The policy is an unweighted sum; raw counters stay visible
// individually for display. Counters are non-negative by invariant, so the
// magnitude never goes below zero.
func AggregateEngagement(e domain.Engagement) int64 {
	return clampCounter(e.Upvotes) + clampCounter(e.Views) + clampCounter(e.Comments)
}

func clampCounter(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}
