package scoring

import (
	"fmt"
	"math"

	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/domain"
)

// Weights maps subscore names to their share of the total score. The set of
// weights is fixed per deployment and must sum to 1.0.
type Weights map[string]float64

const weightSumEpsilon = 1e-9

// Validate checks the deployment invariant on the weight table.
func (w Weights) Validate() error {
	if len(w) == 0 {
		return fmt.Errorf("scoring weights are empty")
	}
	sum := 0.0
	for name, weight := range w {
		if weight < 0 {
			return fmt.Errorf("scoring weight %s is negative", name)
		}
		sum += weight
	}
	if math.Abs(sum-1.0) > weightSumEpsilon {
		return fmt.Errorf("scoring weights sum to %v, want 1.0", sum)
	}
	return nil
}

// Compute derives a score breakdown from named subscores. The total is a
// weighted sum over the weight table; a subscore absent from the input
// contributes 0. The input is never mutated and the result depends on
// nothing but the arguments, so recomputation is idempotent.
func Compute(weights Weights, subscores map[string]float64) domain.ScoreBreakdown {
	copied := make(map[string]float64, len(subscores))
	for name, value := range subscores {
		copied[name] = value
	}

	total := 0.0
	for name, weight := range weights {
		total += weight * subscores[name]
	}

	return domain.ScoreBreakdown{
		Subscores:  copied,
		TotalScore: total,
	}
}
