package scoring

import (
	"math"
	"reflect"
	"testing"

	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/domain"
)

func TestComputeWeightedTotal(t *testing.T) {
	weights := Weights{"relevance": 0.5, "credibility": 0.5}
	subscores := map[string]float64{"relevance": 0.8, "credibility": 0.6}

	breakdown := Compute(weights, subscores)

	if math.Abs(breakdown.TotalScore-0.7) > 1e-12 {
		t.Fatalf("expected total 0.7, got %v", breakdown.TotalScore)
	}
	if !reflect.DeepEqual(breakdown.Subscores, subscores) {
		t.Fatalf("subscores must be carried through unchanged")
	}
}

func TestComputeMissingSubscoreDefaultsToZero(t *testing.T) {
	weights := Weights{"relevance": 0.5, "credibility": 0.3, "recency": 0.2}

	breakdown := Compute(weights, map[string]float64{"relevance": 1.0})

	if math.Abs(breakdown.TotalScore-0.5) > 1e-12 {
		t.Fatalf("missing subscores must contribute 0, got total %v", breakdown.TotalScore)
	}
}

func TestComputeIsIdempotent(t *testing.T) {
	weights := Weights{"relevance": 0.6, "credibility": 0.4}
	subscores := map[string]float64{"relevance": 0.3, "credibility": 0.9}

	first := Compute(weights, subscores)
	second := Compute(weights, subscores)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("recomputation on unchanged input must be identical: %+v vs %+v", first, second)
	}
}

func TestComputeDoesNotMutateInput(t *testing.T) {
	weights := Weights{"relevance": 1.0}
	subscores := map[string]float64{"relevance": 0.5}

	breakdown := Compute(weights, subscores)
	breakdown.Subscores["relevance"] = 99

	if subscores["relevance"] != 0.5 {
		t.Fatalf("input subscores were mutated")
	}
}

func TestWeightsValidate(t *testing.T) {
	cases := []struct {
		name    string
		weights Weights
		wantErr bool
	}{
		{"sums to one", Weights{"a": 0.5, "b": 0.5}, false},
		{"single weight", Weights{"a": 1.0}, false},
		{"sums under one", Weights{"a": 0.5, "b": 0.4}, true},
		{"sums over one", Weights{"a": 0.8, "b": 0.8}, true},
		{"negative weight", Weights{"a": 1.5, "b": -0.5}, true},
		{"empty", Weights{}, true},
	}

	for _, tc := range cases {
		err := tc.weights.Validate()
		if tc.wantErr && err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
	}
}

func TestAggregateEngagement(t *testing.T) {
	magnitude := AggregateEngagement(domain.Engagement{Upvotes: 3, Views: 100, Comments: 7})
	if magnitude != 110 {
		t.Fatalf("expected 110, got %d", magnitude)
	}

	if AggregateEngagement(domain.Engagement{}) != 0 {
		t.Fatalf("empty engagement must aggregate to 0")
	}

	// Counters never decrease; a corrupt negative never drags the magnitude
	// below zero.
	if got := AggregateEngagement(domain.Engagement{Upvotes: -5, Views: 2}); got != 2 {
		t.Fatalf("expected negative counter ignored, got %d", got)
	}
}
