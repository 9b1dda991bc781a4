package ranking

import (
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/domain"
)

func item(id string, total float64, published time.Time, title string, views int64) domain.Item {
	return domain.Item{
		ID:          id,
		Title:       title,
		PublishedAt: published,
		Engagement:  domain.Engagement{Views: views},
		Score:       domain.ScoreBreakdown{TotalScore: total},
	}
}

func ids(items []domain.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func assertOrder(t *testing.T, items []domain.Item, want ...string) {
	t.Helper()
	got := ids(items)
	if len(got) != len(want) {
		t.Fatalf("expected %v got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v got %v", want, got)
		}
	}
}

func TestSortQualityDesc(t *testing.T) {
	base := time.Now()
	items := []domain.Item{
		item("low", 0.2, base, "b", 0),
		item("high", 0.9, base, "a", 0),
		item("mid", 0.5, base, "c", 0),
	}

	NewSorter(language.English).Sort(items, QualityDesc)
	assertOrder(t, items, "high", "mid", "low")
}

func TestSortStabilityOnEqualKeys(t *testing.T) {
	base := time.Now()
	items := []domain.Item{
		item("first", 0.5, base, "x", 0),
		item("second", 0.5, base, "y", 0),
		item("third", 0.5, base, "z", 0),
	}

	sorter := NewSorter(language.English)

	sorter.Sort(items, QualityDesc)
	assertOrder(t, items, "first", "second", "third")

	// Ties keep input order under every numeric comparator.
	sorter.Sort(items, EngagementDesc)
	assertOrder(t, items, "first", "second", "third")
}

func TestSortIdempotentOnSortedInput(t *testing.T) {
	base := time.Now()
	items := []domain.Item{
		item("a", 0.9, base, "a", 0),
		item("b", 0.9, base, "b", 0),
		item("c", 0.1, base, "c", 0),
	}

	sorter := NewSorter(language.English)
	sorter.Sort(items, QualityDesc)
	once := ids(items)

	sorter.Sort(items, QualityDesc)
	assertOrder(t, items, once...)
}

func TestSortDescThenAscReversesRespectingTies(t *testing.T) {
	base := time.Now()
	items := []domain.Item{
		item("a", 0.3, base, "a", 0),
		item("b", 0.7, base, "b", 0),
		item("c", 0.3, base, "c", 0),
	}

	sorter := NewSorter(language.English)
	sorter.Sort(items, QualityDesc)
	assertOrder(t, items, "b", "a", "c")

	sorter.Sort(items, QualityAsc)
	assertOrder(t, items, "a", "c", "b")
}

func TestSortRecency(t *testing.T) {
	now := time.Now()
	items := []domain.Item{
		item("old", 0, now.Add(-2*time.Hour), "a", 0),
		item("new", 0, now, "b", 0),
		item("mid", 0, now.Add(-time.Hour), "c", 0),
	}

	sorter := NewSorter(language.English)
	sorter.Sort(items, RecencyDesc)
	assertOrder(t, items, "new", "mid", "old")

	sorter.Sort(items, RecencyAsc)
	assertOrder(t, items, "old", "mid", "new")
}

func TestSortEngagementDesc(t *testing.T) {
	base := time.Now()
	items := []domain.Item{
		item("quiet", 0, base, "a", 3),
		item("busy", 0, base, "b", 500),
	}

	NewSorter(language.English).Sort(items, EngagementDesc)
	assertOrder(t, items, "busy", "quiet")
}

func TestSortTitleLocaleAware(t *testing.T) {
	base := time.Now()
	items := []domain.Item{
		item("b", 0, base, "beta study", 0),
		item("a", 0, base, "Alpha trial", 0),
		item("e", 0, base, "émigré cohorts", 0),
	}

	NewSorter(language.English).Sort(items, TitleAsc)
	// Case-insensitive, accent-aware ordering under the en collator.
	assertOrder(t, items, "a", "b", "e")

	NewSorter(language.English).Sort(items, TitleDesc)
	assertOrder(t, items, "e", "b", "a")
}

func TestParseOption(t *testing.T) {
	for _, valid := range []string{
		"quality-desc", "quality-asc", "recency-desc", "recency-asc",
		"engagement-desc", "title-asc", "title-desc",
	} {
		if _, err := ParseOption(valid); err != nil {
			t.Fatalf("expected %s to parse: %v", valid, err)
		}
	}

	if _, err := ParseOption("magic"); err == nil {
		t.Fatalf("expected unknown option to fail")
	}
}
