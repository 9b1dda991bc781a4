package ranking

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/domain"
	"github.com/lucidfeed-wq/Lucid-Feed-sub003/scoring"
)

// Option selects one of the supported deterministic orderings.
type Option string

const (
	QualityDesc    Option = "quality-desc"
	QualityAsc     Option = "quality-asc"
	RecencyDesc    Option = "recency-desc"
	RecencyAsc     Option = "recency-asc"
	EngagementDesc Option = "engagement-desc"
	TitleAsc       Option = "title-asc"
	TitleDesc      Option = "title-desc"
)

func ParseOption(s string) (Option, error) {
	switch Option(s) {
	case QualityDesc, QualityAsc, RecencyDesc, RecencyAsc, EngagementDesc, TitleAsc, TitleDesc:
		return Option(s), nil
	default:
		return "", fmt.Errorf("unknown sort option: %s", s)
	}
}

// Sorter orders item collections. Title comparison is locale-aware; the
// locale is fixed at construction.
type Sorter struct {
	locale language.Tag
}

func NewSorter(locale language.Tag) *Sorter {
	return &Sorter{locale: locale}
}

// Sort orders items in place. Every ordering is stable: items with equal
// keys keep their relative input order, so ties never fall through to an
// implicit secondary key.
func (s *Sorter) Sort(items []domain.Item, option Option) {
	// collate.Collator carries mutable buffers, so each call gets its own.
	var collator *collate.Collator
	if option == TitleAsc || option == TitleDesc {
		collator = collate.New(s.locale)
	}

	less := func(i, j int) bool {
		a, b := items[i], items[j]
		switch option {
		case QualityDesc:
			return a.Score.TotalScore > b.Score.TotalScore
		case QualityAsc:
			return a.Score.TotalScore < b.Score.TotalScore
		case RecencyDesc:
			return a.PublishedAt.After(b.PublishedAt)
		case RecencyAsc:
			return a.PublishedAt.Before(b.PublishedAt)
		case EngagementDesc:
			return scoring.AggregateEngagement(a.Engagement) > scoring.AggregateEngagement(b.Engagement)
		case TitleAsc:
			return collator.CompareString(a.Title, b.Title) < 0
		case TitleDesc:
			return collator.CompareString(a.Title, b.Title) > 0
		default:
			return false
		}
	}

	sort.SliceStable(items, less)
}
