package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/zeebo/xxh3"

	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/domain"
	"github.com/lucidfeed-wq/Lucid-Feed-sub003/scoring"
	"github.com/lucidfeed-wq/Lucid-Feed-sub003/taxonomy"
)

// RawItem is what a feed adapter delivers for one harvested entry, before
// taxonomy and methodology are assigned.
type RawItem struct {
	Title           string             `json:"title"`
	URL             string             `json:"url"`
	DigestID        string             `json:"digestId"`
	PublishedAt     time.Time          `json:"publishedAt"`
	Topics          []string           `json:"topics"`
	PublicationType string             `json:"publicationType"`
	Subscores       map[string]float64 `json:"subscores"`
}

type IngestUsecase struct {
	vocab   taxonomy.Vocabulary
	weights scoring.Weights
	items   ItemRepository
}

func NewIngestUsecase(vocab taxonomy.Vocabulary, weights scoring.Weights, items ItemRepository) *IngestUsecase {
	return &IngestUsecase{
		vocab:   vocab,
		weights: weights,
		items:   items,
	}
}

// Ingest validates and normalizes a raw item into the corpus. Unknown
// topics reject the item as a whole; methodology classification never does.
func (uc *IngestUsecase) Ingest(ctx context.Context, feed domain.Feed, raw RawItem) (domain.Item, error) {
	if !feed.IsApproved {
		return domain.Item{}, fmt.Errorf("feed %s is not approved for ingestion", feed.Name)
	}
	if raw.Title == "" || raw.URL == "" {
		return domain.Item{}, fmt.Errorf("item title and url are required")
	}

	if err := uc.vocab.Validate(raw.Topics); err != nil {
		return domain.Item{}, err
	}

	item := domain.Item{
		ID:          newItemID(raw.URL, raw.PublishedAt),
		Title:       raw.Title,
		URL:         raw.URL,
		SourceType:  feed.SourceType,
		DigestID:    raw.DigestID,
		PublishedAt: raw.PublishedAt,
		Topics:      raw.Topics,
		Methodology: domain.ClassifyMethodology(raw.PublicationType),
		Score:       scoring.Compute(uc.weights, raw.Subscores),
	}

	err := uc.items.Create(ctx, item)
	if err != nil {
		return domain.Item{}, err
	}

	return item, nil
}

// Rescore recomputes an item's breakdown from fresh subscores. The total is
// always rebuilt top-down; nothing is adjusted in place.
func (uc *IngestUsecase) Rescore(ctx context.Context, itemID string, subscores map[string]float64) (domain.ScoreBreakdown, error) {
	score := scoring.Compute(uc.weights, subscores)
	err := uc.items.UpdateScore(ctx, itemID, score)
	if err != nil {
		return domain.ScoreBreakdown{}, err
	}
	return score, nil
}

// newItemID derives an opaque, stable identifier from the canonical URL and
// publish time.
func newItemID(url string, publishedAt time.Time) string {
	hash := xxh3.HashString128(url)
	return fmt.Sprintf("%016x%016x-%08x", hash.Hi, hash.Lo, publishedAt.Unix())
}
