package usecase

import (
	"context"

	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/domain"
	"github.com/lucidfeed-wq/Lucid-Feed-sub003/taxonomy"
)

// CatalogUsecase manages the feed catalog. Feed topics validate against the
// vocabulary at authoring time, so drift never reaches the persisted
// catalog.
type CatalogUsecase struct {
	vocab taxonomy.Vocabulary
	feeds FeedRepository
}

func NewCatalogUsecase(vocab taxonomy.Vocabulary, feeds FeedRepository) *CatalogUsecase {
	return &CatalogUsecase{
		vocab: vocab,
		feeds: feeds,
	}
}

func (uc *CatalogUsecase) Register(ctx context.Context, feed domain.Feed) error {
	if err := uc.vocab.Validate(feed.Topics); err != nil {
		return err
	}
	return uc.feeds.Upsert(ctx, feed)
}

func (uc *CatalogUsecase) Get(ctx context.Context, name string) (domain.Feed, error) {
	return uc.feeds.Get(ctx, name)
}

// List returns catalog feeds, approved-only unless includeUnapproved is set.
func (uc *CatalogUsecase) List(ctx context.Context, includeUnapproved bool) ([]domain.Feed, error) {
	return uc.feeds.List(ctx, !includeUnapproved)
}
