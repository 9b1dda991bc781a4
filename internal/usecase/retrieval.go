package usecase

import (
	"context"

	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/domain"
	"github.com/lucidfeed-wq/Lucid-Feed-sub003/ranking"
)

// RetrievalUsecase serves scope-resolved, ranked item collections.
type RetrievalUsecase struct {
	resolver *ScopeResolver
	items    ItemRepository
	sorter   *ranking.Sorter
	signal   EngagementPublisher
}

func NewRetrievalUsecase(
	resolver *ScopeResolver,
	items ItemRepository,
	sorter *ranking.Sorter,
	signal EngagementPublisher,
) *RetrievalUsecase {
	return &RetrievalUsecase{
		resolver: resolver,
		items:    items,
		sorter:   sorter,
		signal:   signal,
	}
}

// Query resolves the scope, fetches the authorized item set, and orders it.
// Any failure surfaces before a single item is returned.
func (uc *RetrievalUsecase) Query(
	ctx context.Context,
	scope domain.Scope,
	option ranking.Option,
	userID string,
	tier domain.Tier,
	limit int,
) ([]domain.Item, error) {
	spec, err := uc.resolver.Resolve(ctx, scope, userID, tier)
	if err != nil {
		return nil, err
	}

	items, err := uc.items.ListByQuery(ctx, spec)
	if err != nil {
		return nil, err
	}

	uc.sorter.Sort(items, option)

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (uc *RetrievalUsecase) Get(ctx context.Context, itemID string) (domain.Item, error) {
	return uc.items.Get(ctx, itemID)
}

// AddEngagement applies an append-only counter delta. Negative components
// are dropped: counters never decrease. The updated item is broadcast to
// live subscribers; a broadcast failure does not fail the write.
func (uc *RetrievalUsecase) AddEngagement(ctx context.Context, itemID string, delta domain.Engagement) (domain.Item, error) {
	if delta.Upvotes < 0 {
		delta.Upvotes = 0
	}
	if delta.Views < 0 {
		delta.Views = 0
	}
	if delta.Comments < 0 {
		delta.Comments = 0
	}

	item, err := uc.items.AddEngagement(ctx, itemID, delta)
	if err != nil {
		return domain.Item{}, err
	}

	if uc.signal != nil {
		_ = uc.signal.PublishEngagement(ctx, item)
	}

	return item, nil
}
