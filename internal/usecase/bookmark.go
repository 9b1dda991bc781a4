package usecase

import (
	"context"

	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/domain"
)

// BookmarkUsecase manages per-user saved items, backing the saved_items
// scope. Gated at that scope's minimum tier.
type BookmarkUsecase struct {
	bookmarks BookmarkRepository
}

func NewBookmarkUsecase(bookmarks BookmarkRepository) *BookmarkUsecase {
	return &BookmarkUsecase{bookmarks: bookmarks}
}

func (uc *BookmarkUsecase) gate(tier domain.Tier) error {
	required := domain.ScopeMinTier(domain.ScopeSavedItems)
	if !domain.TierAvailable(required, tier) {
		return domain.TierInsufficientError{Required: required, Actual: tier}
	}
	return nil
}

// Save is idempotent: saving an already-saved item is a no-op.
func (uc *BookmarkUsecase) Save(ctx context.Context, userID, itemID string, tier domain.Tier) error {
	if err := uc.gate(tier); err != nil {
		return err
	}
	return uc.bookmarks.Add(ctx, userID, itemID)
}

// Unsave of an absent bookmark is a no-op.
func (uc *BookmarkUsecase) Unsave(ctx context.Context, userID, itemID string, tier domain.Tier) error {
	if err := uc.gate(tier); err != nil {
		return err
	}
	return uc.bookmarks.Remove(ctx, userID, itemID)
}
