package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/infra/database/models"
)

type BookmarkRepository struct {
	db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) *BookmarkRepository {
	return &BookmarkRepository{db: db}
}

// Add saves an item for a user; saving twice is a no-op.
func (r *BookmarkRepository) Add(ctx context.Context, userID, itemID string) error {
	bookmark := models.Bookmark{
		UserID: userID,
		ItemID: itemID,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoNothing: true,
	}).Create(&bookmark).Error
}

// Remove unsaves an item; an absent bookmark is not an error.
func (r *BookmarkRepository) Remove(ctx context.Context, userID, itemID string) error {
	return r.db.WithContext(ctx).
		Delete(&models.Bookmark{}, "user_id = ? AND item_id = ?", userID, itemID).Error
}
