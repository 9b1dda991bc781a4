package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/domain"
	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/infra/database/models"
)

type FeedRepository struct {
	db *gorm.DB
}

func NewFeedRepository(db *gorm.DB) *FeedRepository {
	return &FeedRepository{db: db}
}

func (r *FeedRepository) Upsert(ctx context.Context, feed domain.Feed) error {
	record := models.Feed{
		Name:       feed.Name,
		URL:        feed.URL,
		SourceType: string(feed.SourceType),
		Category:   feed.Category,
		Topics:     feed.Topics,
		IsApproved: feed.IsApproved,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"url", "source_type", "category", "topics", "is_approved"}),
	}).Create(&record).Error
}

func (r *FeedRepository) Get(ctx context.Context, name string) (domain.Feed, error) {
	var record models.Feed
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		Take(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Feed{}, domain.NotFoundError{Resource: "feed"}
		}
		return domain.Feed{}, err
	}
	return domain.Feed{
		Name:       record.Name,
		URL:        record.URL,
		SourceType: domain.SourceType(record.SourceType),
		Category:   record.Category,
		Topics:     record.Topics,
		IsApproved: record.IsApproved,
	}, nil
}

func (r *FeedRepository) List(ctx context.Context, approvedOnly bool) ([]domain.Feed, error) {
	query := r.db.WithContext(ctx).Model(&models.Feed{})
	if approvedOnly {
		query = query.Where("is_approved = ?", true)
	}

	var records []models.Feed
	err := query.Order("name").Find(&records).Error
	if err != nil {
		return nil, err
	}

	feeds := make([]domain.Feed, 0, len(records))
	for _, record := range records {
		feeds = append(feeds, domain.Feed{
			Name:       record.Name,
			URL:        record.URL,
			SourceType: domain.SourceType(record.SourceType),
			Category:   record.Category,
			Topics:     record.Topics,
			IsApproved: record.IsApproved,
		})
	}
	return feeds, nil
}
