package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/domain"
	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/infra/database/models"
)

const itemCacheTTL = 60 // seconds

type ItemRepository struct {
	db *gorm.DB
	mc *memcache.Client
}

// NewItemRepository builds the item store. mc may be nil when no memcached
// is configured; reads then always hit postgres.
func NewItemRepository(db *gorm.DB, mc *memcache.Client) *ItemRepository {
	return &ItemRepository{db: db, mc: mc}
}

func itemCacheKey(id string) string {
	return "lf:item:" + id
}

func (r *ItemRepository) Create(ctx context.Context, item domain.Item) error {
	record := toModel(item)

	// Re-delivery of the same item from a feed adapter is a no-op.
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoNothing: true,
	}).Create(&record).Error
}

func (r *ItemRepository) Get(ctx context.Context, id string) (domain.Item, error) {
	if r.mc != nil {
		if cached, err := r.mc.Get(itemCacheKey(id)); err == nil {
			var item domain.Item
			if err := json.Unmarshal(cached.Value, &item); err == nil {
				return item, nil
			}
		}
	}

	var record models.Item
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Item{}, domain.NotFoundError{Resource: "item"}
		}
		return domain.Item{}, err
	}

	item := toDomain(record)
	r.cacheSet(item)
	return item, nil
}

// AddEngagement increments the counters in a single guarded UPDATE, so
// concurrent deltas on the same item never lose writes.
func (r *ItemRepository) AddEngagement(ctx context.Context, id string, delta domain.Engagement) (domain.Item, error) {
	result := r.db.WithContext(ctx).Model(&models.Item{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{
			"upvotes":  gorm.Expr("upvotes + ?", delta.Upvotes),
			"views":    gorm.Expr("views + ?", delta.Views),
			"comments": gorm.Expr("comments + ?", delta.Comments),
		})
	if result.Error != nil {
		return domain.Item{}, result.Error
	}
	if result.RowsAffected == 0 {
		return domain.Item{}, domain.NotFoundError{Resource: "item"}
	}

	r.cacheDrop(id)
	return r.Get(ctx, id)
}

func (r *ItemRepository) UpdateScore(ctx context.Context, id string, score domain.ScoreBreakdown) error {
	result := r.db.WithContext(ctx).Model(&models.Item{}).
		Where("id = ?", id).
		Select("subscores", "total_score").
		Updates(models.Item{
			Subscores:  score.Subscores,
			TotalScore: score.TotalScore,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "item"}
	}

	r.cacheDrop(id)
	return nil
}

// ListByQuery executes a resolved QuerySpec. Authorization happens during
// resolution, before it reaches this layer; here it is only a filter. Rows
// come back in ingestion order so sorting ties stay deterministic.
func (r *ItemRepository) ListByQuery(ctx context.Context, spec domain.QuerySpec) ([]domain.Item, error) {
	query := r.db.WithContext(ctx).Model(&models.Item{})

	switch spec.Scope {
	case domain.ScopeCurrentDigest:
		query = query.Where("items.digest_id = ?", spec.DigestID)
	case domain.ScopeAllDigests:
		// whole corpus
	case domain.ScopeSavedItems:
		query = query.
			Joins("JOIN bookmarks ON bookmarks.item_id = items.id").
			Where("bookmarks.user_id = ?", spec.UserID)
	case domain.ScopeFolder:
		query = query.
			Joins("JOIN folder_items ON folder_items.item_id = items.id").
			Where("folder_items.folder_id = ?", spec.FolderID)
	default:
		return nil, fmt.Errorf("unresolvable query spec scope: %s", spec.Scope)
	}

	var records []models.Item
	err := query.Order("items.c_date, items.id").Find(&records).Error
	if err != nil {
		return nil, err
	}

	items := make([]domain.Item, 0, len(records))
	for _, record := range records {
		items = append(items, toDomain(record))
	}
	return items, nil
}

func (r *ItemRepository) cacheSet(item domain.Item) {
	if r.mc == nil {
		return
	}
	payload, err := json.Marshal(item)
	if err != nil {
		return
	}
	_ = r.mc.Set(&memcache.Item{
		Key:        itemCacheKey(item.ID),
		Value:      payload,
		Expiration: itemCacheTTL,
	})
}

func (r *ItemRepository) cacheDrop(id string) {
	if r.mc == nil {
		return
	}
	_ = r.mc.Delete(itemCacheKey(id))
}

func toModel(item domain.Item) models.Item {
	publishedAt := item.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = time.Now().UTC()
	}
	return models.Item{
		ID:          item.ID,
		Title:       item.Title,
		URL:         item.URL,
		SourceType:  string(item.SourceType),
		DigestID:    item.DigestID,
		PublishedAt: publishedAt,
		Topics:      item.Topics,
		Methodology: string(item.Methodology),
		Upvotes:     item.Engagement.Upvotes,
		Views:       item.Engagement.Views,
		Comments:    item.Engagement.Comments,
		Subscores:   item.Score.Subscores,
		TotalScore:  item.Score.TotalScore,
	}
}

func toDomain(record models.Item) domain.Item {
	return domain.Item{
		ID:          record.ID,
		Title:       record.Title,
		URL:         record.URL,
		SourceType:  domain.SourceType(record.SourceType),
		DigestID:    record.DigestID,
		PublishedAt: record.PublishedAt,
		Topics:      record.Topics,
		Methodology: domain.Methodology(record.Methodology),
		Engagement: domain.Engagement{
			Upvotes:  record.Upvotes,
			Views:    record.Views,
			Comments: record.Comments,
		},
		Score: domain.ScoreBreakdown{
			Subscores:  record.Subscores,
			TotalScore: record.TotalScore,
		},
	}
}
