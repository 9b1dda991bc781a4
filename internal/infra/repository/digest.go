package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/domain"
	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/infra/database/models"
)

type DigestRepository struct {
	db *gorm.DB
}

func NewDigestRepository(db *gorm.DB) *DigestRepository {
	return &DigestRepository{db: db}
}

// Upsert registers a digest. Re-registration refreshes title and date.
func (r *DigestRepository) Upsert(ctx context.Context, digest domain.Digest) error {
	record := models.Digest{
		ID:    digest.ID,
		Title: digest.Title,
		Date:  digest.Date,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "date"}),
	}).Create(&record).Error
}

func (r *DigestRepository) Get(ctx context.Context, id string) (domain.Digest, error) {
	var record models.Digest
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Digest{}, domain.NotFoundError{Resource: "digest"}
		}
		return domain.Digest{}, err
	}
	return domain.Digest{ID: record.ID, Title: record.Title, Date: record.Date}, nil
}

// List returns digests newest-first.
func (r *DigestRepository) List(ctx context.Context, limit int) ([]domain.Digest, error) {
	query := r.db.WithContext(ctx).Model(&models.Digest{}).Order("date DESC, id")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var records []models.Digest
	err := query.Find(&records).Error
	if err != nil {
		return nil, err
	}

	digests := make([]domain.Digest, 0, len(records))
	for _, record := range records {
		digests = append(digests, domain.Digest{ID: record.ID, Title: record.Title, Date: record.Date})
	}
	return digests, nil
}
