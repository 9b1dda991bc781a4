package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/domain"
	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/infra/database/models"
)

type FolderRepository struct {
	db *gorm.DB
}

func NewFolderRepository(db *gorm.DB) *FolderRepository {
	return &FolderRepository{db: db}
}

func (r *FolderRepository) Create(ctx context.Context, folder domain.Folder) error {
	record := models.Folder{
		ID:          folder.ID,
		UserID:      folder.UserID,
		Name:        folder.Name,
		Description: folder.Description,
	}
	return r.db.WithContext(ctx).Create(&record).Error
}

func (r *FolderRepository) Get(ctx context.Context, folderID string) (domain.Folder, error) {
	var record models.Folder
	err := r.db.WithContext(ctx).
		Where("id = ?", folderID).
		Take(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Folder{}, domain.NotFoundError{Resource: "folder"}
		}
		return domain.Folder{}, err
	}
	return folderToDomain(record), nil
}

// Rename updates the folder name and bumps its modification time.
func (r *FolderRepository) Rename(ctx context.Context, folderID, name string) error {
	result := r.db.WithContext(ctx).Model(&models.Folder{}).
		Where("id = ?", folderID).
		UpdateColumns(map[string]any{
			"name":   name,
			"m_date": gorm.Expr("clock_timestamp()"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "folder"}
	}
	return nil
}

// Delete removes the folder; its membership edges cascade with the foreign
// key constraint.
func (r *FolderRepository) Delete(ctx context.Context, folderID string) error {
	return r.db.WithContext(ctx).Delete(&models.Folder{}, "id = ?", folderID).Error
}

// AddMember inserts a membership edge. The edge set is keyed on
// (folder_id, item_id), so a duplicate add is a single-statement no-op.
func (r *FolderRepository) AddMember(ctx context.Context, folderID, itemID string) error {
	edge := models.FolderItem{
		FolderID: folderID,
		ItemID:   itemID,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoNothing: true,
	}).Create(&edge).Error
}

// RemoveMember deletes an edge; an absent edge is not an error.
func (r *FolderRepository) RemoveMember(ctx context.Context, folderID, itemID string) error {
	return r.db.WithContext(ctx).
		Delete(&models.FolderItem{}, "folder_id = ? AND item_id = ?", folderID, itemID).Error
}

func (r *FolderRepository) ListByItem(ctx context.Context, itemID string) ([]domain.Folder, error) {
	var records []models.Folder
	err := r.db.WithContext(ctx).Model(&models.Folder{}).
		Joins("JOIN folder_items ON folder_items.folder_id = folders.id").
		Where("folder_items.item_id = ?", itemID).
		Order("folders.c_date, folders.id").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	folders := make([]domain.Folder, 0, len(records))
	for _, record := range records {
		folders = append(folders, folderToDomain(record))
	}
	return folders, nil
}

func folderToDomain(record models.Folder) domain.Folder {
	return domain.Folder{
		ID:          record.ID,
		UserID:      record.UserID,
		Name:        record.Name,
		Description: record.Description,
		CreatedAt:   record.CDate,
		UpdatedAt:   record.MDate,
	}
}
