package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/zeebo/xxh3"

	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/domain"
)

// FolderUsecase owns the many-to-many relation between items and folders.
// All operations are gated at the folder scope's minimum tier.
type FolderUsecase struct {
	folders FolderRepository
	views   FolderViewCache
}

func NewFolderUsecase(folders FolderRepository, views FolderViewCache) *FolderUsecase {
	return &FolderUsecase{
		folders: folders,
		views:   views,
	}
}

func (uc *FolderUsecase) gate(tier domain.Tier) error {
	required := domain.ScopeMinTier(domain.ScopeFolder)
	if !domain.TierAvailable(required, tier) {
		return domain.TierInsufficientError{Required: required, Actual: tier}
	}
	return nil
}

// owned loads the folder and verifies ownership.
func (uc *FolderUsecase) owned(ctx context.Context, folderID, userID string) (domain.Folder, error) {
	folder, err := uc.folders.Get(ctx, folderID)
	if err != nil {
		return domain.Folder{}, err
	}
	if folder.UserID != userID {
		return domain.Folder{}, domain.FolderNotOwnedError{FolderID: folderID}
	}
	return folder, nil
}

func (uc *FolderUsecase) CreateFolder(ctx context.Context, folder domain.Folder, tier domain.Tier) error {
	if err := uc.gate(tier); err != nil {
		return err
	}
	if folder.ID == "" {
		folder.ID = newFolderID(folder.UserID, folder.Name)
	}
	return uc.folders.Create(ctx, folder)
}

func newFolderID(userID, name string) string {
	return fmt.Sprintf("f-%016x-%08x", xxh3.HashString(userID+"/"+name), time.Now().Unix())
}

// Rename updates a folder's display name.
func (uc *FolderUsecase) Rename(ctx context.Context, folderID, name, userID string, tier domain.Tier) error {
	if err := uc.gate(tier); err != nil {
		return err
	}
	if _, err := uc.owned(ctx, folderID, userID); err != nil {
		return err
	}
	return uc.folders.Rename(ctx, folderID, name)
}

// DeleteFolder removes a folder; membership edges cascade with it.
func (uc *FolderUsecase) DeleteFolder(ctx context.Context, folderID, userID string, tier domain.Tier) error {
	if err := uc.gate(tier); err != nil {
		return err
	}
	if _, err := uc.owned(ctx, folderID, userID); err != nil {
		return err
	}
	err := uc.folders.Delete(ctx, folderID)
	if err != nil {
		return err
	}
	uc.views.Flush()
	return nil
}

// Add creates a membership edge. Adding an existing edge is a no-op:
// membership is a set, not a counted relation.
func (uc *FolderUsecase) Add(ctx context.Context, folderID, itemID, userID string, tier domain.Tier) error {
	if err := uc.gate(tier); err != nil {
		return err
	}
	if _, err := uc.owned(ctx, folderID, userID); err != nil {
		return err
	}
	err := uc.folders.AddMember(ctx, folderID, itemID)
	if err != nil {
		return err
	}
	uc.views.Invalidate(itemID)
	return nil
}

// Remove deletes a membership edge. Removing an absent edge is a no-op.
func (uc *FolderUsecase) Remove(ctx context.Context, folderID, itemID, userID string, tier domain.Tier) error {
	if err := uc.gate(tier); err != nil {
		return err
	}
	if _, err := uc.owned(ctx, folderID, userID); err != nil {
		return err
	}
	err := uc.folders.RemoveMember(ctx, folderID, itemID)
	if err != nil {
		return err
	}
	uc.views.Invalidate(itemID)
	return nil
}

// List returns the requester's folders an item belongs to, served from the
// view cache when warm. The cache holds the unfiltered membership view keyed
// by item, so one invalidation covers every user; ownership filtering happens
// on every read, after the tier gate. Folders belonging to other users are
// never returned.
func (uc *FolderUsecase) List(ctx context.Context, itemID, userID string, tier domain.Tier) ([]domain.Folder, error) {
	if err := uc.gate(tier); err != nil {
		return nil, err
	}

	folders, ok := uc.views.Get(itemID)
	if !ok {
		var err error
		folders, err = uc.folders.ListByItem(ctx, itemID)
		if err != nil {
			return nil, err
		}
		uc.views.Set(itemID, folders)
	}

	owned := make([]domain.Folder, 0, len(folders))
	for _, folder := range folders {
		if folder.UserID == userID {
			owned = append(owned, folder)
		}
	}
	return owned, nil
}
