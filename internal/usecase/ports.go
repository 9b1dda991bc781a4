package usecase

import (
	"context"

	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/domain"
)

// ItemRepository defines storage operations for curated items.
type ItemRepository interface {
	Create(ctx context.Context, item domain.Item) error
	Get(ctx context.Context, id string) (domain.Item, error)
	// AddEngagement applies a counter delta as a single atomic increment
	// and returns the updated item.
	AddEngagement(ctx context.Context, id string, delta domain.Engagement) (domain.Item, error)
	UpdateScore(ctx context.Context, id string, score domain.ScoreBreakdown) error
	ListByQuery(ctx context.Context, spec domain.QuerySpec) ([]domain.Item, error)
}

// FolderRepository defines persistence for folders and membership edges.
type FolderRepository interface {
	Create(ctx context.Context, folder domain.Folder) error
	Get(ctx context.Context, folderID string) (domain.Folder, error)
	Rename(ctx context.Context, folderID, name string) error
	Delete(ctx context.Context, folderID string) error
	AddMember(ctx context.Context, folderID, itemID string) error
	RemoveMember(ctx context.Context, folderID, itemID string) error
	ListByItem(ctx context.Context, itemID string) ([]domain.Folder, error)
}

// BookmarkRepository defines persistence for saved items.
type BookmarkRepository interface {
	Add(ctx context.Context, userID, itemID string) error
	Remove(ctx context.Context, userID, itemID string) error
}

// FeedRepository defines persistence for the feed catalog.
type FeedRepository interface {
	Upsert(ctx context.Context, feed domain.Feed) error
	Get(ctx context.Context, name string) (domain.Feed, error)
	List(ctx context.Context, approvedOnly bool) ([]domain.Feed, error)
}

// DigestRepository defines persistence for addressable digest groupings.
type DigestRepository interface {
	Upsert(ctx context.Context, digest domain.Digest) error
	Get(ctx context.Context, id string) (domain.Digest, error)
	List(ctx context.Context, limit int) ([]domain.Digest, error)
}

// FolderViewCache caches folder-membership views per item. Every membership
// mutation must invalidate the affected item so a subsequent list reflects
// the write immediately.
type FolderViewCache interface {
	Get(itemID string) ([]domain.Folder, bool)
	Set(itemID string, folders []domain.Folder)
	Invalidate(itemID string)
	// Flush drops every cached view. Used when a folder delete cascades
	// over an unknown set of items.
	Flush()
}

// EngagementPublisher broadcasts engagement updates to live subscribers.
type EngagementPublisher interface {
	PublishEngagement(ctx context.Context, item domain.Item) error
}
