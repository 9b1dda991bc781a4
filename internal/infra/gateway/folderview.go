package gateway

import (
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/domain"
	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/usecase"
)

// FolderViewCache is the in-process cache of per-item folder membership
// views. Membership mutations invalidate the affected item before the call
// returns, so list-after-write always sees the write.
type FolderViewCache struct {
	cache *cache.Cache
}

func NewFolderViewCache() *FolderViewCache {
	return &FolderViewCache{
		cache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

func (c *FolderViewCache) Get(itemID string) ([]domain.Folder, bool) {
	cached, found := c.cache.Get(itemID)
	if !found {
		return nil, false
	}
	folders, ok := cached.([]domain.Folder)
	return folders, ok
}

func (c *FolderViewCache) Set(itemID string, folders []domain.Folder) {
	c.cache.Set(itemID, folders, cache.DefaultExpiration)
}

func (c *FolderViewCache) Invalidate(itemID string) {
	c.cache.Delete(itemID)
}

func (c *FolderViewCache) Flush() {
	c.cache.Flush()
}

var _ usecase.FolderViewCache = (*FolderViewCache)(nil)
