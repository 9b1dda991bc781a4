package gateway

import (
	"testing"

	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/domain"
)

func TestFolderViewCacheRoundTrip(t *testing.T) {
	c := NewFolderViewCache()

	if _, ok := c.Get("item1"); ok {
		t.Fatalf("cold cache must miss")
	}

	view := []domain.Folder{{ID: "f1", UserID: "alice", Name: "methods"}}
	c.Set("item1", view)

	got, ok := c.Get("item1")
	if !ok {
		t.Fatalf("expected hit after set")
	}
	if len(got) != 1 || got[0].ID != "f1" {
		t.Fatalf("unexpected cached view %v", got)
	}
}

func TestFolderViewCacheInvalidate(t *testing.T) {
	c := NewFolderViewCache()
	c.Set("item1", []domain.Folder{{ID: "f1"}})

	c.Invalidate("item1")
	if _, ok := c.Get("item1"); ok {
		t.Fatalf("invalidated entry must miss")
	}

	// Invalidating an absent key is a no-op.
	c.Invalidate("ghost")
}

func TestFolderViewCacheFlush(t *testing.T) {
	c := NewFolderViewCache()
	c.Set("item1", []domain.Folder{{ID: "f1"}})
	c.Set("item2", []domain.Folder{{ID: "f2"}})

	c.Flush()

	if _, ok := c.Get("item1"); ok {
		t.Fatalf("flush must drop every view")
	}
	if _, ok := c.Get("item2"); ok {
		t.Fatalf("flush must drop every view")
	}
}

// An empty membership list is a valid cached value, distinct from a miss.
func TestFolderViewCacheCachesEmptyView(t *testing.T) {
	c := NewFolderViewCache()
	c.Set("item1", []domain.Folder{})

	got, ok := c.Get("item1")
	if !ok {
		t.Fatalf("empty view must still hit")
	}
	if len(got) != 0 {
		t.Fatalf("expected empty view, got %v", got)
	}
}
