package usecase

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/text/language"

	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/domain"
	"github.com/lucidfeed-wq/Lucid-Feed-sub003/ranking"
)

type mockPublisher struct {
	published []domain.Item
	err       error
}

func (m *mockPublisher) PublishEngagement(ctx context.Context, item domain.Item) error {
	m.published = append(m.published, item)
	return m.err
}

func testRetrieval(repo *mockItemRepo, signal EngagementPublisher) *RetrievalUsecase {
	folders := newMockFolderRepo()
	return NewRetrievalUsecase(
		NewScopeResolver(folders),
		repo,
		ranking.NewSorter(language.English),
		signal,
	)
}

func TestQueryRanksAndLimits(t *testing.T) {
	repo := newMockItemRepo()
	repo.items["a"] = domain.Item{ID: "a", DigestID: "d1", Score: domain.ScoreBreakdown{TotalScore: 0.2}}
	repo.items["b"] = domain.Item{ID: "b", DigestID: "d1", Score: domain.ScoreBreakdown{TotalScore: 0.9}}
	repo.items["c"] = domain.Item{ID: "c", DigestID: "d1", Score: domain.ScoreBreakdown{TotalScore: 0.5}}
	uc := testRetrieval(repo, nil)

	scope := domain.Scope{Type: domain.ScopeCurrentDigest, DigestID: "d1"}
	items, err := uc.Query(context.Background(), scope, ranking.QualityDesc, "alice", domain.TierFree, 2)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("expected limit of 2, got %d items", len(items))
	}
	if items[0].ID != "b" || items[1].ID != "c" {
		t.Fatalf("expected quality-descending order b,c; got %s,%s", items[0].ID, items[1].ID)
	}
}

func TestQueryFailsClosedOnScope(t *testing.T) {
	repo := newMockItemRepo()
	repo.items["a"] = domain.Item{ID: "a"}
	uc := testRetrieval(repo, nil)

	scope := domain.Scope{Type: domain.ScopeAllDigests}
	items, err := uc.Query(context.Background(), scope, ranking.QualityDesc, "alice", domain.TierFree, 0)
	if !errors.Is(err, domain.ErrTierInsufficient) {
		t.Fatalf("expected TierInsufficient, got %v", err)
	}
	if items != nil {
		t.Fatalf("a failed query must return no items, got %v", items)
	}
}

func TestAddEngagementDropsNegativeComponents(t *testing.T) {
	repo := newMockItemRepo()
	repo.items["a"] = domain.Item{ID: "a", Engagement: domain.Engagement{Upvotes: 10, Views: 100}}
	uc := testRetrieval(repo, nil)

	item, err := uc.AddEngagement(context.Background(), "a", domain.Engagement{Upvotes: -5, Views: 3, Comments: -1})
	if err != nil {
		t.Fatalf("add engagement failed: %v", err)
	}

	got := item.Engagement
	if got.Upvotes != 10 || got.Views != 103 || got.Comments != 0 {
		t.Fatalf("counters must never decrease, got %+v", got)
	}
}

func TestAddEngagementBroadcastsUpdate(t *testing.T) {
	repo := newMockItemRepo()
	repo.items["a"] = domain.Item{ID: "a", DigestID: "d1"}
	signal := &mockPublisher{}
	uc := testRetrieval(repo, signal)

	if _, err := uc.AddEngagement(context.Background(), "a", domain.Engagement{Upvotes: 1}); err != nil {
		t.Fatalf("add engagement failed: %v", err)
	}

	if len(signal.published) != 1 || signal.published[0].Engagement.Upvotes != 1 {
		t.Fatalf("expected one broadcast carrying the updated counters, got %+v", signal.published)
	}
}

func TestAddEngagementSurvivesBroadcastFailure(t *testing.T) {
	repo := newMockItemRepo()
	repo.items["a"] = domain.Item{ID: "a"}
	signal := &mockPublisher{err: errors.New("redis down")}
	uc := testRetrieval(repo, signal)

	item, err := uc.AddEngagement(context.Background(), "a", domain.Engagement{Views: 1})
	if err != nil {
		t.Fatalf("broadcast failure must not fail the write: %v", err)
	}
	if item.Engagement.Views != 1 {
		t.Fatalf("expected persisted counter, got %+v", item.Engagement)
	}
}
