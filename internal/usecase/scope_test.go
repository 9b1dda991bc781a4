package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/domain"
)

func testResolver() *ScopeResolver {
	repo := newMockFolderRepo()
	repo.folders["f1"] = domain.Folder{ID: "f1", UserID: "alice", Name: "methods"}
	return NewScopeResolver(repo)
}

func TestResolveScopeShape(t *testing.T) {
	r := testResolver()
	ctx := context.Background()

	cases := []struct {
		name  string
		scope domain.Scope
		field string
	}{
		{"current digest without id", domain.Scope{Type: domain.ScopeCurrentDigest}, "digestId"},
		{"folder without id", domain.Scope{Type: domain.ScopeFolder}, "folderId"},
		{"unknown scope type", domain.Scope{Type: "everything"}, "type"},
		{"empty scope type", domain.Scope{}, "type"},
	}

	for _, tc := range cases {
		_, err := r.Resolve(ctx, tc.scope, "alice", domain.TierPro)
		if !errors.Is(err, domain.ErrMissingScopeField) {
			t.Fatalf("%s: expected MissingScopeField, got %v", tc.name, err)
		}
		var missing domain.MissingScopeFieldError
		if !errors.As(err, &missing) || missing.Field != tc.field {
			t.Fatalf("%s: expected missing field %q, got %v", tc.name, tc.field, err)
		}
	}
}

func TestResolveTierGate(t *testing.T) {
	r := testResolver()
	ctx := context.Background()

	cases := []struct {
		name    string
		scope   domain.Scope
		tier    domain.Tier
		allowed bool
	}{
		{"current digest free", domain.Scope{Type: domain.ScopeCurrentDigest, DigestID: "d1"}, domain.TierFree, true},
		{"all digests free", domain.Scope{Type: domain.ScopeAllDigests}, domain.TierFree, false},
		{"all digests premium", domain.Scope{Type: domain.ScopeAllDigests}, domain.TierPremium, true},
		{"saved items free", domain.Scope{Type: domain.ScopeSavedItems}, domain.TierFree, false},
		{"saved items premium", domain.Scope{Type: domain.ScopeSavedItems}, domain.TierPremium, true},
		{"folder premium", domain.Scope{Type: domain.ScopeFolder, FolderID: "f1"}, domain.TierPremium, false},
		{"folder pro", domain.Scope{Type: domain.ScopeFolder, FolderID: "f1"}, domain.TierPro, true},
	}

	for _, tc := range cases {
		_, err := r.Resolve(ctx, tc.scope, "alice", tc.tier)
		if tc.allowed && err != nil {
			t.Fatalf("%s: expected success, got %v", tc.name, err)
		}
		if !tc.allowed && !errors.Is(err, domain.ErrTierInsufficient) {
			t.Fatalf("%s: expected TierInsufficient, got %v", tc.name, err)
		}
	}
}

// Tier is checked before ownership: a premium user probing someone else's
// folder learns only that their tier is short, not whether the folder exists.
func TestResolveTierCheckedBeforeOwnership(t *testing.T) {
	r := testResolver()

	scope := domain.Scope{Type: domain.ScopeFolder, FolderID: "f1"}
	_, err := r.Resolve(context.Background(), scope, "mallory", domain.TierPremium)
	if !errors.Is(err, domain.ErrTierInsufficient) {
		t.Fatalf("expected TierInsufficient, got %v", err)
	}
}

func TestResolveFolderOwnership(t *testing.T) {
	r := testResolver()
	ctx := context.Background()
	scope := domain.Scope{Type: domain.ScopeFolder, FolderID: "f1"}

	_, err := r.Resolve(ctx, scope, "mallory", domain.TierPro)
	if !errors.Is(err, domain.ErrFolderNotOwned) {
		t.Fatalf("expected FolderNotOwned, got %v", err)
	}

	spec, err := r.Resolve(ctx, scope, "alice", domain.TierPro)
	if err != nil {
		t.Fatalf("owner must resolve: %v", err)
	}
	if spec.Scope != domain.ScopeFolder || spec.FolderID != "f1" || spec.UserID != "alice" {
		t.Fatalf("unexpected query spec %+v", spec)
	}
}

func TestResolveMissingFolder(t *testing.T) {
	r := testResolver()

	scope := domain.Scope{Type: domain.ScopeFolder, FolderID: "ghost"}
	_, err := r.Resolve(context.Background(), scope, "alice", domain.TierPro)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}
