package usecase

import (
	"context"

	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/domain"
)

// ScopeResolver turns a requested scope into a concrete, fully authorized
// query target, or fails closed with a caller-distinguishable error.
type ScopeResolver struct {
	folders FolderRepository
}

func NewScopeResolver(folders FolderRepository) *ScopeResolver {
	return &ScopeResolver{folders: folders}
}

// Resolve checks scope shape, tier, and (for folder scopes) ownership, in
// that order. It never partially succeeds and never downgrades to a lesser
// scope.
func (r *ScopeResolver) Resolve(ctx context.Context, scope domain.Scope, userID string, tier domain.Tier) (domain.QuerySpec, error) {
	switch scope.Type {
	case domain.ScopeCurrentDigest:
		if scope.DigestID == "" {
			return domain.QuerySpec{}, domain.MissingScopeFieldError{Field: "digestId"}
		}
	case domain.ScopeFolder:
		if scope.FolderID == "" {
			return domain.QuerySpec{}, domain.MissingScopeFieldError{Field: "folderId"}
		}
	case domain.ScopeAllDigests, domain.ScopeSavedItems:
	default:
		return domain.QuerySpec{}, domain.MissingScopeFieldError{Field: "type"}
	}

	required := domain.ScopeMinTier(scope.Type)
	if !domain.TierAvailable(required, tier) {
		return domain.QuerySpec{}, domain.TierInsufficientError{Required: required, Actual: tier}
	}

	if scope.Type == domain.ScopeFolder {
		folder, err := r.folders.Get(ctx, scope.FolderID)
		if err != nil {
			return domain.QuerySpec{}, err
		}
		if folder.UserID != userID {
			return domain.QuerySpec{}, domain.FolderNotOwnedError{FolderID: scope.FolderID}
		}
	}

	return domain.QuerySpec{
		Scope:    scope.Type,
		DigestID: scope.DigestID,
		FolderID: scope.FolderID,
		UserID:   userID,
	}, nil
}
