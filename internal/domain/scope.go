package domain

// ScopeType names a subset of the corpus a query may target.
type ScopeType string

const (
	ScopeCurrentDigest ScopeType = "current_digest"
	ScopeAllDigests    ScopeType = "all_digests"
	ScopeSavedItems    ScopeType = "saved_items"
	ScopeFolder        ScopeType = "folder"
)

// Scope is the query-time value object naming the requested target set.
// DigestID is required iff Type is current_digest; FolderID is required iff
// Type is folder.
type Scope struct {
	Type     ScopeType `json:"type"`
	DigestID string    `json:"digestId,omitempty"`
	FolderID string    `json:"folderId,omitempty"`
}

// ScopeMinTier returns the minimum tier required to query a scope type.
// Unknown scope types map to TierUnknown, which no requester satisfies.
func ScopeMinTier(t ScopeType) Tier {
	switch t {
	case ScopeCurrentDigest:
		return TierFree
	case ScopeAllDigests:
		return TierPremium
	case ScopeSavedItems:
		return TierPremium
	case ScopeFolder:
		return TierPro
	default:
		return TierUnknown
	}
}

// QuerySpec is a fully authorized, concrete query target produced by scope
// resolution. It is only ever constructed after every gate has passed.
type QuerySpec struct {
	Scope    ScopeType
	DigestID string
	FolderID string
	UserID   string
}
