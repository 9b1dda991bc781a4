package domain

// Context keys populated by the requester middleware. Identity and tier are
// asserted upstream by the auth gateway; the engine only consumes them.
const (
	RequesterIdCtxKey   = "lf-requesterId"
	RequesterTierCtxKey = "lf-requesterTier"
)

const (
	RequesterIdHeader   = "lf-requester-id"
	RequesterTierHeader = "lf-requester-tier"
)
