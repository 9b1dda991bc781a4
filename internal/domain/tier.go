package domain

// Tier is the subscription level of a requester. Tiers form a total order:
// a capability gated at tier T is available to any tier ranked at or above T.
type Tier int

const (
	TierUnknown Tier = iota
	TierFree
	TierPremium
	TierPro
)

func ParseTier(s string) Tier {
	switch s {
	case "free":
		return TierFree
	case "premium":
		return TierPremium
	case "pro":
		return TierPro
	default:
		return TierUnknown
	}
}

func (t Tier) String() string {
	switch t {
	case TierFree:
		return "free"
	case TierPremium:
		return "premium"
	case TierPro:
		return "pro"
	default:
		return "unknown"
	}
}

// TierAvailable is the single authorization primitive of the engine. Every
// gating decision (scope resolution, folder access, feature display) goes
// through this comparison rather than re-deriving tier ranks ad hoc.
func TierAvailable(required, user Tier) bool {
	if required == TierUnknown || user == TierUnknown {
		return false
	}
	return required <= user
}
