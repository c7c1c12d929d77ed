package domain

// SubscriptionTier is the user's subscription level, resolved from the
// newest active subscription per request. There is no cached tier state.
type SubscriptionTier string

const (
	TierFree  SubscriptionTier = "FREE"
	TierPlus  SubscriptionTier = "PLUS"
	TierElite SubscriptionTier = "ELITE"
)

// FeatureEntitlements are tier-derived feature limits layered on top of
// the matching logic without altering it.
type FeatureEntitlements struct {
	MaxAIOpenersPerDay       int  `json:"maxAiOpenersPerDay"`
	MeetMeHalfwayVenuesCount int  `json:"meetMeHalfwayVenuesCount"`
	VibeRoomsJoinLimit       int  `json:"vibeRoomsJoinLimit"`
	BoostsPerDay             int  `json:"boostsPerDay"`
	CanCreateVibeRoom        bool `json:"canCreateVibeRoom"`
	CanSeeWhoLikedMe         bool `json:"canSeeWhoLikedMe"`
	CanUsePassport           bool `json:"canUsePassport"`
}

var (
	freeEntitlements = FeatureEntitlements{
		MaxAIOpenersPerDay:       3,
		MeetMeHalfwayVenuesCount: 3,
		VibeRoomsJoinLimit:       2,
		BoostsPerDay:             0,
	}

	plusEntitlements = FeatureEntitlements{
		MaxAIOpenersPerDay:       10,
		MeetMeHalfwayVenuesCount: 5,
		VibeRoomsJoinLimit:       5,
		BoostsPerDay:             1,
		CanCreateVibeRoom:        true,
	}

	eliteEntitlements = FeatureEntitlements{
		MaxAIOpenersPerDay:       50,
		MeetMeHalfwayVenuesCount: 10,
		VibeRoomsJoinLimit:       10,
		BoostsPerDay:             3,
		CanCreateVibeRoom:        true,
		CanSeeWhoLikedMe:         true,
		CanUsePassport:           true,
	}
)

// EntitlementsForTier maps a tier to its feature limits. Unknown tiers
// fall back to FREE.
func EntitlementsForTier(tier SubscriptionTier) FeatureEntitlements {
	switch tier {
	case TierPlus:
		return plusEntitlements
	case TierElite:
		return eliteEntitlements
	default:
		return freeEntitlements
	}
}

// NearbyLimitForTier is the maximum number of nearby-intent results a
// tier may receive from a single search.
func NearbyLimitForTier(tier SubscriptionTier) int {
	switch tier {
	case TierPlus:
		return 25
	case TierElite:
		return 50
	default:
		return 10
	}
}
