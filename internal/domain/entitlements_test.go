package domain

import "testing"

func TestEntitlementsForTier(t *testing.T) {
	free := EntitlementsForTier(TierFree)
	if free.MaxAIOpenersPerDay != 3 || free.VibeRoomsJoinLimit != 2 || free.CanCreateVibeRoom {
		t.Fatalf("unexpected FREE entitlements: %+v", free)
	}

	plus := EntitlementsForTier(TierPlus)
	if plus.MaxAIOpenersPerDay != 10 || !plus.CanCreateVibeRoom || plus.CanSeeWhoLikedMe {
		t.Fatalf("unexpected PLUS entitlements: %+v", plus)
	}

	elite := EntitlementsForTier(TierElite)
	if elite.MaxAIOpenersPerDay != 50 || !elite.CanSeeWhoLikedMe || !elite.CanUsePassport {
		t.Fatalf("unexpected ELITE entitlements: %+v", elite)
	}
}

func TestUnknownTierFallsBackToFree(t *testing.T) {
	if got := EntitlementsForTier("PLATINUM"); got != EntitlementsForTier(TierFree) {
		t.Fatalf("expected FREE fallback, got %+v", got)
	}
}

func TestNearbyLimitForTier(t *testing.T) {
	cases := []struct {
		tier SubscriptionTier
		want int
	}{
		{TierFree, 10},
		{TierPlus, 25},
		{TierElite, 50},
		{"PLATINUM", 10},
	}
	for _, tc := range cases {
		if got := NearbyLimitForTier(tc.tier); got != tc.want {
			t.Fatalf("NearbyLimitForTier(%s) = %d, want %d", tc.tier, got, tc.want)
		}
	}
}

func TestIntentValidity(t *testing.T) {
	for _, valid := range []IntentType{IntentNone, IntentJustChat, IntentDrinks, IntentDate, IntentSeeWhereItGoes} {
		if !valid.IsValid() {
			t.Fatalf("expected %s to be valid", valid)
		}
	}
	if IntentType("COFFEE").IsValid() {
		t.Fatal("expected COFFEE to be invalid")
	}
	if IntentNone.IsMatchable() {
		t.Fatal("NONE must not be matchable")
	}
	if !IntentDrinks.IsMatchable() {
		t.Fatal("DRINKS must be matchable")
	}
}
