package models

// BadgeTier is the sort priority of a promotional badge. Higher tiers list first.
type BadgeTier int

const (
	TierNone BadgeTier = iota
	TierBasic
	TierPremium
	TierHot
	TierPopular
	TierVIP
)

const (
	BadgeVIP     = "VIP"
	BadgePopular = "Popular"
	BadgeHot     = "Hot"
	BadgePremium = "Premium"
	BadgeESP     = "ESP"
	BadgeNew     = "New"

	// NoBadgeKey groups services without a badge in aggregates.
	NoBadgeKey = "None"
)

type BadgeRank struct {
	Label string
	Tier  BadgeTier
}

// BadgeRanks is the ordered badge tier table, highest first.
var BadgeRanks = []BadgeRank{
	{BadgeVIP, TierVIP},
	{BadgePopular, TierPopular},
	{BadgeHot, TierHot},
	{BadgePremium, TierPremium},
	{BadgeESP, TierBasic},
	{BadgeNew, TierBasic},
}

// TierOf maps a badge label to its tier. Unknown labels and missing badges rank TierNone.
func TierOf(badge *string) BadgeTier {
	if badge == nil {
		return TierNone
	}
	for _, bt := range BadgeRanks {
		if bt.Label == *badge {
			return bt.Tier
		}
	}
	return TierNone
}

// FeaturedBadges are the badges that put a service on the featured list.
var FeaturedBadges = []string{BadgePopular, BadgeVIP, BadgeHot}

func IsFeatured(badge *string) bool {
	if badge == nil {
		return false
	}
	for _, b := range FeaturedBadges {
		if b == *badge {
			return true
		}
	}
	return false
}
