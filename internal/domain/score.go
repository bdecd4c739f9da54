package domain

import "strings"

var tierBase = map[string]float64{
	"IRON":        1,
	"BRONZE":      2,
	"SILVER":      3,
	"GOLD":        4,
	"PLATINUM":    5,
	"EMERALD":     6,
	"DIAMOND":     7,
	"MASTER":      8,
	"GRANDMASTER": 9,
	"CHALLENGER":  10,
}

// apex tiers have a single ladder with no divisions
var apexTiers = map[string]bool{
	"MASTER":      true,
	"GRANDMASTER": true,
	"CHALLENGER":  true,
}

var divisionBonus = map[string]float64{
	"I":   0.6,
	"II":  0.4,
	"III": 0.2,
	"IV":  0.0,
}

const (
	UnrankedScore = 1.0
	lowestTier    = 1.0
)

// Score maps a rank entry onto the 1-10 ladder. A nil entry (unranked) scores UnrankedScore.
func Score(entry *RankEntry) float64 {
	if entry == nil {
		return UnrankedScore
	}

	tier := strings.ToUpper(strings.TrimSpace(entry.Tier))
	base, ok := tierBase[tier]
	if !ok {
		base = lowestTier
	}
	if apexTiers[tier] {
		return base
	}

	// unknown divisions fall through to the zero value
	return base + divisionBonus[strings.ToUpper(strings.TrimSpace(entry.Division))]
}

// SelectRankEntry prefers the ranked solo queue entry, then the first entry, then none.
func SelectRankEntry(entries []RankEntry, soloQueue string) *RankEntry {
	for i := range entries {
		if entries[i].QueueType == soloQueue {
			return &entries[i]
		}
	}
	if len(entries) > 0 {
		return &entries[0]
	}
	return nil
}
