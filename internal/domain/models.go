package domain

// Role is the lane a player occupied in a match, as reported by the match-v5 teamPosition field.
type Role string

const (
	RoleTop     Role = "TOP"
	RoleJungle  Role = "JUNGLE"
	RoleMiddle  Role = "MIDDLE"
	RoleBottom  Role = "BOTTOM"
	RoleUtility Role = "UTILITY"
	RoleUnknown Role = "UNKNOWN"
)

// Roles is the fixed order used when counting and breaking ties.
var Roles = []Role{RoleTop, RoleJungle, RoleMiddle, RoleBottom, RoleUtility}

// IsKnown reports whether r is one of the five playable roles.
func (r Role) IsKnown() bool {
	switch r {
	case RoleTop, RoleJungle, RoleMiddle, RoleBottom, RoleUtility:
		return true
	}
	return false
}

type SummonerRecord struct {
	DisplayName string
	InternalID  string // league lookups
	UniqueID    string // puuid, match lookups
}

type RankEntry struct {
	Tier         string `json:"tier"`
	Division     string `json:"division"`
	QueueType    string `json:"queue_type"`
	LeaguePoints int    `json:"league_points"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
}

type PlayerProfile struct {
	Name       string     `json:"name"`
	UniqueID   string     `json:"puuid"`
	InternalID string     `json:"summoner_id"`
	Rank       *RankEntry `json:"rank"` // nil when unranked
	Score      float64    `json:"score"`
	Role       Role       `json:"role"`
}

type ScoredPlayer struct {
	Name  string   `json:"name"`
	Score *float64 `json:"score,omitempty"`
	Role  Role     `json:"role,omitempty"`
}

// Points is the player's weight in a team sum; players without a score count as 1.
func (p ScoredPlayer) Points() float64 {
	if p.Score == nil {
		return 1
	}
	return *p.Score
}

type TeamSplitResult struct {
	ID     string         `json:"id"`
	Policy Policy         `json:"policy"`
	TeamA  []ScoredPlayer `json:"team_a"`
	TeamB  []ScoredPlayer `json:"team_b"`
	ScoreA float64        `json:"score_a"`
	ScoreB float64        `json:"score_b"`
	Diff   float64        `json:"diff"`
}

type Policy string

const (
	PolicyBalanced Policy = "balanced"
	PolicyDuo      Policy = "duo"
	PolicyRandom   Policy = "random"
)

// ParsePolicy maps unrecognized names to PolicyBalanced.
func ParsePolicy(name string) Policy {
	switch p := Policy(name); p {
	case PolicyBalanced, PolicyDuo, PolicyRandom:
		return p
	default:
		return PolicyBalanced
	}
}
