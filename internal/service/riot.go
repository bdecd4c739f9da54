package service

import (
	"context"

	"github.com/Syug0/LOL-team-assignment/internal/api"
	"github.com/Syug0/LOL-team-assignment/internal/domain"
)

// RiotAPI is the subset of the Riot client the services depend on.
type RiotAPI interface {
	AccountByRiotID(ctx context.Context, gameName, tagLine string) (api.AccountResponse, error)
	SummonerByName(ctx context.Context, name string) (api.SummonerResponse, error)
	SummonerByPUUID(ctx context.Context, puuid string) (api.SummonerResponse, error)
	LeagueEntries(ctx context.Context, summonerID string) ([]api.LeagueEntryResponse, error)
	MatchIDs(ctx context.Context, puuid string, count int) ([]string, error)
	Match(ctx context.Context, matchID string) (api.MatchResponse, error)
}

var _ RiotAPI = (*api.RiotClient)(nil)

func toRankEntries(entries []api.LeagueEntryResponse) []domain.RankEntry {
	result := make([]domain.RankEntry, len(entries))
	for i, e := range entries {
		result[i] = domain.RankEntry{
			Tier:         e.Tier,
			Division:     e.Rank,
			QueueType:    e.QueueType,
			LeaguePoints: e.LeaguePoints,
			Wins:         e.Wins,
			Losses:       e.Losses,
		}
	}
	return result
}
