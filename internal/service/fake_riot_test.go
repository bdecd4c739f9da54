package service

import (
	"context"
	"sync"

	"github.com/Syug0/LOL-team-assignment/internal/api"
)

type fakeRiot struct {
	mu sync.Mutex

	accounts       map[string]api.AccountResponse // "name#tag"
	summonerByName map[string]api.SummonerResponse
	summonerByID   map[string]api.SummonerResponse // by puuid
	entries        map[string][]api.LeagueEntryResponse
	matchIDs       map[string][]string
	matches        map[string]api.MatchResponse
	fail           map[string]error // keyed by call, e.g. "match:JP1_2"

	matchCalls   int
	matchIDCount int
	calls        []string
}

func newFakeRiot() *fakeRiot {
	return &fakeRiot{
		accounts:       map[string]api.AccountResponse{},
		summonerByName: map[string]api.SummonerResponse{},
		summonerByID:   map[string]api.SummonerResponse{},
		entries:        map[string][]api.LeagueEntryResponse{},
		matchIDs:       map[string][]string{},
		matches:        map[string]api.MatchResponse{},
		fail:           map[string]error{},
	}
}

func notFound() error {
	return &api.APIError{StatusCode: 404, Body: `{"status":{"message":"Data not found","status_code":404}}`}
}

func (f *fakeRiot) record(call string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	return f.fail[call]
}

func (f *fakeRiot) AccountByRiotID(_ context.Context, gameName, tagLine string) (api.AccountResponse, error) {
	key := gameName + "#" + tagLine
	if err := f.record("account:" + key); err != nil {
		return api.AccountResponse{}, err
	}
	acc, ok := f.accounts[key]
	if !ok {
		return api.AccountResponse{}, notFound()
	}
	return acc, nil
}

func (f *fakeRiot) SummonerByName(_ context.Context, name string) (api.SummonerResponse, error) {
	if err := f.record("summoner-name:" + name); err != nil {
		return api.SummonerResponse{}, err
	}
	s, ok := f.summonerByName[name]
	if !ok {
		return api.SummonerResponse{}, notFound()
	}
	return s, nil
}

func (f *fakeRiot) SummonerByPUUID(_ context.Context, puuid string) (api.SummonerResponse, error) {
	if err := f.record("summoner-puuid:" + puuid); err != nil {
		return api.SummonerResponse{}, err
	}
	s, ok := f.summonerByID[puuid]
	if !ok {
		return api.SummonerResponse{}, notFound()
	}
	return s, nil
}

func (f *fakeRiot) LeagueEntries(_ context.Context, summonerID string) ([]api.LeagueEntryResponse, error) {
	if err := f.record("league:" + summonerID); err != nil {
		return nil, err
	}
	return f.entries[summonerID], nil
}

func (f *fakeRiot) MatchIDs(_ context.Context, puuid string, count int) ([]string, error) {
	f.mu.Lock()
	f.matchIDCount = count
	f.mu.Unlock()
	if err := f.record("match-ids:" + puuid); err != nil {
		return nil, err
	}
	ids := f.matchIDs[puuid]
	if len(ids) > count {
		ids = ids[:count]
	}
	return ids, nil
}

func (f *fakeRiot) Match(_ context.Context, matchID string) (api.MatchResponse, error) {
	f.mu.Lock()
	f.matchCalls++
	f.mu.Unlock()
	if err := f.record("match:" + matchID); err != nil {
		return api.MatchResponse{}, err
	}
	m, ok := f.matches[matchID]
	if !ok {
		return api.MatchResponse{}, notFound()
	}
	return m, nil
}

// addMatches registers one match per position for puuid, most recent first.
func (f *fakeRiot) addMatches(puuid string, positions ...string) {
	for i, pos := range positions {
		id := puuid + "_" + string(rune('a'+i))
		f.matchIDs[puuid] = append(f.matchIDs[puuid], id)
		f.matches[id] = api.MatchResponse{
			Metadata: api.MatchMetadata{MatchID: id},
			Info: api.MatchInfo{Participants: []api.MatchParticipant{
				{PUUID: "someone-else", TeamPosition: "UTILITY"},
				{PUUID: puuid, TeamPosition: pos},
			}},
		}
	}
}
