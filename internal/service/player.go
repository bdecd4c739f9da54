package service

import (
	"context"
	"fmt"

	"github.com/Syug0/LOL-team-assignment/internal/constants"
	"github.com/Syug0/LOL-team-assignment/internal/domain"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type PlayerService struct {
	riot   RiotAPI
	roles  *RoleService
	logger zerolog.Logger
}

func NewPlayerService(riot RiotAPI, roles *RoleService, logger zerolog.Logger) *PlayerService {
	return &PlayerService{riot: riot, roles: roles, logger: logger}
}

// Resolve turns a Riot ID ("name#tag") or legacy summoner name into a scored profile.
// Upstream errors are returned wrapped, so errors.As still finds *api.APIError.
func (s *PlayerService) Resolve(ctx context.Context, input string) (*domain.PlayerProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	handle, err := domain.ParseHandle(input)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("handle", handle.String()).Bool("riot_id", handle.IsRiotID()).Msg("resolving player")

	summoner, err := s.lookupSummoner(ctx, handle)
	if err != nil {
		s.logger.Error().Err(err).Str("handle", handle.String()).Msg("failed to resolve summoner")
		return nil, err
	}

	var (
		entry *domain.RankEntry
		role  domain.Role
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		entries, err := s.riot.LeagueEntries(gCtx, summoner.InternalID)
		if err != nil {
			return fmt.Errorf("failed to fetch league entries: %w", err)
		}
		entry = domain.SelectRankEntry(toRankEntries(entries), constants.SoloQueueType)
		return nil
	})
	g.Go(func() error {
		role = s.roles.InferRole(gCtx, summoner.UniqueID)
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Str("puuid", summoner.UniqueID).Msg("failed to build profile")
		return nil, err
	}

	profile := &domain.PlayerProfile{
		Name:       summoner.DisplayName,
		UniqueID:   summoner.UniqueID,
		InternalID: summoner.InternalID,
		Rank:       entry,
		Score:      domain.Score(entry),
		Role:       role,
	}

	s.logger.Info().
		Str("puuid", profile.UniqueID).
		Float64("score", profile.Score).
		Str("role", string(profile.Role)).
		Bool("ranked", profile.Rank != nil).
		Msg("player resolved")

	return profile, nil
}

func (s *PlayerService) lookupSummoner(ctx context.Context, handle domain.PlayerHandle) (domain.SummonerRecord, error) {
	if !handle.IsRiotID() {
		summoner, err := s.riot.SummonerByName(ctx, handle.LegacyName)
		if err != nil {
			return domain.SummonerRecord{}, fmt.Errorf("failed to fetch summoner by name: %w", err)
		}
		name := summoner.Name
		if name == "" {
			name = handle.LegacyName
		}
		return domain.SummonerRecord{DisplayName: name, InternalID: summoner.ID, UniqueID: summoner.PUUID}, nil
	}

	account, err := s.riot.AccountByRiotID(ctx, handle.GameName, handle.TagLine)
	if err != nil {
		return domain.SummonerRecord{}, fmt.Errorf("failed to fetch account: %w", err)
	}

	summoner, err := s.riot.SummonerByPUUID(ctx, account.PUUID)
	if err != nil {
		return domain.SummonerRecord{}, fmt.Errorf("failed to fetch summoner by puuid: %w", err)
	}

	name := handle.String()
	if account.GameName != "" && account.TagLine != "" {
		name = account.GameName + constants.HandleSeparator + account.TagLine
	}
	return domain.SummonerRecord{DisplayName: name, InternalID: summoner.ID, UniqueID: account.PUUID}, nil
}
