package service

import (
	"fmt"

	"github.com/Syug0/LOL-team-assignment/internal/domain"
	"github.com/Syug0/LOL-team-assignment/internal/teams"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

type TeamService struct {
	shuffler teams.Shuffler
	logger   zerolog.Logger
}

func NewTeamService(logger zerolog.Logger) *TeamService {
	return &TeamService{shuffler: teams.DefaultShuffler{}, logger: logger}
}

// NewTeamServiceWithShuffler is used where the random policy must be reproducible.
func NewTeamServiceWithShuffler(shuffler teams.Shuffler, logger zerolog.Logger) *TeamService {
	return &TeamService{shuffler: shuffler, logger: logger}
}

func (s *TeamService) Split(players []domain.ScoredPlayer, policyName string) (*domain.TeamSplitResult, error) {
	policy := domain.ParsePolicy(policyName)
	if policyName != "" && string(policy) != policyName {
		s.logger.Debug().Str("requested", policyName).Str("policy", string(policy)).Msg("unknown split policy, using default")
	}

	result, err := teams.Split(players, policy, s.shuffler)
	if err != nil {
		s.logger.Warn().Err(err).Int("players", len(players)).Msg("rejected team split")
		return nil, err
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("failed to generate nanoid: %w", err)
	}
	result.ID = id

	s.logger.Info().
		Str("split_id", result.ID).
		Str("policy", string(result.Policy)).
		Int("players", len(players)).
		Float64("score_a", result.ScoreA).
		Float64("score_b", result.ScoreB).
		Float64("diff", result.Diff).
		Msg("teams split")

	return &result, nil
}
