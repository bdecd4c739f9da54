package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Syug0/LOL-team-assignment/internal/constants"
	"github.com/Syug0/LOL-team-assignment/internal/domain"

	"github.com/rs/zerolog"
)

var errParticipantMissing = errors.New("participant missing from match")

type RoleService struct {
	riot       RiotAPI
	sampleSize int
	logger     zerolog.Logger
}

func NewRoleService(riot RiotAPI, logger zerolog.Logger) *RoleService {
	return &RoleService{riot: riot, sampleSize: constants.RoleSampleSize, logger: logger}
}

// InferRole returns the role puuid played most over its recent matches.
// Any fetch failure degrades to RoleUnknown instead of failing the caller.
func (s *RoleService) InferRole(ctx context.Context, puuid string) domain.Role {
	counts, err := s.countRoles(ctx, puuid)
	if err != nil {
		s.logger.Warn().Err(err).Str("puuid", puuid).Msg("role inference failed, returning unknown")
		return domain.RoleUnknown
	}

	role := majorityRole(counts)
	s.logger.Debug().Str("puuid", puuid).Str("role", string(role)).Interface("counts", counts).Msg("role inferred")
	return role
}

// countRoles fetches match details one at a time and stops at the first failure.
func (s *RoleService) countRoles(ctx context.Context, puuid string) (map[domain.Role]int, error) {
	ids, err := s.riot.MatchIDs(ctx, puuid, s.sampleSize)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch match ids: %w", err)
	}
	if len(ids) > s.sampleSize {
		ids = ids[:s.sampleSize]
	}

	counts := make(map[domain.Role]int, len(domain.Roles))
	for _, id := range ids {
		match, err := s.riot.Match(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch match %s: %w", id, err)
		}

		p, ok := match.Participant(puuid)
		if !ok {
			return nil, fmt.Errorf("%w: %s", errParticipantMissing, id)
		}

		if role := domain.Role(p.TeamPosition); role.IsKnown() {
			counts[role]++
		}
	}
	return counts, nil
}

// majorityRole scans domain.Roles in order; only a strictly higher count replaces the leader.
func majorityRole(counts map[domain.Role]int) domain.Role {
	best, bestCount := domain.RoleUnknown, 0
	for _, role := range domain.Roles {
		if counts[role] > bestCount {
			best, bestCount = role, counts[role]
		}
	}
	return best
}
