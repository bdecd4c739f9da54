// Package teams partitions scored players into two teams.
//
// Each policy is a pure function over the roster; Split dispatches on the
// policy and fills in the team sums.
package teams

import (
	"cmp"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/Syug0/LOL-team-assignment/internal/domain"
)

// Shuffler is satisfied by *rand.Rand from math/rand/v2.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// DefaultShuffler draws from the goroutine-safe top-level math/rand/v2 source.
type DefaultShuffler struct{}

func (DefaultShuffler) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

func Split(players []domain.ScoredPlayer, policy domain.Policy, shuffler Shuffler) (domain.TeamSplitResult, error) {
	if len(players) < 2 {
		return domain.TeamSplitResult{}, domain.NewValidationError("players", "need at least 2 players")
	}

	var teamA, teamB []domain.ScoredPlayer
	switch policy {
	case domain.PolicyDuo:
		teamA, teamB = Duo(players)
	case domain.PolicyRandom:
		if shuffler == nil {
			shuffler = DefaultShuffler{}
		}
		teamA, teamB = Random(players, shuffler)
	default:
		policy = domain.PolicyBalanced
		teamA, teamB = Balanced(players)
	}

	if teamB == nil {
		teamB = []domain.ScoredPlayer{}
	}

	scoreA, scoreB := total(teamA), total(teamB)
	return domain.TeamSplitResult{
		Policy: policy,
		TeamA:  teamA,
		TeamB:  teamB,
		ScoreA: scoreA,
		ScoreB: scoreB,
		Diff:   math.Abs(scoreA - scoreB),
	}, nil
}

// Balanced sorts by score descending (stable) and hands each player to the lighter team, A on ties.
func Balanced(players []domain.ScoredPlayer) (teamA, teamB []domain.ScoredPlayer) {
	return assign(nil, nil, byScoreDesc(players))
}

// Duo pins input players 0 and 1 to team A, then balances the rest around them.
func Duo(players []domain.ScoredPlayer) (teamA, teamB []domain.ScoredPlayer) {
	if len(players) < 2 {
		return Balanced(players)
	}
	duo := slices.Clone(players[:2])
	return assign(duo, nil, byScoreDesc(players[2:]))
}

// Random shuffles the roster and puts the first ceil(n/2) players on team A.
func Random(players []domain.ScoredPlayer, shuffler Shuffler) (teamA, teamB []domain.ScoredPlayer) {
	shuffled := slices.Clone(players)
	shuffler.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	half := (len(shuffled) + 1) / 2
	return shuffled[:half:half], shuffled[half:]
}

func assign(teamA, teamB, queue []domain.ScoredPlayer) ([]domain.ScoredPlayer, []domain.ScoredPlayer) {
	sumA, sumB := total(teamA), total(teamB)
	for _, p := range queue {
		if sumA <= sumB {
			teamA = append(teamA, p)
			sumA += p.Points()
		} else {
			teamB = append(teamB, p)
			sumB += p.Points()
		}
	}
	return teamA, teamB
}

func byScoreDesc(players []domain.ScoredPlayer) []domain.ScoredPlayer {
	sorted := slices.Clone(players)
	slices.SortStableFunc(sorted, func(a, b domain.ScoredPlayer) int {
		return cmp.Compare(b.Points(), a.Points())
	})
	return sorted
}

func total(players []domain.ScoredPlayer) float64 {
	var sum float64
	for _, p := range players {
		sum += p.Points()
	}
	return sum
}
