package teams

import (
	"math/rand/v2"
	"testing"

	"github.com/Syug0/LOL-team-assignment/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func player(name string, score float64) domain.ScoredPlayer {
	return domain.ScoredPlayer{Name: name, Score: &score}
}

func names(players []domain.ScoredPlayer) []string {
	out := make([]string, len(players))
	for i, p := range players {
		out[i] = p.Name
	}
	return out
}

func roster() []domain.ScoredPlayer {
	return []domain.ScoredPlayer{
		player("a", 7.6), player("b", 3), player("c", 5.2), player("d", 1),
		player("e", 4.4), player("f", 9), player("g", 2.2), {Name: "h"},
		player("i", 6), player("j", 3),
	}
}

func TestBalancedExample(t *testing.T) {
	players := []domain.ScoredPlayer{player("x", 5), player("y", 3), player("z", 2)}

	result, err := Split(players, domain.PolicyBalanced, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"x"}, names(result.TeamA))
	assert.Equal(t, []string{"y", "z"}, names(result.TeamB))
	assert.Equal(t, 5.0, result.ScoreA)
	assert.Equal(t, 5.0, result.ScoreB)
	assert.Equal(t, 0.0, result.Diff)
	assert.Equal(t, domain.PolicyBalanced, result.Policy)
}

func TestBalancedDeterministic(t *testing.T) {
	first, err := Split(roster(), domain.PolicyBalanced, nil)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := Split(roster(), domain.PolicyBalanced, nil)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestBalancedStableOnTies(t *testing.T) {
	players := []domain.ScoredPlayer{player("p1", 2), player("p2", 2), player("p3", 2), player("p4", 2)}

	teamA, teamB := Balanced(players)
	assert.Equal(t, []string{"p1", "p3"}, names(teamA))
	assert.Equal(t, []string{"p2", "p4"}, names(teamB))
}

func TestBalancedDefaultsMissingScoreToOne(t *testing.T) {
	result, err := Split([]domain.ScoredPlayer{{Name: "a"}, {Name: "b"}, {Name: "c"}}, domain.PolicyBalanced, nil)
	require.NoError(t, err)
	assert.Equal(t, 2.0, result.ScoreA)
	assert.Equal(t, 1.0, result.ScoreB)
	assert.Equal(t, 1.0, result.Diff)
}

func TestDuoKeepsFirstTwoTogether(t *testing.T) {
	players := roster()

	result, err := Split(players, domain.PolicyDuo, nil)
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(result.TeamA), 2)
	assert.Equal(t, []string{"a", "b"}, names(result.TeamA[:2]))
	assert.NotContains(t, names(result.TeamB), "a")
	assert.NotContains(t, names(result.TeamB), "b")
}

func TestDuoExactlyTwo(t *testing.T) {
	result, err := Split([]domain.ScoredPlayer{player("a", 1), player("b", 9)}, domain.PolicyDuo, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, names(result.TeamA))
	assert.Empty(t, result.TeamB)
	assert.NotNil(t, result.TeamB)
	assert.Equal(t, 10.0, result.Diff)
}

func TestDuoPlacementIsUnconditional(t *testing.T) {
	// the duo already outweighs everyone else, so the rest all go to B
	players := []domain.ScoredPlayer{player("a", 10), player("b", 10), player("c", 1), player("d", 1)}

	result, err := Split(players, domain.PolicyDuo, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names(result.TeamA))
	assert.Equal(t, []string{"c", "d"}, names(result.TeamB))
}

func TestRandomSplitsAtCeilHalf(t *testing.T) {
	players := roster()[:7]
	rng := rand.New(rand.NewPCG(1, 2))

	result, err := Split(players, domain.PolicyRandom, rng)
	require.NoError(t, err)
	assert.Len(t, result.TeamA, 4)
	assert.Len(t, result.TeamB, 3)
	assert.Equal(t, domain.PolicyRandom, result.Policy)
}

func TestRandomReproducibleWithSeed(t *testing.T) {
	a, _ := Random(roster(), rand.New(rand.NewPCG(7, 7)))
	b, _ := Random(roster(), rand.New(rand.NewPCG(7, 7)))
	assert.Equal(t, names(a), names(b))
}

func TestSplitPartitionsEveryPlayer(t *testing.T) {
	policies := []domain.Policy{domain.PolicyBalanced, domain.PolicyDuo, domain.PolicyRandom, "unknown"}

	for _, policy := range policies {
		t.Run(string(policy), func(t *testing.T) {
			players := roster()
			result, err := Split(players, policy, rand.New(rand.NewPCG(3, 4)))
			require.NoError(t, err)

			assert.Equal(t, len(players), len(result.TeamA)+len(result.TeamB))
			assert.ElementsMatch(t, names(players), append(names(result.TeamA), names(result.TeamB)...))
			assert.InDelta(t, result.ScoreA+result.ScoreB, total(players), 1e-9)
			assert.InDelta(t, result.Diff, abs(result.ScoreA-result.ScoreB), 1e-9)
		})
	}
}

func TestSplitDoesNotMutateInput(t *testing.T) {
	players := roster()
	before := names(players)

	_, err := Split(players, domain.PolicyBalanced, nil)
	require.NoError(t, err)
	_, err = Split(players, domain.PolicyRandom, rand.New(rand.NewPCG(1, 1)))
	require.NoError(t, err)

	assert.Equal(t, before, names(players))
}

func TestSplitRequiresTwoPlayers(t *testing.T) {
	for _, players := range [][]domain.ScoredPlayer{nil, {player("solo", 5)}} {
		_, err := Split(players, domain.PolicyBalanced, nil)
		var vErr *domain.ValidationError
		assert.ErrorAs(t, err, &vErr)
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
