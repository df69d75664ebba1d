package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/salesflow-api/internal/domain"
)

func TestSeed_ValidateDefault(t *testing.T) {
	require.NoError(t, DefaultSeed().Validate())
}

func TestSeed_ValidateReportsViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *Seed)
		want   error
	}{
		{
			name:   "oportunidade com vendedor inexistente",
			mutate: func(s *Seed) { s.Deals[0].RepID = "99" },
			want:   ErrUnknownRep,
		},
		{
			name:   "riskScore acima de 100",
			mutate: func(s *Seed) { s.Deals[1].RiskScore = 101 },
			want:   ErrRiskScoreOutRange,
		},
		{
			name:   "ligação com mais ações concluídas que o total",
			mutate: func(s *Seed) { s.Calls[0].ActionsCompleted = 6 },
			want:   ErrActionsOverflow,
		},
		{
			name:   "tendência com variação inconsistente",
			mutate: func(s *Seed) { s.AdoptionTrends[0].Change = 1 },
			want:   ErrTrendMismatch,
		},
		{
			name:   "ranking do time com buraco",
			mutate: func(s *Seed) { s.TeamMembers[2].Rank = 7 },
			want:   ErrRankNotDense,
		},
		{
			name:   "prioridades com rank repetido",
			mutate: func(s *Seed) { s.CoachingPriorities[1].Rank = 1 },
			want:   ErrRankNotDense,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed := DefaultSeed()
			tt.mutate(&seed)

			err := seed.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSeed_ValidateJoinsAllViolations(t *testing.T) {
	seed := DefaultSeed()
	seed.Deals[0].RepID = "99"
	seed.Calls[0].ActionsCompleted = 10

	err := seed.Validate()
	assert.ErrorIs(t, err, ErrUnknownRep)
	assert.ErrorIs(t, err, ErrActionsOverflow)
}

func TestRankTeamMembers(t *testing.T) {
	assert.Equal(t, DefaultSeed().TeamMembers, RankTeamMembers(DefaultSeed().Reps))
}

func TestRankTeamMembers_TieBreak(t *testing.T) {
	reps := []domain.Rep{
		{ID: "b", Name: "B", AvgCallScore: 8, PlaybookAdoption: 70},
		{ID: "a", Name: "A", AvgCallScore: 8, PlaybookAdoption: 70},
		{ID: "c", Name: "C", AvgCallScore: 8, PlaybookAdoption: 90},
		{ID: "d", Name: "D", AvgCallScore: 9, PlaybookAdoption: 10},
	}

	members := RankTeamMembers(reps)
	require.Len(t, members, 4)

	ids := make([]string, 0, len(members))
	for i, m := range members {
		assert.Equal(t, i+1, m.Rank)
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{"d", "c", "a", "b"}, ids)
}

func TestRankTeamMembers_Empty(t *testing.T) {
	members := RankTeamMembers(nil)
	assert.NotNil(t, members)
	assert.Empty(t, members)
}
