package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/salesflow-api/internal/domain"
)

func newTestStorage(t *testing.T) *MemStorage {
	t.Helper()
	return NewMemStorage(DefaultSeed())
}

func TestMemStorage_GetDeal(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	deals, err := storage.GetDeals(ctx)
	require.NoError(t, err)
	require.Len(t, deals, 3)

	for _, d := range deals {
		deal, err := storage.GetDeal(ctx, d.ID)
		require.NoError(t, err)
		require.NotNil(t, deal)
		assert.Equal(t, d.ID, deal.ID)
	}

	deal, err := storage.GetDeal(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp - Enterprise Plan", deal.Name)
	assert.Equal(t, 85, deal.RiskScore)

	for _, id := range []string{"999", "", "01", "acme"} {
		deal, err := storage.GetDeal(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, deal, "id %q", id)
	}
}

func TestMemStorage_GetDealsPreservesOrder(t *testing.T) {
	deals, err := newTestStorage(t).GetDeals(context.Background())
	require.NoError(t, err)

	ids := make([]string, 0, len(deals))
	for _, d := range deals {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []string{"1", "2", "3"}, ids)
}

func TestMemStorage_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	deals, err := storage.GetDeals(ctx)
	require.NoError(t, err)
	deals[0].RootCauses[0] = "alterado"
	deals[0].Name = "alterado"

	deal, err := storage.GetDeal(ctx, "1")
	require.NoError(t, err)
	deal.RootCauses[1] = "alterado"

	again, err := storage.GetDeal(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp - Enterprise Plan", again.Name)
	assert.Equal(t, "No economic buyer identified (40% lower win rate when skipped)", again.RootCauses[0])
	assert.Equal(t, "Last activity 7 days ago", again.RootCauses[1])

	detail, err := storage.GetCallDetail(ctx, "1")
	require.NoError(t, err)
	detail.Transcript[0].Text = "alterado"
	detail.AIInsights[1].Value.Items[0] = "alterado"

	detail, err = storage.GetCallDetail(ctx, "1")
	require.NoError(t, err)
	assert.NotEqual(t, "alterado", detail.Transcript[0].Text)
	assert.Equal(t, "Pricing concern", detail.AIInsights[1].Value.Items[0])
}

func TestMemStorage_GetRepCalls(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	all, err := storage.GetCalls(ctx)
	require.NoError(t, err)

	for _, rep := range DefaultSeed().Reps {
		want := make([]domain.Call, 0)
		for _, c := range all {
			if c.RepID == rep.ID {
				want = append(want, c)
			}
		}

		got, err := storage.GetRepCalls(ctx, rep.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got, "rep %s", rep.ID)

		again, err := storage.GetRepCalls(ctx, rep.ID)
		require.NoError(t, err)
		assert.Equal(t, got, again)
	}

	calls, err := storage.GetRepCalls(ctx, "2")
	require.NoError(t, err)
	require.Len(t, calls, 4)
	for _, c := range calls {
		assert.Equal(t, "2", c.RepID)
	}

	calls, err = storage.GetRepCalls(ctx, "inexistente")
	require.NoError(t, err)
	assert.NotNil(t, calls)
	assert.Empty(t, calls)
}

func TestMemStorage_GetCallDetail(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	detail, err := storage.GetCallDetail(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Equal(t, "1", detail.Call.ID)
	assert.NotEmpty(t, detail.Transcript)
	assert.Equal(t, "00:02", detail.Transcript[0].Timestamp)
	assert.Len(t, detail.Actions, 5)
	assert.Len(t, detail.AIInsights, 4)
	assert.Equal(t, "28:30", detail.CoachingTip.Timestamp)
	assert.Contains(t, detail.FollowUpEmail, "Hi John,")

	other, err := storage.GetCallDetail(ctx, "6")
	require.NoError(t, err)
	assert.Equal(t, "6", other.Call.ID)
	assert.Equal(t, detail.Transcript, other.Transcript)

	missing, err := storage.GetCallDetail(ctx, "999")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemStorage_GetRep(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	rep, err := storage.GetRep(ctx, "2")
	require.NoError(t, err)
	require.NotNil(t, rep)
	assert.Equal(t, "John Smith", rep.Name)
	assert.Equal(t, 9.1, rep.AvgCallScore)

	rep, err = storage.GetRep(ctx, "42")
	require.NoError(t, err)
	assert.Nil(t, rep)
}

func TestMemStorage_GetRepStageActionsIgnoresRep(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	first, err := storage.GetRepStageActions(ctx, "1")
	require.NoError(t, err)
	second, err := storage.GetRepStageActions(ctx, "inexistente")
	require.NoError(t, err)

	assert.Len(t, first, 3)
	assert.Equal(t, first, second)
	assert.Equal(t, domain.StageDiscovery, first[0].Stage)
}

func TestMemStorage_TeamCollections(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	members, err := storage.GetTeamMembers(ctx)
	require.NoError(t, err)
	require.Len(t, members, 5)
	for i, m := range members {
		assert.Equal(t, i+1, m.Rank)
	}

	priorities, err := storage.GetCoachingPriorities(ctx)
	require.NoError(t, err)
	require.Len(t, priorities, 3)
	for i, p := range priorities {
		assert.Equal(t, i+1, p.Rank)
	}

	trends, err := storage.GetAdoptionTrends(ctx)
	require.NoError(t, err)
	require.Len(t, trends, 3)
	for _, tr := range trends {
		assert.Equal(t, tr.EndAdoption-tr.StartAdoption, tr.Change, tr.RepName)
	}

	actions, err := storage.GetTeamStageActions(ctx)
	require.NoError(t, err)
	require.Len(t, actions, 3)
	assert.Equal(t, "Ask about pain point", actions[0].Actions[0].Action)
}

func TestMemStorage_CallsRespectActionTotals(t *testing.T) {
	calls, err := newTestStorage(t).GetCalls(context.Background())
	require.NoError(t, err)

	for _, c := range calls {
		assert.LessOrEqual(t, c.ActionsCompleted, c.TotalActions, "call %s", c.ID)
	}
}

func TestMemStorage_DerivesTeamWhenSeedHasNoRanking(t *testing.T) {
	seed := DefaultSeed()
	seed.TeamMembers = nil

	members, err := NewMemStorage(seed).GetTeamMembers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultSeed().TeamMembers, members)
}

func TestMemStorage_EmptySeed(t *testing.T) {
	ctx := context.Background()
	storage := NewMemStorage(Seed{})

	deals, err := storage.GetDeals(ctx)
	require.NoError(t, err)
	assert.NotNil(t, deals)
	assert.Empty(t, deals)

	members, err := storage.GetTeamMembers(ctx)
	require.NoError(t, err)
	assert.NotNil(t, members)
	assert.Empty(t, members)

	detail, err := storage.GetCallDetail(ctx, "1")
	require.NoError(t, err)
	assert.Nil(t, detail)
}

func TestMemStorage_DealWithoutRootCauses(t *testing.T) {
	ctx := context.Background()
	storage := NewMemStorage(Seed{Deals: []domain.Deal{{ID: "1", Name: "Sem causas"}}})

	deal, err := storage.GetDeal(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, deal)
	assert.NotNil(t, deal.RootCauses)

	deals, err := storage.GetDeals(ctx)
	require.NoError(t, err)
	require.Len(t, deals, 1)
	assert.NotNil(t, deals[0].RootCauses)
}

func TestMemStorage_Users(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	created, err := storage.CreateUser(ctx, domain.InsertUser{Username: "a", Password: "p"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "a", created.Username)

	found, err := storage.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	byName, err := storage.GetUserByUsername(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, created, byName)

	other, err := storage.CreateUser(ctx, domain.InsertUser{Username: "b", Password: "p"})
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, other.ID)

	missing, err := storage.GetUser(ctx, "inexistente")
	require.NoError(t, err)
	assert.Nil(t, missing)

	missing, err = storage.GetUserByUsername(ctx, "c")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemStorage_UsernameLookupReturnsFirstMatch(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	first, err := storage.CreateUser(ctx, domain.InsertUser{Username: "dup", Password: "1"})
	require.NoError(t, err)
	_, err = storage.CreateUser(ctx, domain.InsertUser{Username: "dup", Password: "2"})
	require.NoError(t, err)

	found, err := storage.GetUserByUsername(ctx, "dup")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)
}

func TestMemStorage_ConcurrentCreateUser(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	const workers = 50
	ids := make(chan string, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			user, err := storage.CreateUser(ctx, domain.InsertUser{Username: "user", Password: "p"})
			if err == nil {
				ids <- user.ID
			}
			_, _ = storage.GetUserByUsername(ctx, "user")
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		assert.False(t, seen[id], "id duplicado %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)
}
