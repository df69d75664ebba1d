package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/salesflow-api/internal/domain"
)

// MemStorage mantém as coleções em memória. Os dados de seed são somente leitura
// após a construção; apenas a coleção de usuários recebe inserções.
type MemStorage struct {
	deals              []domain.Deal
	reps               []domain.Rep
	calls              []domain.Call
	teamMembers        []domain.TeamMember
	repStageActions    []domain.StageActions
	teamStageActions   []domain.StageActions
	coachingPriorities []domain.CoachingPriority
	adoptionTrends     []domain.AdoptionTrend
	callBundle         CallBundle

	usersMutex sync.RWMutex
	users      map[string]domain.User
	userOrder  []string
}

var _ Storage = (*MemStorage)(nil)

// NewMemStorage cria o storage a partir do seed informado. O seed é copiado,
// então alterações posteriores nele não afetam o storage.
func NewMemStorage(seed Seed) *MemStorage {
	if err := seed.Validate(); err != nil {
		logrus.WithError(err).Warn("Seed com dados inconsistentes")
	}

	teamMembers := slices.Clone(seed.TeamMembers)
	if teamMembers == nil {
		teamMembers = RankTeamMembers(seed.Reps)
	}
	slices.SortStableFunc(teamMembers, func(a, b domain.TeamMember) int {
		return a.Rank - b.Rank
	})

	return &MemStorage{
		deals:              cloneDeals(seed.Deals),
		reps:               slices.Clone(seed.Reps),
		calls:              cloneCalls(seed.Calls),
		teamMembers:        teamMembers,
		repStageActions:    cloneStageActions(seed.RepStageActions),
		teamStageActions:   cloneStageActions(seed.TeamStageActions),
		coachingPriorities: cloneCoachingPriorities(seed.CoachingPriorities),
		adoptionTrends:     slices.Clone(seed.AdoptionTrends),
		callBundle:         seed.CallBundle.clone(),
		users:              make(map[string]domain.User),
	}
}

func (s *MemStorage) GetDeals(_ context.Context) ([]domain.Deal, error) {
	return cloneDeals(s.deals), nil
}

func (s *MemStorage) GetDeal(_ context.Context, id string) (*domain.Deal, error) {
	for _, d := range s.deals {
		if d.ID == id {
			deal := d.Clone()
			return &deal, nil
		}
	}
	return nil, nil
}

func (s *MemStorage) GetTeamMembers(_ context.Context) ([]domain.TeamMember, error) {
	return cloneOrEmpty(s.teamMembers), nil
}

func (s *MemStorage) GetRep(_ context.Context, id string) (*domain.Rep, error) {
	for _, r := range s.reps {
		if r.ID == id {
			rep := r
			return &rep, nil
		}
	}
	return nil, nil
}

// GetRepStageActions retorna o detalhamento global de ações do playbook.
// O repID não é usado: o seed não possui dados por vendedor.
func (s *MemStorage) GetRepStageActions(_ context.Context, _ string) ([]domain.StageActions, error) {
	return cloneStageActions(s.repStageActions), nil
}

func (s *MemStorage) GetRepCalls(_ context.Context, repID string) ([]domain.Call, error) {
	calls := make([]domain.Call, 0)
	for _, c := range s.calls {
		if c.RepID == repID {
			calls = append(calls, c.Clone())
		}
	}
	return calls, nil
}

func (s *MemStorage) GetCalls(_ context.Context) ([]domain.Call, error) {
	return cloneCalls(s.calls), nil
}

// GetCallDetail monta a visão detalhada da ligação. Transcrição, ações, insights
// e email de follow-up vêm do mesmo pacote auxiliar para todas as ligações.
func (s *MemStorage) GetCallDetail(_ context.Context, id string) (*domain.CallDetail, error) {
	idx := slices.IndexFunc(s.calls, func(c domain.Call) bool { return c.ID == id })
	if idx < 0 {
		return nil, nil
	}

	bundle := s.callBundle.clone()
	return &domain.CallDetail{
		Call:          s.calls[idx].Clone(),
		Transcript:    bundle.Transcript,
		Actions:       bundle.Actions,
		CoachingTip:   bundle.CoachingTip,
		AIInsights:    bundle.AIInsights,
		FollowUpEmail: bundle.FollowUpEmail,
	}, nil
}

func (s *MemStorage) GetTeamStageActions(_ context.Context) ([]domain.StageActions, error) {
	return cloneStageActions(s.teamStageActions), nil
}

func (s *MemStorage) GetCoachingPriorities(_ context.Context) ([]domain.CoachingPriority, error) {
	return cloneCoachingPriorities(s.coachingPriorities), nil
}

func (s *MemStorage) GetAdoptionTrends(_ context.Context) ([]domain.AdoptionTrend, error) {
	return cloneOrEmpty(s.adoptionTrends), nil
}

func (s *MemStorage) GetUser(_ context.Context, id string) (*domain.User, error) {
	s.usersMutex.RLock()
	defer s.usersMutex.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// GetUserByUsername retorna o primeiro usuário cadastrado com o username informado
func (s *MemStorage) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	s.usersMutex.RLock()
	defer s.usersMutex.RUnlock()

	for _, id := range s.userOrder {
		if user := s.users[id]; user.Username == username {
			return &user, nil
		}
	}
	return nil, nil
}

// CreateUser gera um novo ID e armazena o usuário. A unicidade do username
// é responsabilidade do caso de uso de cadastro.
func (s *MemStorage) CreateUser(_ context.Context, input domain.InsertUser) (*domain.User, error) {
	user := domain.User{
		ID:       uuid.NewString(),
		Username: input.Username,
		Password: input.Password,
	}

	s.usersMutex.Lock()
	s.users[user.ID] = user
	s.userOrder = append(s.userOrder, user.ID)
	s.usersMutex.Unlock()

	return &user, nil
}

func cloneOrEmpty[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func cloneDeals(in []domain.Deal) []domain.Deal {
	out := make([]domain.Deal, len(in))
	for i, d := range in {
		out[i] = d.Clone()
	}
	return out
}

func cloneCalls(in []domain.Call) []domain.Call {
	out := make([]domain.Call, len(in))
	for i, c := range in {
		out[i] = c.Clone()
	}
	return out
}

func cloneStageActions(in []domain.StageActions) []domain.StageActions {
	out := make([]domain.StageActions, len(in))
	for i, sa := range in {
		out[i] = sa.Clone()
	}
	return out
}

func cloneCoachingPriorities(in []domain.CoachingPriority) []domain.CoachingPriority {
	out := make([]domain.CoachingPriority, len(in))
	for i, cp := range in {
		out[i] = cp.Clone()
	}
	return out
}
