package repository

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vfg2006/salesflow-api/internal/domain"
)

var (
	ErrUnknownRep        = errors.New("oportunidade referencia vendedor inexistente")
	ErrActionsOverflow   = errors.New("ações concluídas maior que o total de ações")
	ErrTrendMismatch     = errors.New("variação de adoção diferente de fim - início")
	ErrRankNotDense      = errors.New("ranking não forma a sequência 1..N")
	ErrRiskScoreOutRange = errors.New("riskScore fora do intervalo 0-100")
)

// Validate verifica os invariantes do modelo de dados sobre o seed.
// Todos os problemas encontrados são retornados juntos.
func (s Seed) Validate() error {
	var errs []error

	repIDs := s.repIDs()
	for _, d := range s.Deals {
		if _, found := slices.BinarySearch(repIDs, d.RepID); !found {
			errs = append(errs, fmt.Errorf("%w: deal %s, rep %s", ErrUnknownRep, d.ID, d.RepID))
		}
		if d.RiskScore < 0 || d.RiskScore > 100 {
			errs = append(errs, fmt.Errorf("%w: deal %s, score %d", ErrRiskScoreOutRange, d.ID, d.RiskScore))
		}
	}

	for _, c := range s.Calls {
		if c.ActionsCompleted > c.TotalActions {
			errs = append(errs, fmt.Errorf("%w: call %s (%d/%d)", ErrActionsOverflow, c.ID, c.ActionsCompleted, c.TotalActions))
		}
	}

	for _, t := range s.AdoptionTrends {
		if t.Change != t.EndAdoption-t.StartAdoption {
			errs = append(errs, fmt.Errorf("%w: %s", ErrTrendMismatch, t.RepName))
		}
	}

	if s.TeamMembers != nil {
		if err := checkDenseRanks(len(s.TeamMembers), func(i int) int { return s.TeamMembers[i].Rank }); err != nil {
			errs = append(errs, fmt.Errorf("team: %w", err))
		}
	}

	if err := checkDenseRanks(len(s.CoachingPriorities), func(i int) int { return s.CoachingPriorities[i].Rank }); err != nil {
		errs = append(errs, fmt.Errorf("coaching priorities: %w", err))
	}

	return errors.Join(errs...)
}

// checkDenseRanks exige ranks 1..n em ordem crescente, sem repetição
func checkDenseRanks(n int, rankAt func(int) int) error {
	for i := 0; i < n; i++ {
		if rankAt(i) != i+1 {
			return fmt.Errorf("%w: posição %d possui rank %d", ErrRankNotDense, i, rankAt(i))
		}
	}
	return nil
}

// RankTeamMembers projeta os vendedores no ranking do time: ordem decrescente
// de nota média das ligações, desempate por adoção do playbook e depois por ID.
func RankTeamMembers(reps []domain.Rep) []domain.TeamMember {
	sorted := slices.Clone(reps)
	slices.SortStableFunc(sorted, func(a, b domain.Rep) int {
		switch {
		case a.AvgCallScore != b.AvgCallScore:
			return compareDesc(a.AvgCallScore, b.AvgCallScore)
		case a.PlaybookAdoption != b.PlaybookAdoption:
			return compareDesc(a.PlaybookAdoption, b.PlaybookAdoption)
		default:
			if a.ID < b.ID {
				return -1
			} else if a.ID > b.ID {
				return 1
			}
			return 0
		}
	})

	members := make([]domain.TeamMember, 0, len(sorted))
	for i, r := range sorted {
		members = append(members, domain.TeamMember{
			Rank:     i + 1,
			ID:       r.ID,
			Name:     r.Name,
			Adoption: r.PlaybookAdoption,
			AvgScore: r.AvgCallScore,
			WinRate:  r.WinRate,
		})
	}
	return members
}

func compareDesc(a, b float64) int {
	if a > b {
		return -1
	}
	return 1
}
