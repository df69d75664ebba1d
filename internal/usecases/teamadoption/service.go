// Package teamadoption reúne as consultas do painel do gestor sobre adoção do playbook
package teamadoption

import (
	"context"
	"errors"
	"fmt"

	"github.com/vfg2006/salesflow-api/infrastructure/repository"
	"github.com/vfg2006/salesflow-api/internal/domain"
	"github.com/vfg2006/salesflow-api/pkg/apiErrors"
	"github.com/vfg2006/salesflow-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

var ErrDatabaseOperation = errors.New("erro ao consultar o repositório")

// QueryError é um erro com contexto adicional para consultas do time
type QueryError struct {
	Err     error
	Code    string
	Details string
}

func (e *QueryError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// Service não possui casos de "não encontrado": listas vazias são respostas válidas
type Service interface {
	GetTeamMembers(ctx context.Context) ([]domain.TeamMember, error)
	GetTeamStageActions(ctx context.Context) ([]domain.StageActions, error)
	GetCoachingPriorities(ctx context.Context) ([]domain.CoachingPriority, error)
	GetAdoptionTrends(ctx context.Context) ([]domain.AdoptionTrend, error)
}

type service struct {
	teamRepo repository.TeamRepository
}

func NewService(teamRepo repository.TeamRepository) Service {
	return &service{teamRepo: teamRepo}
}

func (s *service) GetTeamMembers(ctx context.Context) ([]domain.TeamMember, error) {
	members, err := s.teamRepo.GetTeamMembers(ctx)
	return list(ctx, members, err, "Erro ao buscar ranking do time")
}

func (s *service) GetTeamStageActions(ctx context.Context) ([]domain.StageActions, error) {
	actions, err := s.teamRepo.GetTeamStageActions(ctx)
	return list(ctx, actions, err, "Erro ao buscar ações do time")
}

func (s *service) GetCoachingPriorities(ctx context.Context) ([]domain.CoachingPriority, error) {
	priorities, err := s.teamRepo.GetCoachingPriorities(ctx)
	return list(ctx, priorities, err, "Erro ao buscar prioridades de coaching")
}

func (s *service) GetAdoptionTrends(ctx context.Context) ([]domain.AdoptionTrend, error) {
	trends, err := s.teamRepo.GetAdoptionTrends(ctx)
	return list(ctx, trends, err, "Erro ao buscar tendências de adoção")
}

func list[T any](ctx context.Context, items []T, err error, msg string) ([]T, error) {
	if err != nil {
		log.ForContext(ctx).WithError(err).Error(msg)
		return nil, &QueryError{Err: ErrDatabaseOperation, Code: apiErrors.ErrInternalServer, Details: err.Error()}
	}
	if items == nil {
		return []T{}, nil
	}
	return items, nil
}
