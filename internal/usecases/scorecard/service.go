// Package scorecard reúne as consultas do painel individual de cada vendedor
package scorecard

import (
	"context"

	"github.com/vfg2006/salesflow-api/infrastructure/repository"
	"github.com/vfg2006/salesflow-api/internal/domain"
	"github.com/vfg2006/salesflow-api/pkg/apiErrors"
	"github.com/vfg2006/salesflow-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type Service interface {
	GetRep(ctx context.Context, id string) (*domain.Rep, error)
	GetRepStageActions(ctx context.Context, repID string) ([]domain.StageActions, error)
	GetRepCalls(ctx context.Context, repID string) ([]domain.Call, error)
}

type service struct {
	repRepo repository.RepRepository
}

func NewService(repRepo repository.RepRepository) Service {
	return &service{repRepo: repRepo}
}

func (s *service) GetRep(ctx context.Context, id string) (*domain.Rep, error) {
	rep, err := s.repRepo.GetRep(ctx, id)
	if err != nil {
		return nil, s.internal(ctx, id, err, "Erro ao buscar vendedor")
	}

	if rep == nil {
		return nil, NewQueryError(ErrRepNotFound, apiErrors.ErrRepNotFound, id, "Rep not found")
	}

	return rep, nil
}

// GetRepStageActions devolve o playbook por estágio. O detalhamento é o mesmo para
// qualquer vendedor, inclusive IDs inexistentes.
func (s *service) GetRepStageActions(ctx context.Context, repID string) ([]domain.StageActions, error) {
	actions, err := s.repRepo.GetRepStageActions(ctx, repID)
	if err != nil {
		return nil, s.internal(ctx, repID, err, "Erro ao buscar ações do vendedor")
	}

	if actions == nil {
		return []domain.StageActions{}, nil
	}
	return actions, nil
}

func (s *service) GetRepCalls(ctx context.Context, repID string) ([]domain.Call, error) {
	calls, err := s.repRepo.GetRepCalls(ctx, repID)
	if err != nil {
		return nil, s.internal(ctx, repID, err, "Erro ao buscar ligações do vendedor")
	}

	if calls == nil {
		return []domain.Call{}, nil
	}
	return calls, nil
}

func (s *service) internal(ctx context.Context, repID string, err error, msg string) error {
	log.ForContext(ctx).WithField("rep_id", repID).WithError(err).Error(msg)
	return NewQueryError(ErrDatabaseOperation, apiErrors.ErrInternalServer, repID, err.Error())
}
