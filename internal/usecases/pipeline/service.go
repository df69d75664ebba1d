// Package pipeline concentra as consultas sobre o funil de negócios (deals)
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/vfg2006/salesflow-api/infrastructure/repository"
	"github.com/vfg2006/salesflow-api/internal/domain"
	"github.com/vfg2006/salesflow-api/pkg/apiErrors"
	"github.com/vfg2006/salesflow-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// DealFilter restringe a listagem de deals. Campos vazios não filtram.
type DealFilter struct {
	RiskLevel string
}

type Service interface {
	ListDeals(ctx context.Context, filter DealFilter) ([]domain.Deal, error)
	GetDeal(ctx context.Context, id string) (*domain.Deal, error)
	GetRiskSummary(ctx context.Context) (*domain.RiskSummary, error)
}

type service struct {
	dealRepo repository.DealRepository
}

func NewService(dealRepo repository.DealRepository) Service {
	return &service{dealRepo: dealRepo}
}

func (s *service) ListDeals(ctx context.Context, filter DealFilter) ([]domain.Deal, error) {
	var level domain.RiskLevel
	if raw := strings.ToLower(strings.TrimSpace(filter.RiskLevel)); raw != "" {
		parsed, ok := domain.ParseRiskLevel(raw)
		if !ok {
			return nil, NewQueryError(ErrInvalidRiskLevel, apiErrors.ErrInvalidFormat,
				fmt.Sprintf("risk must be one of high, medium, low (got %q)", filter.RiskLevel))
		}
		level = parsed
	}

	deals, err := s.dealRepo.GetDeals(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar deals")
		return nil, NewQueryError(ErrDatabaseOperation, apiErrors.ErrInternalServer, err.Error())
	}

	if level == "" {
		return nonNil(deals), nil
	}

	filtered := make([]domain.Deal, 0, len(deals))
	for _, d := range deals {
		if d.RiskLevel() == level {
			filtered = append(filtered, d)
		}
	}
	return filtered, nil
}

func (s *service) GetDeal(ctx context.Context, id string) (*domain.Deal, error) {
	deal, err := s.dealRepo.GetDeal(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithField("deal_id", id).WithError(err).Error("Erro ao buscar deal")
		return nil, NewQueryError(ErrDatabaseOperation, apiErrors.ErrInternalServer, err.Error())
	}

	if deal == nil {
		return nil, &QueryError{
			Err:     ErrDealNotFound,
			Code:    apiErrors.ErrDealNotFound,
			DealID:  id,
			Details: "Deal not found",
		}
	}

	return deal, nil
}

// GetRiskSummary agrupa os deals nas faixas de risco usadas pelo dashboard
func (s *service) GetRiskSummary(ctx context.Context) (*domain.RiskSummary, error) {
	deals, err := s.dealRepo.GetDeals(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao calcular resumo de risco")
		return nil, NewQueryError(ErrDatabaseOperation, apiErrors.ErrInternalServer, err.Error())
	}

	summary := &domain.RiskSummary{}
	for _, d := range deals {
		summary.Add(d)
	}
	return summary, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
