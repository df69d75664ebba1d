// Package callanalysis expõe a análise detalhada de uma ligação de vendas
package callanalysis

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

var (
	ErrCallNotFound      = errors.New("ligação não encontrada")
	ErrDatabaseOperation = errors.New("erro ao consultar o repositório")
)

// QueryError é um erro com contexto adicional para a análise de ligações
type QueryError struct {
	Err     error
	Code    string
	CallID  string
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

type Service interface {
	GetCallDetail(ctx context.Context, id string) (*domain.CallDetail, error)
}

type service struct {
	callRepo repository.CallRepository
}

func NewService(callRepo repository.CallRepository) Service {
	return &service{callRepo: callRepo}
}

// GetCallDetail devolve a ligação com transcrição, ações, dica de coaching,
// insights e e-mail de follow-up
func (s *service) GetCallDetail(ctx context.Context, id string) (*domain.CallDetail, error) {
	detail, err := s.callRepo.GetCallDetail(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithField("call_id", id).WithError(err).Error("Erro ao buscar detalhe da ligação")
		return nil, &QueryError{Err: ErrDatabaseOperation, Code: apiErrors.ErrInternalServer, CallID: id, Details: err.Error()}
	}

	if detail == nil {
		return nil, &QueryError{Err: ErrCallNotFound, Code: apiErrors.ErrCallNotFound, CallID: id, Details: "Call not found"}
	}

	return detail, nil
}
