package pipeline

import (
	"errors"
	"fmt"
)

var (
	ErrDealNotFound      = errors.New("deal não encontrado")
	ErrInvalidRiskLevel  = errors.New("nível de risco inválido")
	ErrDatabaseOperation = errors.New("erro ao consultar o repositório")
)

// QueryError é um erro com contexto adicional para consultas do pipeline
type QueryError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	DealID  string // ID do deal envolvido (quando aplicável)
	Details string // Detalhes adicionais
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

func NewQueryError(err error, code string, details string) *QueryError {
	return &QueryError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
