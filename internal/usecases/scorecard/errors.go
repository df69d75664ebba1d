package scorecard

import (
	"errors"
	"fmt"
)

var (
	ErrRepNotFound       = errors.New("vendedor não encontrado")
	ErrDatabaseOperation = errors.New("erro ao consultar o repositório")
)

// QueryError é um erro com contexto adicional para consultas de vendedores
type QueryError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	RepID   string // ID do vendedor envolvido
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

func NewQueryError(err error, code string, repID string, details string) *QueryError {
	return &QueryError{
		Err:     err,
		Code:    code,
		RepID:   repID,
		Details: details,
	}
}
