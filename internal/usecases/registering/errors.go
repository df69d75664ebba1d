package registering

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound        = errors.New("usuário não encontrado")
	ErrUserAlreadyExists   = errors.New("usuário já existe")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidFormat       = errors.New("formato de dados inválido")
	ErrDatabaseOperation   = errors.New("erro ao realizar operação no repositório")
)

// RegisterError é um erro com contexto adicional para o cadastro de usuários
type RegisterError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	UserID  string // ID do usuário envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *RegisterError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *RegisterError) Unwrap() error {
	return e.Err
}

// NewRegisterError cria um novo erro de cadastro
func NewRegisterError(baseErr error, code string, details string) *RegisterError {
	return &RegisterError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// IsValidationError verifica se o erro foi causado por dados de entrada inválidos
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingRequiredData) || errors.Is(err, ErrInvalidFormat)
}
