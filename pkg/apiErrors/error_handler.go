package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro expostos pela API
const (
	// Recursos não encontrados
	ErrDealNotFound = "DEAL_NOT_FOUND" // Negócio não encontrado
	ErrRepNotFound  = "REP_NOT_FOUND"  // Vendedor não encontrado
	ErrCallNotFound = "CALL_NOT_FOUND" // Ligação não encontrada
	ErrUserNotFound = "USER_NOT_FOUND" // Usuário não encontrado

	// Rotas
	ErrRouteNotFound    = "NOT_FOUND"          // Rota inexistente
	ErrMethodNotAllowed = "METHOD_NOT_ALLOWED" // Método não suportado pela rota

	// Conflitos
	ErrUserAlreadyExists = "USER_ALREADY_EXISTS" // Usuário já existe

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

// Mensagem genérica para falhas inesperadas; o detalhe vai apenas para o log
const InternalServerMessage = "Internal server error"

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrDealNotFound:        http.StatusNotFound,
	ErrRepNotFound:         http.StatusNotFound,
	ErrCallNotFound:        http.StatusNotFound,
	ErrUserNotFound:        http.StatusNotFound,
	ErrRouteNotFound:       http.StatusNotFound,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrUserAlreadyExists:   http.StatusConflict,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor devolve o status HTTP associado ao código, 500 quando desconhecido
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	if err := json.NewEncoder(w).Encode(apiErr); err != nil {
		logrus.WithError(err).Warn("Erro ao escrever resposta de erro")
	}
}

// WriteInternalError responde 500 com a mensagem genérica
func WriteInternalError(w http.ResponseWriter) {
	WriteError(w, ErrInternalServer, InternalServerMessage, nil)
}
