package handler

import (
	"net/http"

	"github.com/vfg2006/salesflow-api/pkg/apiErrors"
	"github.com/vfg2006/salesflow-api/pkg/log"
)

// Recorder recebe os eventos de negócio contabilizados pelos handlers
type Recorder interface {
	RecordNotFound(resource string)
	RecordUserCreated()
}

type noopRecorder struct{}

func (noopRecorder) RecordNotFound(string) {}
func (noopRecorder) RecordUserCreated()    {}

func recorderOrNoop(rec Recorder) Recorder {
	if rec == nil {
		return noopRecorder{}
	}
	return rec
}

// writeInternalError registra o erro com o ID de correlação e responde com a mensagem genérica
func writeInternalError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log.ForContext(r.Context()).WithFields(log.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	}).WithError(err).Error(msg)
	apiErrors.WriteInternalError(w)
}

// NotFoundHandler responde rotas inexistentes no mesmo formato de erro da API
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrRouteNotFound, "Route not found", nil)
	})
}

func MethodNotAllowedHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Method not allowed", nil)
	})
}
