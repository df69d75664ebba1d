package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/salesflow-api/internal/usecases/scorecard"
	"github.com/vfg2006/salesflow-api/pkg/apiErrors"
	"github.com/vfg2006/salesflow-api/pkg/utils"
)

func GetRep(service scorecard.Service, rec Recorder) http.HandlerFunc {
	rec = recorderOrNoop(rec)

	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		rep, err := service.GetRep(r.Context(), id)
		if err != nil {
			if errors.Is(err, scorecard.ErrRepNotFound) {
				rec.RecordNotFound("rep")
				apiErrors.WriteError(w, apiErrors.ErrRepNotFound, "Rep not found", nil)
				return
			}
			writeInternalError(w, r, err, "Erro ao buscar vendedor")
			return
		}

		utils.WriteJSON(w, http.StatusOK, rep)
	}
}

// GetRepActions retorna o playbook por estágio do vendedor
func GetRepActions(service scorecard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		actions, err := service.GetRepStageActions(r.Context(), id)
		if err != nil {
			writeInternalError(w, r, err, "Erro ao buscar ações do vendedor")
			return
		}

		utils.WriteJSON(w, http.StatusOK, actions)
	}
}

// GetRepCalls retorna as ligações do vendedor; IDs sem ligações devolvem []
func GetRepCalls(service scorecard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		calls, err := service.GetRepCalls(r.Context(), id)
		if err != nil {
			writeInternalError(w, r, err, "Erro ao buscar ligações do vendedor")
			return
		}

		utils.WriteJSON(w, http.StatusOK, calls)
	}
}
