package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/salesflow-api/internal/usecases/pipeline"
	"github.com/vfg2006/salesflow-api/pkg/apiErrors"
	"github.com/vfg2006/salesflow-api/pkg/utils"
)

// ListDeals retorna os deals do pipeline, opcionalmente filtrados por ?risk=high|medium|low
func ListDeals(service pipeline.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := pipeline.DealFilter{RiskLevel: r.URL.Query().Get("risk")}

		deals, err := service.ListDeals(r.Context(), filter)
		if err != nil {
			if errors.Is(err, pipeline.ErrInvalidRiskLevel) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "risk must be one of high, medium, low", nil)
				return
			}
			writeInternalError(w, r, err, "Erro ao listar deals")
			return
		}

		utils.WriteJSON(w, http.StatusOK, deals)
	}
}

func GetDeal(service pipeline.Service, rec Recorder) http.HandlerFunc {
	rec = recorderOrNoop(rec)

	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		deal, err := service.GetDeal(r.Context(), id)
		if err != nil {
			if errors.Is(err, pipeline.ErrDealNotFound) {
				rec.RecordNotFound("deal")
				apiErrors.WriteError(w, apiErrors.ErrDealNotFound, "Deal not found", nil)
				return
			}
			writeInternalError(w, r, err, "Erro ao buscar deal")
			return
		}

		utils.WriteJSON(w, http.StatusOK, deal)
	}
}

// GetRiskSummary retorna quantidade e valor dos deals por faixa de risco
func GetRiskSummary(service pipeline.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.GetRiskSummary(r.Context())
		if err != nil {
			writeInternalError(w, r, err, "Erro ao calcular resumo de risco")
			return
		}

		utils.WriteJSON(w, http.StatusOK, summary)
	}
}
