package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/salesflow-api/internal/usecases/teamadoption"
	"github.com/vfg2006/salesflow-api/pkg/utils"
)

// listHandler adapta consultas de lista do time, que nunca respondem 404
func listHandler[T any](fetch func(ctx context.Context) ([]T, error), errMsg string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := fetch(r.Context())
		if err != nil {
			writeInternalError(w, r, err, errMsg)
			return
		}
		if items == nil {
			items = []T{}
		}

		utils.WriteJSON(w, http.StatusOK, items)
	}
}

func GetTeam(service teamadoption.Service) http.HandlerFunc {
	return listHandler(service.GetTeamMembers, "Erro ao buscar ranking do time")
}

func GetTeamActions(service teamadoption.Service) http.HandlerFunc {
	return listHandler(service.GetTeamStageActions, "Erro ao buscar ações do time")
}

func GetCoachingPriorities(service teamadoption.Service) http.HandlerFunc {
	return listHandler(service.GetCoachingPriorities, "Erro ao buscar prioridades de coaching")
}

func GetAdoptionTrends(service teamadoption.Service) http.HandlerFunc {
	return listHandler(service.GetAdoptionTrends, "Erro ao buscar tendências de adoção")
}
