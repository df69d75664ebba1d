package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/salesflow-api/internal/usecases/callanalysis"
	"github.com/vfg2006/salesflow-api/pkg/apiErrors"
	"github.com/vfg2006/salesflow-api/pkg/utils"
)

func GetCallDetail(service callanalysis.Service, rec Recorder) http.HandlerFunc {
	rec = recorderOrNoop(rec)

	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		detail, err := service.GetCallDetail(r.Context(), id)
		if err != nil {
			if errors.Is(err, callanalysis.ErrCallNotFound) {
				rec.RecordNotFound("call")
				apiErrors.WriteError(w, apiErrors.ErrCallNotFound, "Call not found", nil)
				return
			}
			writeInternalError(w, r, err, "Erro ao buscar detalhe da ligação")
			return
		}

		utils.WriteJSON(w, http.StatusOK, detail)
	}
}
