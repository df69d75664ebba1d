package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/salesflow-api/internal/domain"
	"github.com/vfg2006/salesflow-api/internal/usecases/registering"
	"github.com/vfg2006/salesflow-api/pkg/apiErrors"
	"github.com/vfg2006/salesflow-api/pkg/utils"
)

// maxUserPayload limita o corpo aceito no cadastro
const maxUserPayload = 1 << 12

// GetUser retorna informações do usuário por ID
func GetUser(service registering.Registerer, rec Recorder) http.HandlerFunc {
	rec = recorderOrNoop(rec)

	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		user, err := service.GetUser(r.Context(), id)
		if err != nil {
			if errors.Is(err, registering.ErrUserNotFound) {
				rec.RecordNotFound("user")
				apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "User not found", nil)
				return
			}
			writeInternalError(w, r, err, "Erro ao buscar usuário")
			return
		}

		utils.WriteJSON(w, http.StatusOK, user)
	}
}

// CreateUser cria um novo usuário
func CreateUser(service registering.Registerer, rec Recorder) http.HandlerFunc {
	rec = recorderOrNoop(rec)

	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Debug("INIT - CreateUser")

		var input domain.InsertUser

		r.Body = http.MaxBytesReader(w, r.Body, maxUserPayload)
		if err := utils.DecodeJSON(r, &input); err != nil {
			logrus.WithError(err).Warn("Erro ao decodificar requisição de cadastro")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		user, err := service.CreateUser(r.Context(), input)
		if err != nil {
			var regErr *registering.RegisterError
			switch {
			case errors.Is(err, registering.ErrUserAlreadyExists):
				apiErrors.WriteError(w, apiErrors.ErrUserAlreadyExists, "Username already taken", nil)
			case registering.IsValidationError(err) && errors.As(err, &regErr):
				apiErrors.WriteError(w, regErr.Code, regErr.Details, nil)
			default:
				writeInternalError(w, r, err, "Erro ao criar usuário")
			}
			return
		}

		rec.RecordUserCreated()
		utils.WriteJSON(w, http.StatusCreated, user)
	}
}
