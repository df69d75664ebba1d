package utils

import (
	"bytes"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// WriteJSON serializa v como corpo da resposta com o status informado
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

var ErrTrailingData = errors.New("dados extras após o JSON")

// DecodeJSON lê o corpo da requisição em v, rejeitando campos desconhecidos
// e qualquer conteúdo além de um único valor JSON
func DecodeJSON(r *http.Request, v any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return err
	}

	rest, err := io.ReadAll(io.MultiReader(decoder.Buffered(), r.Body))
	if err != nil {
		return errors.Wrap(err, "erro ao ler corpo da requisição")
	}
	if len(bytes.TrimSpace(rest)) > 0 {
		return ErrTrailingData
	}
	return nil
}
