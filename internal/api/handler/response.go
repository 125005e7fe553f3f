package handler

import (
	"bytes"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/proxying"
	"github.com/vfg2006/campaign-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
	"github.com/vfg2006/campaign-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// bodyJSON preserva números como json.Number para repassar IDs sem perda
var bodyJSON = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

var errBodyNotObject = errors.New("Invalid JSON body, expected object")

// decodeBody lê o corpo como objeto JSON. Corpo vazio, inválido ou falso
// vira objeto vazio; qualquer outro valor que não seja objeto é rejeitado.
func decodeBody(r *http.Request) (map[string]any, error) {
	if r.Body == nil {
		return map[string]any{}, nil
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	var payload any
	if err := bodyJSON.Unmarshal(raw, &payload); err != nil || !utils.IsTruthy(payload) {
		return map[string]any{}, nil
	}

	data, ok := payload.(map[string]any)
	if !ok {
		return nil, errBodyNotObject
	}
	return data, nil
}

// queryParams usa o primeiro valor de cada parâmetro da URL
func queryParams(r *http.Request) map[string]any {
	query := r.URL.Query()
	data := make(map[string]any, len(query))
	for key, values := range query {
		if len(values) > 0 {
			data[key] = values[0]
		}
	}
	return data
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	if status == 0 {
		status = http.StatusOK
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeUsecaseError traduz os erros de campanha e do proxy para o envelope da API
func writeUsecaseError(w http.ResponseWriter, r *http.Request, err error, fallbackMsg string) {
	logger := log.ForContext(r.Context()).WithError(err)

	var campaignErr *campaigning.CampaignError
	if errors.As(err, &campaignErr) {
		logger.Warn("Erro na operação de campanha")
		apiErrors.WriteError(w, campaignErr.Code, campaignErr.Error(), campaignErr.Data)
		return
	}

	var proxyErr *proxying.ProxyError
	if errors.As(err, &proxyErr) {
		logger.Warn("Erro ao encaminhar rota ao Flowbiz")
		apiErrors.WriteError(w, proxyErr.Code, proxyErr.Error(), proxyErr.Data)
		return
	}

	if errors.Is(err, errBodyNotObject) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
		return
	}

	logger.Error(fallbackMsg)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallbackMsg, nil)
}
