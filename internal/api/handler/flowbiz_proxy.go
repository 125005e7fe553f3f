package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/proxying"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
)

// Rotas atendidas pelo gerenciador de campanhas em vez do mapa de comandos
const (
	routeCampaignsManage = "campaigns/manage"
	routeCampaignsClone  = "campaigns/clone"
)

// ListRoutes devolve as chaves de rota aceitas pelo proxy genérico
func ListRoutes(proxy proxying.Proxy) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"routes": proxy.Routes()})
	})
}

// DispatchRoute recebe todo POST em /api/*route: as rotas de campanha vão
// para o gerenciador e as demais são encaminhadas ao comando mapeado.
func DispatchRoute(proxy proxying.Proxy, manager campaigning.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		routeKey := strings.Trim(httprouter.ParamsFromContext(r.Context()).ByName("route"), "/")

		data, err := decodeBody(r)
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao ler corpo da requisição")
			return
		}

		log.ForContext(r.Context()).WithField("route", routeKey).Debug("Despachando rota da API")

		switch routeKey {
		case routeCampaignsManage:
			manageCampaigns(w, r, manager, data)
		case routeCampaignsClone:
			cloneCampaign(w, r, manager, data)
		default:
			result, err := proxy.Forward(r.Context(), routeKey, data)
			if err != nil {
				writeUsecaseError(w, r, err, "Erro ao encaminhar requisição ao Flowbiz")
				return
			}
			writeJSON(w, result.StatusCode, result.Body)
		}
	})
}

// ManageCampaignsQuery atende GET /api/campaigns/manage usando os parâmetros da URL
func ManageCampaignsQuery(manager campaigning.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		manageCampaigns(w, r, manager, queryParams(r))
	})
}

func manageCampaigns(w http.ResponseWriter, r *http.Request, manager campaigning.Manager, data map[string]any) {
	result, err := manager.Manage(r.Context(), data)
	if err != nil {
		writeUsecaseError(w, r, err, "Erro ao gerenciar campanhas")
		return
	}

	if len(result.Warnings) > 0 {
		log.ForContext(r.Context()).WithField("warnings", result.Warnings).Warn("Campanha criada com avisos")
	}

	writeJSON(w, result.StatusCode, result.Body)
}

func cloneCampaign(w http.ResponseWriter, r *http.Request, manager campaigning.Manager, data map[string]any) {
	req, err := campaigning.DecodeCloneRequest(data)
	if err != nil {
		writeUsecaseError(w, r, err, "Erro ao ler dados da clonagem")
		return
	}

	result, err := manager.Clone(r.Context(), req)
	if err != nil {
		writeUsecaseError(w, r, err, "Erro ao clonar campanha")
		return
	}

	writeJSON(w, result.StatusCode, result.Body)
}
