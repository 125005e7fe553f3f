package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/campaign-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
	"github.com/vfg2006/campaign-dashboard-api/pkg/utils"
)

// DashboardCount informa quantas campanhas o painel enxerga agora
func DashboardCount(service dashboarding.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		count, err := service.Count(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao contar campanhas do painel")
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"count":  0,
				"error":  err.Error(),
				"status": "exception",
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"count":  count,
			"status": "ok",
		})
	})
}

func DashboardMetrics(service dashboarding.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseDashboardFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de data inválido. Use AAAA-MM-DD", map[string]string{
				"start_date": r.URL.Query().Get("start_date"),
				"end_date":   r.URL.Query().Get("end_date"),
			})
			return
		}

		metrics, err := service.Metrics(r.Context(), filters)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao montar métricas do painel")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao buscar campanhas no Flowbiz", map[string]string{
				"status": "❌ " + time.Now().Format(time.TimeOnly) + " — Erro: " + truncate(err.Error(), 80),
			})
			return
		}

		writeJSON(w, http.StatusOK, metrics)
	})
}

func DashboardFilterOptions(service dashboarding.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		options, err := service.FilterOptions(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao listar filtros do painel")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao buscar campanhas no Flowbiz", nil)
			return
		}

		writeJSON(w, http.StatusOK, options)
	})
}

// parseDashboardFilters lê origin, campaign (repetido ou separado por vírgula),
// search, start_date e end_date
func parseDashboardFilters(r *http.Request) (domain.DashboardFilters, error) {
	query := r.URL.Query()

	filters := domain.DashboardFilters{
		Origin: strings.TrimSpace(query.Get("origin")),
		Search: query.Get("search"),
	}

	for _, value := range query["campaign"] {
		for _, name := range strings.Split(value, ",") {
			if name = strings.TrimSpace(name); name != "" {
				filters.CampaignNames = append(filters.CampaignNames, name)
			}
		}
	}

	if value := query.Get("start_date"); value != "" {
		startDate, err := utils.ParseDate(value)
		if err != nil {
			return filters, err
		}
		filters.StartDate = startDate
	}

	if value := query.Get("end_date"); value != "" {
		endDate, err := utils.ParseDate(value)
		if err != nil {
			return filters, err
		}
		filters.EndDate = endDate
	}

	return filters, nil
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
