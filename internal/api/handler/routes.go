package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/proxying"
	"github.com/vfg2006/campaign-dashboard-api/pkg/metrics"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthHandler(),
		},
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// FlowbizAPI agrupa o proxy genérico e as rotas de campanha sob /api
func FlowbizAPI(proxy proxying.Proxy, manager campaigning.Manager) []router.Route {
	return []router.Route{
		{
			Path:    "/api",
			Method:  http.MethodGet,
			Handler: ListRoutes(proxy),
		},
		{
			Path:    "/api/campaigns/manage",
			Method:  http.MethodGet,
			Handler: ManageCampaignsQuery(manager),
		},
		{
			Path:    "/api/*route",
			Method:  http.MethodPost,
			Handler: DispatchRoute(proxy, manager),
		},
	}
}

func Dashboard(service dashboarding.Dashboard) []router.Route {
	return []router.Route{
		{
			Path:    "/dash/metrics",
			Method:  http.MethodGet,
			Handler: DashboardCount(service),
		},
		{
			Path:    "/dash/api/metrics",
			Method:  http.MethodGet,
			Handler: DashboardMetrics(service),
		},
		{
			Path:    "/dash/api/filters",
			Method:  http.MethodGet,
			Handler: DashboardFilterOptions(service),
		},
	}
}

func WebPages(templatesDir string) []router.Route {
	campaignsPage := WebPage(templatesDir, "campanhas.html")

	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: campaignsPage,
		},
		{
			Path:    "/campanhas",
			Method:  http.MethodGet,
			Handler: campaignsPage,
		},
		{
			Path:    "/dashboard",
			Method:  http.MethodGet,
			Handler: WebPage(templatesDir, "dashboard.html"),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}
