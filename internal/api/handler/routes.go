package handler

import (
	"io/fs"
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/metrics"
	"github.com/vfg2006/sales-dashboard-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(templates fs.FS, static fs.FS) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: DashboardPage(templates),
		},
		{
			Path:    "/static/*filepath",
			Method:  http.MethodGet,
			Handler: DashboardAssets(static),
		},
	}
}

func Sales(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/sales/summary",
			Method:  http.MethodGet,
			Handler: GetSalesSummary(service),
		},
		{
			Path:    "/api/sales/recent-users",
			Method:  http.MethodGet,
			Handler: GetRecentUserSales(service),
		},
		{
			Path:    "/api/clients/:id/invoices",
			Method:  http.MethodGet,
			Handler: GetClientInvoices(service),
		},
	}
}

// Cache expõe a limpeza do cache; com clearToken vazio a rota fica aberta
func Cache(service reporting.Reporter, clearToken string) []router.Route {
	return []router.Route{
		{
			Path:        "/api/cache/clear",
			Method:      http.MethodPost,
			Handler:     ClearCache(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.BearerToken(clearToken)},
		},
	}
}

func CronJobs(services CronJobServices, token string) []router.Route {
	return []router.Route{
		{
			Path:        "/api/cron/run/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.BearerToken(token)},
		},
		{
			Path:    "/api/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}

func Metrics(m *metrics.Metrics) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: m.Handler(),
		},
	}
}
