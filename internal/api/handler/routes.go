package handler

import (
	"net/http"

	"github.com/shawnempower/chicago-hub-api/infrastructure/repository"
	"github.com/shawnempower/chicago-hub-api/internal/api/handler/router"
	"github.com/shawnempower/chicago-hub-api/internal/usecases/authenticating"
	"github.com/shawnempower/chicago-hub-api/internal/usecases/reconciling"
	"github.com/shawnempower/chicago-hub-api/internal/usecases/tracking"
	"github.com/shawnempower/chicago-hub-api/pkg/middleware"
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

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.HubAdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.HubAdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id/publications",
			Method:      http.MethodPut,
			Handler:     UpdateUserPublications(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.HubAdminOnly()},
		},
	}
}

// PerformanceEntries retorna as rotas do ciclo de vida das entradas de
// performance. A ingestão do pixel não exige role de admin, apenas token.
func PerformanceEntries(service tracking.Tracker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/performance-entries",
			Method:      http.MethodPost,
			Handler:     CreatePerformanceEntry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.HubAdminOrPublisher()},
		},
		{
			Path:        "/v1/performance-entries/bulk",
			Method:      http.MethodPost,
			Handler:     BulkImportPerformanceEntries(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.HubAdminOnly()},
		},
		{
			Path:        "/v1/performance-entries/ingest",
			Method:      http.MethodPost,
			Handler:     IngestAutomatedEntry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/performance-entries/:id",
			Method:      http.MethodPut,
			Handler:     UpdatePerformanceEntry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.HubAdminOrPublisher()},
		},
		{
			Path:        "/v1/performance-entries/:id",
			Method:      http.MethodDelete,
			Handler:     DeletePerformanceEntry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.HubAdminOrPublisher()},
		},
		{
			Path:        "/v1/orders/:id/performance-entries",
			Method:      http.MethodGet,
			Handler:     ListOrderPerformanceEntries(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Orders(orderRepo repository.OrderRepository, reconciler reconciling.OrderReconciler) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/orders/:id",
			Method:      http.MethodGet,
			Handler:     GetOrder(orderRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/orders/:id/delivery-summary/resync",
			Method:      http.MethodPost,
			Handler:     ResyncDeliverySummary(reconciler, orderRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.HubAdminOrPublisher()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.HubAdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.HubAdminOnly()},
		},
	}
}
