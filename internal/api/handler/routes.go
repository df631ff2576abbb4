package handler

import (
	"net/http"

	"github.com/founderhq/founderhq-api/internal/api/handler/router"
	"github.com/founderhq/founderhq-api/internal/usecases/authenticating"
	"github.com/founderhq/founderhq-api/internal/usecases/dashboard"
	"github.com/founderhq/founderhq-api/internal/usecases/metrics"
	"github.com/founderhq/founderhq-api/internal/usecases/recording"
	"github.com/founderhq/founderhq-api/pkg/middleware"
	"github.com/julienschmidt/httprouter"
)

// workspaceFromRoute extrai o workspace da rota para o middleware de acesso
func workspaceFromRoute(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName("id")
}

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
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: RegisterUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
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
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     RegisterUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
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
	}
}

// UserWorkspaces retorna as rotas para gerenciamento de workspaces vinculados a usuários
func UserWorkspaces(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me/workspaces",
			Method:      http.MethodGet,
			Handler:     GetUserWorkspaces(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id/workspaces",
			Method:      http.MethodPut,
			Handler:     UpdateUserWorkspaces(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/workspaces/link",
			Method:      http.MethodPost,
			Handler:     LinkUserWorkspace(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/workspaces/:workspace_id",
			Method:      http.MethodDelete,
			Handler:     UnlinkUserWorkspace(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

// Metrics retorna as rotas de métricas derivadas de um workspace
func Metrics(service metrics.Metricer) []router.Route {
	workspaceAccess := []func(http.Handler) http.Handler{
		middleware.AllRoles(),
		middleware.WorkspaceAccess(workspaceFromRoute),
	}

	return []router.Route{
		{
			Path:        "/v1/workspaces/:id/cashflow",
			Method:      http.MethodGet,
			Handler:     GetCashFlow(service),
			Middlewares: workspaceAccess,
		},
		{
			Path:        "/v1/workspaces/:id/metrics",
			Method:      http.MethodGet,
			Handler:     GetMonthlyMetrics(service),
			Middlewares: workspaceAccess,
		},
		{
			Path:        "/v1/workspaces/:id/metrics/history",
			Method:      http.MethodGet,
			Handler:     GetMetricsHistory(service),
			Middlewares: workspaceAccess,
		},
		{
			Path:        "/v1/workspaces/:id/revenue/by-category",
			Method:      http.MethodGet,
			Handler:     GetRevenueByCategory(service),
			Middlewares: workspaceAccess,
		},
		{
			Path:        "/v1/workspaces/:id/revenue/by-product",
			Method:      http.MethodGet,
			Handler:     GetRevenueByProduct(service),
			Middlewares: workspaceAccess,
		},
		{
			Path:        "/v1/workspaces/:id/expenses/by-category",
			Method:      http.MethodGet,
			Handler:     GetExpensesByCategory(service),
			Middlewares: workspaceAccess,
		},
		{
			Path:        "/v1/metrics/periods",
			Method:      http.MethodGet,
			Handler:     GetAvailablePeriods(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Dashboard retorna a rota do dashboard agregado de um workspace
func Dashboard(service dashboard.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/workspaces/:id/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboardMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{
				middleware.AllRoles(),
				middleware.WorkspaceAccess(workspaceFromRoute),
			},
		},
	}
}

// Records retorna as rotas de ingestão e listagem de registros de um workspace
func Records(service recording.Recorder) []router.Route {
	readAccess := []func(http.Handler) http.Handler{
		middleware.AllRoles(),
		middleware.WorkspaceAccess(workspaceFromRoute),
	}
	writeAccess := []func(http.Handler) http.Handler{
		middleware.AdminOrMember(),
		middleware.WorkspaceAccess(workspaceFromRoute),
	}

	return []router.Route{
		{
			Path:        "/v1/workspaces/:id/financial-logs",
			Method:      http.MethodPost,
			Handler:     CreateFinancialLog(service),
			Middlewares: writeAccess,
		},
		{
			Path:        "/v1/workspaces/:id/financial-logs",
			Method:      http.MethodGet,
			Handler:     ListFinancialLogs(service),
			Middlewares: readAccess,
		},
		{
			Path:        "/v1/workspaces/:id/expenses",
			Method:      http.MethodPost,
			Handler:     CreateExpense(service),
			Middlewares: writeAccess,
		},
		{
			Path:        "/v1/workspaces/:id/expenses",
			Method:      http.MethodGet,
			Handler:     ListExpenses(service),
			Middlewares: readAccess,
		},
		{
			Path:        "/v1/workspaces/:id/transactions",
			Method:      http.MethodPost,
			Handler:     CreateRevenueTransaction(service),
			Middlewares: writeAccess,
		},
		{
			Path:        "/v1/workspaces/:id/transactions",
			Method:      http.MethodGet,
			Handler:     ListRevenueTransactions(service),
			Middlewares: readAccess,
		},
		{
			Path:        "/v1/workspaces/:id/deals",
			Method:      http.MethodPost,
			Handler:     CreateDeal(service),
			Middlewares: writeAccess,
		},
		{
			Path:        "/v1/workspaces/:id/deals",
			Method:      http.MethodGet,
			Handler:     ListDeals(service),
			Middlewares: readAccess,
		},
		{
			Path:        "/v1/workspaces/:id/campaigns",
			Method:      http.MethodPost,
			Handler:     CreateCampaign(service),
			Middlewares: writeAccess,
		},
		{
			Path:        "/v1/workspaces/:id/campaigns",
			Method:      http.MethodGet,
			Handler:     ListCampaigns(service),
			Middlewares: readAccess,
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
