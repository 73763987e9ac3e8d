package handler

import (
	"net/http"

	"github.com/vfg2006/sns-analyzer-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/sns-analyzer-api/infrastructure/repository"
	"github.com/vfg2006/sns-analyzer-api/internal/api/handler/router"
	"github.com/vfg2006/sns-analyzer-api/internal/usecases/analyzing"
	"github.com/vfg2006/sns-analyzer-api/internal/usecases/authenticating"
	"github.com/vfg2006/sns-analyzer-api/pkg/middleware"
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

func Analysis(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analyze",
			Method:  http.MethodPost,
			Handler: AnalyzeAccount(service),
		},
	}
}

func Export(service analyzing.Analyzer, publisher sheets.Publisher) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/export/csv",
			Method:  http.MethodPost,
			Handler: ExportCSV(service),
		},
		{
			Path:    "/v1/export/sheets",
			Method:  http.MethodPost,
			Handler: ExportSheets(service, publisher),
		},
	}
}

func Accounts(snapshotRepo repository.AnalysisSnapshotRepository, accountRepo repository.TrackedAccountRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts/:username/snapshots",
			Method:      http.MethodGet,
			Handler:     GetAccountSnapshots(snapshotRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts",
			Method:      http.MethodGet,
			Handler:     ListTrackedAccounts(accountRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts",
			Method:      http.MethodPost,
			Handler:     TrackAccount(accountRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/accounts/:id",
			Method:      http.MethodDelete,
			Handler:     UntrackAccount(accountRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
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
			Handler: CreateUser(service),
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
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
