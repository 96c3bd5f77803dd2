package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-qa-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-qa-api/internal/usecases/qarunning"
	"github.com/vfg2006/campaign-qa-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Me() []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func QARuns(runner qarunning.Runner, opts QARunOptions) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/qa/runs",
			Method:      http.MethodPost,
			Handler:     CreateRun(runner, opts),
			Middlewares: []func(http.Handler) http.Handler{middleware.OperatorOnly()},
		},
		{
			Path:        "/v1/qa/runs",
			Method:      http.MethodGet,
			Handler:     ListRuns(runner),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/qa/runs/:id",
			Method:      http.MethodGet,
			Handler:     GetRun(runner),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/qa/runs/:id/report",
			Method:      http.MethodGet,
			Handler:     DownloadReport(runner),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.OperatorOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}
