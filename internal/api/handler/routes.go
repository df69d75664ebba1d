package handler

import (
	"net/http"

	"github.com/vfg2006/salesflow-api/internal/api/handler/router"
	"github.com/vfg2006/salesflow-api/internal/usecases/callanalysis"
	"github.com/vfg2006/salesflow-api/internal/usecases/pipeline"
	"github.com/vfg2006/salesflow-api/internal/usecases/registering"
	"github.com/vfg2006/salesflow-api/internal/usecases/scorecard"
	"github.com/vfg2006/salesflow-api/internal/usecases/teamadoption"
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

// Metrics expõe o handler de exposição do Prometheus
func Metrics(handler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: handler,
		},
	}
}

func Deals(service pipeline.Service, rec Recorder) []router.Route {
	return []router.Route{
		{
			Path:    "/api/deals",
			Method:  http.MethodGet,
			Handler: ListDeals(service),
		},
		{
			Path:    "/api/deals/:id",
			Method:  http.MethodGet,
			Handler: GetDeal(service, rec),
		},
		{
			Path:    "/api/deals-risk-summary",
			Method:  http.MethodGet,
			Handler: GetRiskSummary(service),
		},
	}
}

func Reps(service scorecard.Service, rec Recorder) []router.Route {
	return []router.Route{
		{
			Path:    "/api/reps/:id",
			Method:  http.MethodGet,
			Handler: GetRep(service, rec),
		},
		{
			Path:    "/api/reps/:id/actions",
			Method:  http.MethodGet,
			Handler: GetRepActions(service),
		},
		{
			Path:    "/api/reps/:id/calls",
			Method:  http.MethodGet,
			Handler: GetRepCalls(service),
		},
	}
}

func Calls(service callanalysis.Service, rec Recorder) []router.Route {
	return []router.Route{
		{
			Path:    "/api/calls/:id",
			Method:  http.MethodGet,
			Handler: GetCallDetail(service, rec),
		},
	}
}

func Team(service teamadoption.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/api/team",
			Method:  http.MethodGet,
			Handler: GetTeam(service),
		},
		{
			Path:    "/api/team/actions",
			Method:  http.MethodGet,
			Handler: GetTeamActions(service),
		},
		{
			Path:    "/api/team/coaching-priorities",
			Method:  http.MethodGet,
			Handler: GetCoachingPriorities(service),
		},
		{
			Path:    "/api/team/adoption-trends",
			Method:  http.MethodGet,
			Handler: GetAdoptionTrends(service),
		},
	}
}

func Users(service registering.Registerer, rec Recorder) []router.Route {
	return []router.Route{
		{
			Path:    "/api/users",
			Method:  http.MethodPost,
			Handler: CreateUser(service, rec),
		},
		{
			Path:    "/api/users/:id",
			Method:  http.MethodGet,
			Handler: GetUser(service, rec),
		},
	}
}
