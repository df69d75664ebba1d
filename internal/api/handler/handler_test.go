package handler

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/salesflow-api/internal/api/handler/router"
	"github.com/vfg2006/salesflow-api/internal/domain"
	"github.com/vfg2006/salesflow-api/internal/usecases/callanalysis"
	callmocks "github.com/vfg2006/salesflow-api/internal/usecases/callanalysis/mocks"
	"github.com/vfg2006/salesflow-api/internal/usecases/pipeline"
	pipelinemocks "github.com/vfg2006/salesflow-api/internal/usecases/pipeline/mocks"
	"github.com/vfg2006/salesflow-api/internal/usecases/registering"
	registermocks "github.com/vfg2006/salesflow-api/internal/usecases/registering/mocks"
	"github.com/vfg2006/salesflow-api/internal/usecases/scorecard"
	scorecardmocks "github.com/vfg2006/salesflow-api/internal/usecases/scorecard/mocks"
	teammocks "github.com/vfg2006/salesflow-api/internal/usecases/teamadoption/mocks"
	"github.com/vfg2006/salesflow-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger(io.Discard)
	m.Run()
}

type fakeRecorder struct {
	notFound []string
	created  int
}

func (f *fakeRecorder) RecordNotFound(resource string) { f.notFound = append(f.notFound, resource) }
func (f *fakeRecorder) RecordUserCreated()             { f.created++ }

func serve(routes []router.Route, method, target, body string) *httptest.ResponseRecorder {
	rt := router.New(router.WithRoutes(routes...))

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(method, target, reader))
	return rec
}

func TestDeals(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setup      func(svc *pipelinemocks.MockService)
		wantStatus int
		wantBody   string
		wantMissed []string
	}{
		{
			name:   "lista vazia serializa como array",
			target: "/api/deals",
			setup: func(svc *pipelinemocks.MockService) {
				svc.EXPECT().ListDeals(gomock.Any(), pipeline.DealFilter{}).Return([]domain.Deal{}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:   "filtro de risco repassado ao caso de uso",
			target: "/api/deals?risk=high",
			setup: func(svc *pipelinemocks.MockService) {
				svc.EXPECT().ListDeals(gomock.Any(), pipeline.DealFilter{RiskLevel: "high"}).
					Return([]domain.Deal{{ID: "1", RootCauses: []string{}}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "filtro inválido",
			target: "/api/deals?risk=critical",
			setup: func(svc *pipelinemocks.MockService) {
				svc.EXPECT().ListDeals(gomock.Any(), gomock.Any()).
					Return(nil, pipeline.NewQueryError(pipeline.ErrInvalidRiskLevel, "VAL_003", "critical"))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"code":"VAL_003","message":"risk must be one of high, medium, low"}`,
		},
		{
			name:   "falha inesperada não vaza detalhe",
			target: "/api/deals",
			setup: func(svc *pipelinemocks.MockService) {
				svc.EXPECT().ListDeals(gomock.Any(), gomock.Any()).Return(nil, errors.New("pq: connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"code":"SRV_001","message":"Internal server error"}`,
		},
		{
			name:   "deal ausente",
			target: "/api/deals/999",
			setup: func(svc *pipelinemocks.MockService) {
				svc.EXPECT().GetDeal(gomock.Any(), "999").
					Return(nil, &pipeline.QueryError{Err: pipeline.ErrDealNotFound, DealID: "999"})
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"code":"DEAL_NOT_FOUND","message":"Deal not found"}`,
			wantMissed: []string{"deal"},
		},
		{
			name:   "falha ao buscar deal",
			target: "/api/deals/1",
			setup: func(svc *pipelinemocks.MockService) {
				svc.EXPECT().GetDeal(gomock.Any(), "1").Return(nil, pipeline.ErrDatabaseOperation)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"code":"SRV_001","message":"Internal server error"}`,
		},
		{
			name:   "resumo de risco",
			target: "/api/deals-risk-summary",
			setup: func(svc *pipelinemocks.MockService) {
				svc.EXPECT().GetRiskSummary(gomock.Any()).Return(&domain.RiskSummary{
					High: domain.RiskBucket{Count: 1, TotalValue: 50000},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"high":{"count":1,"totalValue":50000},"medium":{"count":0,"totalValue":0},"low":{"count":0,"totalValue":0}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := pipelinemocks.NewMockService(ctrl)
			tt.setup(svc)
			rec := &fakeRecorder{}

			resp := serve(Deals(svc, rec), http.MethodGet, tt.target, "")

			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.Equal(t, "application/json", resp.Header().Get("Content-Type"))
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, resp.Body.String())
			}
			assert.Equal(t, tt.wantMissed, rec.notFound)
		})
	}
}

func TestReps(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := scorecardmocks.NewMockService(ctrl)

	t.Run("vendedor ausente", func(t *testing.T) {
		svc.EXPECT().GetRep(gomock.Any(), "999").
			Return(nil, scorecard.NewQueryError(scorecard.ErrRepNotFound, "REP_NOT_FOUND", "999", "Rep not found"))

		resp := serve(Reps(svc, nil), http.MethodGet, "/api/reps/999", "")

		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.JSONEq(t, `{"code":"REP_NOT_FOUND","message":"Rep not found"}`, resp.Body.String())
	})

	t.Run("ligações vazias viram []", func(t *testing.T) {
		svc.EXPECT().GetRepCalls(gomock.Any(), "999").Return([]domain.Call{}, nil)

		resp := serve(Reps(svc, nil), http.MethodGet, "/api/reps/999/calls", "")

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, `[]`, resp.Body.String())
	})

	t.Run("ações com falha", func(t *testing.T) {
		svc.EXPECT().GetRepStageActions(gomock.Any(), "1").Return(nil, errors.New("boom"))

		resp := serve(Reps(svc, nil), http.MethodGet, "/api/reps/1/actions", "")

		assert.Equal(t, http.StatusInternalServerError, resp.Code)
		assert.NotContains(t, resp.Body.String(), "boom")
	})
}

func TestCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := callmocks.NewMockService(ctrl)
	rec := &fakeRecorder{}

	svc.EXPECT().GetCallDetail(gomock.Any(), "999").
		Return(nil, &callanalysis.QueryError{Err: callanalysis.ErrCallNotFound, CallID: "999"})

	resp := serve(Calls(svc, rec), http.MethodGet, "/api/calls/999", "")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.JSONEq(t, `{"code":"CALL_NOT_FOUND","message":"Call not found"}`, resp.Body.String())
	assert.Equal(t, []string{"call"}, rec.notFound)
}

func TestTeam(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := teammocks.NewMockService(ctrl)

	svc.EXPECT().GetTeamMembers(gomock.Any()).Return(nil, nil)
	svc.EXPECT().GetTeamStageActions(gomock.Any()).Return([]domain.StageActions{}, nil)
	svc.EXPECT().GetCoachingPriorities(gomock.Any()).Return(nil, errors.New("boom"))
	svc.EXPECT().GetAdoptionTrends(gomock.Any()).Return([]domain.AdoptionTrend{{RepName: "Sarah Johnson", StartAdoption: 78, EndAdoption: 92, Change: 14}}, nil)

	routes := Team(svc)

	resp := serve(routes, http.MethodGet, "/api/team", "")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())

	resp = serve(routes, http.MethodGet, "/api/team/actions", "")
	assert.JSONEq(t, `[]`, resp.Body.String())

	resp = serve(routes, http.MethodGet, "/api/team/coaching-priorities", "")
	assert.Equal(t, http.StatusInternalServerError, resp.Code)

	resp = serve(routes, http.MethodGet, "/api/team/adoption-trends", "")
	assert.JSONEq(t, `[{"repName":"Sarah Johnson","startAdoption":78,"endAdoption":92,"change":14}]`, resp.Body.String())
}

func TestUsers(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		setup       func(svc *registermocks.MockRegisterer)
		wantStatus  int
		wantBody    string
		wantCreated int
	}{
		{
			name: "criado",
			body: `{"username":"sarah","password":"segredo123"}`,
			setup: func(svc *registermocks.MockRegisterer) {
				svc.EXPECT().CreateUser(gomock.Any(), domain.InsertUser{Username: "sarah", Password: "segredo123"}).
					Return(&domain.User{ID: "u1", Username: "sarah", Password: "$2a$hash"}, nil)
			},
			wantStatus:  http.StatusCreated,
			wantBody:    `{"id":"u1","username":"sarah"}`,
			wantCreated: 1,
		},
		{
			name:       "corpo inválido",
			body:       `{"username":`,
			setup:      func(svc *registermocks.MockRegisterer) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"code":"VAL_001","message":"Invalid request body"}`,
		},
		{
			name:       "conteúdo após o JSON",
			body:       `{"username":"sarah","password":"segredo123"} lixo`,
			setup:      func(svc *registermocks.MockRegisterer) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"code":"VAL_001","message":"Invalid request body"}`,
		},
		{
			name:       "campo desconhecido",
			body:       `{"username":"sarah","password":"segredo123","admin":true}`,
			setup:      func(svc *registermocks.MockRegisterer) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "validação",
			body: `{"username":"sarah","password":""}`,
			setup: func(svc *registermocks.MockRegisterer) {
				svc.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					Return(nil, registering.NewRegisterError(registering.ErrMissingRequiredData, "VAL_002", "username and password are required"))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"code":"VAL_002","message":"username and password are required"}`,
		},
		{
			name: "username duplicado",
			body: `{"username":"sarah","password":"segredo123"}`,
			setup: func(svc *registermocks.MockRegisterer) {
				svc.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					Return(nil, registering.NewRegisterError(registering.ErrUserAlreadyExists, "USER_ALREADY_EXISTS", ""))
			},
			wantStatus: http.StatusConflict,
			wantBody:   `{"code":"USER_ALREADY_EXISTS","message":"Username already taken"}`,
		},
		{
			name: "falha inesperada",
			body: `{"username":"sarah","password":"segredo123"}`,
			setup: func(svc *registermocks.MockRegisterer) {
				svc.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, registering.ErrDatabaseOperation)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := registermocks.NewMockRegisterer(ctrl)
			tt.setup(svc)
			rec := &fakeRecorder{}

			resp := serve(Users(svc, rec), http.MethodPost, "/api/users", tt.body)

			assert.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, resp.Body.String())
			}
			assert.Equal(t, tt.wantCreated, rec.created)
		})
	}
}

func TestGetUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := registermocks.NewMockRegisterer(ctrl)
	svc.EXPECT().GetUser(gomock.Any(), "nope").
		Return(nil, &registering.RegisterError{Err: registering.ErrUserNotFound, UserID: "nope"})

	resp := serve(Users(svc, nil), http.MethodGet, "/api/users/nope", "")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.JSONEq(t, `{"code":"USER_NOT_FOUND","message":"User not found"}`, resp.Body.String())
}

func TestHealthcheck(t *testing.T) {
	resp := serve(Healthcheck(), http.MethodGet, "/healthcheck", "")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.NotEmpty(t, resp.Body.String())
}
