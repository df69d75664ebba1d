package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/salesflow-api/pkg/log"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger(io.Discard)
	m.Run()
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/deals", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"code":"SRV_001","message":"Internal server error"}`, rec.Body.String())
}

func TestLogPanicMiddleware_NoPanic(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestLoggingMiddleware_SetsCorrelationID(t *testing.T) {
	var seen string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusNotFound)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/deals/999", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(CorrelationIDHeader))
}

func TestCors(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name        string
		allowed     []string
		method      string
		origin      string
		preflight   bool
		wantStatus  int
		wantAllowed string
	}{
		{
			name:        "origem liberada",
			allowed:     []string{"http://localhost:5173"},
			method:      http.MethodGet,
			origin:      "http://localhost:5173",
			wantStatus:  http.StatusOK,
			wantAllowed: "http://localhost:5173",
		},
		{
			name:       "origem bloqueada",
			allowed:    []string{"http://localhost:5173"},
			method:     http.MethodGet,
			origin:     "https://evil.example.com",
			wantStatus: http.StatusOK,
		},
		{
			name:        "curinga",
			allowed:     []string{"*"},
			method:      http.MethodGet,
			origin:      "https://any.example.com",
			wantStatus:  http.StatusOK,
			wantAllowed: "https://any.example.com",
		},
		{
			name:        "preflight",
			allowed:     []string{"http://localhost:5173"},
			method:      http.MethodOptions,
			origin:      "http://localhost:5173",
			preflight:   true,
			wantStatus:  http.StatusNoContent,
			wantAllowed: "http://localhost:5173",
		},
		{
			name:        "OPTIONS sem Access-Control-Request-Method segue para o router",
			allowed:     []string{"http://localhost:5173"},
			method:      http.MethodOptions,
			origin:      "http://localhost:5173",
			wantStatus:  http.StatusOK,
			wantAllowed: "http://localhost:5173",
		},
		{
			name:       "preflight de origem bloqueada segue para o router",
			allowed:    []string{"http://localhost:5173"},
			method:     http.MethodOptions,
			origin:     "https://evil.example.com",
			preflight:  true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "OPTIONS sem origem segue para o router",
			allowed:    []string{"*"},
			method:     http.MethodOptions,
			preflight:  true,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/team", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodGet)
			}
			rec := httptest.NewRecorder()

			Cors(tt.allowed)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantAllowed, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
