package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/salesflow-api/internal/api/handler"
	"github.com/vfg2006/salesflow-api/internal/api/handler/router"
	"github.com/vfg2006/salesflow-api/internal/config"
	"github.com/vfg2006/salesflow-api/internal/usecases/callanalysis"
	"github.com/vfg2006/salesflow-api/internal/usecases/pipeline"
	"github.com/vfg2006/salesflow-api/internal/usecases/registering"
	"github.com/vfg2006/salesflow-api/internal/usecases/scorecard"
	"github.com/vfg2006/salesflow-api/internal/usecases/teamadoption"
	"github.com/vfg2006/salesflow-api/pkg/metrics"
	"github.com/vfg2006/salesflow-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Pipeline     pipeline.Service
	Scorecard    scorecard.Service
	CallAnalysis callanalysis.Service
	TeamAdoption teamadoption.Service
	Registering  registering.Registerer
}

type Server struct {
	httpServer *http.Server
	onShutdown []func()
}

// New monta o router e a cadeia de middlewares. metricsManager pode ser nil,
// caso em que /metrics não é exposto.
func New(config *config.Config, services Services, metricsManager *metrics.Manager) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, services, metricsManager),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler devolve o http.Handler completo da API
func NewHandler(config *config.Config, services Services, metricsManager *metrics.Manager) http.Handler {
	var recorder handler.Recorder
	configs := []router.ConfigRouter{
		router.WithNotFound(handler.NotFoundHandler()),
		router.WithMethodNotAllowed(handler.MethodNotAllowedHandler()),
		router.WithRoutes(handler.Healthcheck()...),
	}

	if metricsManager.Enabled() {
		recorder = metricsManager
		configs = append(configs,
			router.WithDecorator(metricsManager.Instrument),
			router.WithRoutes(handler.Metrics(metricsManager.Handler())...),
		)
	}

	configs = append(configs,
		router.WithRoutes(handler.Deals(services.Pipeline, recorder)...),
		router.WithRoutes(handler.Reps(services.Scorecard, recorder)...),
		router.WithRoutes(handler.Calls(services.CallAnalysis, recorder)...),
		router.WithRoutes(handler.Team(services.TeamAdoption)...),
		router.WithRoutes(handler.Users(services.Registering, recorder)...),
	)

	rt := router.New(configs...)

	middlewares := []alice.Constructor{
		middleware.LoggingMiddleware(),
		middleware.LogPanicMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

// OnShutdown registra funções de limpeza executadas após o desligamento do HTTP
func (s *Server) OnShutdown(fn func()) {
	s.onShutdown = append(s.onShutdown, fn)
}

func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
			errCh <- err
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}
	logrus.Info("Servidor HTTP desligado com sucesso")

	logrus.Info("Executando operações de limpeza")
	for _, fn := range s.onShutdown {
		fn()
	}

	return nil
}
