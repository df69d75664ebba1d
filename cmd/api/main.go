package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/salesflow-api/infrastructure/database/postgres"
	"github.com/vfg2006/salesflow-api/infrastructure/repository"
	"github.com/vfg2006/salesflow-api/internal/api"
	"github.com/vfg2006/salesflow-api/internal/config"
	"github.com/vfg2006/salesflow-api/internal/scheduler"
	"github.com/vfg2006/salesflow-api/internal/usecases/callanalysis"
	"github.com/vfg2006/salesflow-api/internal/usecases/pipeline"
	"github.com/vfg2006/salesflow-api/internal/usecases/registering"
	"github.com/vfg2006/salesflow-api/internal/usecases/scorecard"
	"github.com/vfg2006/salesflow-api/internal/usecases/teamadoption"
	"github.com/vfg2006/salesflow-api/pkg/log"
	"github.com/vfg2006/salesflow-api/pkg/metrics"
)

func main() {
	configureWorkdir()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storage := repository.NewMemStorage(repository.DefaultSeed())

	var userRepo repository.UserRepository = storage
	var pgConn *postgres.Connection
	if cfg.Database.UserStore == config.UserStorePostgres {
		pgConn = pgconn(ctx, cfg.Database)
		userRepo = repository.NewUserRepository(pgConn)
		logrus.Info("Usuários persistidos no PostgreSQL")
	} else {
		logrus.Info("Usuários mantidos em memória")
	}

	services := api.Services{
		Pipeline:     pipeline.NewService(storage),
		Scorecard:    scorecard.NewService(storage),
		CallAnalysis: callanalysis.NewService(storage),
		TeamAdoption: teamadoption.NewService(storage),
		Registering:  registering.NewService(userRepo),
	}

	metricsManager := metrics.NewManager(metrics.WithMetricsEnabled(cfg.Metrics.Enabled))

	// Os gauges do snapshot só fazem sentido com /metrics exposto
	if metricsManager.Enabled() {
		snapshotService := scheduler.NewPipelineSnapshotService(
			cfg.Snapshot,
			services.Pipeline,
			services.TeamAdoption,
			metricsManager,
		)
		if err := snapshotService.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o agendador do snapshot do pipeline")
		} else {
			logrus.Info("Agendador do snapshot do pipeline iniciado com sucesso")
		}
	}

	server, err := api.New(cfg, services, metricsManager)
	if err != nil {
		logrus.Fatal(err)
	}

	if pgConn != nil {
		server.OnShutdown(func() {
			if err := pgConn.Close(); err != nil {
				logrus.WithError(err).Warn("Erro ao fechar conexão com PostgreSQL")
			}
		})
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureWorkdir posiciona o processo no diretório do binário para achar o .env
func configureWorkdir() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	if err := os.Chdir(dir); err != nil {
		logrus.WithError(err).Debug("Não foi possível mudar o diretório de trabalho")
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
