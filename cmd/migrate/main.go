package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/salesflow-api/infrastructure/database/postgres"
	"github.com/vfg2006/salesflow-api/infrastructure/migration"
	"github.com/vfg2006/salesflow-api/internal/config"
	"github.com/vfg2006/salesflow-api/pkg/log"
)

const migrateTimeout = 2 * time.Minute

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Info("Iniciando script de migração...")

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()
	applied, err := migration.NewRunner(conn, migration.Migrations).Up(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Migração interrompida")
	}

	logrus.Infof("Migração concluída em %v. Aplicadas: %d", time.Since(startTime), applied)
}
