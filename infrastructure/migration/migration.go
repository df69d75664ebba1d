// Package migration aplica o schema do PostgreSQL usado pelo store de usuários
package migration

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/salesflow-api/infrastructure/database/postgres"
)

const versionsTable = "schema_migrations"

type Migration struct {
	Version    int
	Name       string
	Statements []string
}

// Migrations lista o schema em ordem crescente de versão. Nunca altere uma
// versão já publicada; acrescente uma nova.
var Migrations = []Migration{
	{
		Version: 1,
		Name:    "create_users",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS users (
				id         VARCHAR PRIMARY KEY,
				username   TEXT NOT NULL UNIQUE,
				password   TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)`,
		},
	},
	{
		Version: 2,
		Name:    "index_users_created_at",
		Statements: []string{
			`CREATE INDEX IF NOT EXISTS users_created_at_idx ON users (created_at)`,
		},
	},
}

type Runner struct {
	conn       postgres.Conn
	migrations []Migration
}

func NewRunner(conn postgres.Conn, migrations []Migration) *Runner {
	sorted := append([]Migration(nil), migrations...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Version < sorted[j].Version })

	return &Runner{conn: conn, migrations: sorted}
}

// Up aplica as migrações pendentes, cada uma na sua transação, e devolve quantas rodaram
func (r *Runner) Up(ctx context.Context) (int, error) {
	if _, err := r.conn.ExecContext(ctx, createVersionsTable); err != nil {
		return 0, errors.Wrap(err, "erro ao criar tabela de versões")
	}

	applied, err := r.appliedVersions(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, m := range Pending(r.migrations, applied) {
		startTime := time.Now()
		logrus.Infof("Aplicando migração %d (%s)", m.Version, m.Name)

		err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			for _, stmt := range m.Statements {
				if _, err := tx.ExecContext(ctx, stmt); err != nil {
					return err
				}
			}

			query, args, err := insertVersionQuery(m).ToSql()
			if err != nil {
				return err
			}
			_, err = tx.ExecContext(ctx, query, args...)
			return err
		})
		if err != nil {
			return count, errors.Wrapf(err, "erro na migração %d (%s)", m.Version, m.Name)
		}

		logrus.Infof("Migração %d concluída em %v", m.Version, time.Since(startTime))
		count++
	}

	return count, nil
}

func (r *Runner) appliedVersions(ctx context.Context) (map[int]bool, error) {
	query, args, err := squirrel.Select("version").From(versionsTable).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar versões aplicadas")
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear versão")
		}
		applied[version] = true
	}

	return applied, rows.Err()
}

// Pending devolve, em ordem, as migrações ainda não aplicadas
func Pending(migrations []Migration, applied map[int]bool) []Migration {
	var pending []Migration
	for _, m := range migrations {
		if !applied[m.Version] {
			pending = append(pending, m)
		}
	}
	return pending
}

const createVersionsTable = `CREATE TABLE IF NOT EXISTS ` + versionsTable + ` (
	version    INTEGER PRIMARY KEY,
	name       TEXT NOT NULL,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

func insertVersionQuery(m Migration) squirrel.InsertBuilder {
	return squirrel.
		Insert(versionsTable).
		Columns("version", "name").
		Values(m.Version, m.Name).
		PlaceholderFormat(squirrel.Dollar)
}
