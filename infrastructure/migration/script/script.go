package main

import (
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-qa-api/internal/config"
)

// Cada passo é idempotente e pode ser executado novamente sem efeito
var steps = []struct {
	name  string
	check string
	ddl   string
}{
	{
		name:  "tabela qa_run",
		check: `SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'qa_run')`,
		ddl: `
			CREATE TABLE qa_run (
				id               VARCHAR(21) PRIMARY KEY,
				brief_name       TEXT NOT NULL,
				sheet            TEXT NOT NULL DEFAULT '',
				campaign_alt_ids TEXT[] NOT NULL DEFAULT '{}',
				status           VARCHAR(16) NOT NULL,
				error            TEXT,
				entities         INTEGER NOT NULL DEFAULT 0,
				resolved         INTEGER NOT NULL DEFAULT 0,
				unresolved       INTEGER NOT NULL DEFAULT 0,
				ambiguous        INTEGER NOT NULL DEFAULT 0,
				infos            INTEGER NOT NULL DEFAULT 0,
				warnings         INTEGER NOT NULL DEFAULT 0,
				errors           INTEGER NOT NULL DEFAULT 0,
				report_path      TEXT,
				started_at       TIMESTAMPTZ NOT NULL,
				completed_at     TIMESTAMPTZ NOT NULL
			)`,
	},
	{
		name:  "tabela qa_finding",
		check: `SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'qa_finding')`,
		ddl: `
			CREATE TABLE qa_finding (
				run_id    VARCHAR(21) NOT NULL REFERENCES qa_run (id) ON DELETE CASCADE,
				position  INTEGER NOT NULL,
				entity_id TEXT NOT NULL DEFAULT '',
				checker   TEXT NOT NULL,
				kind      VARCHAR(32) NOT NULL,
				severity  VARCHAR(16) NOT NULL,
				message   TEXT NOT NULL,
				PRIMARY KEY (run_id, position)
			)`,
	},
	{
		name:  "índice qa_run_started_at",
		check: `SELECT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'qa_run_started_at_idx')`,
		ddl:   `CREATE INDEX qa_run_started_at_idx ON qa_run (started_at DESC)`,
	},
}

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.Info("Iniciando script de migração...")
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		logrus.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logrus.Fatalf("ERRO ao verificar conexão com o banco: %v", err)
	}
	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")

	startTime := time.Now()

	tx, err := db.Begin()
	if err != nil {
		logrus.Fatalf("ERRO ao iniciar transação: %v", err)
	}

	for _, step := range steps {
		var exists bool
		if err := tx.QueryRow(step.check).Scan(&exists); err != nil {
			_ = tx.Rollback()
			logrus.Fatalf("ERRO ao verificar %s: %v", step.name, err)
		}

		if exists {
			logrus.Infof("%s já existe", step.name)
			continue
		}

		if _, err := tx.Exec(step.ddl); err != nil {
			_ = tx.Rollback()
			logrus.Fatalf("ERRO ao criar %s: %v", step.name, err)
		}
		logrus.Infof("%s criada com sucesso", step.name)
	}

	if err := tx.Commit(); err != nil {
		logrus.Fatalf("ERRO ao confirmar transação: %v", err)
	}

	logrus.Infof("Migração concluída em %v!", time.Since(startTime))
}
