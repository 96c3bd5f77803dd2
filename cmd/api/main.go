package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-qa-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-qa-api/infrastructure/integrator/beeswax"
	"github.com/vfg2006/campaign-qa-api/infrastructure/integrator/beeswax/beeswaxclient"
	"github.com/vfg2006/campaign-qa-api/infrastructure/report"
	"github.com/vfg2006/campaign-qa-api/infrastructure/repository"
	"github.com/vfg2006/campaign-qa-api/internal/api"
	"github.com/vfg2006/campaign-qa-api/internal/api/handler"
	"github.com/vfg2006/campaign-qa-api/internal/config"
	"github.com/vfg2006/campaign-qa-api/internal/scheduler"
	"github.com/vfg2006/campaign-qa-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-qa-api/internal/usecases/qarunning"
	"github.com/vfg2006/campaign-qa-api/internal/usecases/validating"
	"github.com/vfg2006/campaign-qa-api/internal/usecases/validating/checkers"
	"github.com/vfg2006/campaign-qa-api/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	beeswaxIntegrator := beeswax.New(beeswaxclient.NewClient(cfg))
	dispatcher := validating.NewDispatcher(checkers.Default()...)

	qaService := qarunning.NewService(beeswaxIntegrator, dispatcher).
		WithReport(report.NewCompiler(), cfg.Report.OutputDir)

	var db handler.Pinger
	if cfg.Database.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		qaService.WithRepository(repository.NewQARunRepository(pgConn))
		db = pgConn
	} else {
		logrus.Warn("Banco de dados desabilitado: as execuções não serão persistidas")
	}

	authenticator := authenticating.NewService(cfg.Auth)

	briefInboxSyncService := scheduler.NewBriefInboxSyncService(qaService, cfg)
	if err := briefInboxSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador da pasta de briefs")
	} else {
		logrus.Info("Agendador da pasta de briefs iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		qaService,
		authenticator,
		handler.CronJobServices{
			handler.CronJobTypeBriefInbox: briefInboxSyncService,
		},
		db,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource muda para o diretório do main para que o .env local seja encontrado
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
