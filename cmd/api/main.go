package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sns-analyzer-api/infrastructure/database/postgres"
	"github.com/vfg2006/sns-analyzer-api/infrastructure/integrator/demo"
	"github.com/vfg2006/sns-analyzer-api/infrastructure/integrator/instagram"
	"github.com/vfg2006/sns-analyzer-api/infrastructure/integrator/instagram/instagramclient"
	"github.com/vfg2006/sns-analyzer-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/sns-analyzer-api/infrastructure/integrator/twitter"
	"github.com/vfg2006/sns-analyzer-api/infrastructure/integrator/twitter/twitterclient"
	"github.com/vfg2006/sns-analyzer-api/infrastructure/repository"
	"github.com/vfg2006/sns-analyzer-api/internal/api"
	"github.com/vfg2006/sns-analyzer-api/internal/config"
	"github.com/vfg2006/sns-analyzer-api/internal/domain"
	"github.com/vfg2006/sns-analyzer-api/internal/scheduler"
	"github.com/vfg2006/sns-analyzer-api/internal/usecases/analyzing"
	"github.com/vfg2006/sns-analyzer-api/internal/usecases/authenticating"
	"github.com/vfg2006/sns-analyzer-api/internal/usecases/normalizing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	snapshotRepo := repository.NewAnalysisSnapshotRepository(pgConn)
	trackedAccountRepo := repository.NewTrackedAccountRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	registry := normalizing.NewRegistry(
		normalizing.NewTwitterNormalizer(),
		normalizing.NewInstagramNormalizer(),
	)

	twitterSource := buildTwitterSource(cfg)
	instagramSource, stopInstagram := buildInstagramSource(cfg)
	defer stopInstagram()

	analyzer := analyzing.NewService(cfg, registry, twitterSource, instagramSource)

	sheetsPublisher := sheets.New(cfg)

	// Inicializa o agendador de sincronização diária de análises
	analysisSyncService := scheduler.NewAnalysisSyncService(
		trackedAccountRepo,
		snapshotRepo,
		analyzer,
		cfg,
	)

	if err := analysisSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de análises")
	} else {
		logrus.Info("Agendador de sincronização de análises iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analyzer,
		sheetsPublisher,
		authenticator,
		snapshotRepo,
		trackedAccountRepo,
		analysisSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// buildTwitterSource monta a fonte de posts do Twitter, usando dados
// determinísticos de demonstração quando não há credenciais configuradas
func buildTwitterSource(cfg *config.Config) analyzing.PostSource {
	if cfg.Demo.Enabled || !cfg.HasTwitterCredentials() {
		logrus.Info("Fonte do Twitter em modo de demonstração")
		return demo.NewGenerator(domain.PlatformTwitter)
	}

	client := twitterclient.NewClient(cfg)
	return twitter.New(cfg, client)
}

// buildInstagramSource monta a fonte de posts do Instagram com renovação
// automática de token, ou a versão de demonstração sem credenciais
func buildInstagramSource(cfg *config.Config) (analyzing.PostSource, func()) {
	if cfg.Demo.Enabled || !cfg.HasInstagramCredentials() {
		logrus.Info("Fonte do Instagram em modo de demonstração")
		return demo.NewGenerator(domain.PlatformInstagram), func() {}
	}

	tokenManager := instagramclient.NewTokenManager(cfg)
	go tokenManager.StartAutoRefresh()

	client := instagramclient.NewClient(cfg, tokenManager)
	return instagram.New(cfg, client), tokenManager.StopAutoRefresh
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
