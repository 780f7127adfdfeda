package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/avmoura/sankhya-crm-api/infrastructure/cache"
	"github.com/avmoura/sankhya-crm-api/infrastructure/database/postgres"
	"github.com/avmoura/sankhya-crm-api/infrastructure/integrator/sankhya"
	"github.com/avmoura/sankhya-crm-api/infrastructure/integrator/sankhya/sankhyaclient"
	"github.com/avmoura/sankhya-crm-api/infrastructure/repository"
	"github.com/avmoura/sankhya-crm-api/internal/api"
	"github.com/avmoura/sankhya-crm-api/internal/config"
	"github.com/avmoura/sankhya-crm-api/internal/scheduler"
	"github.com/avmoura/sankhya-crm-api/internal/usecases/analyzing"
	"github.com/avmoura/sankhya-crm-api/internal/usecases/authenticating"
	"github.com/avmoura/sankhya-crm-api/internal/usecases/ordering"
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

	authenticator := authenticating.NewService(userRepo, cfg)

	// Cliente do gateway Sankhya, com renovação de token embutida
	tokenManager := sankhyaclient.NewTokenManager(cfg)
	sankhyaClient := sankhyaclient.NewClient(cfg, tokenManager)
	sankhyaIntegrator := sankhya.New(cfg, sankhyaClient)

	analysisCache := cache.NewAnalysisCache(cfg.Redis)
	defer analysisCache.Close()

	if err := analysisCache.Ping(ctx); err != nil {
		logrus.WithError(err).Warn("Redis indisponível, análises serão recomputadas a cada requisição")
	} else {
		logrus.Info("Conexão com Redis estabelecida com sucesso")
	}

	analysisService := analyzing.NewService(sankhyaIntegrator, analysisCache)
	orderService := ordering.NewService(sankhyaIntegrator)

	// Pré-aquecimento do cache de análise fora do horário comercial
	warmupService := scheduler.NewAnalysisWarmupService(userRepo, analysisService, cfg)
	if err := warmupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de pré-aquecimento de análise")
	} else {
		logrus.Info("Agendador de pré-aquecimento de análise iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analysisService,
		orderService,
		authenticator,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
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
