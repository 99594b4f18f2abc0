package main

import (
	"context"
	"time"

	"github.com/shawnempower/chicago-hub-api/infrastructure/database/postgres"
	"github.com/shawnempower/chicago-hub-api/infrastructure/repository"
	"github.com/shawnempower/chicago-hub-api/internal/api"
	"github.com/shawnempower/chicago-hub-api/internal/config"
	"github.com/shawnempower/chicago-hub-api/internal/scheduler"
	"github.com/shawnempower/chicago-hub-api/internal/usecases/authenticating"
	"github.com/shawnempower/chicago-hub-api/internal/usecases/reconciling"
	"github.com/shawnempower/chicago-hub-api/internal/usecases/tracking"
	"github.com/sirupsen/logrus"
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

	orderRepo := repository.NewOrderRepository(pgConn)
	entryRepo := repository.NewPerformanceEntryRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	reconciler := reconciling.NewService(orderRepo, entryRepo, cfg)
	trackingService := tracking.NewService(entryRepo, reconciler)

	// Agendador de resync periódico dos resumos de entrega
	deliveryResyncService := scheduler.NewDeliveryResyncService(orderRepo, reconciler, cfg)

	if err := deliveryResyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de resync de entrega")
	} else {
		logrus.Info("Agendador de resync de entrega iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		orderRepo,
		trackingService,
		reconciler,
		authenticator,
		deliveryResyncService,
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
