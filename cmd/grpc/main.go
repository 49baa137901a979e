package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fekuna/omnipos-catalog-service/config"
	"github.com/fekuna/omnipos-catalog-service/internal/auth"
	"github.com/fekuna/omnipos-catalog-service/internal/feedback"
	"github.com/fekuna/omnipos-catalog-service/internal/product"
	"github.com/fekuna/omnipos-catalog-service/migrations"
	"github.com/fekuna/omnipos-catalog-service/pkg/broker"
	"github.com/fekuna/omnipos-catalog-service/pkg/cache"
	"github.com/fekuna/omnipos-catalog-service/pkg/database/postgres"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"github.com/fekuna/omnipos-catalog-service/pkg/middleware"

	cmpH "github.com/fekuna/omnipos-catalog-service/internal/comparison/handler"
	cmpRepoPkg "github.com/fekuna/omnipos-catalog-service/internal/comparison/repository"
	cmpUCPkg "github.com/fekuna/omnipos-catalog-service/internal/comparison/usecase"

	discH "github.com/fekuna/omnipos-catalog-service/internal/discount/handler"
	discRepoPkg "github.com/fekuna/omnipos-catalog-service/internal/discount/repository"
	discUCPkg "github.com/fekuna/omnipos-catalog-service/internal/discount/usecase"

	favH "github.com/fekuna/omnipos-catalog-service/internal/favorite/handler"
	favRepoPkg "github.com/fekuna/omnipos-catalog-service/internal/favorite/repository"
	favUCPkg "github.com/fekuna/omnipos-catalog-service/internal/favorite/usecase"

	fbH "github.com/fekuna/omnipos-catalog-service/internal/feedback/handler"

	flvH "github.com/fekuna/omnipos-catalog-service/internal/flavor/handler"
	flvRepoPkg "github.com/fekuna/omnipos-catalog-service/internal/flavor/repository"
	flvUCPkg "github.com/fekuna/omnipos-catalog-service/internal/flavor/usecase"

	prodH "github.com/fekuna/omnipos-catalog-service/internal/product/handler"
	prodListenerPkg "github.com/fekuna/omnipos-catalog-service/internal/product/listener"
	prodRepoPkg "github.com/fekuna/omnipos-catalog-service/internal/product/repository"
	prodUCPkg "github.com/fekuna/omnipos-catalog-service/internal/product/usecase"

	sfUCPkg "github.com/fekuna/omnipos-catalog-service/internal/storefront/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	pgConfig := &postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	}

	if cfg.Postgres.AutoMigrate {
		if err := migrations.Migrate(pgConfig.URL()); err != nil {
			appLogger.Fatal("Could not apply migrations", zap.Error(err))
		}
		appLogger.Info("Database schema is up to date")
	}

	db, err := postgres.NewPostgres(pgConfig)
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Initialize Repositories
	prodRepo := prodRepoPkg.NewPGRepository(db)
	discRepo := discRepoPkg.NewPGRepository(db)
	favRepo := favRepoPkg.NewPGRepository(db)
	cmpRepo := cmpRepoPkg.NewPGRepository(db)
	flvRepo := flvRepoPkg.NewPGRepository(db)

	// 5. Initialize Redis
	var listCache product.ListCache
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(&cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.Warn("Could not connect to Redis, listing cache disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
			listCache = redisClient
			appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
		}
	}

	// 6. Initialize UseCases
	feedbackClient := feedback.NewClient(&feedback.Config{
		BaseURL: cfg.Feedback.BaseURL,
		Timeout: cfg.Feedback.Timeout,
	}, appLogger)

	discUC := discUCPkg.NewDiscountUseCase(discRepo, prodRepo, listCache, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, discUC, listCache, prodUCPkg.Config{
		SaleQuery:       cfg.Catalog.SaleQuery,
		CacheTTL:        cfg.Catalog.CacheTTL,
		DefaultPageSize: cfg.Catalog.DefaultPageSize,
	}, appLogger)
	favUC := favUCPkg.NewFavoriteUseCase(favRepo, prodRepo, appLogger)
	cmpUC := cmpUCPkg.NewComparisonUseCase(cmpRepo, prodRepo, appLogger)
	flvUC := flvUCPkg.NewFlavorUseCase(flvRepo, listCache, appLogger)
	sfUC := sfUCPkg.NewStorefrontUseCase(prodRepo, favRepo, feedbackClient, appLogger)

	// 7. Initialize Listeners
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.NATS.Enabled {
		consumer, err := broker.NewConsumer(&broker.Config{
			URL:     cfg.NATS.URL,
			Subject: cfg.NATS.Subject,
			Queue:   cfg.NATS.Queue,
		})
		if err != nil {
			appLogger.Fatal("Could not connect to NATS", zap.Error(err))
		}
		defer consumer.Close()
		appLogger.Info("Subscribed to NATS", zap.String("subject", cfg.NATS.Subject), zap.String("queue", cfg.NATS.Queue))

		stockListener := prodListenerPkg.NewStockListener(consumer, prodUC, appLogger)
		go stockListener.Start(ctx)
	}

	// 8. Initialize Handlers
	prodHandler := prodH.NewProductHandler(prodUC, sfUC, appLogger)
	discHandler := discH.NewDiscountHandler(discUC, appLogger)
	favHandler := favH.NewFavoriteHandler(favUC, appLogger)
	cmpHandler := cmpH.NewComparisonHandler(cmpUC, appLogger)
	fbHandler := fbH.NewFeedbackHandler(sfUC, appLogger)
	flvHandler := flvH.NewFlavorHandler(flvUC, appLogger)

	// 9. Start gRPC Server
	port := cfg.Server.GRPCPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	lis, err := net.Listen("tcp", port)
	if err != nil {
		appLogger.Fatal("failed to listen", zap.Error(err))
	}

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			middleware.RecoveryInterceptor(appLogger),
			middleware.LoggingInterceptor(appLogger),
			auth.ContextInterceptor(),
		),
	)

	prodH.RegisterProductServiceServer(grpcServer, prodHandler)
	discH.RegisterDiscountServiceServer(grpcServer, discHandler)
	favH.RegisterFavoriteServiceServer(grpcServer, favHandler)
	cmpH.RegisterComparisonServiceServer(grpcServer, cmpHandler)
	fbH.RegisterFeedbackServiceServer(grpcServer, fbHandler)
	flvH.RegisterFlavorServiceServer(grpcServer, flvHandler)

	reflection.Register(grpcServer)

	appLogger.Info("Starting gRPC server", zap.String("port", port))

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	cancel()
	grpcServer.GracefulStop()
	appLogger.Info("Server stopped")
}
