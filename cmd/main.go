package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dtroode/simple-twitter-server/internal/api/grpc/health"
	grpcrouter "github.com/dtroode/simple-twitter-server/internal/api/grpc/router"
	reqctx "github.com/dtroode/simple-twitter-server/internal/api/http/context"
	httprouter "github.com/dtroode/simple-twitter-server/internal/api/http/router"
	"github.com/dtroode/simple-twitter-server/internal/config"
	"github.com/dtroode/simple-twitter-server/internal/logger"
	"github.com/dtroode/simple-twitter-server/internal/model"
	"github.com/dtroode/simple-twitter-server/internal/password"
	"github.com/dtroode/simple-twitter-server/internal/repository/postgres"
	"github.com/dtroode/simple-twitter-server/internal/server"
	"github.com/dtroode/simple-twitter-server/internal/service"
	storage "github.com/dtroode/simple-twitter-server/internal/storage/minio"
	"github.com/dtroode/simple-twitter-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	tweetRepo := postgres.NewTweetRepository(db)
	replyRepo := postgres.NewReplyRepository(db)
	likeRepo := postgres.NewLikeRepository(db)

	storageClient, err := storage.NewClient(ctx, storage.Options{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		UseSSL:    cfg.Storage.UseSSL,
		PublicURL: cfg.Storage.PublicURL,
	})
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	hasher := password.NewBcrypt(cfg.Bcrypt.Cost)
	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)

	authService := service.NewAuth(userRepo, hasher, tokenManager, logger)
	userService := service.NewUser(userRepo, tweetRepo, replyRepo, likeRepo, storageClient, hasher, logger)
	tweetService := service.NewTweet(tweetRepo, replyRepo, likeRepo, logger)
	adminService := service.NewAdmin(userRepo, tweetRepo, logger)

	if cfg.Admin.Enabled() {
		if err := authService.EnsureAdmin(ctx, cfg.Admin.Account, cfg.Admin.Email, cfg.Admin.Password); err != nil {
			logger.Fatal("failed to seed admin account", "error", err)
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := httprouter.New(httprouter.Services{
		Auth:          authService,
		Authenticator: authService,
		User:          userService,
		Tweet:         tweetService,
		Admin:         adminService,
	}, reqctx.NewManager(), db, registry, cfg.HTTP.MaxUploadBytes, logger)

	httpServer := server.NewHTTPServer(router.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port), cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout)

	checker := health.NewChecker(db, cfg.GRPC.HealthInterval, logger)
	grpcServer := server.NewGRPCServer(grpcrouter.New(checker.Server(), logger).Register(), fmt.Sprintf(":%s", cfg.GRPC.Port))

	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	servers := []model.Server{httpServer, grpcServer}

	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("server stopped with error", "error", err, "address", s.Address())
				stop()
			}
		}(s)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		checker.Run(ctx)
	}()

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")
	checker.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
