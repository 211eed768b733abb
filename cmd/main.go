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

	"github.com/go-webauthn/webauthn/webauthn"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	httpctx "github.com/dtroode/accounts-server/internal/api/http/context"
	"github.com/dtroode/accounts-server/internal/api/http/router"
	httpServer "github.com/dtroode/accounts-server/internal/api/http/server"
	"github.com/dtroode/accounts-server/internal/config"
	"github.com/dtroode/accounts-server/internal/logger"
	"github.com/dtroode/accounts-server/internal/mailer"
	"github.com/dtroode/accounts-server/internal/model"
	"github.com/dtroode/accounts-server/internal/repository/postgres"
	"github.com/dtroode/accounts-server/internal/service"
	miniostorage "github.com/dtroode/accounts-server/internal/storage/minio"
	s3storage "github.com/dtroode/accounts-server/internal/storage/s3"
	"github.com/dtroode/accounts-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)

	db, err := postgres.NewConection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	credentialRepo := postgres.NewCredentialRepository(db)
	challengeRepo := postgres.NewChallengeRepository(db)
	codeRepo := postgres.NewCodeRepository(db)
	oauthRepo := postgres.NewOAuthAccountRepository(db)
	subscriptionRepo := postgres.NewSubscriptionRepository(db)
	imageRepo := postgres.NewImageRepository(db)
	postRepo := postgres.NewPostRepository(db)
	waitlistRepo := postgres.NewWaitlistRepository(db)

	storageClient, err := newStorage(ctx, cfg.Storage)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	webAuthn, err := webauthn.New(&webauthn.Config{
		RPDisplayName: cfg.WebAuthn.RPDisplayName,
		RPID:          cfg.WebAuthn.RPID,
		RPOrigins:     cfg.WebAuthn.RPOrigins,
	})
	if err != nil {
		logger.Fatal("failed to configure webauthn", "error", err)
	}

	sessionManager := token.NewJWT(cfg.Session.Secret, cfg.Session.TTL)
	codeMailer := mailer.NewLogMailer(logger)
	ctxMgr := httpctx.NewManager()

	services := router.Services{
		Passkey:  service.NewPasskey(userRepo, credentialRepo, challengeRepo, webAuthn, logger),
		Auth:     service.NewAuth(userRepo, codeRepo, oauthRepo, codeMailer, logger),
		Account:  service.NewAccount(userRepo, subscriptionRepo, oauthRepo, logger),
		Image:    service.NewImage(storageClient, imageRepo, logger),
		Post:     service.NewPost(postRepo, logger),
		Waitlist: service.NewWaitlist(waitlistRepo, logger),
	}

	r := router.New(services, sessionManager, ctxMgr, db, cfg.Session, logger)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port), cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout)
	sl := httpServer.NewSecurityLayer(cfg.HTTP)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func newStorage(ctx context.Context, cfg config.Storage) (model.Storage, error) {
	switch cfg.Provider {
	case config.StorageProviderS3:
		return s3storage.NewClient(ctx, s3storage.Options{
			Region:        cfg.S3.Region,
			Bucket:        cfg.S3.Bucket,
			AccessKey:     cfg.S3.AccessKey,
			SecretKey:     cfg.S3.SecretKey,
			BaseEndpoint:  cfg.S3.BaseEndpoint,
			PublicBaseURL: cfg.PublicBaseURL,
		})
	default:
		minioClient, err := minio.New(cfg.Minio.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Minio.AccessKey, cfg.Minio.SecretKey, ""),
			Secure: cfg.Minio.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create minio client: %w", err)
		}
		return miniostorage.NewClient(ctx, minioClient, cfg.Minio.Bucket, cfg.PublicBaseURL)
	}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
