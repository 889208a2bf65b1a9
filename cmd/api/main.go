package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"freshcart/internal/config"
	"freshcart/internal/i18n"
	"freshcart/internal/infra/db"
	infraRepo "freshcart/internal/infra/repository"
	"freshcart/internal/infra/storage"
	"freshcart/internal/logger"
	"freshcart/internal/metrics"
	mw "freshcart/internal/middleware"
	"freshcart/internal/server"
	"freshcart/internal/session"
	"freshcart/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// .envは無くてもよい
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.GoEnv)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//DB接続
	gormDB, err := db.Connect(cfg.DSN(), !cfg.IsProd())
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	adminRepo := infraRepo.NewAdminUserGormRepository(gormDB)

	imageStore, err := newImageStore(ctx, cfg.Storage, log)
	if err != nil {
		return err
	}

	// セッションとメトリクス
	dict := i18n.DefaultDictionary()
	sessions := session.NewStore(dict, cfg.SessionIdleTTL, session.WithLogger(log))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg, func() float64 { return float64(sessions.Len()) })

	//Usecase生成
	catalog := usecase.NewCatalogUsecase(productRepo, categoryRepo, log, m)
	if err := catalog.Refresh(ctx); err != nil {
		// 起動時に読めなくても空のカタログで上げる
		log.Warn("initial catalog load failed", zap.Error(err))
	}

	auth := usecase.NewAuthUsecase(usecase.AuthConfig{
		JWTSecret: cfg.JWTSecret,
		AccessTTL: cfg.AccessTTL,
	}, adminRepo, usecase.NewSignOutEvents(), log)
	if err := auth.SeedAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	e := server.New(server.Deps{
		Log:      log,
		Metrics:  m,
		Gatherer: reg,
		Sessions: sessions,
		SessionConfig: mw.SessionConfig{
			Secure: cfg.CookieSecure,
			MaxAge: cfg.SessionIdleTTL,
		},
		FEURL:    cfg.FEURL,
		Catalog:  catalog,
		Cart:     usecase.NewCartUsecase(catalog, cfg.WhatsAppNumber, log, m),
		Language: usecase.NewLanguageUsecase(),
		Auth:     auth,
		Images:   usecase.NewImageUsecase(imageStore, cfg.Storage.MaxImageBytes, log, m),
		Admins:   adminRepo,
	})

	go sessions.RunSweeper(ctx, cfg.SessionSweepInterval)

	//Server起動
	return server.Start(ctx, e, ":"+cfg.Port, log)
}

func newImageStore(ctx context.Context, cfg config.StorageConfig, log *zap.Logger) (storage.ImageStore, error) {
	switch storage.Provider(cfg.Provider) {
	case storage.ProviderCloudinary:
		return storage.NewCloudinaryStorage(cfg.CloudinaryURL, cfg.CloudinaryFolder, log)
	default:
		return storage.NewS3Storage(ctx, storage.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			BaseURL:   cfg.S3BaseURL,
		}, log)
	}
}
