package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/indrishabhtech/ap/config"
	"github.com/indrishabhtech/ap/internal/handler"
	"github.com/indrishabhtech/ap/internal/probe"
	"github.com/indrishabhtech/ap/internal/proxy"
	apredis "github.com/indrishabhtech/ap/internal/redis"
	"github.com/indrishabhtech/ap/internal/repository"
	"github.com/indrishabhtech/ap/internal/server"
	"github.com/indrishabhtech/ap/internal/services"
	"github.com/indrishabhtech/ap/internal/storage"
	"github.com/indrishabhtech/ap/pkg/database"
	"github.com/indrishabhtech/ap/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	l := logger.New(cfg.AppMode)
	logger.SetGlobalLogger(l)

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := context.Background()
	if err := database.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	// Blob storage is optional: without it the upload endpoint refuses
	// requests but URL registration and the proxy keep working.
	var blobs *storage.Client
	if cfg.S3Bucket != "" {
		var err error
		blobs, err = storage.NewClient(ctx, storage.S3Config{
			Region:     cfg.S3Region,
			Bucket:     cfg.S3Bucket,
			AccessKey:  cfg.S3AccessKey,
			SecretKey:  cfg.S3SecretKey,
			Endpoint:   cfg.S3Endpoint,
			PublicBase: cfg.S3PublicBase,
		})
		if err != nil {
			log.Fatalf("Failed to create blob storage client: %v", err)
		}
	} else {
		l.Warnf("blob storage not configured; binary uploads are disabled")
	}

	// The probe cache is optional as well.
	var probeCache *apredis.ProbeCache
	if cfg.RedisHost != "" {
		client := apredis.NewClient(apredis.Config{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		probeCache = apredis.NewProbeCache(client, apredis.ProbeCacheConfig{
			TTL: time.Duration(cfg.ProbeCacheTTLMin) * time.Minute,
		})
	}

	prober := probe.New()
	var allowedHosts []string
	if cfg.ProxyAllowedHosts != "" {
		allowedHosts = strings.Split(cfg.ProxyAllowedHosts, ",")
	}
	downloader := proxy.NewDownloader(allowedHosts)

	fileRepo := repository.NewFileRepository(database.DB())
	billboardRepo := repository.NewBillboardRepository(database.DB())
	deviceLogRepo := repository.NewDeviceLogRepository(database.DB())

	fileService := services.NewFileService(fileRepo, blobs, prober, cfg.S3Folder, l)
	billboardService := services.NewBillboardService(billboardRepo)
	deviceLogService := services.NewDeviceLogService(deviceLogRepo)

	handlers := &server.Handlers{
		Files:      handler.NewFileHandler(fileService),
		Billboard:  handler.NewBillboardHandler(billboardService),
		DeviceLogs: handler.NewDeviceLogHandler(deviceLogService),
		Download:   handler.NewDownloadHandler(prober, downloader, probeCache, l),
	}

	srv := server.New(cfg, l)
	srv.SetupRoutes(handlers)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
}
