package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/sharath018/temple-donation-docs/config"
	"github.com/sharath018/temple-donation-docs/database"
	"github.com/sharath018/temple-donation-docs/internal/archive"
	"github.com/sharath018/temple-donation-docs/internal/auditlog"
	"github.com/sharath018/temple-donation-docs/internal/documents"
	"github.com/sharath018/temple-donation-docs/internal/donation"
	"github.com/sharath018/temple-donation-docs/internal/notification"
	"github.com/sharath018/temple-donation-docs/routes"
	"github.com/sharath018/temple-donation-docs/utils"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("❌ Database init failed", "err", err)
	}

	// Init Redis
	if err := utils.InitRedis(cfg); err != nil {
		log.Fatal("❌ Redis init failed", "err", err)
	}
	defer utils.CloseRedis()

	// Init Kafka
	publisher := notification.NewPublisher(cfg.KafkaBrokers, cfg.DocumentsTopic)
	defer publisher.Close()

	// Init repositories & services
	auditSvc := auditlog.NewService(auditlog.NewRepository(db))
	docSvc := documents.NewService(
		donation.NewRepository(db),
		documents.NewReceiptCache(utils.RedisClient, cfg.ReceiptCacheTTL),
		publisher,
		auditSvc,
		cfg.Settings(),
	)

	// Init S3 archive
	if cfg.ArchiveBucket != "" {
		saver, err := archive.NewS3Saver(context.Background(), cfg.AWSRegion, cfg.ArchiveBucket, cfg.ArchivePrefix)
		if err != nil {
			log.Warn("⚠️ Document archive disabled", "err", err)
		} else {
			docSvc.WithArchive(saver)
			log.Info("🗄️ Archiving documents", "bucket", cfg.ArchiveBucket, "prefix", cfg.ArchivePrefix)
		}
	}

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(routes.CORS(cfg))

	routes.Setup(router, cfg, routes.Deps{
		Documents: docSvc,
		Audit:     auditSvc,
		Redis:     utils.RedisClient,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("🚀 Server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("❌ Server failed", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("🛑 Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("⚠️ Graceful shutdown failed", "err", err)
	}
}
