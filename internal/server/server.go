package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/indrishabhtech/ap/config"
	"github.com/indrishabhtech/ap/internal/handler"
	"github.com/indrishabhtech/ap/internal/middleware"
	"github.com/indrishabhtech/ap/internal/transport/httpdto"
	"github.com/indrishabhtech/ap/pkg/database"
	"github.com/indrishabhtech/ap/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     *config.Config
	logger     *logger.Logger
}

var (
	ReleaseMode = "release"
	DebugMode   = "debug"
	TestMode    = "test"
)

type Handlers struct {
	Files      *handler.FileHandler
	Billboard  *handler.BillboardHandler
	DeviceLogs *handler.DeviceLogHandler
	Download   *handler.DownloadHandler
}

func New(cfg *config.Config, l *logger.Logger) *Server {
	if cfg.AppMode == ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.AppMode == TestMode {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Server{
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.AppPort),
			Handler: engine,
		},
		engine: engine,
		config: cfg,
		logger: l,
	}
}

func (s *Server) SetupRoutes(handlers *Handlers) {
	s.engine.Use(middleware.RequestIDMiddleware())
	s.engine.Use(middleware.CORSMiddleware())
	s.engine.Use(middleware.LoggingMiddleware(s.logger))
	s.engine.Use(middleware.ErrorHandler(s.logger))

	admin := middleware.AdminMiddleware(s.config.AdminSecret)

	s.engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"message": "pong"}))
	})

	s.engine.GET("/health", func(c *gin.Context) {
		if err := database.HealthCheck(); err != nil {
			c.JSON(http.StatusServiceUnavailable, httpdto.NewErrorResponse(err.Error(), httpdto.CodeUnhealthy))
			return
		}
		c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"status": "healthy"}))
	})

	// Probe and download proxy live at the root: the proxy URL is handed
	// directly to browsers.
	s.engine.GET("/probe", handlers.Download.Probe)
	s.engine.GET("/external-download", handlers.Download.External)

	files := s.engine.Group("/v1/files")
	{
		files.GET("", handlers.Files.List)
		files.GET("/:id", handlers.Files.GetByID)
		files.POST("/upload", admin, handlers.Files.Upload)
		files.POST("/link", admin, handlers.Files.Link)
		files.PATCH("/:id", admin, handlers.Files.Patch)
		files.DELETE("/:id", admin, handlers.Files.Delete)
		files.DELETE("", admin, handlers.Files.Reset)
	}

	billboard := s.engine.Group("/v1/billboard")
	{
		billboard.GET("", handlers.Billboard.Get)
		billboard.PUT("", admin, handlers.Billboard.Put)
		billboard.DELETE("", admin, handlers.Billboard.Clear)
	}

	logs := s.engine.Group("/v1/device-logs")
	{
		logs.POST("", handlers.DeviceLogs.Create)
		logs.GET("", admin, handlers.DeviceLogs.List)
		logs.DELETE("", admin, handlers.DeviceLogs.Clear)
	}
}

func (s *Server) Start() error {
	go func() {
		if s.logger != nil {
			s.logger.Infof("Starting the server on port %s...", s.config.AppPort)
		}
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if s.logger != nil {
				s.logger.Errorf("Error in starting the server: %s", err)
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	if s.logger != nil {
		s.logger.Infof("Quitting signal received.. Shutting down after 5 seconds")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		if s.logger != nil {
			s.logger.Infof("Error in the graceful shutdown of the server: %s", err)
		}
		return err
	}

	if err := database.Disconnect(ctx); err != nil {
		if s.logger != nil {
			s.logger.Errorf("Error disconnecting from database: %s", err)
		}
	}

	if s.logger != nil {
		s.logger.Infof("Server stopped gracefully")
	}

	return nil
}
