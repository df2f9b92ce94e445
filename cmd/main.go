package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/weiawesome/wes-io-live/hashid-service/internal/codec"
	"github.com/weiawesome/wes-io-live/hashid-service/internal/config"
	hashidgrpc "github.com/weiawesome/wes-io-live/hashid-service/internal/grpc"
	"github.com/weiawesome/wes-io-live/hashid-service/internal/handler"
	pkglog "github.com/weiawesome/wes-io-live/hashid-service/pkg/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	pkglog.Init(pkglog.Config{
		Level:       cfg.Log.Level,
		Pretty:      cfg.Log.Pretty,
		ServiceName: "hashid-service",
	})
	logger := pkglog.L()

	logger.Info().Msg("starting hashid-service")

	// Build one codec per namespace
	namespaces := make(codec.Namespaces)
	for name, ns := range cfg.AllNamespaces() {
		c, err := codec.NewHashIDCodec(ns.Alphabet, ns.Salt, ns.MinLength)
		if err != nil {
			logger.Fatal().Err(err).Str(pkglog.FieldNamespace, name).Msg("invalid namespace configuration")
		}
		namespaces[name] = c
		logger.Info().Str(pkglog.FieldNamespace, name).Int("min_length", ns.MinLength).Msg("namespace initialized")
	}

	salts, err := codec.NewSaltGenerator(cfg.Salt.Size)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create salt generator")
	}

	// Start gRPC server
	grpcAddr := fmt.Sprintf("%s:%d", cfg.GRPC.Host, cfg.GRPC.Port)
	grpcServer, err := hashidgrpc.StartGRPCServer(grpcAddr, namespaces, salts, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to start grpc server")
	}

	// Setup Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(pkglog.GinMiddleware(logger))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handler.NewHandler(namespaces, salts).RegisterRoutes(r)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", server.Addr).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down hashid-service")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("http server forced to shutdown")
	}
	grpcServer.GracefulStop()

	logger.Info().Msg("hashid-service stopped")
}
