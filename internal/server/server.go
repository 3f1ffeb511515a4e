package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tasklist-web/internal/api"
	"tasklist-web/internal/config"
	"tasklist-web/internal/graph"
	"tasklist-web/internal/idp"
	"tasklist-web/internal/middlewares"
	"tasklist-web/internal/session"
	"tasklist-web/internal/version"
)

type Server struct {
	cfg         *config.Config
	logger      *slog.Logger
	appCtx      *middlewares.AppContext
	httpServer  *http.Server
	debugServer *http.Server
	cancel      context.CancelFunc
}

func New(cfg *config.Config) (*Server, error) {
	logger := setupLogger(cfg)

	ctx, cancel := context.WithCancel(context.Background())

	sessions, err := session.NewManager(logger, cfg)
	if err != nil {
		cancel()
		return nil, err
	}

	federated, err := idp.NewFederated(ctx, cfg.Federated)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to set up federated providers: %w", err)
	}

	appCtx := &middlewares.AppContext{
		Context:   ctx,
		Config:    cfg,
		Logger:    logger,
		Sessions:  sessions,
		IDP:       idp.NewClient(cfg.IDP, logger),
		Federated: federated,
		API:       api.NewClient(cfg.Backend, logger),
		Graph:     graph.NewService(cfg.GraphQL, logger),
	}

	router := setupRouter(appCtx)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	var debugServer *http.Server
	if cfg.Server.Debug != nil && cfg.Server.Debug.Enabled {
		debugServer = &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Server.Debug.Host, cfg.Server.Debug.Port),
			Handler: setupDebugRouter(),
		}
	}

	return &Server{
		cfg:         cfg,
		logger:      logger,
		appCtx:      appCtx,
		httpServer:  httpServer,
		debugServer: debugServer,
		cancel:      cancel,
	}, nil
}

func (s *Server) Start() error {
	go func() {
		s.logger.Info("Server Started", "port", s.cfg.Server.Port, "version", version.Full())
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server failed to start", "error", err)
			s.cancel()
		}
	}()

	if s.debugServer != nil {
		go func() {
			s.logger.Info("Debug server starting", "address", s.debugServer.Addr)
			if err := s.debugServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("Debug server failed to start", "error", err)
				s.cancel()
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		s.logger.Info("Shutdown signal received")
	case <-s.appCtx.Done():
		s.logger.Info("Context canceled")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	s.logger.Info("Shutting Down Server")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
		return err
	}

	if s.debugServer != nil {
		if err := s.debugServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Debug server forced to shutdown", "error", err)
		}
	}

	s.logger.Info("Server Exited")
	return nil
}
