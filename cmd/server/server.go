package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/JaimeStill/ops-console/internal/config"
	"github.com/JaimeStill/ops-console/internal/server"
	"github.com/JaimeStill/ops-console/pkg/logging"
)

// Server coordinates the lifecycle of all subsystems.
type Server struct {
	ctx        context.Context
	cancel     context.CancelFunc
	shutdownWg sync.WaitGroup

	logger  *slog.Logger
	modules *Modules
	http    *server.Server
}

// NewServer creates and initializes the server with all subsystems.
func NewServer(cfg *config.Config) (*Server, error) {
	ctx, cancel := context.WithCancel(context.Background())

	logger := logging.New(&cfg.Logging, os.Stdout)

	modules, err := NewModules(cfg)
	if err != nil {
		cancel()
		return nil, err
	}

	s := &Server{
		ctx:     ctx,
		cancel:  cancel,
		logger:  logger,
		modules: modules,
	}

	s.http = server.New(&cfg.Server, buildHandler(modules, s, logger), logger)

	logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"app", cfg.App.BasePath,
	)

	return s, nil
}

// Ready reports whether the HTTP listener is serving.
func (s *Server) Ready() bool {
	return s.http != nil && s.http.Ready()
}

// Start begins all subsystems and returns when they are ready.
func (s *Server) Start() error {
	s.logger.Info("starting server")

	if err := s.http.Start(s.ctx, &s.shutdownWg); err != nil {
		return fmt.Errorf("http start failed: %w", err)
	}

	return nil
}

// Shutdown gracefully stops all subsystems within the provided context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("initiating shutdown")

	s.cancel()

	done := make(chan struct{})
	go func() {
		s.shutdownWg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("all subsystems shut down successfully")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %w", ctx.Err())
	}
}
