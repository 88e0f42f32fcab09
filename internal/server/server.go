package server

import (
	"context"
	"errors"
	"io"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-catalog-api/internal/config"
	"github.com/MKhiriev/go-catalog-api/internal/handler"
	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/internal/workers"
	"golang.org/x/sync/errgroup"
)

type server struct {
	httpServer      *httpServer
	shutdownTimeout time.Duration

	// db is closed once the HTTP server has drained.
	db io.Closer

	// workers run alongside the HTTP server and stop with it.
	workers *workers.Workers

	// onListen is called with the bound listener before serving starts.
	onListen func(net.Listener)

	logger *logger.Logger
}

// NewServer builds the HTTP server around handlers. db may be nil.
func NewServer(handlers *handler.Handlers, cfg config.Server, db io.Closer, logger *logger.Logger, background ...workers.Worker) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoHandler
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		shutdownTimeout: cfg.ShutdownTimeout,
		db:              db,
		workers:         workers.NewWorkers(background...),
		logger:          logger,
	}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	ln, err := s.httpServer.listen()
	if err != nil {
		return errors.Join(err, s.closeDB())
	}
	if s.onListen != nil {
		s.onListen(ln)
	}

	g, gctx := errgroup.WithContext(ctx)

	s.logger.Info().Msg("Launching HTTP server")
	g.Go(func() error {
		return s.httpServer.serve(ln)
	})

	g.Go(func() error {
		s.workers.Run(gctx)
		return nil
	})

	// stop on signal, caller cancellation or a failed Serve
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
		defer cancel()

		return s.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	if err == nil {
		s.logger.Info().Msg("server Shutdown gracefully")
	}
	return err
}

// Shutdown drains the HTTP server and then closes the database pool.
func (s *server) Shutdown(ctx context.Context) error {
	return errors.Join(s.httpServer.shutdown(ctx), s.closeDB())
}

func (s *server) closeDB() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
