package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"sync"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"google.golang.org/grpc"

	"github.com/maxpoletaev/parity/api"
	paritysvc "github.com/maxpoletaev/parity/parity/service"
)

type shutdownFunc func(ctx context.Context) error

var noopShutdown = func(ctx context.Context) error { return nil }

func setupLogger() (kitlog.Logger, shutdownFunc) {
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)

	if !opts.Verbose {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	return logger, noopShutdown
}

func setupRestServer(wg *sync.WaitGroup, logger kitlog.Logger) (*http.Server, shutdownFunc) {
	restAPI := &http.Server{
		Addr:    opts.RestAPI.BindAddr,
		Handler: api.CreateRouter(logger),
	}

	wg.Add(1)

	go func() {
		defer wg.Done()

		level.Info(logger).Log("msg", "starting REST API server", "addr", opts.RestAPI.BindAddr)

		if err := restAPI.ListenAndServe(); err != nil {
			if err != http.ErrServerClosed {
				panic(fmt.Sprintf("failed to start REST API server: %v", err))
			}
		}
	}()

	shutdown := func(ctx context.Context) error {
		logger.Log("msg", "shutting down REST API server")

		if err := restAPI.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown REST API server: %w", err)
		}

		return nil
	}

	return restAPI, shutdown
}

func setupGrpcServer(wg *sync.WaitGroup, logger kitlog.Logger) (*grpc.Server, shutdownFunc) {
	grpcServer := grpc.NewServer()

	parityService := paritysvc.New(logger)
	paritysvc.RegisterParityServiceServer(grpcServer, parityService)

	listener, err := net.Listen("tcp", opts.GRPC.BindAddr)
	if err != nil {
		panic(fmt.Sprintf("failed to create GRPC listener: %v", err))
	}

	wg.Add(1)

	go func() {
		defer wg.Done()

		level.Info(logger).Log("msg", "starting GRPC server", "addr", listener.Addr())

		// ErrServerStopped means shutdown won the race against Serve.
		if err := grpcServer.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			panic(fmt.Sprintf("failed to start GRPC server: %v", err))
		}
	}()

	shutdown := func(ctx context.Context) error {
		logger.Log("msg", "shutting down GRPC server")
		grpcServer.GracefulStop()

		return nil
	}

	return grpcServer, shutdown
}

// shutdown calls each function in order. A failing component is logged and
// does not prevent the rest from shutting down.
func shutdown(ctx context.Context, logger kitlog.Logger, order []shutdownFunc) {
	for _, f := range order {
		if err := f(ctx); err != nil {
			level.Error(logger).Log("msg", "failed to shutdown component", "err", err)
		}
	}
}
