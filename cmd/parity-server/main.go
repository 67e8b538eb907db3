package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-kit/log/level"
	"github.com/jessevdk/go-flags"
)

func main() {
	p := flags.NewParser(&opts, flags.Default)

	if _, err := p.Parse(); err != nil {
		if err.(*flags.Error).Type != flags.ErrHelp {
			fmt.Println("cli error:", err)
		}

		os.Exit(2)
	}

	wg := sync.WaitGroup{}
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger, closeLogger := setupLogger()
	_, closeGrpcServer := setupGrpcServer(&wg, logger)

	// Components must be shut down in a particular order.
	shutdownOrder := []shutdownFunc{
		closeGrpcServer,
		closeLogger,
	}

	if opts.RestAPI.Enabled {
		_, closeRestServer := setupRestServer(&wg, logger)
		shutdownOrder = append([]shutdownFunc{closeRestServer}, shutdownOrder...)
	}

	<-interrupt
	level.Info(logger).Log("msg", "received interrupt signal, shutting down")

	shutdown(context.Background(), logger, shutdownOrder)
	wg.Wait()
}
