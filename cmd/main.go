// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/linuxfoundation/lfx-v2-roster-service/cmd/service"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/api"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/render"
	usecase "github.com/linuxfoundation/lfx-v2-roster-service/internal/service"
	"github.com/linuxfoundation/lfx-v2-roster-service/pkg/config"
	logging "github.com/linuxfoundation/lfx-v2-roster-service/pkg/log"
	"goa.design/clue/debug"
)

const (
	defaultPort = "8080"
	// gracefulShutdownSeconds should be higher than the roster load
	// timeout, and lower than the pod or liveness probe's
	// terminationGracePeriodSeconds.
	gracefulShutdownSeconds = 25
)

func init() {
	if err := config.LoadDotenvIfPresent(); err != nil {
		slog.Warn("failed to load .env file", "error", err)
	}
	// JSON logs on stdout unless LOG_FORMAT or LOG_DIR say otherwise
	logging.InitStructureLogConfig()
}

func main() {
	// Define command line flags, add any other flag required to configure the
	// service.
	var (
		dbgF = flag.Bool("d", false, "enable debug logging")
		port = flag.String("p", defaultPort, "listen port")
		bind = flag.String("bind", "*", "interface to bind on")
	)
	flag.Usage = func() {
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()

	ctx := context.Background()
	slog.InfoContext(ctx, "Starting roster service",
		"bind", *bind,
		"http-port", *port,
		"graceful-shutdown-seconds", gracefulShutdownSeconds,
	)

	// Load the roster exactly once before any search can be served.
	rosterSource := service.RosterSourceImpl(ctx)
	roster := usecase.NewRosterLoader(rosterSource, service.RosterLoadTimeout()).Load(ctx)
	if err := rosterSource.Close(); err != nil {
		slog.WarnContext(ctx, "failed to close roster source", "error", err)
	}
	authService := service.AuthServiceImpl(ctx)

	// Initialize the services.
	var (
		rosterSvcSvc api.ServiceAuther
	)
	{
		rosterSvcSvc = service.NewRosterSvc(usecase.NewMemberSearch(roster), render.HTML{}, authService)
	}

	// Wrap the services in endpoints that can be invoked from other services
	// potentially running in different processes.
	rosterSvcEndpoints := api.NewEndpoints(rosterSvcSvc)
	rosterSvcEndpoints.Use(debug.LogPayloads())

	// Create channel used by both the signal handler and server goroutines
	// to notify the main goroutine when to stop the server.
	errc := make(chan error)

	// Setup interrupt handler. This optional step configures the process so
	// that SIGINT and SIGTERM signals cause the services to stop gracefully.
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		errc <- fmt.Errorf("%s", <-c)
	}()

	var wg sync.WaitGroup
	ctx, cancel := context.WithCancel(ctx)

	// Start the servers and send errors (if any) to the error channel.
	addr := ":" + *port
	if *bind != "*" {
		addr = *bind + ":" + *port
	}

	handleHTTPServer(ctx, addr, rosterSvcEndpoints, &wg, errc, *dbgF)

	// Wait for signal.
	slog.InfoContext(ctx, "received shutdown signal, stopping servers",
		"signal", <-errc,
	)

	// Send cancellation signal to the goroutines.
	cancel()

	// Create a timeout context for graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), gracefulShutdownSeconds*time.Second)
	defer shutdownCancel()

	// Wait for all goroutines to finish with timeout
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		slog.InfoContext(ctx, "graceful shutdown completed")
	case <-shutdownCtx.Done():
		slog.WarnContext(ctx, "graceful shutdown timed out")
	}

	slog.InfoContext(ctx, "exited")
}
