// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/atk0906/Projet-SUAPS/internal/config"
	"github.com/atk0906/Projet-SUAPS/internal/server"
)

// shutdownTimeout bounds the wait for in-flight requests on exit.
const shutdownTimeout = 5 * time.Second

// Serve-specific flag values.
var (
	serveDash dashboardFlags
	serveAddr string
)

// serveCmd serves the dashboard over HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve [data-dir]",
	Short: "Serve the dashboard over HTTP",
	Long: `Serve the HTML dashboard and its JSON API. Every request rebuilds the
dashboard from the exports, so edited files show up on reload.

Routes:
  GET /                                         HTML dashboard
  GET /api/dashboard                            every view as JSON
  GET /api/attendance/:level                    attendance of one level
  GET /api/attendance/:level/sessions/:session  participants of one session
  GET /charts/:level/presence.png               presence evolution chart
  GET /health                                   liveness

The listen address is --addr, else $SUAPS_ADDR, else server.addr from the
config, else 127.0.0.1:8080.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func init() {
	serveDash.register(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (host:port)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, opts, err := serveDash.setup(args, false)
	if err != nil {
		return err
	}
	addr := listenAddr(serveAddr, cfg)

	srv := server.New(server.Options{
		Dashboard: opts,
		AccessLog: cmd.ErrOrStderr(),
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return exitError(ExitTotalFailure, "suaps: %v", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return exitError(ExitTotalFailure, "suaps: shutdown failed (%v)", err)
	}
	return nil
}

// listenAddr picks the address: flag, then environment, then config.
func listenAddr(flag string, cfg *config.Config) string {
	return firstNonEmpty(flag, os.Getenv(config.EnvAddr), cfg.Server.Addr, server.DefaultAddr)
}
