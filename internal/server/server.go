// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

// Package server serves the dashboard over HTTP. Every request rebuilds the
// dashboard from the exports, so edits to the data directory show up on the
// next page load.
package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/atk0906/Projet-SUAPS/internal/dashboard"
)

// DefaultAddr is the listen address when none is configured.
const DefaultAddr = "127.0.0.1:8080"

// BuildFunc builds a dashboard. It is dashboard.Build outside tests.
type BuildFunc func(ctx context.Context, opts dashboard.Options) (*dashboard.Dashboard, error)

// Options configure a Server.
type Options struct {
	// Dashboard is the base build configuration; queries narrow it.
	Dashboard dashboard.Options
	// AccessLog receives one line per request. Nil means stderr.
	AccessLog io.Writer
	// Build overrides dashboard.Build.
	Build BuildFunc
}

// Server is the HTTP dashboard.
type Server struct {
	app      *fiber.App
	base     dashboard.Options
	build    BuildFunc
	validate *validator.Validate
}

// New returns a Server with its routes and middleware installed.
func New(opts Options) *Server {
	s := &Server{
		base:     opts.Dashboard,
		build:    opts.Build,
		validate: validator.New(),
	}
	if s.build == nil {
		s.build = dashboard.Build
	}
	s.registerValidations()

	accessLog := opts.AccessLog
	if accessLog == nil {
		accessLog = os.Stderr
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "suaps",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	s.app.Use(recover.New())
	s.app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	s.app.Use(logger.New(logger.Config{
		Output:     accessLog,
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${locals:requestid} ${method} ${path} - ${status} - ${latency}\n",
	}))

	s.app.Get("/health", s.handleHealth)
	s.app.Get("/", s.handleIndex)
	s.app.Get("/api/dashboard", s.handleDashboard)
	s.app.Get("/api/attendance/:level", s.handleLevel)
	s.app.Get("/api/attendance/:level/sessions/:session", s.handleSession)
	s.app.Get("/charts/:level/presence.png", s.handlePresenceChart)
	return s
}

// App exposes the fiber application, mainly for app.Test.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on addr until Shutdown.
func (s *Server) Listen(addr string) error {
	slog.Info("serving dashboard", "addr", addr, "data_dir", s.base.DataDir)
	return s.app.Listen(addr)
}

// Shutdown stops the server, waiting for in-flight requests until ctx ends.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// errorResponse is the JSON body of every error.
type errorResponse struct {
	Code    int               `json:"code"`
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// validationError carries per-field validator failures to the error handler.
type validationError struct {
	fields map[string]string
}

func (e *validationError) Error() string {
	return "invalid query"
}

func errorHandler(c *fiber.Ctx, err error) error {
	resp := errorResponse{Code: fiber.StatusInternalServerError, Status: "error", Message: err.Error()}

	var fe *fiber.Error
	var ve *validationError
	switch {
	case errors.As(err, &ve):
		resp.Code = fiber.StatusBadRequest
		resp.Errors = ve.fields
	case errors.As(err, &fe):
		resp.Code = fe.Code
		resp.Message = fe.Message
	case errors.Is(err, dashboard.ErrNoEnrollmentData):
		resp.Code = fiber.StatusNotFound
	default:
		slog.Error("request failed", "path", c.Path(), "error", err)
	}
	return c.Status(resp.Code).JSON(resp)
}
