// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/atk0906/Projet-SUAPS/internal/charts"
	"github.com/atk0906/Projet-SUAPS/internal/dashboard"
	"github.com/atk0906/Projet-SUAPS/internal/output"
	"github.com/atk0906/Projet-SUAPS/internal/redact"
)

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// load parses the query of c and builds the dashboard it asks for.
func (s *Server) load(c *fiber.Ctx) (*dashboard.Dashboard, dashboardQuery, error) {
	q, err := s.parseQuery(c)
	if err != nil {
		return nil, q, err
	}
	d, err := s.build(c.UserContext(), s.dashboardOptions(q))
	if err != nil {
		return nil, q, err
	}
	if q.Anonymize {
		d.Anonymize(redact.MaskEmail)
	}
	return d, q, nil
}

func (s *Server) handleIndex(c *fiber.Ctx) error {
	d, q, err := s.load(c)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := output.NewHTMLFormatter().Format(d, outputOptions(q), &buf); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

func (s *Server) handleDashboard(c *fiber.Ctx) error {
	d, q, err := s.load(c)
	if err != nil {
		return err
	}
	if q.Level != "" {
		if _, err := lookupLevel(d, q.Level); err != nil {
			return err
		}
	}
	env := output.BuildEnvelope(d, outputOptions(q))
	if q.Session != "" && env.Session == nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("session %q not found", q.Session))
	}
	return c.JSON(env)
}

func (s *Server) handleLevel(c *fiber.Ctx) error {
	d, _, err := s.load(c)
	if err != nil {
		return err
	}
	la, err := lookupLevel(d, param(c, "level"))
	if err != nil {
		return err
	}
	return c.JSON(la)
}

func (s *Server) handleSession(c *fiber.Ctx) error {
	d, _, err := s.load(c)
	if err != nil {
		return err
	}
	la, err := availableLevel(d, param(c, "level"))
	if err != nil {
		return err
	}
	session := param(c, "session")
	list, ok := la.Session(session)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("session %q not found for level %s", session, la.Level))
	}
	return c.JSON(list)
}

func (s *Server) handlePresenceChart(c *fiber.Ctx) error {
	d, _, err := s.load(c)
	if err != nil {
		return err
	}
	la, err := availableLevel(d, param(c, "level"))
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	title := fmt.Sprintf("%s (%s): presence", d.Activity, la.Level)
	if err := charts.Presence(&buf, title, la.Summaries, charts.PNG); err != nil {
		if errors.Is(err, charts.ErrNoData) {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("no sessions for level %s", la.Level))
		}
		return err
	}
	c.Type("png")
	return c.Send(buf.Bytes())
}

func lookupLevel(d *dashboard.Dashboard, name string) (*dashboard.LevelAttendance, error) {
	la, ok := d.Level(name)
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound,
			fmt.Sprintf("unknown level %q (available: %s)", name, strings.Join(d.LevelNames(), ", ")))
	}
	return la, nil
}

// availableLevel is lookupLevel for routes that need the presence export.
func availableLevel(d *dashboard.Dashboard, name string) (*dashboard.LevelAttendance, error) {
	la, err := lookupLevel(d, name)
	if err != nil {
		return nil, err
	}
	if !la.Available {
		return nil, fiber.NewError(fiber.StatusServiceUnavailable,
			fmt.Sprintf("presence export of level %s unavailable: %s", la.Level, la.Error))
	}
	return la, nil
}

// param returns the unescaped route parameter key.
func param(c *fiber.Ctx, key string) string {
	raw := c.Params(key)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
