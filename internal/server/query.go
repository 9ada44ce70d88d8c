// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package server

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/atk0906/Projet-SUAPS/internal/dashboard"
	"github.com/atk0906/Projet-SUAPS/internal/output"
	"github.com/atk0906/Projet-SUAPS/internal/report"
)

// dashboardQuery is the query string accepted by the dashboard routes.
type dashboardQuery struct {
	Semester  string `query:"semester" validate:"omitempty,semester"`
	Site      string `query:"site" validate:"omitempty,max=64"`
	Level     string `query:"level" validate:"omitempty,max=64"`
	Session   string `query:"session" validate:"omitempty,max=64"`
	Sections  string `query:"sections" validate:"omitempty,sections"`
	Anonymize bool   `query:"anonymize"`
}

func (s *Server) registerValidations() {
	s.validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.Split(f.Tag.Get("query"), ",")[0]
	})
	// Registration only fails for an empty tag or nil func.
	_ = s.validate.RegisterValidation("semester", func(fl validator.FieldLevel) bool {
		_, ok := s.semesters()[fl.Field().String()]
		return ok
	})
	_ = s.validate.RegisterValidation("sections", func(fl validator.FieldLevel) bool {
		return len(report.UnknownSections(splitList(fl.Field().String()))) == 0
	})
}

func (s *Server) semesters() map[string]string {
	if len(s.base.Semesters) > 0 {
		return s.base.Semesters
	}
	return dashboard.DefaultSemesters
}

// parseQuery decodes and validates the query string of c.
func (s *Server) parseQuery(c *fiber.Ctx) (dashboardQuery, error) {
	var q dashboardQuery
	if err := c.QueryParser(&q); err != nil {
		return q, fiber.NewError(fiber.StatusBadRequest, "invalid query: "+err.Error())
	}
	if err := s.validate.Struct(q); err != nil {
		var ves validator.ValidationErrors
		if !errors.As(err, &ves) {
			return q, err
		}
		fields := make(map[string]string, len(ves))
		for _, fe := range ves {
			fields[fe.Field()] = fe.Tag()
		}
		return q, &validationError{fields: fields}
	}
	return q, nil
}

// dashboardOptions narrows the base build configuration to q. The server
// never records history.
func (s *Server) dashboardOptions(q dashboardQuery) dashboard.Options {
	opts := s.base
	if q.Semester != "" {
		opts.Semester = q.Semester
	}
	if q.Site != "" {
		opts.Site = q.Site
	}
	opts.Record = false
	return opts
}

func outputOptions(q dashboardQuery) output.Options {
	return output.Options{
		Sections: splitList(q.Sections),
		Report:   report.Options{Level: q.Level, Session: q.Session},
	}
}

// splitList splits a comma-separated list, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
