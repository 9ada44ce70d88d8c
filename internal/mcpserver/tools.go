// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/atk0906/Projet-SUAPS/internal/config"
	"github.com/atk0906/Projet-SUAPS/internal/dashboard"
	"github.com/atk0906/Projet-SUAPS/internal/output"
	"github.com/atk0906/Projet-SUAPS/internal/redact"
	"github.com/atk0906/Projet-SUAPS/internal/report"
	"github.com/atk0906/Projet-SUAPS/internal/validate"
)

// DashboardInput is the input schema for the dashboard tool.
type DashboardInput struct {
	Path      string `json:"path,omitempty" jsonschema:"Data directory holding the exports (default: current directory)"`
	Semester  string `json:"semester,omitempty" jsonschema:"Semester key, e.g. semester1, semester2 or events (default: semester1)"`
	Site      string `json:"site,omitempty" jsonschema:"Only count enrollments at this site (default: all sites)"`
	Sections  string `json:"sections,omitempty" jsonschema:"Comma-separated views to include: overview, statistics, advanced, attendance, students, trends (default: all)"`
	Anonymize bool   `json:"anonymize,omitempty" jsonschema:"Mask participant e-mail addresses"`
}

// AttendanceInput is the input schema for the attendance tool.
type AttendanceInput struct {
	Path   string `json:"path,omitempty" jsonschema:"Data directory holding the exports (default: current directory)"`
	Level  string `json:"level,omitempty" jsonschema:"Skill level, e.g. beginner or confirmed (default: every level)"`
	Format string `json:"format,omitempty" jsonschema:"Output format: json or text (default: json)"`
}

// CheckInput is the input schema for the check tool.
type CheckInput struct {
	Path     string `json:"path,omitempty" jsonschema:"Data directory holding the exports (default: current directory)"`
	Semester string `json:"semester,omitempty" jsonschema:"Semester key whose export is required (default: semester1)"`
}

// ParticipantsInput is the input schema for the participants tool.
type ParticipantsInput struct {
	Path      string `json:"path,omitempty" jsonschema:"Data directory holding the exports (default: current directory)"`
	Level     string `json:"level" jsonschema:"Skill level, e.g. beginner or confirmed"`
	Session   string `json:"session" jsonschema:"Session label (Course 3), presence column name or session number"`
	Format    string `json:"format,omitempty" jsonschema:"Output format: json or text (default: json)"`
	Anonymize bool   `json:"anonymize,omitempty" jsonschema:"Mask participant e-mail addresses"`
}

func boolPtr(b bool) *bool { return &b }

func readOnly() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:    true,
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "dashboard",
		Description: "Build the sports service dashboard of a data directory and return its views as JSON: enrollment overview, statistics, cross-tabulations, students, per-level attendance and trends.",
		Annotations: readOnly(),
	}, handleDashboard)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "attendance",
		Description: "Return per-session attendance of the tracked activity for one level or every level: attended count, participation rate, average rate and gender breakdown.",
		Annotations: readOnly(),
	}, handleAttendance)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "participants",
		Description: "List the students who attended one course session of a level (present or late).",
		Annotations: readOnly(),
	}, handleParticipants)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check",
		Description: "Check the exports of a data directory: missing files, missing columns, presence sheets without session columns and misspelled attendance statuses, each with a fix suggestion.",
		Annotations: readOnly(),
	}, handleCheck)
}

// options loads the config of path and merges the tool arguments into
// dashboard options that never record history.
func options(path, semester, site string) (dashboard.Options, error) {
	pathInfo, err := ResolvePath(path)
	if err != nil {
		return dashboard.Options{}, err
	}

	fileCfg, err := config.Load(pathInfo.Root)
	if err != nil {
		return dashboard.Options{}, fmt.Errorf("failed to load config: %w", err)
	}
	opts, err := config.Merge(fileCfg, dashboard.Options{
		DataDir:  pathInfo.AbsPath,
		Semester: semester,
		Site:     site,
	})
	if err != nil {
		return dashboard.Options{}, fmt.Errorf("invalid config: %w", err)
	}
	return opts, nil
}

// build builds the dashboard of path.
func build(ctx context.Context, path, semester, site string) (*dashboard.Dashboard, error) {
	opts, err := options(path, semester, site)
	if err != nil {
		return nil, err
	}
	d, err := dashboard.Build(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("dashboard build failed: %w", err)
	}
	return d, nil
}

func handleDashboard(ctx context.Context, _ *mcp.CallToolRequest, input DashboardInput) (*mcp.CallToolResult, any, error) {
	var sections []string
	if input.Sections != "" {
		sections = splitAndTrim(input.Sections)
		if unknown := report.UnknownSections(sections); len(unknown) > 0 {
			return nil, nil, fmt.Errorf("unknown sections: %s (available: %s)",
				strings.Join(unknown, ", "), strings.Join(report.List(), ", "))
		}
	}

	d, err := build(ctx, input.Path, input.Semester, input.Site)
	if err != nil {
		return nil, nil, err
	}
	if input.Anonymize {
		d.Anonymize(redact.MaskEmail)
	}

	var buf bytes.Buffer
	if err := output.NewJSONFormatter().Format(d, output.Options{Sections: sections}, &buf); err != nil {
		return nil, nil, fmt.Errorf("formatting failed: %w", err)
	}
	return textResult(buf.String()), nil, nil
}

func handleCheck(_ context.Context, _ *mcp.CallToolRequest, input CheckInput) (*mcp.CallToolResult, any, error) {
	opts, err := options(input.Path, input.Semester, "")
	if err != nil {
		return nil, nil, err
	}
	var buf bytes.Buffer
	if err := writeJSON(&buf, validate.Exports(opts)); err != nil {
		return nil, nil, err
	}
	return textResult(buf.String()), nil, nil
}

func handleAttendance(ctx context.Context, _ *mcp.CallToolRequest, input AttendanceInput) (*mcp.CallToolResult, any, error) {
	format, err := parseFormat(input.Format)
	if err != nil {
		return nil, nil, err
	}
	d, err := build(ctx, input.Path, "", "")
	if err != nil {
		return nil, nil, err
	}

	levels := d.Attendance
	if input.Level != "" {
		la, err := lookupLevel(d, input.Level)
		if err != nil {
			return nil, nil, err
		}
		levels = []*dashboard.LevelAttendance{la}
	}

	var buf bytes.Buffer
	switch format {
	case "json":
		if err := writeJSON(&buf, levels); err != nil {
			return nil, nil, err
		}
	case "text":
		for _, la := range levels {
			if !la.Available {
				_, _ = fmt.Fprintf(&buf, "Attendance of level %s unavailable: %s\n\n", la.Level, la.Error)
				continue
			}
			if err := report.RenderLevel(&buf, d.Activity, la); err != nil {
				return nil, nil, fmt.Errorf("rendering failed: %w", err)
			}
		}
	}
	return textResult(buf.String()), nil, nil
}

func handleParticipants(ctx context.Context, _ *mcp.CallToolRequest, input ParticipantsInput) (*mcp.CallToolResult, any, error) {
	format, err := parseFormat(input.Format)
	if err != nil {
		return nil, nil, err
	}
	if input.Level == "" || input.Session == "" {
		return nil, nil, fmt.Errorf("level and session are required")
	}
	d, err := build(ctx, input.Path, "", "")
	if err != nil {
		return nil, nil, err
	}
	la, err := lookupLevel(d, input.Level)
	if err != nil {
		return nil, nil, err
	}
	if !la.Available {
		return nil, nil, fmt.Errorf("presence export of level %s unavailable: %s", la.Level, la.Error)
	}
	if input.Anonymize {
		d.Anonymize(redact.MaskEmail)
	}
	list, ok := la.Session(input.Session)
	if !ok {
		return nil, nil, fmt.Errorf("session %q not found for level %s", input.Session, la.Level)
	}

	var buf bytes.Buffer
	switch format {
	case "json":
		if err := writeJSON(&buf, list); err != nil {
			return nil, nil, err
		}
	case "text":
		if err := report.RenderParticipants(&buf, list); err != nil {
			return nil, nil, fmt.Errorf("rendering failed: %w", err)
		}
	}
	return textResult(buf.String()), nil, nil
}

func lookupLevel(d *dashboard.Dashboard, name string) (*dashboard.LevelAttendance, error) {
	la, ok := d.Level(name)
	if !ok {
		return nil, fmt.Errorf("unknown level %q (available: %s)", name, strings.Join(d.LevelNames(), ", "))
	}
	return la, nil
}

func parseFormat(format string) (string, error) {
	switch format {
	case "", "json":
		return "json", nil
	case "text":
		return "text", nil
	}
	return "", fmt.Errorf("unsupported format %q (supported: json, text)", format)
}

func writeJSON(buf *bytes.Buffer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	buf.Write(data)
	buf.WriteByte('\n')
	return nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

// splitAndTrim splits a comma-separated string and trims whitespace from each element.
func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
