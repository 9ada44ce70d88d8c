// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"sync"

	"github.com/atk0906/Projet-SUAPS/internal/attendance"
	"github.com/atk0906/Projet-SUAPS/internal/dashboard"
	"github.com/atk0906/Projet-SUAPS/internal/enrollment"
)

func init() {
	RegisterFormatter(NewHTMLFormatter())
}

// HTMLFormatter writes the dashboard as a self-contained HTML page.
type HTMLFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*HTMLFormatter)(nil)

// NewHTMLFormatter returns a new HTMLFormatter.
func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{}
}

// Name returns the format name.
func (h *HTMLFormatter) Name() string {
	return "html"
}

var (
	htmlTmplOnce sync.Once
	htmlTmpl     *template.Template
)

func dashboardTemplate() *template.Template {
	htmlTmplOnce.Do(func() {
		htmlTmpl = template.Must(template.New("dashboard").Funcs(template.FuncMap{
			"json": func(v any) template.JS {
				b, _ := json.Marshal(v)
				return template.JS(b) //nolint:gosec // intentional unescaped embedding
			},
			"share": func(d *enrollment.Distribution, c enrollment.Count) string {
				return fmt.Sprintf("%.1f%%", d.Share(c))
			},
		}).Parse(htmlTemplate))
	})
	return htmlTmpl
}

// Format writes the selected views of d as an HTML dashboard to w.
func (h *HTMLFormatter) Format(d *dashboard.Dashboard, opts Options, w io.Writer) error {
	data := buildHTMLData(d, opts)
	if err := dashboardTemplate().Execute(w, data); err != nil {
		return fmt.Errorf("execute html template: %w", err)
	}
	return nil
}

// htmlData holds all template data for the HTML dashboard.
type htmlData struct {
	D           *dashboard.Dashboard
	Site        string
	GeneratedAt string
	Show        map[string]bool
	Levels      []htmlLevel
	ChartData   map[string]any
}

type htmlLevel struct {
	*dashboard.LevelAttendance
	ID string
	// Selected is the session shown first in the participant selector.
	Selected string
}

func buildHTMLData(d *dashboard.Dashboard, opts Options) htmlData {
	data := htmlData{
		D:           d,
		Site:        d.Site,
		GeneratedAt: d.GeneratedAt.UTC().Format("2006-01-02 15:04 UTC"),
		Show:        make(map[string]bool),
	}
	if data.Site == "" {
		data.Site = "all sites"
	}
	for _, name := range []string{"overview", "statistics", "advanced", "attendance", "students", "trends"} {
		data.Show[name] = opts.Includes(name)
	}
	if data.Show["attendance"] {
		for i, la := range selectedLevels(d, opts) {
			lvl := htmlLevel{LevelAttendance: la, ID: fmt.Sprintf("level-%d", i)}
			if list, ok := la.Session(opts.Report.Session); ok {
				lvl.Selected = list.Session
			} else if len(la.Participants) > 0 {
				lvl.Selected = la.Participants[0].Session
			}
			data.Levels = append(data.Levels, lvl)
		}
	}
	data.ChartData = buildHTMLChartData(d, data.Levels)
	return data
}

type chartSeries struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

func series(d *enrollment.Distribution) *chartSeries {
	if d == nil {
		return nil
	}
	s := &chartSeries{Labels: make([]string, len(d.Counts)), Values: make([]int, len(d.Counts))}
	for i, c := range d.Counts {
		s.Labels[i] = c.Label
		s.Values[i] = c.Count
	}
	return s
}

type levelChart struct {
	ID       string       `json:"id"`
	Sessions []string     `json:"sessions"`
	Attended []int        `json:"attended"`
	Rates    []*float64   `json:"rates"`
	Average  *float64     `json:"average"`
	Gender   *chartSeries `json:"gender"`
}

func ratePtr(r attendance.Rate) *float64 {
	if !r.Defined {
		return nil
	}
	v := r.Value
	return &v
}

func buildHTMLChartData(d *dashboard.Dashboard, levels []htmlLevel) map[string]any {
	cd := map[string]any{
		"groups":       series(d.Overview.Groups),
		"registration": series(d.Overview.Registration),
		"types":        series(d.Overview.Types),
		"activities":   series(d.Statistics.TopActivities),
		"departments":  series(d.Statistics.Departments),
		"days":         series(d.Statistics.Days),
		"sites":        series(d.Statistics.Sites),
		"levels":       series(d.Advanced.Levels),
		"periods":      series(d.Advanced.Periods),
		"teachers":     series(d.Advanced.TopTeachers),
		"heatmap":      d.Advanced.Heatmap,
		"scatter":      d.Students.Cells,
		"topDepts":     series(d.Students.TopDepartments),
		"treemap":      d.Students.Treemap,
	}

	lc := make([]levelChart, 0, len(levels))
	for _, l := range levels {
		if !l.Available {
			continue
		}
		c := levelChart{ID: l.ID, Average: ratePtr(l.Average), Gender: &chartSeries{}}
		for _, s := range l.Summaries {
			c.Sessions = append(c.Sessions, s.Session)
			c.Attended = append(c.Attended, s.Attended)
			c.Rates = append(c.Rates, ratePtr(s.Rate))
		}
		for _, g := range l.Gender {
			c.Gender.Labels = append(c.Gender.Labels, g.Label)
			c.Gender.Values = append(c.Gender.Values, g.Count)
		}
		lc = append(lc, c)
	}
	cd["attendance"] = lc
	return cd
}
