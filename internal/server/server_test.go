// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atk0906/Projet-SUAPS/internal/attendance"
	"github.com/atk0906/Projet-SUAPS/internal/dashboard"
	"github.com/atk0906/Projet-SUAPS/internal/dashboard/dashboardtest"
	"github.com/atk0906/Projet-SUAPS/internal/output"
)

func newTestServer(t *testing.T) (*Server, *bytes.Buffer) {
	t.Helper()
	var access bytes.Buffer
	s := New(Options{
		Dashboard: dashboard.DefaultOptions(dashboardtest.WriteDataDir(t)),
		AccessLog: &access,
	})
	return s, &access
}

func get(t *testing.T, s *Server, target string) (*http.Response, []byte) {
	t.Helper()
	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, body
}

func decodeError(t *testing.T, body []byte) errorResponse {
	t.Helper()
	var e errorResponse
	require.NoError(t, json.Unmarshal(body, &e))
	assert.Equal(t, "error", e.Status)
	return e
}

func TestHealth(t *testing.T) {
	s, access := newTestServer(t)
	resp, body := get(t, s, "/health")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
	_, err := uuid.Parse(resp.Header.Get("X-Request-ID"))
	assert.NoError(t, err)
	assert.Contains(t, access.String(), "GET /health - 200")
}

func TestIndex(t *testing.T) {
	s, _ := newTestServer(t)
	resp, body := get(t, s, "/?session=Course%2010")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html"))
	assert.Contains(t, string(body), "<title>SUAPS Dashboard</title>")
	assert.Contains(t, string(body), `data-session="Course 10"`)
}

func TestDashboardAPI(t *testing.T) {
	s, _ := newTestServer(t)
	resp, body := get(t, s, "/api/dashboard?sections=overview,attendance")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var env output.JSONEnvelope
	require.NoError(t, json.Unmarshal(body, &env))
	require.NotNil(t, env.Overview)
	assert.Equal(t, 5, env.Overview.Registrations)
	assert.Nil(t, env.Statistics)
	assert.Len(t, env.Attendance, 2)
}

func TestDashboardAPI_SiteAndSession(t *testing.T) {
	s, _ := newTestServer(t)
	resp, body := get(t, s, "/api/dashboard?site=VANNES&level=beginner&session=2&anonymize=true")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var env output.JSONEnvelope
	require.NoError(t, json.Unmarshal(body, &env))
	assert.Equal(t, "VANNES", env.Metadata.Site)
	require.NotNil(t, env.Overview)
	assert.Equal(t, 2, env.Overview.Registrations)
	require.NotNil(t, env.Session)
	assert.Equal(t, "Course 2", env.Session.Session)
	assert.Equal(t, "a***@univ.fr", env.Session.Participants[0].Email)
}

func TestDashboardAPI_BadQuery(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		target string
		field  string
	}{
		{"/api/dashboard?semester=semester9", "semester"},
		{"/api/dashboard?sections=overview,churn", "sections"},
		{"/api/dashboard?site=" + strings.Repeat("x", 65), "site"},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			resp, body := get(t, s, tt.target)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			e := decodeError(t, body)
			assert.Equal(t, http.StatusBadRequest, e.Code)
			assert.Contains(t, e.Errors, tt.field)
		})
	}

	resp, body := get(t, s, "/api/dashboard?anonymize=maybe")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeError(t, body).Message, "invalid query")
}

func TestDashboardAPI_NotFound(t *testing.T) {
	s, _ := newTestServer(t)

	resp, body := get(t, s, "/api/dashboard?level=expert")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, decodeError(t, body).Message, `unknown level "expert" (available: beginner, confirmed)`)

	resp, body = get(t, s, "/api/dashboard?session=Course%204")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, decodeError(t, body).Message, `session "Course 4" not found`)

	resp, body = get(t, s, "/api/dashboard?semester=semester2")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, decodeError(t, body).Message, "no enrollment data")
}

func TestLevelAPI(t *testing.T) {
	s, _ := newTestServer(t)
	resp, body := get(t, s, "/api/attendance/Beginner")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var la dashboard.LevelAttendance
	require.NoError(t, json.Unmarshal(body, &la))
	assert.Equal(t, "beginner", la.Level)
	assert.Equal(t, 4, la.Students)
	require.True(t, la.Average.Defined)
	assert.InDelta(t, 200.0/3, la.Average.Value, 1e-9)

	resp, _ = get(t, s, "/api/attendance/expert")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSessionAPI(t *testing.T) {
	s, _ := newTestServer(t)
	resp, body := get(t, s, "/api/attendance/beginner/sessions/Course%2010")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list attendance.ParticipantList
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Equal(t, "Course 10", list.Session)
	require.Len(t, list.Participants, 2)
	assert.Equal(t, "Bruno", list.Participants[0].FirstName)

	resp, body = get(t, s, "/api/attendance/beginner/sessions/4")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, decodeError(t, body).Message, `session "4" not found for level beginner`)
}

func TestSessionAPI_UnavailableLevel(t *testing.T) {
	dir := dashboardtest.WriteDataDir(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "presence_basket_confirme.csv")))
	s := New(Options{Dashboard: dashboard.DefaultOptions(dir), AccessLog: io.Discard})

	resp, body := get(t, s, "/api/attendance/confirmed/sessions/1")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Contains(t, decodeError(t, body).Message, "presence export of level confirmed unavailable")

	resp, _ = get(t, s, "/api/attendance/confirmed")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestPresenceChart(t *testing.T) {
	s, _ := newTestServer(t)
	resp, body := get(t, s, "/charts/beginner/presence.png")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(body, []byte("\x89PNG")))
}

func TestBuildError(t *testing.T) {
	s := New(Options{
		AccessLog: io.Discard,
		Build: func(context.Context, dashboard.Options) (*dashboard.Dashboard, error) {
			return nil, errors.New("disk on fire")
		},
	})
	resp, body := get(t, s, "/api/dashboard")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "disk on fire", decodeError(t, body).Message)
}

func TestRecoverFromPanic(t *testing.T) {
	s := New(Options{
		AccessLog: io.Discard,
		Build: func(context.Context, dashboard.Options) (*dashboard.Dashboard, error) {
			panic("boom")
		},
	})
	resp, _ := get(t, s, "/api/dashboard")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"overview", "trends"}, splitList(" overview, ,trends,"))
	assert.Nil(t, splitList(""))
}
