package transport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rpggio/punchclock/internal/domain/project"
	"github.com/rpggio/punchclock/internal/domain/report"
	"github.com/rpggio/punchclock/internal/domain/session"
	"github.com/rpggio/punchclock/internal/sqlite"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { _ = db.Close() })

	projectRepo := sqlite.NewProjectRepository(db)
	sessionRepo := sqlite.NewSessionRepository(db)
	uow := sqlite.NewUnitOfWork(db)

	return NewRouter(Services{
		Projects: project.NewService(projectRepo, nil),
		Sessions: session.NewService(sessionRepo, uow, nil),
		Reports:  report.NewService(sessionRepo, nil),
	}, nil, nil)
}

func doRequest(t *testing.T, router http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}

func TestCreateAndGetProject(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/project/website")
	require.Equal(t, http.StatusCreated, rec.Code)

	var created project.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Equal(t, "website", created.Name)
	require.NotZero(t, created.ID)

	rec = doRequest(t, router, http.MethodGet, "/api/project/website")
	require.Equal(t, http.StatusOK, rec.Code)

	// Duplicate create conflicts
	rec = doRequest(t, router, http.MethodPost, "/api/project/website")
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetProjectNotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/project/ghost")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body, "error")
}

func TestToggleSession(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/project/website")
	require.Equal(t, http.StatusCreated, rec.Code)

	// First toggle opens a session; next action is "end"
	rec = doRequest(t, router, http.MethodPost, "/api/session/website")
	require.Equal(t, http.StatusOK, rec.Code)

	var first sessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &first))
	require.Nil(t, first.Session.End)
	require.Equal(t, session.ActionEnd, first.Action)

	// Second toggle closes the same session; next action is "start"
	rec = doRequest(t, router, http.MethodPost, "/api/session/website")
	require.Equal(t, http.StatusOK, rec.Code)

	var second sessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &second))
	require.Equal(t, first.Session.ID, second.Session.ID)
	require.NotNil(t, second.Session.End)
	require.Equal(t, session.ActionStart, second.Action)
}

func TestToggleUnknownProject(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/session/ghost")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLatestSessionNotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/project/website")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/session/website")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDashboard(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/project/website")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	require.Contains(t, rec.Body.String(), "website")
	require.Contains(t, rec.Body.String(), session.ActionStart)
}

func TestCreateTrackerForm(t *testing.T) {
	router := newTestRouter(t)

	form := strings.NewReader("name=website")
	req := httptest.NewRequest(http.MethodPost, "/htmx/project", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "website")
	require.Contains(t, rec.Body.String(), "/htmx/session/website")
}

func TestToggleWidget(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/project/website")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/htmx/session/website")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), session.ActionEnd, "open session relabels the button to end")

	rec = doRequest(t, router, http.MethodPost, "/htmx/session/website")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), session.ActionStart)
}

func TestDeleteProject(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/project/website")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/htmx/deleteProject/website")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/project/website")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteSession(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/project/website")
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doRequest(t, router, http.MethodPost, "/api/session/website")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp sessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	rec = doRequest(t, router, http.MethodDelete, "/htmx/deleteSession/1")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/htmx/deleteSession/not-a-number")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
