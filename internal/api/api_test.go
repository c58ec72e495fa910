package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"taskboard/internal/config"
	"taskboard/internal/domain"
	"taskboard/internal/logging"
	"taskboard/internal/repository/sqldb"
	"taskboard/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo, err := sqldb.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return New(services.NewServiceContainer(repo, nil), config.NewConfig(), logging.Discard())
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	return decode[map[string]string](t, w)["error"]
}

func TestHealth(t *testing.T) {
	s := setupTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestIDIsEchoed(t *testing.T) {
	s := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestTaskLifecycle(t *testing.T) {
	s := setupTestServer(t)

	w := doRequest(t, s, http.MethodPost, "/api/categories", `{"name":"Work"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	category := decode[domain.Category](t, w)
	assert.Equal(t, "#3b82f6", category.Color)

	w = doRequest(t, s, http.MethodPost, "/api/tags", `{"name":"urgent","color":"#ef4444"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	tag := decode[domain.Tag](t, w)

	body, err := json.Marshal(map[string]interface{}{
		"title":      "Write report",
		"categoryId": category.ID,
		"tagIds":     []int64{tag.ID, tag.ID},
	})
	require.NoError(t, err)
	w = doRequest(t, s, http.MethodPost, "/api/tasks", string(body))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	task := decode[domain.Task](t, w)
	assert.Equal(t, "Write report", task.Title)
	assert.False(t, task.Completed)
	require.NotNil(t, task.Category)
	assert.Equal(t, "Work", task.Category.Name)
	require.Len(t, task.Tags, 1)
	assert.Equal(t, "urgent", task.Tags[0].Tag.Name)

	w = doRequest(t, s, http.MethodGet, "/api/tasks", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.Task](t, w), 1)

	path := "/api/tasks/" + jsonID(task.ID)

	w = doRequest(t, s, http.MethodPatch, path+"/toggle", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[domain.Task](t, w).Completed)

	w = doRequest(t, s, http.MethodPut, path, `{"categoryId":null,"tagIds":[],"description":"done"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[domain.Task](t, w)
	assert.Nil(t, updated.CategoryID)
	assert.Empty(t, updated.Tags)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "done", *updated.Description)
	assert.True(t, updated.Completed)

	w = doRequest(t, s, http.MethodGet, "/api/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"totalTasks":1,"completedTasks":1,"activeTasks":0,"totalCategories":1,"totalTags":1,"completionRate":100}`,
		w.Body.String())

	w = doRequest(t, s, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = doRequest(t, s, http.MethodGet, "/api/tasks", "")
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestToggleUnknownTaskIsNotFound(t *testing.T) {
	s := setupTestServer(t)

	w := doRequest(t, s, http.MethodPatch, "/api/tasks/999/toggle", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Task not found", errorMessage(t, w))
	assert.Equal(t, "not_found", w.Header().Get("X-Error-Kind"))
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		path    string
		body    string
		message string
		kind    string
	}{
		{"create task without title", http.MethodPost, "/api/tasks", `{"description":"x"}`, "Failed to create task", "validation"},
		{"create task with bad json", http.MethodPost, "/api/tasks", `{`, "Failed to create task", "validation"},
		{"create task with unknown category", http.MethodPost, "/api/tasks", `{"title":"x","categoryId":42}`, "Failed to create task", "storage"},
		{"update unknown task", http.MethodPut, "/api/tasks/42", `{"title":"x"}`, "Failed to update task", "not_found"},
		{"update with non-numeric id", http.MethodPut, "/api/tasks/abc", `{"title":"x"}`, "Failed to update task", "validation"},
		{"delete unknown task", http.MethodDelete, "/api/tasks/42", "", "Failed to delete task", "not_found"},
		{"toggle with non-numeric id", http.MethodPatch, "/api/tasks/abc/toggle", "", "Failed to toggle task", "validation"},
		{"create category without name", http.MethodPost, "/api/categories", `{}`, "Failed to create category", "validation"},
		{"delete unknown category", http.MethodDelete, "/api/categories/7", "", "Failed to delete category", "not_found"},
		{"create tag without name", http.MethodPost, "/api/tags", `{"color":"#fff"}`, "Failed to create tag", "validation"},
		{"delete unknown tag", http.MethodDelete, "/api/tags/7", "", "Failed to delete tag", "not_found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupTestServer(t)

			w := doRequest(t, s, tt.method, tt.path, tt.body)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Equal(t, tt.message, errorMessage(t, w))
			assert.Equal(t, tt.kind, w.Header().Get("X-Error-Kind"))
		})
	}
}

func TestCategoryDeleteKeepsTasks(t *testing.T) {
	s := setupTestServer(t)

	w := doRequest(t, s, http.MethodPost, "/api/categories", `{"name":"Home","color":"#000000"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	category := decode[domain.Category](t, w)

	w = doRequest(t, s, http.MethodPost, "/api/tasks", `{"title":"Laundry","categoryId":`+jsonID(category.ID)+`}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, s, http.MethodDelete, "/api/categories/"+jsonID(category.ID), "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, s, http.MethodGet, "/api/tasks", "")
	tasks := decode[[]domain.Task](t, w)
	require.Len(t, tasks, 1)
	assert.Nil(t, tasks[0].CategoryID)
	assert.Nil(t, tasks[0].Category)

	w = doRequest(t, s, http.MethodGet, "/api/categories", "")
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	s := setupTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/tasks/1/toggle", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPatch)
}

func TestRunStopsOnCancel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo, err := sqldb.New(":memory:")
	require.NoError(t, err)
	defer repo.Close()

	cfg := config.NewConfig()
	cfg.Server.Addr = "127.0.0.1:0"
	s := New(services.NewServiceContainer(repo, cfg), cfg, logging.New(&bytes.Buffer{}, false))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	cancel()
	assert.NoError(t, <-done)
}

func TestAPIPrefix(t *testing.T) {
	assert.Equal(t, "/api", apiPrefix("/api/"))
	assert.Equal(t, "/v1", apiPrefix("v1"))
	assert.Equal(t, "", apiPrefix(""))
}

func jsonID(id int64) string {
	b, _ := json.Marshal(id)
	return string(b)
}
