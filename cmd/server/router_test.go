package main

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasktrack/api/internal/config"
	"github.com/tasktrack/api/internal/mocks"
	"github.com/tasktrack/api/internal/service/auth"
	"github.com/tasktrack/api/internal/service/tasks"
)

// newTestApplication assembles an application backed by in-memory stores so
// router wiring can be exercised without a database.
func newTestApplication(t *testing.T) *application {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:     3000,
			LogLevel: "info",
		},
		Auth: config.AuthConfig{
			JWTSecret:            "test-secret-test-secret-test-secret!",
			TokenLifetimeMinutes: 60,
			BcryptCost:           4,
		},
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	require.NoError(t, err)

	taskStore := mocks.NewMockTaskStore()

	return &application{
		config:           cfg,
		logger:           slog.Default(),
		userStore:        mocks.NewMockUserStore(),
		taskStore:        taskStore,
		jwtService:       jwtService,
		passwordHasher:   &mocks.MockPasswordHasher{},
		passwordVerifier: &mocks.MockPasswordVerifier{},
		taskService:      tasks.NewService(taskStore, slog.Default()),
	}
}

func TestSetupRouter_HealthCheck(t *testing.T) {
	app := newTestApplication(t)
	router := app.setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestSetupRouter_TaskRoutesRequireToken(t *testing.T) {
	app := newTestApplication(t)
	router := app.setupRouter()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/tasks"},
		{http.MethodPost, "/api/tasks"},
		{http.MethodPut, "/api/tasks/1"},
		{http.MethodDelete, "/api/tasks/1"},
	}

	for _, rt := range routes {
		req := httptest.NewRequest(rt.method, rt.path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code,
			"%s %s should reject requests without a token", rt.method, rt.path)
	}
}

func TestSetupRouter_PublicAuthRoutesRegistered(t *testing.T) {
	app := newTestApplication(t)
	router := app.setupRouter()

	// Malformed bodies still prove the routes are wired: both should be
	// handled (400), not fall through to chi's 404/405.
	for _, path := range []string{"/users", "/login"} {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "POST %s", path)
	}
}
