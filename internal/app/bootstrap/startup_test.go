package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/projecthub/internal/app/system/auth"
	"github.com/dalemusser/projecthub/internal/app/system/timeouts"
	"github.com/dalemusser/projecthub/internal/testutil"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func validAppConfig() AppConfig {
	return AppConfig{
		MongoURI:         "mongodb://localhost:27017",
		MongoDatabase:    "projecthub_test",
		MongoMaxPoolSize: 100,
		MongoMinPoolSize: 10,
		SessionKey:       "test-session-key-must-be-32-chars-long",
		SessionName:      "projecthub-session",
		SessionMaxAge:    24 * time.Hour,
		AuditLog:         "all",
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		mutate  func(*AppConfig)
		wantErr bool
	}{
		{"valid", "dev", func(*AppConfig) {}, false},
		{"bad uri", "dev", func(c *AppConfig) { c.MongoURI = "postgres://localhost" }, true},
		{"empty database", "dev", func(c *AppConfig) { c.MongoDatabase = "" }, true},
		{"min pool above max", "dev", func(c *AppConfig) { c.MongoMinPoolSize = 200 }, true},
		{"zero max age", "dev", func(c *AppConfig) { c.SessionMaxAge = 0 }, true},
		{"bad audit mode", "dev", func(c *AppConfig) { c.AuditLog = "stdout" }, true},
		{"short key in dev", "dev", func(c *AppConfig) { c.SessionKey = "short" }, false},
		{"short key in prod", "prod", func(c *AppConfig) { c.SessionKey = "short" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validAppConfig()
			tt.mutate(&cfg)
			err := ValidateConfig(&config.CoreConfig{Env: tt.env}, cfg, testLogger())
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateConfig: err=%v, wantErr=%v", err, tt.wantErr)
			}
		})
	}
}

func TestStartup_ConfiguresTimeouts(t *testing.T) {
	t.Cleanup(timeouts.Reset)

	cfg := validAppConfig()
	cfg.TimeoutShort = 3 * time.Second
	cfg.TimeoutLong = time.Minute

	if err := Startup(t.Context(), &config.CoreConfig{}, cfg, DBDeps{}, testLogger()); err != nil {
		t.Fatalf("Startup failed: %v", err)
	}
	if timeouts.Short() != 3*time.Second {
		t.Errorf("Short: got %v", timeouts.Short())
	}
	if timeouts.Long() != time.Minute {
		t.Errorf("Long: got %v", timeouts.Long())
	}
	if timeouts.Medium() != timeouts.DefaultMedium {
		t.Errorf("Medium should keep its default, got %v", timeouts.Medium())
	}
}

func TestRouter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	deps := DBDeps{ProjectHubMongoClient: db.Client(), ProjectHubMongoDatabase: db}

	cfg := validAppConfig()
	sm, err := auth.NewSessionManager(cfg.SessionKey, cfg.SessionName, "", cfg.SessionMaxAge, false, testLogger())
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	router := newRouter(deps, cfg, sm, testLogger())

	tests := []struct {
		method, path string
		want         int
	}{
		{"GET", "/health", http.StatusOK},
		{"GET", "/api/workspaces", http.StatusUnauthorized},
		{"GET", "/api/projects?workspaceId=000000000000000000000000", http.StatusUnauthorized},
		{"GET", "/api/projects/000000000000000000000000/analytics", http.StatusUnauthorized},
		{"POST", "/api/tasks/bulk-update", http.StatusUnauthorized},
		{"GET", "/api/members?workspaceId=000000000000000000000000", http.StatusUnauthorized},
		{"GET", "/api/workspaces/000000000000000000000000/audit", http.StatusUnauthorized},
		{"GET", "/nope", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			if rec.Code != tt.want {
				t.Errorf("status: got %d, want %d (body: %s)", rec.Code, tt.want, rec.Body.String())
			}
			if rec.Header().Get("X-Request-ID") == "" {
				t.Error("expected a request id header")
			}
		})
	}
}
