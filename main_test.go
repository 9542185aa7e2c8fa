package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/VivekbirN/SDP-project/config"
	"github.com/VivekbirN/SDP-project/db"
	"github.com/VivekbirN/SDP-project/handlers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:   config.ServerConfig{Port: 8080},
		Database: config.DatabaseConfig{Driver: config.DriverMemory},
		Auth:     config.AuthConfig{User: "admin", Pass: "secret"},
		Logging:  config.LoggingConfig{Level: "info", Format: "text"},
	}
}

func TestRouter_HealthIsPublic(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(testConfig()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_APIRequiresAuth(t *testing.T) {
	handlers.Store = db.NewMemoryBillStore()
	t.Cleanup(func() { handlers.Store = nil })
	router := newRouter(testConfig())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bills", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bills", nil)
	req.SetBasicAuth("admin", "secret")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOpenStore_Memory(t *testing.T) {
	store, closeStore, err := openStore(t.Context(), config.DatabaseConfig{Driver: config.DriverMemory})
	require.NoError(t, err)
	defer closeStore()
	assert.IsType(t, &db.MemoryBillStore{}, store)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(config.LoggingConfig{Level: "warn", Format: "json"}, &buf)

	logger.Info("dropped")
	logger.Warn("kept", "bill", "b1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "b1", entry["bill"])
}
