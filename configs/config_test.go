package configs

import (
	"os"
	"testing"
	"time"
)

var testEnv = map[string]string{
	"APP_DEBUG":                      "false",
	"APP_PORT":                       "8080",
	"APP_MAX_PAGE_SIZE":              "50",
	"STORAGE_DRIVER":                 "memory",
	"MONGO_URI":                      "mongodb://mongo:27017",
	"MONGO_DATABASE":                 "todo_test",
	"MONGO_SERVER_SELECTION_TIMEOUT": "2s",
	"POSTGRES_HOST":                  "db",
	"POSTGRES_PORT":                  "5433",
}

// setupTestEnv sets environment variables that override config.yaml
func setupTestEnv() {
	for key, value := range testEnv {
		os.Setenv(key, value)
	}
}

// cleanupTestEnv cleans up environment variables after tests
func cleanupTestEnv() {
	for key := range testEnv {
		os.Unsetenv(key)
	}
}

// TestEnvironmentOverridesConfigFile tests that environment variables win over config.yaml
func TestEnvironmentOverridesConfigFile(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	InitViper(".", "test")
	cfg := GetViper()

	if cfg.App.Port != "8080" {
		t.Errorf("Expected App.Port to be 8080, got %s", cfg.App.Port)
	}
	if cfg.App.MaxPageSize != 50 {
		t.Errorf("Expected App.MaxPageSize to be 50, got %d", cfg.App.MaxPageSize)
	}
	if cfg.Storage.Driver != StorageMemory {
		t.Errorf("Expected Storage.Driver to be %s, got %s", StorageMemory, cfg.Storage.Driver)
	}
	if cfg.Mongo.URI != "mongodb://mongo:27017" {
		t.Errorf("Expected Mongo.URI to be mongodb://mongo:27017, got %s", cfg.Mongo.URI)
	}
	if cfg.Mongo.ServerSelectionTimeout != 2*time.Second {
		t.Errorf("Expected Mongo.ServerSelectionTimeout to be 2s, got %v", cfg.Mongo.ServerSelectionTimeout)
	}
	if cfg.Postgres.Host != "db" || cfg.Postgres.Port != "5433" {
		t.Errorf("Expected Postgres db:5433, got %s:%s", cfg.Postgres.Host, cfg.Postgres.Port)
	}
}

// TestConfigFileValues tests values that only come from config.yaml
func TestConfigFileValues(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	InitViper(".", "test")
	cfg := GetViper()

	if cfg.Mongo.Collection != "todos" {
		t.Errorf("Expected Mongo.Collection to be todos, got %s", cfg.Mongo.Collection)
	}
	if cfg.Mongo.SocketTimeout != 45*time.Second {
		t.Errorf("Expected Mongo.SocketTimeout to be 45s, got %v", cfg.Mongo.SocketTimeout)
	}
	if cfg.Postgres.MaxOpenConns != 100 {
		t.Errorf("Expected Postgres.MaxOpenConns to be 100, got %d", cfg.Postgres.MaxOpenConns)
	}
}
